// Package page models the host page a stave is drawn into: a document of
// canvas elements addressed by id, and a one-shot ready event.
//
// Documents are usually parsed from HTML:
//
//	doc, err := page.Load("index.html")
//	if err != nil {
//	    return err
//	}
//	doc.OnReady(func() error { return draw(doc) })
//	if err := doc.DispatchReady(); err != nil {
//	    return err
//	}
//	canvas, _ := doc.GetElementByID("musicCanvas")
//	_ = canvas.EncodePNG(w)
package page

import (
	"errors"
	"fmt"
	"sync"
)

// HTML's default canvas size, used when width or height is absent.
const (
	DefaultCanvasWidth  = 300
	DefaultCanvasHeight = 150
)

var (
	// ErrElementNotFound is matched by *ElementNotFoundError.
	ErrElementNotFound = errors.New("page: element not found")

	// ErrNotCanvas is returned when an id names an element that is not a
	// canvas.
	ErrNotCanvas = errors.New("page: element is not a canvas")

	// ErrDuplicateID is returned by AddCanvas for an id already in use.
	ErrDuplicateID = errors.New("page: duplicate element id")

	// ErrInvalidSize is returned for negative canvas sizes.
	ErrInvalidSize = errors.New("page: invalid canvas size")
)

// ElementNotFoundError reports a GetElementByID lookup that failed.
type ElementNotFoundError struct {
	ID string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("page: no element with id %q", e.ID)
}

func (e *ElementNotFoundError) Is(target error) bool {
	return target == ErrElementNotFound
}

// Document is a host page. It is safe for concurrent use.
type Document struct {
	mu       sync.Mutex
	title    string
	elements map[string]string // id -> tag name
	canvases map[string]*Canvas
	order    []string

	ready readyEvent
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		elements: make(map[string]string),
		canvases: make(map[string]*Canvas),
	}
}

// Title returns the document title, empty when the page has none.
func (d *Document) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

// AddCanvas adds a canvas element of the given size.
func (d *Document) AddCanvas(id string, width, height int) (*Canvas, error) {
	if id == "" {
		return nil, errors.New("page: canvas id is empty")
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.elements[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	c := newCanvas(id, width, height)
	d.elements[id] = "canvas"
	d.canvases[id] = c
	d.order = append(d.order, id)
	return c, nil
}

// addElement records a non-canvas element id. The first element with an id
// wins, as in getElementById.
func (d *Document) addElement(id, tag string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.elements[id]; !ok {
		d.elements[id] = tag
	}
}

func (d *Document) hasElement(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.elements[id]
	return ok
}

// GetElementByID returns the canvas with the given id.
func (d *Document) GetElementByID(id string) (*Canvas, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	tag, ok := d.elements[id]
	if !ok {
		return nil, &ElementNotFoundError{ID: id}
	}
	c, ok := d.canvases[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q is a <%s>", ErrNotCanvas, id, tag)
	}
	return c, nil
}

// Canvases returns the document's canvases in document order.
func (d *Document) Canvases() []*Canvas {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*Canvas, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.canvases[id])
	}
	return out
}
