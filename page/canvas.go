package page

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"sync"

	"github.com/gogpu/gg"

	notation "github.com/gogpu/gg-notation"
)

// ErrNoVector is returned by WriteSVG when nothing vector based was drawn.
var ErrNoVector = errors.New("page: canvas has no vector content")

// Canvas is a <canvas> element. It hosts both notation backends: the
// canvas backend draws into its pixmap, the SVG backend attaches a vector
// document.
type Canvas struct {
	id string

	mu     sync.Mutex
	width  int
	height int
	pixmap *gg.Pixmap
	vector notation.VectorDocument
}

var (
	_ notation.PixelSurface  = (*Canvas)(nil)
	_ notation.VectorSurface = (*Canvas)(nil)
	_ notation.Resizer       = (*Canvas)(nil)
)

func newCanvas(id string, width, height int) *Canvas {
	return &Canvas{id: id, width: width, height: height}
}

// ID returns the element id.
func (c *Canvas) ID() string { return c.id }

func (c *Canvas) Width() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

func (c *Canvas) Height() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

// Pixmap returns the canvas pixels, allocating them on first use. It is nil
// for a canvas with a zero dimension.
func (c *Canvas) Pixmap() *gg.Pixmap {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pixmap == nil && c.width > 0 && c.height > 0 {
		c.pixmap = gg.NewPixmap(c.width, c.height)
	}
	return c.pixmap
}

// AttachVector stores the vector document drawn onto the canvas.
func (c *Canvas) AttachVector(doc notation.VectorDocument) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vector = doc
}

// Resize changes the canvas size. Like setting width or height on a real
// canvas it clears all content.
func (c *Canvas) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height = width, height
	c.pixmap = nil
	c.vector = nil
	return nil
}

// Blank reports whether nothing has been drawn: every pixel is fully
// transparent and the attached vector document, if any, is empty.
func (c *Canvas) Blank() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.vector != nil && !c.vector.Empty() {
		return false
	}
	if c.pixmap == nil {
		return true
	}
	data := c.pixmap.Data()
	for i := 3; i < len(data); i += 4 {
		if data[i] != 0 {
			return false
		}
	}
	return true
}

// EncodePNG writes the canvas pixels as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	pm := c.Pixmap()
	if pm == nil {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width(), c.Height())
	}
	if err := png.Encode(w, pm.ToImage()); err != nil {
		return fmt.Errorf("page: encode png: %w", err)
	}
	return nil
}

// WriteSVG writes the attached vector document.
func (c *Canvas) WriteSVG(w io.Writer) error {
	c.mu.Lock()
	doc := c.vector
	c.mu.Unlock()
	if doc == nil {
		return ErrNoVector
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("page: write svg: %w", err)
	}
	return nil
}
