package notation

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
)

// Surface is a drawing target owned by the host, such as a page canvas
// element. Renderers never own their surface.
type Surface interface {
	Width() int
	Height() int
}

// PixelSurface is a surface backed by a pixmap. BackendCanvas requires it.
type PixelSurface interface {
	Surface
	Pixmap() *gg.Pixmap
}

// VectorDocument is the vector output of a BackendSVG context.
type VectorDocument interface {
	WriteTo(w io.Writer) (int64, error)
	// Empty reports whether nothing has been drawn into the document.
	Empty() bool
}

// VectorSurface is a surface that can display a vector document.
// BackendSVG requires it.
type VectorSurface interface {
	Surface
	AttachVector(doc VectorDocument)
}

// Resizer is implemented by surfaces whose size can change.
type Resizer interface {
	Resize(width, height int) error
}

// Renderer binds a surface to a backend and hands out its drawing context.
type Renderer struct {
	surface Surface
	backend Backend
	ctx     RenderContext
}

// NewRenderer creates a renderer drawing onto surface with the given backend.
//
//	r, err := notation.NewRenderer(canvas, notation.BackendCanvas)
//	if err != nil {
//	    return err
//	}
//	ctx := r.Context()
func NewRenderer(surface Surface, backend Backend) (*Renderer, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	if !backend.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, backend)
	}

	r := &Renderer{surface: surface, backend: backend}
	if err := r.bind(); err != nil {
		return nil, err
	}
	Logger().Info("notation: renderer created",
		"backend", backend, "width", surface.Width(), "height", surface.Height())
	return r, nil
}

// bind creates a fresh context for the surface's current size.
func (r *Renderer) bind() error {
	w, h := r.surface.Width(), r.surface.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}

	switch r.backend {
	case BackendCanvas:
		ps, ok := r.surface.(PixelSurface)
		if !ok {
			return fmt.Errorf("%w: %T cannot host %s", ErrUnsupportedSurface, r.surface, r.backend)
		}
		pm := ps.Pixmap()
		if pm == nil {
			return fmt.Errorf("%w: %T has no pixmap", ErrUnsupportedSurface, r.surface)
		}
		r.ctx = newCanvasContext(pm)
	case BackendSVG:
		vs, ok := r.surface.(VectorSurface)
		if !ok {
			return fmt.Errorf("%w: %T cannot host %s", ErrUnsupportedSurface, r.surface, r.backend)
		}
		sc := newSVGContext(w, h)
		vs.AttachVector(sc)
		r.ctx = sc
	}
	return nil
}

// Context returns the renderer's drawing context.
func (r *Renderer) Context() RenderContext {
	return r.ctx
}

// Backend returns the backend the renderer was created with.
func (r *Renderer) Backend() Backend {
	return r.backend
}

// Resize changes the surface size and replaces the context. Styles set on
// the previous context are not carried over, matching canvas semantics
// where resizing resets the 2D context.
func (r *Renderer) Resize(width, height int) error {
	rs, ok := r.surface.(Resizer)
	if !ok {
		return fmt.Errorf("%w: %T cannot be resized", ErrUnsupportedSurface, r.surface)
	}
	if err := rs.Resize(width, height); err != nil {
		return err
	}
	return r.bind()
}
