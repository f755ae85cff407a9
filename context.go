package notation

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// RenderContext is the drawing surface API staves and modifiers draw with.
// It follows the HTML canvas 2D context closely: style setters and path
// construction return the context so calls can be chained,
//
//	ctx.SetFont("Arial", 10, "").SetBackgroundFillStyle("#eed")
//
// Because chained calls cannot return errors, the first failure is kept
// and reported by Err. After a failure, drawing calls are ignored.
type RenderContext interface {
	// Backend reports which backend created the context.
	Backend() Backend

	// Width and Height report the drawable size in pixels.
	Width() int
	Height() int

	SetFont(family string, size float64, style string) RenderContext
	Font() Font
	SetBackgroundFillStyle(style string) RenderContext
	BackgroundFillStyle() string
	SetFillStyle(style string) RenderContext
	FillStyle() string
	SetStrokeStyle(style string) RenderContext
	StrokeStyle() string
	SetLineWidth(width float64) RenderContext
	LineWidth() float64

	// Save pushes the style state; Restore pops it.
	Save() RenderContext
	Restore() RenderContext

	BeginPath() RenderContext
	MoveTo(x, y float64) RenderContext
	LineTo(x, y float64) RenderContext
	QuadraticCurveTo(cx, cy, x, y float64) RenderContext
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) RenderContext
	Arc(x, y, r, angle1, angle2 float64) RenderContext
	ClosePath() RenderContext

	// Fill and Stroke paint the current path. The path is kept, so a
	// shape can be filled and then stroked.
	Fill() RenderContext
	Stroke() RenderContext

	FillRect(x, y, w, h float64) RenderContext
	// ClearRect paints the rectangle with the background fill style.
	ClearRect(x, y, w, h float64) RenderContext

	// FillText draws s with its baseline at y using the fill style.
	FillText(s string, x, y float64) RenderContext
	MeasureText(s string) float64

	// Err returns the first error the context encountered, if any.
	Err() error
}

// drawState is the style state saved by Save and restored by Restore.
type drawState struct {
	fillStyle   string
	fill        gg.RGBA
	strokeStyle string
	stroke      gg.RGBA
	lineWidth   float64
	font        Font
	face        text.Face
}

func defaultDrawState() drawState {
	return drawState{
		fillStyle:   "#000",
		fill:        gg.RGB(0, 0, 0),
		strokeStyle: "#000",
		stroke:      gg.RGB(0, 0, 0),
		lineWidth:   1,
		font:        DefaultFont,
	}
}

// baseContext holds the backend independent part of a context: the style
// state, its stack, the background style and the sticky error.
type baseContext struct {
	backend Backend
	width   int
	height  int

	state drawState
	stack []drawState

	background      string
	backgroundColor gg.RGBA

	// path is the current path in canvas semantics: it survives Fill and
	// Stroke and is only discarded by BeginPath.
	path *gg.Path

	err error
}

func newBaseContext(backend Backend, width, height int) baseContext {
	return baseContext{
		backend:         backend,
		width:           width,
		height:          height,
		state:           defaultDrawState(),
		stack:           make([]drawState, 0, 4),
		background:      "#fff",
		backgroundColor: gg.RGB(1, 1, 1),
		path:            gg.NewPath(),
	}
}

func (b *baseContext) setErr(err error) {
	if b.err == nil && err != nil {
		b.err = err
		Logger().Debug("notation: context error", "backend", b.backend, "err", err)
	}
}

func (b *baseContext) failed() bool { return b.err != nil }

func (b *baseContext) setFont(family string, size float64, style string) {
	if b.failed() {
		return
	}
	if size <= 0 {
		b.setErr(fmt.Errorf("notation: font size %g must be positive", size))
		return
	}
	f := Font{Family: family, Size: size, Style: style}
	face, err := f.Face()
	if err != nil {
		b.setErr(err)
		return
	}
	b.state.font = f
	b.state.face = face
}

// currentFace returns the face for the current font, loading the default
// font on first use.
func (b *baseContext) currentFace() text.Face {
	if b.state.face == nil && !b.failed() {
		face, err := b.state.font.Face()
		if err != nil {
			b.setErr(err)
			return nil
		}
		b.state.face = face
	}
	return b.state.face
}

func (b *baseContext) setBackground(style string) {
	if b.failed() {
		return
	}
	c, err := ParseColor(style)
	if err != nil {
		b.setErr(err)
		return
	}
	b.background = style
	b.backgroundColor = c
}

func (b *baseContext) setFill(style string) {
	if b.failed() {
		return
	}
	c, err := ParseColor(style)
	if err != nil {
		b.setErr(err)
		return
	}
	b.state.fillStyle = style
	b.state.fill = c
}

func (b *baseContext) setStroke(style string) {
	if b.failed() {
		return
	}
	c, err := ParseColor(style)
	if err != nil {
		b.setErr(err)
		return
	}
	b.state.strokeStyle = style
	b.state.stroke = c
}

func (b *baseContext) setLineWidth(w float64) {
	if b.failed() || w <= 0 {
		// Canvas ignores non-positive line widths.
		return
	}
	b.state.lineWidth = w
}

func (b *baseContext) save() {
	b.stack = append(b.stack, b.state)
}

func (b *baseContext) restore() bool {
	if len(b.stack) == 0 {
		b.setErr(ErrRestoreUnderflow)
		return false
	}
	b.state = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return true
}

func (b *baseContext) Backend() Backend            { return b.backend }
func (b *baseContext) Width() int                  { return b.width }
func (b *baseContext) Height() int                 { return b.height }
func (b *baseContext) Font() Font                  { return b.state.font }
func (b *baseContext) BackgroundFillStyle() string { return b.background }
func (b *baseContext) FillStyle() string           { return b.state.fillStyle }
func (b *baseContext) StrokeStyle() string         { return b.state.strokeStyle }
func (b *baseContext) LineWidth() float64          { return b.state.lineWidth }
func (b *baseContext) Err() error                  { return b.err }

func (b *baseContext) arc(x, y, r, angle1, angle2 float64) {
	sx, sy := x+r*math.Cos(angle1), y+r*math.Sin(angle1)
	if b.path.HasCurrentPoint() {
		b.path.LineTo(sx, sy)
	} else {
		b.path.MoveTo(sx, sy)
	}
	b.path.Arc(x, y, r, angle1, angle2)
}

// pathSink receives path elements; both *gg.Context and
// *recording.Recorder satisfy it.
type pathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

func replayPath(p *gg.Path, dst pathSink) {
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			dst.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dst.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dst.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dst.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dst.ClosePath()
		}
	}
}
