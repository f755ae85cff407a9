package notation

import (
	"github.com/gogpu/gg-notation/internal/glyph"
)

// Modifier categories, as reported by Modifier.Category.
const (
	CategoryBarlines       = "barlines"
	CategoryClefs          = "clefs"
	CategoryTimeSignatures = "timesignatures"
)

// Position says which end of a stave a modifier is attached to.
type Position uint8

const (
	PositionBegin Position = iota
	PositionEnd
)

func (p Position) String() string {
	if p == PositionEnd {
		return "end"
	}
	return "begin"
}

// Modifier is something attached to the start or end of a stave: a bar
// line, a clef or a time signature. Only this package implements it.
type Modifier interface {
	// Category groups modifiers of the same kind.
	Category() string
	// Position reports which end of the stave the modifier sits at.
	Position() Position
	// Width is the horizontal space the modifier occupies, in pixels.
	Width() float64
	// Padding is the space left before the modifier, in pixels.
	Padding() float64
	// X is the left edge assigned when the stave was formatted.
	X() float64

	attach(s *Stave)
	setX(x float64)
	draw(ctx RenderContext) error
}

// modifierBase carries the fields every modifier shares.
type modifierBase struct {
	stave    *Stave
	position Position
	padding  float64
	x        float64
}

func (m *modifierBase) Position() Position { return m.position }
func (m *modifierBase) Padding() float64   { return m.padding }
func (m *modifierBase) X() float64         { return m.x }
func (m *modifierBase) attach(s *Stave)    { m.stave = s }
func (m *modifierBase) setX(x float64)     { m.x = x }

// spacing returns the stave's line spacing, or the default when the
// modifier is not attached yet.
func (m *modifierBase) spacing() float64 {
	if m.stave == nil {
		return defaultLineSpacing
	}
	return m.stave.opts.spacing
}

// drawGlyph paints g with its origin at (x, y), scaled so one staff space
// is scale pixels. Filled parts use the fill style, stroked parts the
// stroke style.
func drawGlyph(ctx RenderContext, g glyph.Glyph, x, y, scale float64) {
	pt := func(p glyph.Point) (float64, float64) {
		return x + p.X*scale, y + p.Y*scale
	}

	for _, part := range g.Parts {
		ctx.BeginPath()
		for _, op := range part.Ops {
			switch op.Kind {
			case glyph.OpMoveTo:
				ctx.MoveTo(pt(op.Pts[0]))
			case glyph.OpLineTo:
				ctx.LineTo(pt(op.Pts[0]))
			case glyph.OpQuadTo:
				cx, cy := pt(op.Pts[0])
				ex, ey := pt(op.Pts[1])
				ctx.QuadraticCurveTo(cx, cy, ex, ey)
			case glyph.OpCubicTo:
				c1x, c1y := pt(op.Pts[0])
				c2x, c2y := pt(op.Pts[1])
				ex, ey := pt(op.Pts[2])
				ctx.BezierCurveTo(c1x, c1y, c2x, c2y, ex, ey)
			case glyph.OpClose:
				ctx.ClosePath()
			}
		}
		if part.Filled() {
			ctx.Fill()
			continue
		}
		ctx.Save()
		ctx.SetLineWidth(part.StrokeWidth * scale)
		ctx.Stroke()
		ctx.Restore()
	}
}
