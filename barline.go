package notation

import "fmt"

// BarlineType is the kind of bar line drawn at a stave edge.
type BarlineType uint8

const (
	BarlineSingle BarlineType = iota
	BarlineDouble
	BarlineEnd
	BarlineNone
)

func (t BarlineType) String() string {
	switch t {
	case BarlineSingle:
		return "single"
	case BarlineDouble:
		return "double"
	case BarlineEnd:
		return "end"
	case BarlineNone:
		return "none"
	default:
		return fmt.Sprintf("BarlineType(%d)", uint8(t))
	}
}

// Barline is the vertical line closing a stave at either end.
type Barline struct {
	modifierBase
	kind BarlineType
}

var _ Modifier = (*Barline)(nil)

// NewBarline creates a bar line for the given stave end.
func NewBarline(kind BarlineType, pos Position) *Barline {
	return &Barline{modifierBase: modifierBase{position: pos}, kind: kind}
}

func (b *Barline) Category() string { return CategoryBarlines }

// Type returns the bar line kind.
func (b *Barline) Type() BarlineType { return b.kind }

// Width returns the horizontal extent of the bar line.
func (b *Barline) Width() float64 {
	switch b.kind {
	case BarlineDouble:
		return 3
	case BarlineEnd:
		return 5
	case BarlineNone:
		return 0
	default:
		return 1
	}
}

func (b *Barline) draw(ctx RenderContext) error {
	if b.stave == nil || b.kind == BarlineNone {
		return nil
	}
	top := b.stave.TopLineY()
	h := b.stave.BottomLineY() - top + b.stave.opts.lineThickness

	switch b.kind {
	case BarlineSingle:
		ctx.FillRect(b.x, top, 1, h)
	case BarlineDouble:
		ctx.FillRect(b.x, top, 1, h)
		ctx.FillRect(b.x+2, top, 1, h)
	case BarlineEnd:
		ctx.FillRect(b.x, top, 1, h)
		ctx.FillRect(b.x+2, top, 3, h)
	}
	return ctx.Err()
}
