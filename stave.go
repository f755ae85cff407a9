package notation

import (
	"fmt"
)

// Stave is a set of horizontal lines with modifiers (bar lines, clef,
// time signature) attached at either end.
//
// Configuration methods return the stave so calls can be chained:
//
//	stave := notation.NewStave(10, 40, 500)
//	stave.AddClef("treble").AddTimeSignature("4/4")
//	if err := stave.SetContext(ctx).Draw(); err != nil {
//	    return err
//	}
//
// Errors from AddClef and AddTimeSignature are kept and returned by Draw.
type Stave struct {
	x, y, width float64
	opts        staveOptions

	modifiers []Modifier
	ctx       RenderContext

	formatted bool
	startX    float64
	endX      float64

	err error
}

// NewStave creates a stave whose top-left corner is (x, y). The first
// line is drawn spaceAbove staff spaces below y.
func NewStave(x, y, width float64, opts ...StaveOption) *Stave {
	o := defaultStaveOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Stave{x: x, y: y, width: width, opts: o}
	s.err = s.validate()

	begin, end := BarlineSingle, BarlineSingle
	if !o.leftBar {
		begin = BarlineNone
	}
	if !o.rightBar {
		end = BarlineNone
	}
	s.addModifier(NewBarline(begin, PositionBegin))
	s.addModifier(NewBarline(end, PositionEnd))
	return s
}

func (s *Stave) validate() error {
	switch {
	case s.width <= 0:
		return fmt.Errorf("%w: width %g", ErrInvalidStave, s.width)
	case s.opts.numLines <= 0:
		return fmt.Errorf("%w: %d lines", ErrInvalidStave, s.opts.numLines)
	case s.opts.spacing <= 0:
		return fmt.Errorf("%w: line spacing %g", ErrInvalidStave, s.opts.spacing)
	}
	return nil
}

func (s *Stave) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *Stave) addModifier(m Modifier) *Stave {
	m.attach(s)
	s.modifiers = append(s.modifiers, m)
	s.formatted = false
	return s
}

// AddModifier attaches an already constructed modifier.
func (s *Stave) AddModifier(m Modifier) *Stave {
	if m == nil {
		return s
	}
	return s.addModifier(m)
}

// AddClef attaches a clef ("treble", "bass", "alto", "tenor" or
// "percussion") at the start of the stave.
func (s *Stave) AddClef(name string) *Stave {
	c, err := NewClef(name)
	if err != nil {
		s.setErr(err)
		return s
	}
	return s.addModifier(c)
}

// AddTimeSignature attaches a time signature ("4/4", "C", "C|", ...) at
// the start of the stave.
func (s *Stave) AddTimeSignature(spec string) *Stave {
	ts, err := ParseTimeSignature(spec)
	if err != nil {
		s.setErr(err)
		return s
	}
	return s.addModifier(ts)
}

// SetEndBarline replaces the type of the closing bar line.
func (s *Stave) SetEndBarline(kind BarlineType) *Stave {
	for _, m := range s.modifiers {
		if b, ok := m.(*Barline); ok && b.Position() == PositionEnd {
			b.kind = kind
			s.formatted = false
		}
	}
	return s
}

// SetContext binds the rendering context Draw paints into.
func (s *Stave) SetContext(ctx RenderContext) *Stave {
	s.ctx = ctx
	return s
}

// Context returns the bound rendering context, or nil.
func (s *Stave) Context() RenderContext { return s.ctx }

// SetWidth changes the stave width; modifiers are re-laid out on the next
// draw.
func (s *Stave) SetWidth(width float64) *Stave {
	s.width = width
	s.formatted = false
	if err := s.validate(); err != nil {
		s.setErr(err)
	}
	return s
}

func (s *Stave) X() float64     { return s.x }
func (s *Stave) Y() float64     { return s.y }
func (s *Stave) Width() float64 { return s.width }

// NumLines returns the number of stave lines.
func (s *Stave) NumLines() int { return s.opts.numLines }

// LineSpacing returns the distance between two lines in pixels.
func (s *Stave) LineSpacing() float64 { return s.opts.spacing }

// Height is the distance from y to the bottom line.
func (s *Stave) Height() float64 {
	return (float64(s.opts.numLines) + s.opts.spaceAbove) * s.opts.spacing
}

// BottomY is the lowest y the stave reserves, including the space below
// the bottom line.
func (s *Stave) BottomY() float64 {
	return s.y + (float64(s.opts.numLines)+s.opts.spaceAbove+s.opts.spaceBelow)*s.opts.spacing
}

// YForLine returns the y coordinate of line n, counting from the top line
// at 0. Fractional and out of range lines are allowed.
func (s *Stave) YForLine(n float64) float64 {
	return s.y + (n+s.opts.spaceAbove)*s.opts.spacing
}

// TopLineY returns the y of the first line.
func (s *Stave) TopLineY() float64 { return s.YForLine(0) }

// BottomLineY returns the y of the last line.
func (s *Stave) BottomLineY() float64 { return s.YForLine(float64(s.opts.numLines - 1)) }

// Modifiers returns all attached modifiers in the order they were added.
func (s *Stave) Modifiers() []Modifier {
	out := make([]Modifier, len(s.modifiers))
	copy(out, s.modifiers)
	return out
}

// ModifiersByCategory returns the attached modifiers of one category.
func (s *Stave) ModifiersByCategory(category string) []Modifier {
	var out []Modifier
	for _, m := range s.modifiers {
		if m.Category() == category {
			out = append(out, m)
		}
	}
	return out
}

// Clef returns the type of the last clef added, treble when there is none.
func (s *Stave) Clef() ClefType {
	clef := ClefTreble
	for _, m := range s.modifiers {
		if c, ok := m.(*Clef); ok {
			clef = c.Type()
		}
	}
	return clef
}

// Format assigns x positions to every modifier. Begin modifiers are laid
// out left to right from x; end modifiers right to left from x+width.
func (s *Stave) Format() {
	x := s.x
	for _, m := range s.modifiers {
		if m.Position() != PositionBegin {
			continue
		}
		x += m.Padding()
		m.setX(x)
		x += m.Width()
	}
	s.startX = x + defaultModifierPadding

	end := s.x + s.width
	for i := len(s.modifiers) - 1; i >= 0; i-- {
		m := s.modifiers[i]
		if m.Position() != PositionEnd {
			continue
		}
		end -= m.Width()
		m.setX(end)
		end -= m.Padding()
	}
	s.endX = end
	s.formatted = true
}

// NoteStartX returns where notes may begin, after the begin modifiers.
func (s *Stave) NoteStartX() float64 {
	if !s.formatted {
		s.Format()
	}
	return s.startX
}

// NoteEndX returns where notes must end, before the end modifiers.
func (s *Stave) NoteEndX() float64 {
	if !s.formatted {
		s.Format()
	}
	return s.endX
}

// Draw paints the stave lines and then every modifier into the bound
// context.
func (s *Stave) Draw() error {
	if s.err != nil {
		return s.err
	}
	if s.ctx == nil {
		return ErrNoContext
	}
	if !s.formatted {
		s.Format()
	}
	ctx := s.ctx

	ctx.Save()
	ctx.SetFillStyle(s.opts.lineColor)
	for i := 0; i < s.opts.numLines; i++ {
		ctx.FillRect(s.x, s.YForLine(float64(i)), s.width, s.opts.lineThickness)
	}
	ctx.Restore()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("notation: draw stave lines: %w", err)
	}

	for _, m := range s.modifiers {
		if err := m.draw(ctx); err != nil {
			return fmt.Errorf("notation: draw %s: %w", m.Category(), err)
		}
	}

	Logger().Debug("notation: stave drawn",
		"x", s.x, "y", s.y, "width", s.width, "modifiers", len(s.modifiers), "backend", ctx.Backend())
	return nil
}
