package notation

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg-notation/internal/glyph"
)

// ClefType names a clef, using the same names AddClef accepts.
type ClefType string

const (
	ClefTreble     ClefType = "treble"
	ClefBass       ClefType = "bass"
	ClefAlto       ClefType = "alto"
	ClefTenor      ClefType = "tenor"
	ClefPercussion ClefType = "percussion"
)

// clefSpec describes how a clef type is drawn.
type clefSpec struct {
	glyph glyph.Glyph
	// line is the stave line (0 = top) the clef is anchored to, or -1 for
	// unpitched clefs.
	line int
}

var clefSpecs = map[ClefType]clefSpec{
	ClefTreble:     {glyph: glyph.Treble, line: 3},
	ClefBass:       {glyph: glyph.Bass, line: 1},
	ClefAlto:       {glyph: glyph.Alto, line: 2},
	ClefTenor:      {glyph: glyph.Tenor, line: 1},
	ClefPercussion: {glyph: glyph.Percussion, line: -1},
}

// ParseClef validates a clef name.
func ParseClef(name string) (ClefType, error) {
	t := ClefType(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := clefSpecs[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownClef, name)
	}
	return t, nil
}

// Clef is the clef modifier at the start of a stave.
type Clef struct {
	modifierBase
	kind ClefType
	spec clefSpec
}

var _ Modifier = (*Clef)(nil)

// NewClef creates a clef modifier. It fails for unknown clef names.
func NewClef(name string) (*Clef, error) {
	t, err := ParseClef(name)
	if err != nil {
		return nil, err
	}
	return &Clef{
		modifierBase: modifierBase{position: PositionBegin, padding: defaultModifierPadding},
		kind:         t,
		spec:         clefSpecs[t],
	}, nil
}

func (c *Clef) Category() string { return CategoryClefs }

// Type returns the clef type.
func (c *Clef) Type() ClefType { return c.kind }

// Line returns the stave line the clef is anchored to (0 is the top line),
// or -1 for the percussion clef.
func (c *Clef) Line() int { return c.spec.line }

func (c *Clef) Width() float64 {
	return c.spec.glyph.Width * c.spacing()
}

func (c *Clef) draw(ctx RenderContext) error {
	if c.stave == nil {
		return nil
	}
	Logger().Debug("notation: draw clef", "type", c.kind, "x", c.x)
	drawGlyph(ctx, c.spec.glyph, c.x, c.stave.TopLineY(), c.spacing())
	return ctx.Err()
}
