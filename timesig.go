package notation

import (
	"math"
	"strings"

	"github.com/gogpu/gg-notation/internal/glyph"
)

// TimeSignatureKind distinguishes numeric signatures from the symbolic
// common and cut time signs.
type TimeSignatureKind uint8

const (
	TimeNumeric TimeSignatureKind = iota
	TimeCommon
	TimeCut
)

// digitFontScale sizes the numeral font so a digit spans two staff spaces.
const digitFontScale = 2.85

// TimeSignature is the time signature modifier at the start of a stave.
type TimeSignature struct {
	modifierBase
	spec   string
	kind   TimeSignatureKind
	top    string
	bottom string
}

var _ Modifier = (*TimeSignature)(nil)

// ParseTimeSignature parses "N/D", "C" or "C|". The numerator may use '+'
// for additive meters ("3+2/8"). Every number must be positive.
func ParseTimeSignature(spec string) (*TimeSignature, error) {
	ts := &TimeSignature{
		modifierBase: modifierBase{position: PositionBegin, padding: defaultModifierPadding},
		spec:         spec,
	}

	switch s := strings.TrimSpace(spec); s {
	case "C":
		ts.kind = TimeCommon
		return ts, nil
	case "C|":
		ts.kind = TimeCut
		return ts, nil
	}

	top, bottom, ok := strings.Cut(strings.TrimSpace(spec), "/")
	if !ok {
		return nil, &TimeSignatureError{Spec: spec, Reason: `expected "N/D", "C" or "C|"`}
	}
	if !numeral(top, true) {
		return nil, &TimeSignatureError{Spec: spec, Reason: "numerator must be a positive number or a sum of them"}
	}
	if !numeral(bottom, false) {
		return nil, &TimeSignatureError{Spec: spec, Reason: "denominator must be a positive number"}
	}
	ts.kind = TimeNumeric
	ts.top, ts.bottom = top, bottom
	return ts, nil
}

// numeral reports whether s is a positive number, or with allowPlus a sum
// of positive numbers such as "3+2".
func numeral(s string, allowPlus bool) bool {
	groups := []string{s}
	if allowPlus {
		groups = strings.Split(s, "+")
	}
	for _, g := range groups {
		if g == "" {
			return false
		}
		positive := false
		for _, r := range g {
			if r < '0' || r > '9' {
				return false
			}
			if r != '0' {
				positive = true
			}
		}
		if !positive {
			return false
		}
	}
	return true
}

func (t *TimeSignature) Category() string { return CategoryTimeSignatures }

// Spec returns the string the signature was parsed from.
func (t *TimeSignature) Spec() string { return t.spec }

// Kind returns whether the signature is numeric or symbolic.
func (t *TimeSignature) Kind() TimeSignatureKind { return t.kind }

// Numerator and Denominator return the numeric parts; both are empty for
// the symbolic signatures.
func (t *TimeSignature) Numerator() string   { return t.top }
func (t *TimeSignature) Denominator() string { return t.bottom }

func (t *TimeSignature) digitFont() Font {
	return Font{Family: "serif", Size: t.spacing() * digitFontScale, Style: "bold"}
}

func (t *TimeSignature) Width() float64 {
	switch t.kind {
	case TimeCommon:
		return glyph.CommonTime.Width * t.spacing()
	case TimeCut:
		return glyph.CutTime.Width * t.spacing()
	}
	face, err := t.digitFont().Face()
	if err != nil {
		// Approximate a numeral as 1.8 staff spaces wide.
		n := math.Max(float64(len(t.top)), float64(len(t.bottom)))
		return n * 1.8 * t.spacing()
	}
	return math.Max(face.Advance(t.top), face.Advance(t.bottom))
}

func (t *TimeSignature) draw(ctx RenderContext) error {
	if t.stave == nil {
		return nil
	}
	top := t.stave.TopLineY()
	sp := t.spacing()

	switch t.kind {
	case TimeCommon:
		drawGlyph(ctx, glyph.CommonTime, t.x, top, sp)
		return ctx.Err()
	case TimeCut:
		drawGlyph(ctx, glyph.CutTime, t.x, top, sp)
		return ctx.Err()
	}

	f := t.digitFont()
	w := t.Width()

	ctx.Save()
	ctx.SetFont(f.Family, f.Size, f.Style)
	topW, bottomW := ctx.MeasureText(t.top), ctx.MeasureText(t.bottom)
	// Numerator sits on the middle line, denominator on the bottom line.
	ctx.FillText(t.top, t.x+(w-topW)/2, t.stave.YForLine(2))
	ctx.FillText(t.bottom, t.x+(w-bottomW)/2, t.stave.YForLine(4))
	ctx.Restore()

	Logger().Debug("notation: draw time signature", "spec", t.spec, "x", t.x, "width", w)
	return ctx.Err()
}
