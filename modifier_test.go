package notation

import (
	"errors"
	"testing"
)

func TestParseClef(t *testing.T) {
	tests := []struct {
		name string
		want ClefType
		line int
	}{
		{"treble", ClefTreble, 3},
		{"Bass", ClefBass, 1},
		{" alto ", ClefAlto, 2},
		{"tenor", ClefTenor, 1},
		{"percussion", ClefPercussion, -1},
	}
	for _, tt := range tests {
		c, err := NewClef(tt.name)
		if err != nil {
			t.Fatalf("NewClef(%q): %v", tt.name, err)
		}
		if c.Type() != tt.want || c.Line() != tt.line {
			t.Errorf("NewClef(%q) = %v line %d, want %v line %d", tt.name, c.Type(), c.Line(), tt.want, tt.line)
		}
		if c.Category() != CategoryClefs || c.Position() != PositionBegin {
			t.Errorf("clef category/position = %s/%s", c.Category(), c.Position())
		}
		if c.Width() <= 0 {
			t.Errorf("clef %v has no width", c.Type())
		}
	}

	if _, err := ParseClef("soprano"); !errors.Is(err, ErrUnknownClef) {
		t.Errorf("ParseClef(soprano) err = %v, want ErrUnknownClef", err)
	}
}

func TestClefWidthFollowsSpacing(t *testing.T) {
	c, err := NewClef("treble")
	if err != nil {
		t.Fatal(err)
	}
	unattached := c.Width()
	NewStave(0, 0, 200, WithLineSpacing(20)).AddModifier(c)
	if got := c.Width(); got != 2*unattached {
		t.Errorf("width at spacing 20 = %v, want %v", got, 2*unattached)
	}
}

func TestParseTimeSignature(t *testing.T) {
	tests := []struct {
		spec   string
		kind   TimeSignatureKind
		top    string
		bottom string
	}{
		{"4/4", TimeNumeric, "4", "4"},
		{"12/8", TimeNumeric, "12", "8"},
		{"3+2/8", TimeNumeric, "3+2", "8"},
		{" 6/8 ", TimeNumeric, "6", "8"},
		{"C", TimeCommon, "", ""},
		{"C|", TimeCut, "", ""},
	}
	for _, tt := range tests {
		ts, err := ParseTimeSignature(tt.spec)
		if err != nil {
			t.Fatalf("ParseTimeSignature(%q): %v", tt.spec, err)
		}
		if ts.Kind() != tt.kind || ts.Numerator() != tt.top || ts.Denominator() != tt.bottom {
			t.Errorf("ParseTimeSignature(%q) = %v %q/%q", tt.spec, ts.Kind(), ts.Numerator(), ts.Denominator())
		}
		if ts.Spec() != tt.spec {
			t.Errorf("Spec() = %q, want %q", ts.Spec(), tt.spec)
		}
		if ts.Width() <= 0 {
			t.Errorf("%q has no width", tt.spec)
		}
	}
}

func TestParseTimeSignatureInvalid(t *testing.T) {
	for _, spec := range []string{"", "4", "4/", "/4", "a/4", "4/b", "+3/4", "3+/4", "4/2+2", "c", "4/0", "0/4", "00/8", "3++2/8", "3+0/8"} {
		_, err := ParseTimeSignature(spec)
		if !errors.Is(err, ErrInvalidTimeSignature) {
			t.Errorf("ParseTimeSignature(%q) err = %v, want ErrInvalidTimeSignature", spec, err)
			continue
		}
		var tse *TimeSignatureError
		if !errors.As(err, &tse) || tse.Spec != spec {
			t.Errorf("ParseTimeSignature(%q) err = %#v, want *TimeSignatureError", spec, err)
		}
	}
}

func TestTimeSignatureWidthUsesWidestNumeral(t *testing.T) {
	narrow, _ := ParseTimeSignature("4/4")
	wide, _ := ParseTimeSignature("12/8")
	if wide.Width() <= narrow.Width() {
		t.Errorf("12/8 width %v should exceed 4/4 width %v", wide.Width(), narrow.Width())
	}
}

func TestBarlineWidths(t *testing.T) {
	tests := []struct {
		kind  BarlineType
		width float64
		name  string
	}{
		{BarlineSingle, 1, "single"},
		{BarlineDouble, 3, "double"},
		{BarlineEnd, 5, "end"},
		{BarlineNone, 0, "none"},
	}
	for _, tt := range tests {
		b := NewBarline(tt.kind, PositionEnd)
		if b.Width() != tt.width {
			t.Errorf("%v width = %v, want %v", tt.kind, b.Width(), tt.width)
		}
		if tt.kind.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.kind.String(), tt.name)
		}
		if b.Category() != CategoryBarlines || b.Position() != PositionEnd {
			t.Errorf("category/position = %s/%s", b.Category(), b.Position())
		}
	}
}

func TestSymbolicTimeSignaturesDraw(t *testing.T) {
	for _, spec := range []string{"C", "C|"} {
		surf := newTestSurface(200, 160)
		r, err := NewRenderer(surf, BackendCanvas)
		if err != nil {
			t.Fatal(err)
		}
		s := NewStave(0, 40, 200, WithBarlines(false, false)).AddTimeSignature(spec)
		if err := s.SetContext(r.Context()).Draw(); err != nil {
			t.Fatalf("%s: Draw: %v", spec, err)
		}
		ts := s.ModifiersByCategory(CategoryTimeSignatures)[0]
		if !inkIn(surf, int(ts.X()), 60, int(ts.X()+ts.Width())+1, 140) {
			t.Errorf("%s drew nothing", spec)
		}
	}
}
