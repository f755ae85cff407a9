package notation

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
	}{
		{"#000", gg.RGBA{A: 1}},
		{"#eed", gg.RGBA{R: 238.0 / 255, G: 238.0 / 255, B: 221.0 / 255, A: 1}},
		{"#999999", gg.RGBA{R: 0.6, G: 0.6, B: 0.6, A: 1}},
		{"#ff000080", gg.RGBA{R: 1, A: 128.0 / 255}},
		{"#F00F", gg.RGBA{R: 1, A: 1}},
		{"rgb(255, 0, 0)", gg.RGBA{R: 1, A: 1}},
		{"rgba(0,0,255,0.5)", gg.RGBA{B: 1, A: 0.5}},
		{"rgb(300, -4, 0)", gg.RGBA{R: 1, A: 1}},
		{"red", gg.RGBA{R: 1, A: 1}},
		{"  White ", gg.RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"transparent", gg.Transparent},
		{"none", gg.Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) ||
				!near(got.B, tt.want.B) || !near(got.A, tt.want.A) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#ggg", "rgb(1,2)", "rgb(1,2,3", "rgb(a,b,c)", "no-such-colour"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidStyle) {
			t.Errorf("ParseColor(%q) err = %v, want ErrInvalidStyle", in, err)
		}
	}
}
