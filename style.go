package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS colour string as accepted by canvas fillStyle:
// "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)",
// "rgba(r, g, b, a)", the CSS named colours, "transparent" and "none".
func ParseColor(style string) (gg.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(style))
	switch {
	case s == "":
		return gg.RGBA{}, fmt.Errorf("%w: empty colour", ErrInvalidStyle)
	case s == "none" || s == "transparent":
		return gg.Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHexColor(style, s[1:])
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunctionalColor(style, s)
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidStyle, style)
}

func parseHexColor(style, digits string) (gg.RGBA, error) {
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q has %d hex digits", ErrInvalidStyle, style, len(digits))
	}
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidStyle, style)
	}
	return gg.Hex(digits), nil
}

func parseFunctionalColor(style, s string) (gg.RGBA, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidStyle, style)
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidStyle, style)
	}

	var ch [4]float64
	ch[3] = 1
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidStyle, style)
		}
		if i < 3 {
			v /= 255
		}
		ch[i] = clampUnit(v)
	}
	return gg.RGBA2(ch[0], ch[1], ch[2], ch[3]), nil
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
