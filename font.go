package notation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
)

// FontWeight is the weight component of a font style string.
type FontWeight uint8

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// FontSlant is the slant component of a font style string.
type FontSlant uint8

const (
	SlantNormal FontSlant = iota
	SlantItalic
)

// Font describes the font a context draws text with, mirroring the
// (family, size, style) triple passed to SetFont.
type Font struct {
	Family string
	Size   float64
	Style  string
}

// DefaultFont is the font a new context starts with.
var DefaultFont = Font{Family: "Arial", Size: 10, Style: ""}

// String renders the font as a CSS font shorthand, e.g. "bold 10px Arial".
func (f Font) String() string {
	var b strings.Builder
	if f.Style != "" {
		b.WriteString(f.Style)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%gpx %s", f.Size, f.Family)
	return b.String()
}

// Weight returns the weight named in the style string.
func (f Font) Weight() FontWeight {
	for _, w := range strings.Fields(strings.ToLower(f.Style)) {
		if w == "bold" || w == "bolder" {
			return WeightBold
		}
	}
	return WeightNormal
}

// Slant returns the slant named in the style string.
func (f Font) Slant() FontSlant {
	for _, w := range strings.Fields(strings.ToLower(f.Style)) {
		if w == "italic" || w == "oblique" {
			return SlantItalic
		}
	}
	return SlantNormal
}

type fontClass uint8

const (
	classProportional fontClass = iota
	classMonospace
)

// familyClasses maps CSS family names to the bundled Go font they resolve
// to. Families not listed fall back to the proportional Go font.
var familyClasses = map[string]fontClass{
	"arial":           classProportional,
	"helvetica":       classProportional,
	"helvetica neue":  classProportional,
	"sans-serif":      classProportional,
	"serif":           classProportional,
	"times":           classProportional,
	"times new roman": classProportional,
	"georgia":         classProportional,
	"verdana":         classProportional,
	"go":              classProportional,
	"monospace":       classMonospace,
	"courier":         classMonospace,
	"courier new":     classMonospace,
	"go mono":         classMonospace,
}

type fontKey struct {
	class  fontClass
	weight FontWeight
	slant  FontSlant
}

var fontData = map[fontKey][]byte{
	{classProportional, WeightNormal, SlantNormal}: goregular.TTF,
	{classProportional, WeightBold, SlantNormal}:   gobold.TTF,
	{classProportional, WeightNormal, SlantItalic}: goitalic.TTF,
	{classProportional, WeightBold, SlantItalic}:   gobolditalic.TTF,
	{classMonospace, WeightNormal, SlantNormal}:    gomono.TTF,
	{classMonospace, WeightBold, SlantNormal}:      gomonobold.TTF,
	{classMonospace, WeightNormal, SlantItalic}:    gomonoitalic.TTF,
	{classMonospace, WeightBold, SlantItalic}:      gomonobolditalic.TTF,
}

// fontCache holds parsed font sources. Parsing a TTF is far more expensive
// than creating a face, so each source is parsed once per process.
var fontCache = struct {
	mu      sync.Mutex
	sources map[fontKey]*text.FontSource
}{sources: make(map[fontKey]*text.FontSource)}

// ResolveFamily reports the family list entry that was matched and whether
// the family is known. The family may be a CSS list such as
// "Arial, sans-serif"; the first known entry wins.
func ResolveFamily(family string) (string, bool) {
	fold := cases.Fold()
	for _, name := range strings.Split(family, ",") {
		name = fold.String(strings.Trim(strings.TrimSpace(name), `"'`))
		if _, ok := familyClasses[name]; ok {
			return name, true
		}
	}
	return "", false
}

// Face returns a gg text face for f.
func (f Font) Face() (text.Face, error) {
	key := fontKey{class: classProportional, weight: f.Weight(), slant: f.Slant()}
	if name, ok := ResolveFamily(f.Family); ok {
		key.class = familyClasses[name]
	} else {
		Logger().Warn("notation: unknown font family, using Go", "family", f.Family)
	}

	src, err := fontSource(key)
	if err != nil {
		return nil, err
	}
	return src.Face(f.Size), nil
}

func fontSource(key fontKey) (*text.FontSource, error) {
	fontCache.mu.Lock()
	defer fontCache.mu.Unlock()

	if src, ok := fontCache.sources[key]; ok {
		return src, nil
	}
	src, err := text.NewFontSource(fontData[key])
	if err != nil {
		return nil, fmt.Errorf("notation: load font: %w", err)
	}
	fontCache.sources[key] = src
	return src, nil
}
