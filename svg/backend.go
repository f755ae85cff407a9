// Package svg provides an SVG backend for gg's recording system.
//
// The backend turns recorded fills, strokes, rectangles, images and text
// into SVG elements. Importing the package registers it under the name
// "svg":
//
//	import _ "github.com/gogpu/gg-notation/svg"
//
//	b, _ := recording.NewBackend("svg")
//	_ = rec.FinishRecording().Playback(b)
//	_ = b.(recording.FileBackend).SaveToFile("out.svg")
//
// Recording.Playback does not forward font information to backends; use
// Backend.Play to keep the recorded font family and size on text.
//
// # Limitations
//
// Only solid brushes are translated; gradient and pattern brushes are
// painted black.
package svg

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// ErrNotStarted is returned when output is requested before Begin.
var ErrNotStarted = errors.New("svg: backend not started")

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Default text settings for DrawText calls that carry no font.
const (
	defaultFontFamily = "sans-serif"
	defaultFontSize   = 10
)

// Backend serializes recording commands as an SVG document.
type Backend struct {
	width, height int
	started       bool

	body bytes.Buffer

	transform  recording.Matrix
	stack      []state
	clipID     string
	clipSerial int

	fontFamily string
	fontSize   float64
}

type state struct {
	transform recording.Matrix
	clipID    string
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend. Begin must be called before use.
func NewBackend() *Backend {
	return &Backend{transform: recording.Identity()}
}

// Begin resets the backend for a document of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.body.Reset()
	b.transform = recording.Identity()
	b.stack = b.stack[:0]
	b.clipID = ""
	b.clipSerial = 0
	b.fontFamily = defaultFontFamily
	b.fontSize = defaultFontSize
	b.started = true
	return nil
}

// Width returns the document width set by Begin.
func (b *Backend) Width() int { return b.width }

// Height returns the document height set by Begin.
func (b *Backend) Height() int { return b.height }

// End finalizes the document.
func (b *Backend) End() error {
	if !b.started {
		return ErrNotStarted
	}
	return nil
}

func (b *Backend) Save() {
	b.stack = append(b.stack, state{transform: b.transform, clipID: b.clipID})
}

func (b *Backend) Restore() {
	if len(b.stack) == 0 {
		return
	}
	s := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.transform = s.transform
	b.clipID = s.clipID
}

func (b *Backend) SetTransform(m recording.Matrix) {
	b.transform = m
}

// SetClip emits a clipPath and applies it to subsequent elements.
func (b *Backend) SetClip(path *gg.Path, rule recording.FillRule) {
	if path == nil {
		return
	}
	b.clipSerial++
	id := "clip" + strconv.Itoa(b.clipSerial)
	fmt.Fprintf(&b.body, `<clipPath id="%s"><path d="%s"%s/></clipPath>`+"\n",
		id, PathData(path), clipRuleAttr(rule))
	b.clipID = id
}

func (b *Backend) ClearClip() {
	b.clipID = ""
}

func (b *Backend) FillPath(path *gg.Path, brush recording.Brush, rule recording.FillRule) {
	if path == nil || len(path.Elements()) == 0 {
		return
	}
	fmt.Fprintf(&b.body, `<path d="%s"%s%s%s/>`+"\n",
		PathData(path), paintAttrs("fill", brush), fillRuleAttr(rule), b.commonAttrs())
}

func (b *Backend) StrokePath(path *gg.Path, brush recording.Brush, stroke recording.Stroke) {
	if path == nil || len(path.Elements()) == 0 {
		return
	}
	fmt.Fprintf(&b.body, `<path d="%s" fill="none"%s%s%s/>`+"\n",
		PathData(path), paintAttrs("stroke", brush), strokeAttrs(stroke), b.commonAttrs())
}

func (b *Backend) FillRect(rect recording.Rect, brush recording.Brush) {
	fmt.Fprintf(&b.body, `<rect x="%s" y="%s" width="%s" height="%s"%s%s/>`+"\n",
		num(rect.MinX), num(rect.MinY), num(rect.Width()), num(rect.Height()),
		paintAttrs("fill", brush), b.clipAttr())
}

// StrokeRect outlines a rectangle. Recording.Playback never calls it;
// Play does.
func (b *Backend) StrokeRect(rect recording.Rect, brush recording.Brush, stroke recording.Stroke) {
	fmt.Fprintf(&b.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="none"%s%s%s/>`+"\n",
		num(rect.MinX), num(rect.MinY), num(rect.Width()), num(rect.Height()),
		paintAttrs("stroke", brush), strokeAttrs(stroke), b.clipAttr())
}

// DrawImage embeds img as a PNG data URI scaled into dst.
func (b *Backend) DrawImage(img image.Image, _, dst recording.Rect, opts recording.ImageOptions) {
	if img == nil {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return
	}
	opacity := ""
	if opts.Alpha > 0 && opts.Alpha < 1 {
		opacity = ` opacity="` + num(opts.Alpha) + `"`
	}
	fmt.Fprintf(&b.body, `<image x="%s" y="%s" width="%s" height="%s"%s%s href="data:image/png;base64,%s"/>`+"\n",
		num(dst.MinX), num(dst.MinY), num(dst.Width()), num(dst.Height()),
		opacity, b.commonAttrs(), base64.StdEncoding.EncodeToString(buf.Bytes()))
}

// DrawText emits a text element with its baseline at y. When face is nil
// the family and size last set by SetFont (or Play) are used.
func (b *Backend) DrawText(s string, x, y float64, face text.Face, brush recording.Brush) {
	size := b.fontSize
	if face != nil {
		size = face.Size()
	}
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(s))
	fmt.Fprintf(&b.body, `<text x="%s" y="%s" font-family="%s" font-size="%s"%s%s>%s</text>`+"\n",
		num(x), num(y), xmlAttr(b.fontFamily), num(size), paintAttrs("fill", brush), b.commonAttrs(), escaped.String())
}

// SetFont sets the family and size used by DrawText calls without a face.
func (b *Backend) SetFont(family string, size float64) {
	if family != "" {
		b.fontFamily = family
	}
	if size > 0 {
		b.fontSize = size
	}
}

// Play replays r into the backend like Recording.Playback, but keeps the
// font of text commands and also handles stroked rectangles.
func (b *Backend) Play(r *recording.Recording) error {
	if err := b.Begin(r.Width(), r.Height()); err != nil {
		return err
	}
	res := r.Resources()
	for _, cmd := range r.Commands() {
		switch c := cmd.(type) {
		case recording.SaveCommand:
			b.Save()
		case recording.RestoreCommand:
			b.Restore()
		case recording.SetTransformCommand:
			b.SetTransform(c.Matrix)
		case recording.SetClipCommand:
			b.SetClip(res.GetPath(c.Path), c.Rule)
		case recording.ClearClipCommand:
			b.ClearClip()
		case recording.FillPathCommand:
			b.FillPath(res.GetPath(c.Path), res.GetBrush(c.Brush), c.Rule)
		case recording.StrokePathCommand:
			b.StrokePath(res.GetPath(c.Path), res.GetBrush(c.Brush), c.Stroke)
		case recording.FillRectCommand:
			b.FillRect(c.Rect, res.GetBrush(c.Brush))
		case recording.StrokeRectCommand:
			b.StrokeRect(c.Rect, res.GetBrush(c.Brush), c.Stroke)
		case recording.DrawImageCommand:
			b.DrawImage(res.GetImage(c.Image), c.SrcRect, c.DstRect, c.Options)
		case recording.DrawTextCommand:
			b.SetFont(c.FontFamily, c.FontSize)
			b.DrawText(c.Text, c.X, c.Y, nil, res.GetBrush(c.Brush))
		}
	}
	return b.End()
}

// WriteTo writes the complete SVG document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.started {
		return 0, ErrNotStarted
	}
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		b.width, b.height, b.width, b.height)
	doc.Write(b.body.Bytes())
	doc.WriteString("</svg>\n")
	return doc.WriteTo(w)
}

// SaveToFile writes the SVG document to path.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg: create %s: %w", path, err)
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Bytes returns the SVG document.
func (b *Backend) Bytes() []byte {
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return nil
	}
	return buf.Bytes()
}

func (b *Backend) commonAttrs() string {
	return b.transformAttr() + b.clipAttr()
}

func (b *Backend) transformAttr() string {
	m := b.transform
	if m.IsIdentity() {
		return ""
	}
	// SVG matrix(a b c d e f) maps to x' = a*x + c*y + e, y' = b*x + d*y + f.
	return fmt.Sprintf(` transform="matrix(%s %s %s %s %s %s)"`,
		num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F))
}

func (b *Backend) clipAttr() string {
	if b.clipID == "" {
		return ""
	}
	return ` clip-path="url(#` + b.clipID + `)"`
}

// PathData converts a gg path into SVG path data.
func PathData(p *gg.Path) string {
	var sb strings.Builder
	for _, el := range p.Elements() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch e := el.(type) {
		case gg.MoveTo:
			sb.WriteString("M" + num(e.Point.X) + " " + num(e.Point.Y))
		case gg.LineTo:
			sb.WriteString("L" + num(e.Point.X) + " " + num(e.Point.Y))
		case gg.QuadTo:
			sb.WriteString("Q" + num(e.Control.X) + " " + num(e.Control.Y) + " " +
				num(e.Point.X) + " " + num(e.Point.Y))
		case gg.CubicTo:
			sb.WriteString("C" + num(e.Control1.X) + " " + num(e.Control1.Y) + " " +
				num(e.Control2.X) + " " + num(e.Control2.Y) + " " +
				num(e.Point.X) + " " + num(e.Point.Y))
		case gg.Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func paintAttrs(attr string, brush recording.Brush) string {
	c := gg.Black
	if sb, ok := brush.(recording.SolidBrush); ok {
		c = sb.Color
	}
	out := fmt.Sprintf(` %s="%s"`, attr, colorString(c))
	if c.A < 1 {
		out += fmt.Sprintf(` %s-opacity="%s"`, attr, num(c.A))
	}
	return out
}

func colorString(c gg.RGBA) string {
	to8 := func(v float64) int {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		default:
			return int(v*255 + 0.5)
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func strokeAttrs(s recording.Stroke) string {
	var sb strings.Builder
	sb.WriteString(` stroke-width="` + num(s.Width) + `"`)
	switch s.Cap {
	case recording.LineCapRound:
		sb.WriteString(` stroke-linecap="round"`)
	case recording.LineCapSquare:
		sb.WriteString(` stroke-linecap="square"`)
	}
	switch s.Join {
	case recording.LineJoinRound:
		sb.WriteString(` stroke-linejoin="round"`)
	case recording.LineJoinBevel:
		sb.WriteString(` stroke-linejoin="bevel"`)
	default:
		if s.MiterLimit > 0 && s.MiterLimit != 4 {
			sb.WriteString(` stroke-miterlimit="` + num(s.MiterLimit) + `"`)
		}
	}
	if len(s.DashPattern) > 0 {
		parts := make([]string, len(s.DashPattern))
		for i, d := range s.DashPattern {
			parts[i] = num(d)
		}
		sb.WriteString(` stroke-dasharray="` + strings.Join(parts, " ") + `"`)
		if s.DashOffset != 0 {
			sb.WriteString(` stroke-dashoffset="` + num(s.DashOffset) + `"`)
		}
	}
	return sb.String()
}

func fillRuleAttr(rule recording.FillRule) string {
	if rule == recording.FillRuleEvenOdd {
		return ` fill-rule="evenodd"`
	}
	return ""
}

func clipRuleAttr(rule recording.FillRule) string {
	if rule == recording.FillRuleEvenOdd {
		return ` clip-rule="evenodd"`
	}
	return ""
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

func xmlAttr(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
