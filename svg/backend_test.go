package svg

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("svg") {
		t.Fatal("svg backend not registered")
	}
	b, err := recording.NewBackend("svg")
	if err != nil {
		t.Fatalf("failed to create svg backend: %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("backend is %T, want *svg.Backend", b)
	}
}

func TestBackendLifecycle(t *testing.T) {
	b := NewBackend()
	if _, err := b.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("WriteTo before Begin: err = %v, want ErrNotStarted", err)
	}
	if err := b.Begin(0, 10); err == nil {
		t.Error("Begin(0, 10) should fail")
	}
	if err := b.Begin(520, 160); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if b.Width() != 520 || b.Height() != 160 {
		t.Errorf("size = %dx%d, want 520x160", b.Width(), b.Height())
	}
	if err := b.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	out := string(b.Bytes())
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="520" height="160" viewBox="0 0 520 160">`) {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("document not closed: %q", out)
	}
}

func TestPathData(t *testing.T) {
	p := gg.NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3.5, 4)
	p.QuadraticTo(5, 6, 7, 8)
	p.CubicTo(1, 1, 2, 2, 3.1234, 0)
	p.Close()

	got := PathData(p)
	want := "M1 2 L3.5 4 Q5 6 7 8 C1 1 2 2 3.123 0 Z"
	if got != want {
		t.Errorf("PathData = %q, want %q", got, want)
	}
}

func TestFillAndStroke(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(100, 100); err != nil {
		t.Fatal(err)
	}
	p := gg.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()

	b.FillPath(p, recording.NewSolidBrush(gg.RGBA{R: 1, A: 0.5}), recording.FillRuleEvenOdd)
	b.StrokePath(p, recording.NewSolidBrush(gg.Black), recording.Stroke{
		Width:       2,
		Cap:         recording.LineCapRound,
		Join:        recording.LineJoinBevel,
		DashPattern: []float64{4, 2},
	})
	b.FillRect(recording.NewRect(10, 20, 30, 1), recording.NewSolidBrush(gg.Hex("#999999")))

	out := string(b.Bytes())
	for _, want := range []string{
		`fill="#ff0000" fill-opacity="0.5" fill-rule="evenodd"`,
		`fill="none" stroke="#000000" stroke-width="2" stroke-linecap="round" stroke-linejoin="bevel" stroke-dasharray="4 2"`,
		`<rect x="10" y="20" width="30" height="1" fill="#999999"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestEmptyPathIsSkipped(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	b.FillPath(gg.NewPath(), recording.NewSolidBrush(gg.Black), recording.FillRuleNonZero)
	b.FillPath(nil, recording.NewSolidBrush(gg.Black), recording.FillRuleNonZero)
	if strings.Contains(string(b.Bytes()), "<path") {
		t.Error("empty paths should not be emitted")
	}
}

func TestClipAndTransformStack(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(50, 50); err != nil {
		t.Fatal(err)
	}
	clip := gg.NewPath()
	clip.Rectangle(0, 0, 20, 20)

	b.Save()
	b.SetTransform(recording.Translate(5, 6))
	b.SetClip(clip, recording.FillRuleNonZero)
	b.FillRect(recording.NewRect(0, 0, 5, 5), recording.NewSolidBrush(gg.Black))
	b.Restore()
	b.FillRect(recording.NewRect(0, 0, 5, 5), recording.NewSolidBrush(gg.Black))

	out := string(b.Bytes())
	if !strings.Contains(out, `<clipPath id="clip1">`) {
		t.Errorf("missing clipPath:\n%s", out)
	}
	if strings.Count(out, `clip-path="url(#clip1)"`) != 1 {
		t.Errorf("clip should apply to exactly one element:\n%s", out)
	}

	p := gg.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	b.SetTransform(recording.Translate(5, 6))
	b.StrokePath(p, recording.NewSolidBrush(gg.Black), recording.DefaultStroke())
	if !strings.Contains(string(b.Bytes()), `transform="matrix(1 0 0 1 5 6)"`) {
		t.Errorf("missing transform:\n%s", b.Bytes())
	}
}

func TestDrawTextEscapes(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(100, 40); err != nil {
		t.Fatal(err)
	}
	b.SetFont("Times & Co", 28.5)
	b.DrawText("4 < 5", 10, 20, nil, recording.NewSolidBrush(gg.Black))

	out := string(b.Bytes())
	want := `<text x="10" y="20" font-family="Times &amp; Co" font-size="28.5" fill="#000000">4 &lt; 5</text>`
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q\n%s", want, out)
	}
}

func TestDrawImage(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	b.DrawImage(img, recording.NewRect(0, 0, 2, 2), recording.NewRect(1, 1, 4, 4), recording.DefaultImageOptions())

	if !strings.Contains(string(b.Bytes()), `href="data:image/png;base64,`) {
		t.Errorf("image not embedded:\n%s", b.Bytes())
	}
}

func TestPlayKeepsFont(t *testing.T) {
	rec := recording.NewRecorder(200, 100)
	rec.SetFillStyle(recording.NewSolidBrush(gg.Black))
	rec.SetFontFamily("serif")
	rec.SetFontSize(28)
	rec.DrawString("4", 50, 60)
	rec.SetStrokeStyle(recording.NewSolidBrush(gg.Black))
	rec.StrokeRectangle(1, 2, 3, 4)

	b := NewBackend()
	if err := b.Play(rec.FinishRecording()); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	out := string(b.Bytes())
	if !strings.Contains(out, `font-family="serif" font-size="28"`) {
		t.Errorf("font lost during playback:\n%s", out)
	}
	if !strings.Contains(out, `<rect x="1" y="2" width="3" height="4" fill="none" stroke="#000000"`) {
		t.Errorf("stroked rectangle missing:\n%s", out)
	}
}

func TestSaveToFile(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := b.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("file does not start with <svg: %q", data)
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.0001, "0"},
		{1.5, "1.5"},
		{2.0, "2"},
		{1.23456, "1.235"},
		{-3.25, "-3.25"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
