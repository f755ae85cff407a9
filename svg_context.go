package notation

import (
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"

	"github.com/gogpu/gg-notation/svg"
)

// svgContext logs drawing operations and replays them into a fresh gg
// recording.Recorder whenever a Recording is requested, so each Recorder
// is finished exactly once.
type svgContext struct {
	baseContext
	width, height int
	ops           []func(*recording.Recorder)
}

var (
	_ RenderContext  = (*svgContext)(nil)
	_ VectorDocument = (*svgContext)(nil)
)

func newSVGContext(width, height int) *svgContext {
	return &svgContext{
		baseContext: newBaseContext(BackendSVG, width, height),
		width:       width,
		height:      height,
	}
}

// record appends op to the log. Everything op captures must be a copy.
func (c *svgContext) record(op func(*recording.Recorder)) {
	c.ops = append(c.ops, op)
}

// Recording returns the commands recorded so far. Later drawing does not
// change a returned Recording.
func (c *svgContext) Recording() *recording.Recording {
	rec := recording.NewRecorder(c.width, c.height)
	for _, op := range c.ops {
		op(rec)
	}
	return rec.FinishRecording()
}

// Empty reports whether nothing has been drawn yet.
func (c *svgContext) Empty() bool { return len(c.ops) == 0 }

// WriteTo writes the recorded drawing as an SVG document.
func (c *svgContext) WriteTo(w io.Writer) (int64, error) {
	b := svg.NewBackend()
	if err := b.Play(c.Recording()); err != nil {
		return 0, err
	}
	return b.WriteTo(w)
}

func (c *svgContext) SetFont(family string, size float64, style string) RenderContext {
	c.setFont(family, size, style)
	return c
}

func (c *svgContext) SetBackgroundFillStyle(style string) RenderContext {
	c.setBackground(style)
	return c
}

func (c *svgContext) SetFillStyle(style string) RenderContext {
	c.setFill(style)
	return c
}

func (c *svgContext) SetStrokeStyle(style string) RenderContext {
	c.setStroke(style)
	return c
}

func (c *svgContext) SetLineWidth(width float64) RenderContext {
	c.setLineWidth(width)
	return c
}

func (c *svgContext) Save() RenderContext {
	c.save()
	c.record((*recording.Recorder).Save)
	return c
}

func (c *svgContext) Restore() RenderContext {
	if c.restore() {
		c.record((*recording.Recorder).Restore)
	}
	return c
}

func (c *svgContext) BeginPath() RenderContext {
	c.path.Clear()
	return c
}

func (c *svgContext) MoveTo(x, y float64) RenderContext {
	c.path.MoveTo(x, y)
	return c
}

func (c *svgContext) LineTo(x, y float64) RenderContext {
	c.path.LineTo(x, y)
	return c
}

func (c *svgContext) QuadraticCurveTo(cx, cy, x, y float64) RenderContext {
	c.path.QuadraticTo(cx, cy, x, y)
	return c
}

func (c *svgContext) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) RenderContext {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return c
}

func (c *svgContext) Arc(x, y, r, angle1, angle2 float64) RenderContext {
	c.arc(x, y, r, angle1, angle2)
	return c
}

func (c *svgContext) ClosePath() RenderContext {
	c.path.Close()
	return c
}

func (c *svgContext) Fill() RenderContext {
	if c.failed() || !c.path.HasCurrentPoint() {
		return c
	}
	path, fill := c.path.Clone(), c.state.fill
	c.record(func(r *recording.Recorder) {
		r.ClearPath()
		replayPath(path, r)
		r.SetFillStyle(recording.NewSolidBrush(fill))
		r.Fill()
	})
	return c
}

func (c *svgContext) Stroke() RenderContext {
	if c.failed() || !c.path.HasCurrentPoint() {
		return c
	}
	path, stroke, width := c.path.Clone(), c.state.stroke, c.state.lineWidth
	c.record(func(r *recording.Recorder) {
		r.ClearPath()
		replayPath(path, r)
		r.SetStrokeStyle(recording.NewSolidBrush(stroke))
		r.SetLineWidth(width)
		r.Stroke()
	})
	return c
}

func (c *svgContext) FillRect(x, y, w, h float64) RenderContext {
	if c.failed() {
		return c
	}
	c.fillRect(c.state.fill, x, y, w, h)
	return c
}

func (c *svgContext) ClearRect(x, y, w, h float64) RenderContext {
	if c.failed() {
		return c
	}
	c.fillRect(c.backgroundColor, x, y, w, h)
	return c
}

func (c *svgContext) fillRect(col gg.RGBA, x, y, w, h float64) {
	c.record(func(r *recording.Recorder) {
		r.SetFillStyle(recording.NewSolidBrush(col))
		r.FillRectangle(x, y, w, h)
	})
}

func (c *svgContext) FillText(s string, x, y float64) RenderContext {
	if c.failed() {
		return c
	}
	face := c.currentFace()
	if face == nil {
		return c
	}
	font, fill := c.state.font, c.state.fill
	c.record(func(r *recording.Recorder) {
		r.SetFont(face)
		r.SetFontFamily(font.Family)
		r.SetFontSize(font.Size)
		r.SetFillStyle(recording.NewSolidBrush(fill))
		r.DrawString(s, x, y)
	})
	return c
}

func (c *svgContext) MeasureText(s string) float64 {
	face := c.currentFace()
	if face == nil {
		return 0
	}
	return face.Advance(s)
}
