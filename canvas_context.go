package notation

import (
	"github.com/gogpu/gg"
)

// canvasContext rasterizes straight into a surface pixmap through a
// gg.Context. The context's own path is rebuilt from baseContext.path for
// every paint operation so rectangles and text never disturb it.
type canvasContext struct {
	baseContext
	dc *gg.Context
}

var _ RenderContext = (*canvasContext)(nil)

func newCanvasContext(pm *gg.Pixmap) *canvasContext {
	w, h := pm.Width(), pm.Height()
	return &canvasContext{
		baseContext: newBaseContext(BackendCanvas, w, h),
		dc:          gg.NewContext(w, h, gg.WithPixmap(pm)),
	}
}

func (c *canvasContext) SetFont(family string, size float64, style string) RenderContext {
	c.setFont(family, size, style)
	return c
}

func (c *canvasContext) SetBackgroundFillStyle(style string) RenderContext {
	c.setBackground(style)
	return c
}

func (c *canvasContext) SetFillStyle(style string) RenderContext {
	c.setFill(style)
	return c
}

func (c *canvasContext) SetStrokeStyle(style string) RenderContext {
	c.setStroke(style)
	return c
}

func (c *canvasContext) SetLineWidth(width float64) RenderContext {
	c.setLineWidth(width)
	return c
}

func (c *canvasContext) Save() RenderContext {
	c.save()
	c.dc.Push()
	return c
}

func (c *canvasContext) Restore() RenderContext {
	if c.restore() {
		c.dc.Pop()
	}
	return c
}

func (c *canvasContext) BeginPath() RenderContext {
	c.path.Clear()
	return c
}

func (c *canvasContext) MoveTo(x, y float64) RenderContext {
	c.path.MoveTo(x, y)
	return c
}

func (c *canvasContext) LineTo(x, y float64) RenderContext {
	c.path.LineTo(x, y)
	return c
}

func (c *canvasContext) QuadraticCurveTo(cx, cy, x, y float64) RenderContext {
	c.path.QuadraticTo(cx, cy, x, y)
	return c
}

func (c *canvasContext) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) RenderContext {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return c
}

func (c *canvasContext) Arc(x, y, r, angle1, angle2 float64) RenderContext {
	c.arc(x, y, r, angle1, angle2)
	return c
}

func (c *canvasContext) ClosePath() RenderContext {
	c.path.Close()
	return c
}

func (c *canvasContext) Fill() RenderContext {
	if c.failed() || !c.path.HasCurrentPoint() {
		return c
	}
	c.dc.ClearPath()
	replayPath(c.path, c.dc)
	c.dc.SetFillBrush(gg.Solid(c.state.fill))
	c.setErr(c.dc.Fill())
	return c
}

func (c *canvasContext) Stroke() RenderContext {
	if c.failed() || !c.path.HasCurrentPoint() {
		return c
	}
	c.dc.ClearPath()
	replayPath(c.path, c.dc)
	c.dc.SetStrokeBrush(gg.Solid(c.state.stroke))
	c.dc.SetLineWidth(c.state.lineWidth)
	c.setErr(c.dc.Stroke())
	return c
}

func (c *canvasContext) FillRect(x, y, w, h float64) RenderContext {
	return c.paintRect(x, y, w, h, c.state.fill)
}

func (c *canvasContext) ClearRect(x, y, w, h float64) RenderContext {
	return c.paintRect(x, y, w, h, c.backgroundColor)
}

func (c *canvasContext) paintRect(x, y, w, h float64, col gg.RGBA) RenderContext {
	if c.failed() {
		return c
	}
	c.dc.ClearPath()
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.SetFillBrush(gg.Solid(col))
	c.setErr(c.dc.Fill())
	return c
}

func (c *canvasContext) FillText(s string, x, y float64) RenderContext {
	if c.failed() {
		return c
	}
	face := c.currentFace()
	if face == nil {
		return c
	}
	c.dc.SetFont(face)
	c.dc.SetColor(c.state.fill.Color())
	c.dc.DrawString(s, x, y)
	return c
}

func (c *canvasContext) MeasureText(s string) float64 {
	face := c.currentFace()
	if face == nil {
		return 0
	}
	return face.Advance(s)
}
