package display

import (
	"image"
	"io"
	"math"

	"animcharts/color"
	"animcharts/path"
	"animcharts/rect"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// Canvas is a Surface rastered by gg.
type Canvas struct {
	surface *gg.Context
	width   float64
	height  float64
	ratio   float64
}

func NewCanvas(width, height, ratio float64) *Canvas {
	c := &Canvas{}
	c.Resize(width, height, ratio)
	return c
}

func (c *Canvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *Canvas) PixelRatio() float64 {
	return c.ratio
}

// Resize replaces the backing store. Its contents and any saved state are
// dropped, as with a canvas element whose width is assigned.
func (c *Canvas) Resize(width, height, ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	width, height = math.Max(0, width), math.Max(0, height)
	c.width, c.height, c.ratio = width, height, ratio
	device_w := max(1, int(math.Ceil(width*ratio)))
	device_h := max(1, int(math.Ceil(height*ratio)))
	c.surface = gg.NewContext(device_w, device_h)
	c.surface.Scale(ratio, ratio)
	c.surface.SetColor(image.Black.C)
}

func (c *Canvas) ClearRect(r *rect.Rect) {
	canvas := c.surface
	x0, y0 := canvas.TransformPoint(r.Left, r.Top)
	x1, y1 := canvas.TransformPoint(r.Right, r.Bottom)
	device := rect.NewRect(math.Min(x0, x1), math.Min(y0, y1), math.Max(x0, x1), math.Max(y0, y1))
	dst, ok := canvas.Image().(draw.Image)
	if !ok {
		return
	}
	target := device.RoundOutToInt().Intersect(dst.Bounds())
	if target.Empty() {
		return
	}
	draw.Draw(dst, target, image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) Save() {
	c.surface.Push()
}

func (c *Canvas) Restore() {
	c.surface.Pop()
}

func (c *Canvas) Translate(dx, dy float64) {
	c.surface.Translate(dx, dy)
}

func (c *Canvas) SetStrokeStyle(clr string) {
	c.surface.SetStrokeStyle(gg.NewSolidPattern(color.ParseColor(clr)))
}

func (c *Canvas) SetFillStyle(clr string) {
	c.surface.SetFillStyle(gg.NewSolidPattern(color.ParseColor(clr)))
}

func (c *Canvas) SetLineWidth(width float64) {
	c.surface.SetLineWidth(width)
}

func (c *Canvas) MoveTo(x, y float64) {
	c.surface.MoveTo(x, y)
}

func (c *Canvas) LineTo(x, y float64) {
	c.surface.LineTo(x, y)
}

func (c *Canvas) Stroke() {
	c.surface.Stroke()
}

func (c *Canvas) StrokePath(p *path.Path) {
	canvas := c.surface
	canvas.ClearPath()
	p.Replay(canvas)
	canvas.Stroke()
}

func (c *Canvas) FillPath(p *path.Path) {
	canvas := c.surface
	canvas.ClearPath()
	p.Replay(canvas)
	canvas.Fill()
}

func (c *Canvas) DrawText(text string, x, y float64, face font.Face) {
	if face != nil {
		c.surface.SetFontFace(face)
	}
	c.surface.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// Image is the backing store in device pixels.
func (c *Canvas) Image() image.Image {
	return c.surface.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.surface.EncodePNG(w)
}
