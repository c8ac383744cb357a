package display

import (
	"math"

	"github.com/fogleman/gg"
)

// Layer places a chart's canvas on the host's root surface, at a logical
// offset.
type Layer struct {
	Canvas *Canvas
	X, Y   float64
}

func NewLayer(canvas *Canvas, x, y float64) *Layer {
	return &Layer{Canvas: canvas, X: x, Y: y}
}

// Composite draws the layer onto root, whose pixels are device pixels.
func (l *Layer) Composite(root *gg.Context) {
	ratio := l.Canvas.PixelRatio()
	root.DrawImage(l.Canvas.Image(), int(math.Round(l.X*ratio)), int(math.Round(l.Y*ratio)))
}
