// Package display is the drawing surface charts paint on, and the display
// list of commands they paint with.
package display

import (
	"animcharts/path"
	"animcharts/rect"

	"golang.org/x/image/font"
)

// Surface is a 2D drawing context in logical pixels. It mirrors the parts of
// an HTML canvas context the charts need.
type Surface interface {
	// Size is the logical size set by the last Resize.
	Size() (width, height float64)
	PixelRatio() float64
	// Resize sets the logical size. The backing store is width*ratio by
	// height*ratio pixels and drawing is scaled by ratio, so callers keep
	// working in logical units.
	Resize(width, height, ratio float64)
	// ClearRect makes the region transparent.
	ClearRect(r *rect.Rect)
	Save()
	Restore()
	Translate(dx, dy float64)
	SetStrokeStyle(color string)
	SetFillStyle(color string)
	SetLineWidth(width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke draws and consumes the path built with MoveTo/LineTo.
	Stroke()
	StrokePath(p *path.Path)
	FillPath(p *path.Path)
	// DrawText draws text with the fill style, centred on (x,y).
	DrawText(text string, x, y float64, face font.Face)
}
