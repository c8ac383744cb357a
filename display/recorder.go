package display

import (
	"fmt"

	"animcharts/path"
	"animcharts/rect"

	"golang.org/x/image/font"
)

// Recorder is a Surface that logs calls instead of drawing. It tracks the
// translation so recorded coordinates can be checked against the transform.
type Recorder struct {
	Calls  []string
	width  float64
	height float64
	ratio  float64
	dx, dy float64
	saved  [][2]float64
}

func NewRecorder(width, height, ratio float64) *Recorder {
	r := &Recorder{}
	r.Resize(width, height, ratio)
	return r
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

// Reset forgets the recorded calls but keeps the size.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Depth is the number of Save calls not yet restored.
func (r *Recorder) Depth() int {
	return len(r.saved)
}

// Offset is the current translation.
func (r *Recorder) Offset() (float64, float64) {
	return r.dx, r.dy
}

func (r *Recorder) Size() (float64, float64) {
	return r.width, r.height
}

func (r *Recorder) PixelRatio() float64 {
	return r.ratio
}

func (r *Recorder) Resize(width, height, ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	r.width, r.height, r.ratio = width, height, ratio
	r.dx, r.dy = 0, 0
	r.saved = nil
	r.record("Resize(%g, %g, %g)", width, height, ratio)
}

func (r *Recorder) ClearRect(rc *rect.Rect) {
	r.record("ClearRect(%g, %g, %g, %g)", rc.Left, rc.Top, rc.Right, rc.Bottom)
}

func (r *Recorder) Save() {
	r.saved = append(r.saved, [2]float64{r.dx, r.dy})
	r.record("Save")
}

func (r *Recorder) Restore() {
	if n := len(r.saved); n > 0 {
		r.dx, r.dy = r.saved[n-1][0], r.saved[n-1][1]
		r.saved = r.saved[:n-1]
	}
	r.record("Restore")
}

func (r *Recorder) Translate(dx, dy float64) {
	r.dx += dx
	r.dy += dy
	r.record("Translate(%g, %g)", dx, dy)
}

func (r *Recorder) SetStrokeStyle(color string) {
	r.record("SetStrokeStyle(%s)", color)
}

func (r *Recorder) SetFillStyle(color string) {
	r.record("SetFillStyle(%s)", color)
}

func (r *Recorder) SetLineWidth(width float64) {
	r.record("SetLineWidth(%g)", width)
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record("MoveTo(%g, %g)", x, y)
}

func (r *Recorder) LineTo(x, y float64) {
	r.record("LineTo(%g, %g)", x, y)
}

func (r *Recorder) Stroke() {
	r.record("Stroke")
}

func (r *Recorder) StrokePath(p *path.Path) {
	r.record("StrokePath(%s)", p)
}

func (r *Recorder) FillPath(p *path.Path) {
	r.record("FillPath(%s)", p)
}

func (r *Recorder) DrawText(text string, x, y float64, face font.Face) {
	r.record("DrawText(%s, %g, %g)", text, x+r.dx, y+r.dy)
}
