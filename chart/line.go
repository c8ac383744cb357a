package chart

import (
	"animcharts/animate"
	"animcharts/config"
	"animcharts/curve"
	"animcharts/display"
	"animcharts/ease"
	"animcharts/path"
	"animcharts/rect"
)

const (
	// grid lines start this far above the bottom edge
	gridBottomInset = 2.
	// y of the line closing the grid at the top
	gridTop = 5.
)

type Point struct {
	X, Y float64
}

// LineChart animates a smooth curve from the previous dataset to the current
// one. Only Y animates; X positions are those of the current data.
type LineChart struct {
	widget
	options   config.LineChart
	easing    ease.Func
	data      []Point
	prev_data []Point
	has_data  bool
	has_prev  bool
	run       *LineRun
}

func NewLineChart(surface display.Surface, options config.LineChart, easing ease.Func) *LineChart {
	if easing == nil {
		easing = ease.Bounce
	}
	return &LineChart{
		widget:  widget{name: "line", surface: surface},
		options: options,
		easing:  easing,
	}
}

func (c *LineChart) OnCreate(host Host) {
	c.attach(host)
}

func (c *LineChart) OnFirstDisplay() {
	c.displayed = true
	c.refresh()
}

func (c *LineChart) OnDataChanged() {
	c.refresh()
}

// SetData replaces the dataset. The chart keeps its own copy; the dataset it
// replaces becomes the starting point of the transition.
func (c *LineChart) SetData(points []Point) *LineChart {
	if c.has_data {
		c.prev_data = c.data
		c.has_prev = true
	}
	c.data = clonePoints(points)
	c.has_data = true
	c.OnDataChanged()
	return c
}

// Data returns a copy of the current dataset.
func (c *LineChart) Data() []Point {
	return clonePoints(c.data)
}

// Previous returns a copy of the dataset the current one replaced.
func (c *LineChart) Previous() ([]Point, bool) {
	return clonePoints(c.prev_data), c.has_prev
}

// Run is the latest animation run, nil before the first render.
func (c *LineChart) Run() *LineRun {
	return c.run
}

func (c *LineChart) refresh() {
	if !c.has_data || !c.ready() {
		return
	}
	client_w, client_h := c.host.ClientSize()
	area := rect.NewRectSize(0, 0, client_w, client_h)
	area.Inflate(-c.options.Padding, -c.options.Padding)
	w, h := max(0, area.Width()), max(0, area.Height())
	c.surface.Resize(w, h, c.host.DevicePixelRatio())

	var previous []Point
	if c.has_prev {
		previous = c.prev_data
	}
	c.run = NewLineRun(c.data, previous, w, h, c.options)
	c.start(c.run, c.options.Duration, c.easing)
}

// LineRun is the state of one line animation: both datasets as they were
// when the run started and the scale mapping data to the surface.
type LineRun struct {
	Data     []Point
	Previous []Point
	Width    float64
	Height   float64
	ScaleX   float64
	ScaleY   float64
	// StartYs are the scaled previous values each point animates from.
	StartYs []float64
	options config.LineChart
}

// NewLineRun computes the scale for data on a width×height surface. An axis
// whose largest value is 0 gets a scale of 0, flattening the line onto the
// baseline rather than dividing by zero.
func NewLineRun(data, previous []Point, width, height float64, options config.LineChart) *LineRun {
	max_x, max_y := extent(data)
	run := &LineRun{
		Data:     clonePoints(data),
		Previous: clonePoints(previous),
		Width:    width,
		Height:   height,
		ScaleX:   scale(width, max_x),
		ScaleY:   scale(height-options.TopPadding, max_y),
		options:  options,
	}
	run.StartYs = make([]float64, len(data))
	for i := range data {
		if i < len(previous) {
			run.StartYs[i] = previous[i].Y * run.ScaleY
		}
	}
	return run
}

// Points returns the curve's knots at ntime in surface coordinates, y down.
func (r *LineRun) Points(ntime float64) []path.Point {
	points := make([]path.Point, len(r.Data))
	for i, p := range r.Data {
		y := animate.NewTween(r.StartYs[i], p.Y*r.ScaleY).At(ntime)
		points[i] = path.Point{X: p.X * r.ScaleX, Y: r.Height - y}
	}
	return points
}

// Frame clears the surface, draws the grid and strokes the curve.
func (r *LineRun) Frame(ntime float64) []display.Command {
	if len(r.Data) == 0 {
		return nil
	}
	cmds := []display.Command{
		display.NewClearRect(rect.NewRect(0, 0, r.Width, r.Height)),
	}
	if step := r.Height / 4; step > 0 {
		for y := r.Height - gridBottomInset; y > gridTop; y -= step {
			cmds = append(cmds, display.NewDrawLine(0, y, r.Width, y, r.options.GridColor, r.options.GridWidth))
		}
	}
	cmds = append(cmds, display.NewDrawLine(0, gridTop, r.Width, gridTop, r.options.GridColor, r.options.GridWidth))

	line := curve.CatmullRom(r.Points(ntime), r.options.Alpha)
	cmds = append(cmds, display.NewStrokePath(line, r.options.LineColor, r.options.LineWidth))
	return cmds
}

func extent(points []Point) (max_x, max_y float64) {
	for _, p := range points {
		max_x = max(max_x, p.X)
		max_y = max(max_y, p.Y)
	}
	return max_x, max_y
}

func scale(length, max_value float64) float64 {
	if !(max_value > 0) {
		return 0
	}
	return length / max_value
}

func clonePoints(points []Point) []Point {
	if points == nil {
		return nil
	}
	return append(make([]Point, 0, len(points)), points...)
}
