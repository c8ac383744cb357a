// Package viewer hosts both charts on one root surface: a toolbar with a
// REFRESH button above the pie chart, the line chart below it.
package viewer

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"animcharts/animate"
	"animcharts/chart"
	"animcharts/config"
	"animcharts/display"
	"animcharts/font"
	"animcharts/path"
	"animcharts/rect"
	"animcharts/trace"

	"github.com/fogleman/gg"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/afero"
)

// tracer writes to trace with key 'animcharts.viewer'
func tracer() tracing.Trace {
	return tracing.Select("animcharts.viewer")
}

const (
	ToolbarHeight = 40.
	buttonPadding = 8.
	buttonText    = "REFRESH"
)

type Viewer struct {
	cfg          *config.Config
	loop         *animate.FrameLoop
	clock        func() time.Time
	rng          *rand.Rand
	root_surface *gg.Context
	width        float64
	height       float64
	toolbar      *display.Layer
	button       *rect.Rect
	pie_slot     *slot
	line_slot    *slot
	Pie          *chart.PieChart
	Line         *chart.LineChart
	measure      *trace.MeasureTime
}

// slot is the element a chart lives in. It answers the chart's layout
// questions and forwards frame requests to the viewer's loop.
type slot struct {
	viewer *Viewer
	layer  *display.Layer
	width  float64
	height float64
}

func (s *slot) ClientSize() (float64, float64) {
	return s.width, s.height
}

func (s *slot) DevicePixelRatio() float64 {
	return s.viewer.cfg.PixelRatio
}

func (s *slot) RequestAnimationFrame(cb animate.FrameCallback) {
	s.viewer.loop.RequestAnimationFrame(cb)
}

func (s *slot) Now() time.Time {
	return s.viewer.clock()
}

// NewViewer lays out both charts and creates them. When cfg.Trace is set the
// trace file is created on fs.
func NewViewer(cfg *config.Config, fs afero.Fs) (*Viewer, error) {
	font.SystemLookup = cfg.SystemFonts
	v := &Viewer{
		cfg:   cfg,
		loop:  animate.NewFrameLoop(),
		clock: time.Now,
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	if cfg.Trace != "" {
		measure, err := trace.NewMeasureTime(fs, cfg.Trace)
		if err != nil {
			return nil, err
		}
		v.measure = measure
	}

	v.width = math.Max(cfg.Pie.Width, cfg.Line.Width)
	v.height = ToolbarHeight + cfg.Pie.Height + cfg.Line.Height
	ratio := cfg.PixelRatio
	v.root_surface = gg.NewContext(int(math.Ceil(v.width*ratio)), int(math.Ceil(v.height*ratio)))

	v.toolbar = display.NewLayer(display.NewCanvas(v.width, ToolbarHeight, ratio), 0, 0)
	v.paintToolbar()

	// the line chart's canvas sits inside its padding
	v.pie_slot = v.newSlot(0, ToolbarHeight, cfg.Pie.Width, cfg.Pie.Height, 0)
	v.line_slot = v.newSlot(0, ToolbarHeight+cfg.Pie.Height, cfg.Line.Width, cfg.Line.Height, cfg.Line.Padding)

	v.Pie = chart.NewPieChart(v.pie_slot.layer.Canvas, cfg.Pie, cfg.PieEasing())
	v.Line = chart.NewLineChart(v.line_slot.layer.Canvas, cfg.Line, cfg.LineEasing())
	v.Pie.SetTrace(v.measure)
	v.Line.SetTrace(v.measure)
	v.Pie.OnCreate(v.pie_slot)
	v.Line.OnCreate(v.line_slot)
	tracer().Infof("viewer %gx%g at pixel ratio %g", v.width, v.height, ratio)
	return v, nil
}

func (v *Viewer) newSlot(x, y, width, height, inset float64) *slot {
	canvas := display.NewCanvas(width-2*inset, height-2*inset, v.cfg.PixelRatio)
	return &slot{
		viewer: v,
		layer:  display.NewLayer(canvas, x+inset, y+inset),
		width:  width,
		height: height,
	}
}

// WithClock replaces the clock charts stamp their runs with. Hosts driving
// Step with synthetic timestamps pass a matching clock.
func (v *Viewer) WithClock(clock func() time.Time) *Viewer {
	v.clock = clock
	return v
}

func (v *Viewer) WithRand(rng *rand.Rand) *Viewer {
	v.rng = rng
	return v
}

func (v *Viewer) paintToolbar() {
	face := font.Get(v.cfg.Pie.LabelFont, 16, "bold")
	text_w := font.Measure(face, buttonText)
	v.button = rect.NewRect(buttonPadding, buttonPadding/2,
		buttonPadding+text_w+2*buttonPadding, ToolbarHeight-buttonPadding/2)
	b := v.button
	outline := path.New().MoveTo(b.Left, b.Top).LineTo(b.Right, b.Top).
		LineTo(b.Right, b.Bottom).LineTo(b.Left, b.Bottom).Close()
	cx, cy := b.Center()
	cmds := []display.Command{
		display.NewFillPath(outline, "#eee"),
		display.NewStrokePath(outline, "#999", 1),
		display.NewDrawText(cx, cy, buttonText, face, "#434343"),
	}
	display.Execute(cmds, v.toolbar.Canvas)
}

// Show is the first display: both charts are laid out and given data.
func (v *Viewer) Show() {
	v.Pie.OnFirstDisplay()
	v.Line.OnFirstDisplay()
	v.Refresh()
}

// Refresh gives the pie its fixed segments and the line chart a new random
// series, starting both transitions.
func (v *Viewer) Refresh() {
	tracer().Debugf("refresh")
	v.Pie.SetData(DefaultPieData())
	v.Line.SetData(RandomLineData(v.rng))
}

// Click handles a pointer release at logical (x,y). It reports whether the
// REFRESH button was hit.
func (v *Viewer) Click(x, y float64) bool {
	if !v.button.ContainsPoint(x, y) {
		return false
	}
	v.Refresh()
	return true
}

// Step runs one frame of the loop at now and composites the result. It
// returns the number of frame callbacks that ran.
func (v *Viewer) Step(now time.Time) int {
	v.measure.Time("frame")
	defer v.measure.Stop("frame")
	n := v.loop.RunFrame(now)
	v.composite()
	return n
}

// Idle reports whether no chart is waiting for a frame.
func (v *Viewer) Idle() bool {
	return v.loop.Pending() == 0
}

func (v *Viewer) Err() error {
	if err := v.Pie.Err(); err != nil {
		return err
	}
	return v.Line.Err()
}

func (v *Viewer) composite() {
	canvas := v.root_surface
	canvas.SetColor(color.White)
	canvas.Clear()
	v.toolbar.Composite(canvas)
	v.pie_slot.layer.Composite(canvas)
	v.line_slot.layer.Composite(canvas)
}

// Size is the logical size of the root surface.
func (v *Viewer) Size() (float64, float64) {
	return v.width, v.height
}

// Image is the composited root surface in device pixels.
func (v *Viewer) Image() *image.RGBA {
	img, ok := v.root_surface.Image().(*image.RGBA)
	if !ok {
		panic("Image is not RGBA")
	}
	return img
}

// Snapshot writes the root surface as PNG to filename on fs.
func (v *Viewer) Snapshot(fs afero.Fs, filename string) error {
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	if err := v.root_surface.EncodePNG(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Close finishes the trace file, if any.
func (v *Viewer) Close() error {
	return v.measure.Finish()
}
