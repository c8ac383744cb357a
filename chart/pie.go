package chart

import (
	"math"
	"strconv"

	"animcharts/arc"
	"animcharts/config"
	"animcharts/display"
	"animcharts/ease"
	"animcharts/font"
	"animcharts/rect"

	fnt "golang.org/x/image/font"
)

type Segment struct {
	Color string
	// Value is a share of 100. Values are neither normalized nor checked.
	Value float64
}

// PieChart animates a donut whose segments grow from zero to their values
// while a running total counts up in the hole.
type PieChart struct {
	widget
	options   config.PieChart
	easing    ease.Func
	face      fnt.Face
	data      []Segment
	prev_data []Segment
	has_data  bool
	has_prev  bool
	run       *PieRun
}

func NewPieChart(surface display.Surface, options config.PieChart, easing ease.Func) *PieChart {
	if easing == nil {
		easing = ease.BounceOut
	}
	return &PieChart{
		widget:  widget{name: "pie", surface: surface},
		options: options,
		easing:  easing,
	}
}

func (c *PieChart) OnCreate(host Host) {
	c.attach(host)
	c.face = font.Get(c.options.LabelFont, c.options.LabelSize, c.options.LabelWeight)
}

func (c *PieChart) OnFirstDisplay() {
	c.displayed = true
	c.refresh()
}

func (c *PieChart) OnDataChanged() {
	c.refresh()
}

// SetData replaces the segments, keeping a copy. The replaced segments are
// retained as the previous dataset.
func (c *PieChart) SetData(segments []Segment) *PieChart {
	if c.has_data {
		c.prev_data = c.data
		c.has_prev = true
	}
	c.data = cloneSegments(segments)
	c.has_data = true
	c.OnDataChanged()
	return c
}

func (c *PieChart) Data() []Segment {
	return cloneSegments(c.data)
}

func (c *PieChart) Previous() ([]Segment, bool) {
	return cloneSegments(c.prev_data), c.has_prev
}

func (c *PieChart) Run() *PieRun {
	return c.run
}

func (c *PieChart) refresh() {
	if !c.has_data || !c.ready() {
		return
	}
	w, h := c.host.ClientSize()
	w, h = max(0, w), max(0, h)
	c.surface.Resize(w, h, c.host.DevicePixelRatio())
	c.run = NewPieRun(c.data, w, h, c.options, c.face)
	c.start(c.run, c.options.Duration, c.easing)
}

// PieRun is the state of one pie animation.
type PieRun struct {
	Data        []Segment
	Width       float64
	Height      float64
	InnerRadius float64
	OuterRadius float64
	options     config.PieChart
	face        fnt.Face
}

// NewPieRun sizes the donut to the surface height: the outer edge touches
// the top and bottom, the ring is options.Thickness wide.
func NewPieRun(data []Segment, width, height float64, options config.PieChart, face fnt.Face) *PieRun {
	outer := height / 2
	return &PieRun{
		Data:        cloneSegments(data),
		Width:       width,
		Height:      height,
		InnerRadius: max(0, outer-options.Thickness),
		OuterRadius: outer,
		options:     options,
		face:        face,
	}
}

// Angles returns the segments at ntime, in input order. Each starts where
// the previous one ended; the first starts at 0 (12 o'clock).
func (r *PieRun) Angles(ntime float64) []arc.Segment {
	segments := make([]arc.Segment, len(r.Data))
	end := 0.
	for i, s := range r.Data {
		v := s.Value * ntime
		start := end
		end = start + v/100*2*math.Pi
		segments[i] = arc.Segment{
			InnerRadius:  r.InnerRadius,
			OuterRadius:  r.OuterRadius,
			StartAngle:   start,
			EndAngle:     end,
			CornerRadius: r.options.CornerRadius,
			PadAngle:     r.options.PadAngle,
		}
	}
	return segments
}

// Total is the sum of the segment values at ntime.
func (r *PieRun) Total(ntime float64) float64 {
	total := 0.
	for _, s := range r.Data {
		total += s.Value * ntime
	}
	return total
}

// Label is the text shown in the hole at ntime.
func (r *PieRun) Label(ntime float64) string {
	return strconv.Itoa(int(math.Round(r.Total(ntime))))
}

func (r *PieRun) Frame(ntime float64) []display.Command {
	angles := r.Angles(ntime)
	children := make([]display.Command, 0, len(angles)+1)
	for i, segment := range angles {
		children = append(children, display.NewFillPath(arc.Build(segment), r.Data[i].Color))
	}
	children = append(children, display.NewDrawText(0, 0, r.Label(ntime), r.face, r.options.LabelColor))

	return []display.Command{
		display.NewClearRect(rect.NewRect(0, 0, r.Width, r.Height)),
		display.NewTransform(r.Width/2, r.Height/2, children),
	}
}

func cloneSegments(segments []Segment) []Segment {
	if segments == nil {
		return nil
	}
	return append(make([]Segment, 0, len(segments)), segments...)
}
