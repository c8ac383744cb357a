// Package chart renders animated line and donut charts on a display.Surface.
//
// A chart keeps the current dataset and the one it replaced. Every data
// change starts a new animation run; the run captures both datasets and the
// surface geometry at its start and computes each frame as a pure function
// of the eased progress. Starting a run supersedes the previous one, whose
// remaining ticks end without drawing.
package chart

import (
	"time"

	"animcharts/animate"
	"animcharts/display"
	"animcharts/ease"
	"animcharts/trace"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'animcharts.chart'
func tracer() tracing.Trace {
	return tracing.Select("animcharts.chart")
}

// Host is the UI layer a chart lives in.
type Host interface {
	// ClientSize is the logical size of the chart's element.
	ClientSize() (width, height float64)
	DevicePixelRatio() float64
	animate.Scheduler
}

// Clock may be implemented by a Host whose frame timestamps do not come from
// the wall clock. Runs then take their start time from it.
type Clock interface {
	Now() time.Time
}

// Widget is the lifecycle a host drives.
type Widget interface {
	// OnCreate attaches the widget to its host.
	OnCreate(host Host)
	// OnFirstDisplay runs once the host has laid the widget out.
	OnFirstDisplay()
	// OnDataChanged re-renders after new data was set.
	OnDataChanged()
}

// Framer computes the display list for one eased progress value.
type Framer interface {
	Frame(ntime float64) []display.Command
}

// widget holds what both charts share: the host, the surface and the
// bookkeeping that keeps only the newest run drawing.
type widget struct {
	name       string
	host       Host
	surface    display.Surface
	driver     *animate.Driver
	generation uint64
	anim       *animate.Run
	measure    *trace.MeasureTime
	displayed  bool
}

func (w *widget) attach(host Host) {
	w.host = host
	w.driver = animate.NewDriver(host)
	if clock, ok := host.(Clock); ok {
		w.driver.WithClock(clock.Now)
	}
	tracer().Infof("%s chart created", w.name)
}

// start begins a run drawing frames from framer. Ticks of older runs see a
// newer generation and stop with animate.ErrSuperseded.
func (w *widget) start(framer Framer, duration time.Duration, easing ease.Func) {
	w.generation++
	generation := w.generation
	w.anim = w.driver.Animate(func(ntime float64) error {
		if generation != w.generation {
			return animate.ErrSuperseded
		}
		w.measure.Time(w.name)
		defer w.measure.Stop(w.name)
		display.Execute(framer.Frame(ntime), w.surface)
		return nil
	}, duration, easing)
	tracer().Debugf("%s chart run %d started", w.name, generation)
}

// ready reports whether the host can be asked for a layout.
func (w *widget) ready() bool {
	return w.host != nil && w.displayed
}

// Animating reports whether the latest run still has frames to draw.
func (w *widget) Animating() bool {
	return w.anim != nil && !w.anim.Done()
}

// Err is the error that stopped the latest run, if any.
func (w *widget) Err() error {
	if w.anim == nil {
		return nil
	}
	return w.anim.Err()
}

// Surface is the surface the chart draws on.
func (w *widget) Surface() display.Surface {
	return w.surface
}

// SetTrace wraps every frame in a trace span; nil disables tracing.
func (w *widget) SetTrace(m *trace.MeasureTime) {
	w.measure = m
}
