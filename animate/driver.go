package animate

import (
	"errors"
	"fmt"
	"time"

	"animcharts/ease"
)

// ErrSuperseded is returned by a Callback whose animation has been replaced by
// a newer one. The run stops quietly.
var ErrSuperseded = errors.New("animation superseded")

// Callback draws one frame for the eased progress.
type Callback func(progress float64) error

// Driver starts timed animations on a Scheduler.
type Driver struct {
	scheduler Scheduler
	clock     func() time.Time
}

func NewDriver(scheduler Scheduler) *Driver {
	return &Driver{scheduler: scheduler, clock: time.Now}
}

// WithClock replaces the clock used to stamp the start of a run.
func (d *Driver) WithClock(clock func() time.Time) *Driver {
	d.clock = clock
	return d
}

// Run is the state of one Animate call. It is owned by the driver's
// scheduler and only touched from frame callbacks.
type Run struct {
	callback Callback
	easing   ease.Func
	start    time.Time
	duration time.Duration
	linear   float64
	progress float64
	ticks    int
	done     bool
	err      error
}

// Animate records the start time and requests the first frame. Every frame
// calls cb with easing(t) where t = min(1, elapsed/duration); the frame with
// t = 1 passes exactly 1 and is the last one.
func (d *Driver) Animate(cb Callback, duration time.Duration, easing ease.Func) *Run {
	if easing == nil {
		easing = ease.Linear
	}
	run := &Run{
		callback: cb,
		easing:   easing,
		start:    d.clock(),
		duration: duration,
	}
	tracer().Debugf("animation started, duration %v", duration)
	d.scheduler.RequestAnimationFrame(func(now time.Time) { d.tick(run, now) })
	return run
}

func (d *Driver) tick(run *Run, now time.Time) {
	if run.done {
		return
	}
	t := 1.0
	if run.duration > 0 {
		t = min(1, float64(now.Sub(run.start))/float64(run.duration))
	}
	// the host clock may step back; progress in time must not
	t = max(t, run.linear)
	run.linear = t

	progress := 1.0
	if t < 1 {
		progress = run.easing(t)
	}
	run.progress = progress
	run.ticks++

	if err := run.invoke(progress); err != nil {
		run.done = true
		if errors.Is(err, ErrSuperseded) {
			tracer().Debugf("animation superseded after %d ticks", run.ticks)
			return
		}
		run.err = err
		tracer().Errorf("animation stopped after %d ticks: %v", run.ticks, err)
		return
	}

	if t >= 1 {
		run.done = true
		tracer().Debugf("animation finished after %d ticks", run.ticks)
		return
	}
	d.scheduler.RequestAnimationFrame(func(now time.Time) { d.tick(run, now) })
}

func (r *Run) invoke(progress float64) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("animation callback panicked: %v", rec)
		}
	}()
	if r.callback == nil {
		return nil
	}
	return r.callback(progress)
}

// Done reports whether the run drew its last frame or was stopped.
func (r *Run) Done() bool {
	return r.done
}

// Err is the error that stopped the run, nil for completed or superseded runs.
func (r *Run) Err() error {
	return r.err
}

// Progress is the eased progress passed to the latest callback.
func (r *Run) Progress() float64 {
	return r.progress
}

func (r *Run) Ticks() int {
	return r.ticks
}
