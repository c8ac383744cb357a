// Package animate drives frame-based animations on a cooperative scheduler.
package animate

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'animcharts.animate'
func tracer() tracing.Trace {
	return tracing.Select("animcharts.animate")
}

// Tween interpolates linearly between two values by an eased progress.
type Tween struct {
	From, To float64
}

func NewTween(from, to float64) Tween {
	return Tween{From: from, To: to}
}

// At returns From at progress 0 and To at progress 1. Progress outside [0,1]
// extrapolates, which is what makes bounce easings overshoot.
func (t Tween) At(progress float64) float64 {
	if progress == 1 {
		return t.To
	}
	return t.From + (t.To-t.From)*progress
}
