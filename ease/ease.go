// Package ease maps linear animation time in [0,1] to perceptual progress.
package ease

import (
	"errors"
	"fmt"
	"math"
	"sort"

	gease "github.com/tanema/gween/ease"
)

// Func takes elapsed/duration in [0,1] and returns eased progress. The result
// may overshoot or oscillate in between but is always 0 at t=0 and 1 at t=1.
type Func func(t float64) float64

var ErrUnknownEasing = errors.New("unknown easing function")

// unit evaluates a tween function over begin 0, change 1 and duration 1.
func unit(fn gease.TweenFunc) Func {
	return func(t float64) float64 {
		return clamped(t, func(t float64) float64 {
			return float64(fn(float32(t), 0, 1, 1))
		})
	}
}

var (
	Linear = unit(gease.Linear)
	// BounceOut overshoots towards 1 in a series of shrinking bounces before settling.
	BounceOut   = unit(gease.OutBounce)
	BounceIn    = unit(gease.InBounce)
	BounceInOut = unit(gease.InOutBounce)
	ExpIn       = unit(gease.InExpo)
	ExpOut      = unit(gease.OutExpo)
	ExpInOut    = unit(gease.InOutExpo)
)

// Bounce is the curve used by the line chart: it falls onto the target and
// settles with a few rebounds. Same shape as BounceOut.
func Bounce(t float64) float64 {
	return BounceOut(t)
}

// clamped pins both ends of the curve so that callers can rely on exact 0 and 1.
func clamped(t float64, fn func(float64) float64) float64 {
	if t <= 0 || math.IsNaN(t) {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return fn(t)
}

var registry = map[string]Func{
	"linear":        Linear,
	"bounce":        Bounce,
	"bounce-in":     BounceIn,
	"bounce-out":    BounceOut,
	"bounce-in-out": BounceInOut,
	"exp-in":        ExpIn,
	"exp-out":       ExpOut,
	"exp-in-out":    ExpInOut,
}

// ByName resolves an easing function by its configuration name.
func ByName(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
