package animate

import "time"

// FrameCallback runs once for the frame it was requested for.
type FrameCallback func(now time.Time)

// Scheduler is the per-frame primitive a host offers, one callback
// invocation per display refresh.
type Scheduler interface {
	RequestAnimationFrame(cb FrameCallback)
}

// FrameLoop is a single-threaded Scheduler. The host calls RunFrame once per
// display refresh from its own loop.
type FrameLoop struct {
	pending []FrameCallback
	frames  int
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{
		pending: make([]FrameCallback, 0),
	}
}

func (l *FrameLoop) RequestAnimationFrame(cb FrameCallback) {
	l.pending = append(l.pending, cb)
}

// RunFrame invokes every callback queued before this call. Callbacks requested
// while the frame runs wait for the next one.
func (l *FrameLoop) RunFrame(now time.Time) int {
	if len(l.pending) == 0 {
		return 0
	}
	callbacks := l.pending
	l.pending = make([]FrameCallback, 0, len(callbacks))
	l.frames++
	for _, cb := range callbacks {
		cb(now)
	}
	return len(callbacks)
}

func (l *FrameLoop) Pending() int {
	return len(l.pending)
}

// Frames counts the frames that ran at least one callback.
func (l *FrameLoop) Frames() int {
	return l.frames
}
