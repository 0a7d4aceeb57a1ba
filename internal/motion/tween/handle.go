package tween

import (
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
)

// Handle controls one tween or sequence.
type Handle struct {
	engine *Engine
	tracks []*track
	total  time.Duration
	pos    time.Duration
	dir    int
	last   time.Time

	done      bool
	cancelled bool

	onComplete        func()
	onReverseComplete func()
}

// Play runs the handle forward from its current position.
func (h *Handle) Play() {
	if h == nil || h.cancelled || len(h.tracks) == 0 {
		return
	}
	if h.pos >= h.total {
		h.done = true
		return
	}
	h.done = false
	h.dir = 1
	h.engine.activate(h)
}

// Reverse runs the handle backward toward its start.
func (h *Handle) Reverse() {
	if h == nil || h.cancelled || len(h.tracks) == 0 {
		return
	}
	if h.pos <= 0 {
		return
	}
	h.done = false
	h.dir = -1
	h.engine.activate(h)
}

// Pause stops playback without cancelling.
func (h *Handle) Pause() {
	if h == nil || h.dir == 0 {
		return
	}
	h.dir = 0
	h.engine.deactivate(h)
}

// Playing reports whether the handle is advancing in either direction.
func (h *Handle) Playing() bool { return h != nil && h.dir != 0 }

// Reversed reports whether the last playback direction was backward.
func (h *Handle) Reversed() bool { return h != nil && h.dir < 0 }

// Done reports whether forward playback reached the end, or the handle had
// nothing to animate.
func (h *Handle) Done() bool { return h == nil || h.done }

// Cancelled reports whether Cancel was called on the handle.
func (h *Handle) Cancelled() bool { return h != nil && h.cancelled }

// Progress is the linear time fraction in [0, 1].
func (h *Handle) Progress() float64 {
	if h == nil || h.total <= 0 {
		return 1
	}
	return clamp01(float64(h.pos) / float64(h.total))
}

// Duration is the total length of the timeline.
func (h *Handle) Duration() time.Duration {
	if h == nil {
		return 0
	}
	return h.total
}

// Cancel is shorthand for Engine.Cancel.
func (h *Handle) Cancel() {
	if h == nil || h.engine == nil {
		return
	}
	h.engine.Cancel(h)
}

func (h *Handle) step(dt time.Duration) {
	h.pos += time.Duration(h.dir) * dt
	finished := false
	switch {
	case h.pos >= h.total:
		h.pos = h.total
		finished = h.dir > 0
	case h.pos <= 0:
		h.pos = 0
		finished = h.dir < 0
	}
	h.render()
	if !finished {
		return
	}
	dir := h.dir
	h.dir = 0
	h.engine.deactivate(h)
	if dir > 0 {
		h.done = true
		if h.onComplete != nil {
			h.onComplete()
		}
		return
	}
	if h.onReverseComplete != nil {
		h.onReverseComplete()
	}
}

func (h *Handle) render() {
	for _, tr := range h.tracks {
		tr.render(h.pos, h.dir)
	}
}

// track interpolates one step.
type track struct {
	target motion.Target
	from   motion.Props
	to     motion.Props
	start  time.Duration
	dur    time.Duration
	ease   Ease
	begun  bool
	gone   bool
	killed map[motion.Prop]bool
}

// exhausted reports whether overwrites took every property of every track.
func (h *Handle) exhausted() bool {
	for _, tr := range h.tracks {
		if tr.gone {
			continue
		}
		for p := range tr.to {
			if !tr.killed[p] {
				return false
			}
		}
	}
	return true
}

func (tr *track) kill(p motion.Prop) {
	if tr.killed == nil {
		tr.killed = make(map[motion.Prop]bool)
	}
	tr.killed[p] = true
}

func (tr *track) render(pos time.Duration, dir int) {
	if tr.gone {
		return
	}
	if !motion.Live(tr.target) {
		tr.gone = true
		motion.Logger().Debug("tween: target detached mid-animation")
		return
	}
	if pos < tr.start {
		// Before the step: only a reversing timeline that already ran
		// this step needs it rewound to its start values.
		if !tr.begun || dir >= 0 {
			return
		}
		pos = tr.start
	}
	if !tr.begun {
		tr.begin()
	}
	p := 1.0
	if tr.dur > 0 {
		p = clamp01(float64(pos-tr.start) / float64(tr.dur))
	}
	k := tr.ease(p)
	for prop, to := range tr.to {
		if tr.killed[prop] {
			continue
		}
		from := tr.from[prop]
		tr.target.Set(prop, from+(to-from)*k)
	}
}

func (tr *track) begin() {
	tr.begun = true
	if tr.from == nil {
		tr.from = make(motion.Props, len(tr.to))
	}
	for prop := range tr.to {
		if _, ok := tr.from[prop]; !ok {
			tr.from[prop] = tr.target.Get(prop)
		}
	}
}
