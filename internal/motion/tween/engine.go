// Package tween interpolates visual properties of motion targets over time.
//
// An Engine owns every running Handle and advances them from animation
// frames requested on the host scheduler. Frames are only requested while at
// least one handle is playing.
package tween

import (
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
)

// Step is one entry of a sequence.
type Step struct {
	Target motion.Target
	// From, when set, is written as soon as the sequence is created and is
	// the start value of the interpolation. Otherwise the start value is read
	// from the target when the step begins.
	From     motion.Props
	To       motion.Props
	Duration time.Duration
	Ease     Ease
	// Offset places the step relative to the end of the previous step.
	// Negative offsets overlap it.
	Offset time.Duration
	// Absolute measures Offset from the start of the sequence instead.
	Absolute bool
}

// Options tune a sequence.
type Options struct {
	// Paused creates the handle without playing it.
	Paused bool
	// Delay shifts every step.
	Delay time.Duration
	// OnComplete runs when forward playback reaches the end.
	OnComplete func()
	// OnReverseComplete runs when reverse playback reaches the start.
	OnReverseComplete func()
}

// Engine schedules and advances tweens.
type Engine struct {
	sched  motion.Scheduler
	cfg    Defaults
	active []*Handle
	frame  motion.Timer
}

// NewEngine returns an engine using the current process-wide defaults.
func NewEngine(sched motion.Scheduler) *Engine {
	return &Engine{sched: sched, cfg: Current()}
}

// Defaults returns the configuration the engine was created with.
func (e *Engine) Defaults() Defaults { return e.cfg }

// Busy reports whether any handle is playing.
func (e *Engine) Busy() bool { return len(e.active) > 0 }

// To animates props of target from their current values.
func (e *Engine) To(target motion.Target, props motion.Props, d time.Duration, ease Ease) *Handle {
	return e.Sequence([]Step{{Target: target, To: props, Duration: d, Ease: ease}}, Options{})
}

// FromTo writes from immediately and animates to.
func (e *Engine) FromTo(target motion.Target, from, to motion.Props, d time.Duration, ease Ease) *Handle {
	return e.Sequence([]Step{{Target: target, From: from, To: to, Duration: d, Ease: ease}}, Options{})
}

// Set writes props without animating. Active tweens lose these properties
// when overwrite is enabled.
func (e *Engine) Set(target motion.Target, props motion.Props) {
	if !motion.Live(target) {
		motion.Logger().Debug("tween: set on missing target ignored")
		return
	}
	props = visualOnly(props)
	if e.cfg.Overwrite {
		e.overwrite(nil, target, props)
	}
	for p, v := range props {
		target.Set(p, v)
	}
}

// Sequence builds a timeline from steps. Steps on missing targets are
// dropped; a sequence with no live steps completes immediately.
func (e *Engine) Sequence(steps []Step, opts Options) *Handle {
	h := &Handle{
		engine:            e,
		onComplete:        opts.OnComplete,
		onReverseComplete: opts.OnReverseComplete,
	}
	var cursor time.Duration
	for _, s := range steps {
		d := s.Duration
		if d <= 0 {
			d = e.cfg.Duration
		}
		start := cursor + s.Offset
		if s.Absolute {
			start = s.Offset
		}
		if start < 0 {
			start = 0
		}
		cursor = start + d
		if !motion.Live(s.Target) {
			motion.Logger().Debug("tween: step on missing target dropped")
			continue
		}
		ease := s.Ease
		if ease == nil {
			ease = e.cfg.Ease
		}
		tr := &track{
			target: s.Target,
			to:     visualOnly(s.To).Clone(),
			start:  opts.Delay + start,
			dur:    d,
			ease:   ease,
		}
		if s.From != nil {
			tr.from = visualOnly(s.From).Clone()
			for p, v := range tr.from {
				s.Target.Set(p, v)
			}
		}
		h.tracks = append(h.tracks, tr)
		if end := tr.start + tr.dur; end > h.total {
			h.total = end
		}
	}
	if len(h.tracks) == 0 {
		h.done = true
		return h
	}
	if !opts.Paused {
		h.Play()
	}
	return h
}

// Cancel stops h where it is. Properties keep their current values.
func (e *Engine) Cancel(h *Handle) {
	if h == nil || h.cancelled {
		return
	}
	h.cancelled = true
	h.dir = 0
	e.deactivate(h)
}

// CancelAll stops every active handle.
func (e *Engine) CancelAll() {
	for _, h := range append([]*Handle(nil), e.active...) {
		e.Cancel(h)
	}
}

func (e *Engine) activate(h *Handle) {
	for _, a := range e.active {
		if a == h {
			return
		}
	}
	h.last = e.sched.Now()
	e.active = append(e.active, h)
	if e.cfg.Overwrite {
		for _, tr := range h.tracks {
			e.overwrite(h, tr.target, tr.to)
		}
	}
	e.schedule()
}

func (e *Engine) deactivate(h *Handle) {
	for i, a := range e.active {
		if a == h {
			e.active = append(e.active[:i], e.active[i+1:]...)
			break
		}
	}
	if len(e.active) == 0 && e.frame != nil {
		e.frame.Stop()
		e.frame = nil
	}
}

// overwrite removes props of target from every active handle other than
// owner. A handle left with nothing to animate stops.
func (e *Engine) overwrite(owner *Handle, target motion.Target, props motion.Props) {
	for _, a := range append([]*Handle(nil), e.active...) {
		if a == owner {
			continue
		}
		hit := false
		for _, tr := range a.tracks {
			if tr.target != target {
				continue
			}
			for p := range props {
				if _, ok := tr.to[p]; ok {
					tr.kill(p)
					hit = true
				}
			}
		}
		if hit && a.exhausted() {
			a.dir = 0
			e.deactivate(a)
		}
	}
}

func (e *Engine) schedule() {
	if e.frame != nil || len(e.active) == 0 {
		return
	}
	e.frame = e.sched.RequestFrame(e.tick)
}

func (e *Engine) tick(now time.Time) {
	e.frame = nil
	e.Advance(now)
}

// Advance moves every playing handle to now. Hosts normally leave this to
// the frame callbacks the engine requests itself.
func (e *Engine) Advance(now time.Time) {
	for _, h := range append([]*Handle(nil), e.active...) {
		dt := now.Sub(h.last)
		if dt > e.cfg.LagThreshold {
			dt = e.cfg.LagStep
		}
		if dt < 0 {
			dt = 0
		}
		h.last = now
		h.step(dt)
	}
	e.schedule()
}

func visualOnly(props motion.Props) motion.Props {
	if err := props.Check(); err == nil {
		return props
	}
	out := make(motion.Props, len(props))
	for p, v := range props {
		if !p.Valid() {
			motion.Logger().Debug("tween: non-visual property ignored", "prop", string(p))
			continue
		}
		out[p] = v
	}
	return out
}
