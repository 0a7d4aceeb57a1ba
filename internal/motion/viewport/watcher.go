// Package viewport fires callbacks when elements cross a trigger line
// placed at a fraction of the viewport height.
package viewport

import (
	"errors"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
)

// ErrThreshold is returned for trigger fractions outside [0, 1].
var ErrThreshold = errors.New("viewport: threshold must be within [0, 1]")

// Mode selects whether a trigger detaches after its first crossing.
type Mode int

const (
	// Once fires OnEnter a single time and then detaches.
	Once Mode = iota
	// Repeat fires OnEnter on every downward crossing and OnLeave when the
	// element scrolls back below the line.
	Repeat
)

// MaxDeferFrames bounds how many frames in a row the watcher re-checks
// targets that have no layout yet. After that it waits for the next Check,
// so elements hidden at the current breakpoint do not poll forever.
const MaxDeferFrames = 10

// Trigger describes one observed element. Threshold 0.8 fires when the
// element's top is 80% of the way down the viewport.
type Trigger struct {
	Target    motion.Target
	Threshold float64
	Mode      Mode
	OnEnter   func()
	OnLeave   func()
}

type entry struct {
	Trigger
	inside  bool
	removed bool
}

// Watcher evaluates triggers against the viewport. Call Check after every
// scroll update and resize.
type Watcher struct {
	vp      motion.Viewport
	sched   motion.Scheduler
	entries []*entry
	byKey   map[motion.Target]*entry
	retry   motion.Timer
	// deferred counts frame retries since the last Check.
	deferred int
}

// NewWatcher returns a watcher for vp. sched is used to retry evaluation of
// elements that have not been laid out yet.
func NewWatcher(vp motion.Viewport, sched motion.Scheduler) *Watcher {
	return &Watcher{vp: vp, sched: sched, byKey: make(map[motion.Target]*entry)}
}

// Len returns the number of live triggers.
func (w *Watcher) Len() int { return len(w.entries) }

// Observe registers tr and evaluates it immediately. A target has at most
// one trigger: observing it again replaces the previous trigger, and the
// previous unsubscribe func becomes a no-op.
func (w *Watcher) Observe(tr Trigger) (unsubscribe func(), err error) {
	if tr.Threshold < 0 || tr.Threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrThreshold, tr.Threshold)
	}
	if tr.Target == nil {
		return func() {}, nil
	}
	if old, ok := w.byKey[tr.Target]; ok {
		w.remove(old)
	}
	e := &entry{Trigger: tr}
	w.entries = append(w.entries, e)
	w.byKey[tr.Target] = e
	w.evaluate(e)
	return func() { w.remove(e) }, nil
}

func (w *Watcher) remove(e *entry) {
	if e.removed {
		return
	}
	e.removed = true
	if w.byKey[e.Target] == e {
		delete(w.byKey, e.Target)
	}
	for i, x := range w.entries {
		if x == e {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			break
		}
	}
	if len(w.entries) == 0 && w.retry != nil {
		w.retry.Stop()
		w.retry = nil
	}
}

// Check evaluates every trigger in registration order.
func (w *Watcher) Check() {
	w.deferred = 0
	w.check()
}

func (w *Watcher) check() {
	for _, e := range append([]*entry(nil), w.entries...) {
		if !e.removed {
			w.evaluate(e)
		}
	}
}

func (w *Watcher) evaluate(e *entry) {
	if !motion.Live(e.Target) {
		motion.Logger().Debug("viewport: trigger target detached, dropping")
		w.remove(e)
		return
	}
	box := e.Target.Bounds()
	if box.Empty() {
		motion.Logger().Debug("viewport: target not laid out, deferring")
		w.deferCheck()
		return
	}
	line := w.vp.Height() * e.Threshold
	crossed := box.Top <= line
	switch {
	case crossed && !e.inside:
		e.inside = true
		if e.Mode == Once {
			w.remove(e)
		}
		if e.OnEnter != nil {
			e.OnEnter()
		}
	case !crossed && e.inside:
		e.inside = false
		if e.OnLeave != nil {
			e.OnLeave()
		}
	}
}

func (w *Watcher) deferCheck() {
	if w.retry != nil {
		return
	}
	if w.deferred >= MaxDeferFrames {
		motion.Logger().Debug("viewport: layout still missing, waiting for next check")
		return
	}
	w.deferred++
	w.retry = w.sched.RequestFrame(func(time.Time) {
		w.retry = nil
		w.check()
	})
}
