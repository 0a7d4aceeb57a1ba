package page

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/scroll"
	"github.com/Zachkp/portfolio/internal/motion/tween"
	"github.com/Zachkp/portfolio/internal/motion/viewport"
)

// Env is the shared runtime every component mounts into.
type Env struct {
	Doc      Document
	Viewport motion.Viewport
	Sched    motion.Scheduler
	Config   *config.Config
	Engine   *tween.Engine
	Tracker  *scroll.Tracker
	Watcher  *viewport.Watcher
	Rand     *rand.Rand

	resize  []*hook
	unwatch func()
	closed  bool
}

type hook struct {
	key     string
	fn      func()
	removed bool
}

// NewEnv wires the engine, tracker and watcher for one page. The watcher is
// re-evaluated on every tracker update and on resize.
func NewEnv(doc Document, vp motion.Viewport, sched motion.Scheduler, cfg *config.Config) *Env {
	if cfg == nil {
		cfg = config.Default()
	}
	e := &Env{
		Doc:      doc,
		Viewport: vp,
		Sched:    sched,
		Config:   cfg,
		Engine:   tween.NewEngine(sched),
		Tracker:  scroll.NewTracker(sched, cfg.ScrollOptions()),
		Watcher:  viewport.NewWatcher(vp, sched),
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	e.unwatch = e.Tracker.Subscribe("viewport", func(scroll.Update) { e.Watcher.Check() })
	return e
}

// Scroll forwards a native scroll event.
func (e *Env) Scroll(offsetY float64) { e.Tracker.Feed(offsetY) }

// Resize runs resize hooks in registration order, then re-evaluates
// triggers.
func (e *Env) Resize() {
	if e.closed {
		return
	}
	for _, h := range append([]*hook(nil), e.resize...) {
		if !h.removed {
			h.fn()
		}
	}
	e.Watcher.Check()
}

// OnResize registers fn under key. Registering a key again replaces fn.
func (e *Env) OnResize(key string, fn func()) (off func()) {
	for _, h := range e.resize {
		if h.key == key {
			h.fn = fn
			return e.resizeRemover(h)
		}
	}
	h := &hook{key: key, fn: fn}
	e.resize = append(e.resize, h)
	return e.resizeRemover(h)
}

func (e *Env) resizeRemover(h *hook) func() {
	return func() {
		if h.removed {
			return
		}
		h.removed = true
		for i, x := range e.resize {
			if x == h {
				e.resize = append(e.resize[:i], e.resize[i+1:]...)
				return
			}
		}
	}
}

// ResizeHooks returns the number of registered resize hooks.
func (e *Env) ResizeHooks() int { return len(e.resize) }

// Close stops the tracker and every running animation.
func (e *Env) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.unwatch()
	e.Tracker.Close()
	e.Engine.CancelAll()
}

// on attaches an event listener when t exists.
func (e *Env) on(td *teardown, t motion.Target, ev Event, fn func()) {
	if !motion.Live(t) {
		return
	}
	td.add(e.Doc.On(t, ev, fn))
}

// reveal plays h when target's top crosses threshold. Repeating reveals
// reverse h when the target drops back below the line. Without a target to
// watch, h plays straight away so content is never left hidden.
func (e *Env) reveal(td *teardown, target motion.Target, threshold float64, mode viewport.Mode, h *tween.Handle) error {
	td.handle(h)
	if !motion.Live(target) {
		motion.Logger().Debug("page: reveal trigger missing, playing immediately")
		h.Play()
		return nil
	}
	tr := viewport.Trigger{Target: target, Threshold: threshold, Mode: mode, OnEnter: h.Play}
	if mode == viewport.Repeat {
		tr.OnLeave = h.Reverse
	}
	off, err := e.Watcher.Observe(tr)
	if err != nil {
		return fmt.Errorf("failed to observe reveal trigger: %w", err)
	}
	td.add(off)
	return nil
}

// teardown collects undo funcs and runs them newest first.
type teardown struct {
	fns []func()
}

func (t *teardown) add(fn func()) {
	if fn != nil {
		t.fns = append(t.fns, fn)
	}
}

func (t *teardown) handle(h *tween.Handle) {
	if h != nil {
		t.add(h.Cancel)
	}
}

func (t *teardown) run() {
	for i := len(t.fns) - 1; i >= 0; i-- {
		t.fns[i]()
	}
	t.fns = nil
}

func toggle(t motion.Target, name string, on bool) {
	if tg, ok := t.(motion.Toggler); ok && motion.Live(t) {
		tg.Toggle(name, on)
	}
}
