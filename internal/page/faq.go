package page

import (
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/tween"
	"github.com/Zachkp/portfolio/internal/motion/viewport"
)

// FAQ reveals the questions and runs the accordion. At most one answer is
// open; the first starts open.
type FAQ struct {
	td      teardown
	env     *Env
	answers *Registry
	toggles *Registry
	open    int
	fade    *tween.Handle
}

func (f *FAQ) Name() string { return "faq" }

func (f *FAQ) Mount(env *Env) error {
	f.env = env
	cfg := env.Config
	doc := env.Doc

	head := env.Engine.Sequence([]tween.Step{{
		Target:   doc.Node("faq.header"),
		From:     motion.Props{motion.Y: 50, motion.Opacity: 0},
		To:       motion.Props{motion.Y: 0, motion.Opacity: 1},
		Duration: 800 * time.Millisecond,
		Ease:     tween.Power3Out,
	}}, tween.Options{Paused: true})
	if err := env.reveal(&f.td, doc.Node("faq"), cfg.Trigger(config.TriggerFAQHeader), viewport.Once, head); err != nil {
		return err
	}

	var err error
	collect(doc, "faq.items").Indexed(func(i int, item motion.Target) {
		if err != nil {
			return
		}
		h := env.Engine.Sequence([]tween.Step{{
			Target:   item,
			From:     motion.Props{motion.Y: 30, motion.Opacity: 0},
			To:       motion.Props{motion.Y: 0, motion.Opacity: 1},
			Duration: 600 * time.Millisecond,
			Ease:     tween.Power2Out,
		}}, tween.Options{Paused: true, Delay: time.Duration(i) * 100 * time.Millisecond})
		err = env.reveal(&f.td, item, cfg.Trigger(config.TriggerFAQItems), viewport.Once, h)
	})
	if err != nil {
		return err
	}

	f.answers = collect(doc, "faq.answers")
	f.toggles = collect(doc, "faq.questions")
	f.toggles.Indexed(func(i int, q motion.Target) {
		env.on(&f.td, q, Click, func() { f.Toggle(i) })
	})
	f.open = -1
	f.show(0, false)
	f.td.add(func() { f.fade.Cancel() })
	return nil
}

func (f *FAQ) Unmount() {
	f.td.run()
}

// Open returns the index of the open answer, or -1.
func (f *FAQ) Open() int { return f.open }

// Toggle opens answer i, or closes it when it is already open.
func (f *FAQ) Toggle(i int) {
	if i == f.open {
		f.show(-1, true)
		return
	}
	f.show(i, true)
}

func (f *FAQ) show(i int, animate bool) {
	f.fade.Cancel()
	if prev := f.answers.At(f.open); prev != nil {
		toggle(prev, "open", false)
		f.env.Engine.Set(prev, motion.Props{motion.Opacity: 0})
	}
	f.open = i
	next := f.answers.At(i)
	if next == nil {
		return
	}
	toggle(next, "open", true)
	if !animate {
		f.env.Engine.Set(next, motion.Props{motion.Opacity: 1, motion.Y: 0})
		return
	}
	f.fade = f.env.Engine.FromTo(next,
		motion.Props{motion.Opacity: 0, motion.Y: -8},
		motion.Props{motion.Opacity: 1, motion.Y: 0},
		300*time.Millisecond, tween.Power2Out)
}
