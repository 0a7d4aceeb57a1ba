package page

import (
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/tween"
	"github.com/Zachkp/portfolio/internal/motion/viewport"
)

// Experience draws the timeline line, pops in its dots and slides job cards
// in from alternating sides. Every reveal repeats.
type Experience struct {
	td teardown
}

func (x *Experience) Name() string { return "experience" }

func (x *Experience) Mount(env *Env) error {
	cfg := env.Config
	doc := env.Doc

	heading := headingTimeline(env, "experience")
	if err := env.reveal(&x.td, doc.Node("experience.header"), cfg.Trigger(config.TriggerExperienceHead), viewport.Repeat, heading); err != nil {
		return err
	}

	line := env.Engine.Sequence([]tween.Step{{
		Target:   doc.Node("experience.line"),
		From:     motion.Props{motion.ScaleY: 0},
		To:       motion.Props{motion.ScaleY: 1},
		Duration: 1200 * time.Millisecond,
		Ease:     tween.Power2InOut,
	}}, tween.Options{Paused: true})
	if err := env.reveal(&x.td, doc.Node("experience"), cfg.Trigger(config.TriggerExperienceLine), viewport.Repeat, line); err != nil {
		return err
	}

	var err error
	collect(doc, "experience.dots").Indexed(func(i int, dot motion.Target) {
		if err != nil {
			return
		}
		h := env.Engine.Sequence([]tween.Step{{
			Target:   dot,
			From:     motion.Props{motion.Scale: 0, motion.Rotation: 180},
			To:       motion.Props{motion.Scale: 1, motion.Rotation: 0},
			Duration: 600 * time.Millisecond,
			Ease:     tween.BackOut(1.7),
		}}, tween.Options{Paused: true, Delay: time.Duration(i) * 100 * time.Millisecond})
		err = env.reveal(&x.td, dot, cfg.Trigger(config.TriggerExperienceDots), viewport.Repeat, h)
	})
	if err != nil {
		return err
	}

	collect(doc, "experience.cards").Indexed(func(i int, card motion.Target) {
		if err != nil {
			return
		}
		side := -1.0
		if i%2 == 1 {
			side = 1
		}
		from := motion.Props{
			motion.X:         side * 100,
			motion.Y:         50,
			motion.RotationY: side * 15,
			motion.Opacity:   0,
		}
		h := env.Engine.Sequence([]tween.Step{{
			Target:   card,
			From:     from,
			To:       tween.Rest(from),
			Duration: 600 * time.Millisecond,
			Ease:     tween.Power3Out,
		}}, tween.Options{Paused: true})
		err = env.reveal(&x.td, card, cfg.Trigger(config.TriggerExperienceCard), viewport.Repeat, h)
	})
	return err
}

func (x *Experience) Unmount() {
	x.td.run()
}
