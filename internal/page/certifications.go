package page

import (
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/tween"
	"github.com/Zachkp/portfolio/internal/motion/viewport"
)

// groupReveal staggers every element of a list in from hidden once trigger
// crosses threshold.
func groupReveal(env *Env, td *teardown, trigger motion.Target, group string, hidden motion.Props, d time.Duration, ease tween.Ease, threshold float64) error {
	items := collect(env.Doc, group).Ordered()
	if len(items) == 0 {
		return nil
	}
	h := env.Engine.Sequence(
		tween.Stagger(items, hidden, tween.Rest(hidden), d, ease, 100*time.Millisecond),
		tween.Options{Paused: true},
	)
	return env.reveal(td, trigger, threshold, viewport.Once, h)
}

// Certifications reveals the certificate cards and the education and
// learning boxes. Every reveal plays once.
type Certifications struct {
	td teardown
}

func (c *Certifications) Name() string { return "certifications" }

func (c *Certifications) Mount(env *Env) error {
	cfg := env.Config
	doc := env.Doc

	if err := groupReveal(env, &c.td, doc.Node("certifications"), "certifications.header",
		motion.Props{motion.Y: 60, motion.Opacity: 0}, time.Second, tween.Power3Out,
		cfg.Trigger(config.TriggerCertsHeader)); err != nil {
		return err
	}

	var err error
	collect(doc, "certifications.cards").Indexed(func(i int, card motion.Target) {
		if err != nil {
			return
		}
		from := motion.Props{motion.Y: 60, motion.Opacity: 0, motion.Scale: 0.9, motion.RotationY: -10}
		h := env.Engine.Sequence([]tween.Step{{
			Target:   card,
			From:     from,
			To:       tween.Rest(from),
			Duration: 800 * time.Millisecond,
			Ease:     tween.BackOut(1.4),
		}}, tween.Options{Paused: true, Delay: time.Duration(i) * 100 * time.Millisecond})
		err = env.reveal(&c.td, card, cfg.Trigger(config.TriggerCertsCards), viewport.Once, h)
	})
	if err != nil {
		return err
	}

	for _, box := range []struct {
		ref string
		x   float64
	}{
		{"certifications.education", -60},
		{"certifications.learning", 60},
	} {
		t := doc.Node(box.ref)
		if !motion.Live(t) {
			continue
		}
		from := motion.Props{motion.X: box.x, motion.Opacity: 0}
		h := env.Engine.Sequence([]tween.Step{{
			Target:   t,
			From:     from,
			To:       tween.Rest(from),
			Duration: 900 * time.Millisecond,
			Ease:     tween.Power3Out,
		}}, tween.Options{Paused: true})
		if err := env.reveal(&c.td, t, cfg.Trigger(config.TriggerCertsBoxes), viewport.Once, h); err != nil {
			return err
		}
	}
	return nil
}

func (c *Certifications) Unmount() {
	c.td.run()
}
