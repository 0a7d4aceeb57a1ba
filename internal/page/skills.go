package page

import (
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/tween"
	"github.com/Zachkp/portfolio/internal/motion/viewport"
)

// Skills staggers the section heading in and settles scattered skill
// badges into the grid as each one scrolls into view.
type Skills struct {
	td    teardown
	items *Registry
}

func (s *Skills) Name() string { return "skills" }

func (s *Skills) Mount(env *Env) error {
	cfg := env.Config
	heading := collect(env.Doc, "skills.header").Ordered()
	hidden := motion.Props{motion.Y: 40, motion.Opacity: 0}
	intro := env.Engine.Sequence(
		tween.Stagger(heading, hidden, tween.Rest(hidden), 800*time.Millisecond, tween.Power3Out, 100*time.Millisecond),
		tween.Options{Paused: true},
	)
	if err := env.reveal(&s.td, env.Doc.Node("skills"), cfg.Trigger(config.TriggerSkillsHeader), viewport.Once, intro); err != nil {
		return err
	}

	settle := tween.BackOut(1.7)
	s.items = collect(env.Doc, "skills.items")
	var err error
	s.items.Indexed(func(i int, t motion.Target) {
		if err != nil {
			return
		}
		scatter := motion.Props{
			motion.X:        (env.Rand.Float64() - 0.5) * 200,
			motion.Y:        (env.Rand.Float64() - 0.5) * 200,
			motion.Rotation: (env.Rand.Float64() - 0.5) * 30,
			motion.Scale:    0.8,
			motion.Opacity:  0,
		}
		h := env.Engine.Sequence([]tween.Step{{
			Target:   t,
			From:     scatter,
			To:       tween.Rest(scatter),
			Duration: time.Second,
			Ease:     settle,
		}}, tween.Options{Paused: true, Delay: time.Duration(i) * 100 * time.Millisecond})
		err = env.reveal(&s.td, t, cfg.Trigger(config.TriggerSkillsItems), viewport.Once, h)
	})
	return err
}

func (s *Skills) Unmount() {
	s.td.run()
}
