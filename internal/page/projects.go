package page

import (
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/tween"
	"github.com/Zachkp/portfolio/internal/motion/viewport"
)

// headingTimeline builds the badge, title and lead entrance shared by the
// work and experience sections. It is created paused with its start state
// already applied.
func headingTimeline(env *Env, prefix string) *tween.Handle {
	return env.Engine.Sequence([]tween.Step{
		{
			Target:   env.Doc.Node(prefix + ".badge"),
			From:     motion.Props{motion.Y: 30, motion.Opacity: 0, motion.Scale: 0.8},
			To:       motion.Props{motion.Y: 0, motion.Opacity: 1, motion.Scale: 1},
			Duration: 800 * time.Millisecond,
			Ease:     tween.BackOut(1.7),
		},
		{
			Target:   env.Doc.Node(prefix + ".title"),
			From:     motion.Props{motion.Y: 50, motion.Opacity: 0},
			To:       motion.Props{motion.Y: 0, motion.Opacity: 1},
			Duration: time.Second,
			Ease:     tween.Power3Out,
			Offset:   -400 * time.Millisecond,
		},
		{
			Target:   env.Doc.Node(prefix + ".lead"),
			From:     motion.Props{motion.Y: 30, motion.Opacity: 0},
			To:       motion.Props{motion.Y: 0, motion.Opacity: 1},
			Duration: 800 * time.Millisecond,
			Ease:     tween.Power2Out,
			Offset:   -600 * time.Millisecond,
		},
	}, tween.Options{Paused: true})
}

// Projects reveals the case-study cards and lifts a card while the pointer
// is over it. Reveals repeat: scrolling back above a card reverses it.
type Projects struct {
	td    teardown
	cards *Registry
	hover map[int]*tween.Handle
}

func (p *Projects) Name() string { return "projects" }

func (p *Projects) Mount(env *Env) error {
	cfg := env.Config
	heading := headingTimeline(env, "work")
	if err := env.reveal(&p.td, env.Doc.Node("work.header"), cfg.Trigger(config.TriggerProjectsHeader), viewport.Repeat, heading); err != nil {
		return err
	}

	p.cards = collect(env.Doc, "work.cards")
	images := collect(env.Doc, "work.images")
	overlays := collect(env.Doc, "work.overlays")
	p.hover = make(map[int]*tween.Handle)

	var err error
	p.cards.Indexed(func(i int, card motion.Target) {
		if err != nil {
			return
		}
		img := images.At(i)
		entrance := env.Engine.Sequence([]tween.Step{
			{
				Target:   card,
				From:     motion.Props{motion.Y: 100, motion.RotationX: -15, motion.Opacity: 0},
				To:       motion.Props{motion.Y: 0, motion.RotationX: 0, motion.Opacity: 1},
				Duration: time.Second,
				Ease:     tween.Power3Out,
			},
			{
				Target:   img,
				From:     motion.Props{motion.Scale: 0.8, motion.Opacity: 0},
				To:       motion.Props{motion.Scale: 1, motion.Opacity: 1},
				Duration: 800 * time.Millisecond,
				Offset:   -700 * time.Millisecond,
			},
		}, tween.Options{Paused: true})
		if err = env.reveal(&p.td, card, cfg.Trigger(config.TriggerProjectsCards), viewport.Repeat, entrance); err != nil {
			return
		}

		env.Engine.Set(overlays.At(i), motion.Props{motion.Opacity: 0})
		lift := env.Engine.Sequence([]tween.Step{
			{Target: card, To: motion.Props{motion.Y: -10}, Duration: 300 * time.Millisecond, Ease: tween.Power2Out},
			{Target: img, To: motion.Props{motion.Scale: 1.05}, Duration: 300 * time.Millisecond, Absolute: true},
			{Target: overlays.At(i), To: motion.Props{motion.Opacity: 0.3}, Duration: 300 * time.Millisecond, Absolute: true},
		}, tween.Options{Paused: true})
		p.hover[i] = lift
		p.td.handle(lift)
		env.on(&p.td, card, PointerEnter, lift.Play)
		env.on(&p.td, card, PointerLeave, lift.Reverse)
	})
	return err
}

func (p *Projects) Unmount() {
	p.td.run()
}

// Hover returns the hover timeline of card i.
func (p *Projects) Hover(i int) *tween.Handle { return p.hover[i] }
