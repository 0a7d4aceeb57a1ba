package page

import (
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/orbit"
	"github.com/Zachkp/portfolio/internal/motion/tween"
)

// heroIntro lists the intro elements in playback order. The first two start
// together; every later one overlaps the previous by 300ms.
var heroIntro = []struct {
	ref string
	dur time.Duration
}{
	{"hero.image", 800 * time.Millisecond},
	{"hero.title", 600 * time.Millisecond},
	{"hero.subtitle", 400 * time.Millisecond},
	{"hero.description", 400 * time.Millisecond},
	{"hero.contact", 400 * time.Millisecond},
	{"hero.buttons", 400 * time.Millisecond},
	{"hero.social", 400 * time.Millisecond},
}

// Hero plays the intro timeline and runs the skill orbit around the
// portrait.
type Hero struct {
	env   *Env
	td    teardown
	intro *tween.Handle
	orbit *orbit.Orbit
}

func (h *Hero) Name() string { return "hero" }

func (h *Hero) Mount(env *Env) error {
	h.env = env
	steps := make([]tween.Step, 0, len(heroIntro))
	for i, it := range heroIntro {
		t := env.Doc.Node(it.ref)
		env.Engine.Set(t, motion.Props{motion.Opacity: 0, motion.Y: 30})
		st := tween.Step{
			Target:   t,
			To:       motion.Props{motion.Opacity: 1, motion.Y: 0},
			Duration: it.dur,
			Ease:     tween.Power2Out,
			Offset:   -300 * time.Millisecond,
		}
		if i < 2 {
			st.Offset, st.Absolute = 0, true
		}
		steps = append(steps, st)
	}
	h.intro = env.Engine.Sequence(steps, tween.Options{})
	h.td.handle(h.intro)

	cfg := env.Config
	h.orbit = orbit.New(env.Engine, cfg.Orbit.Items, cfg.OrbitTiers(), cfg.OrbitTiming())
	env.Doc.Items("hero.skills", func(i int, t motion.Target) {
		h.td.add(h.orbit.Register(i, t))
	})
	h.orbit.Layout(env.Viewport.Width())
	h.td.add(h.orbit.Stop)

	zone := env.Doc.Node("hero.orbit")
	env.on(&h.td, zone, PointerEnter, func() { h.orbit.HoverEnter(env.Viewport.Width()) })
	env.on(&h.td, zone, PointerLeave, func() { h.orbit.HoverLeave(env.Viewport.Width()) })
	h.td.add(env.OnResize("hero", func() { h.orbit.Layout(env.Viewport.Width()) }))
	return nil
}

func (h *Hero) Unmount() {
	h.td.run()
}

// Orbit exposes the skill orbit.
func (h *Hero) Orbit() *orbit.Orbit { return h.orbit }

// Intro returns the intro timeline.
func (h *Hero) Intro() *tween.Handle { return h.intro }
