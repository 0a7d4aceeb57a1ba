package page

import (
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/tween"
)

// Contact staggers the heading and the contact info cards in once.
type Contact struct {
	td teardown
}

func (c *Contact) Name() string { return "contact" }

func (c *Contact) Mount(env *Env) error {
	cfg := env.Config
	doc := env.Doc
	if err := groupReveal(env, &c.td, doc.Node("contact"), "contact.heading",
		motion.Props{motion.Y: 40, motion.Opacity: 0}, 800*time.Millisecond, tween.Power3Out,
		cfg.Trigger(config.TriggerContactHeading)); err != nil {
		return err
	}
	return groupReveal(env, &c.td, doc.Node("contact.info"), "contact.info",
		motion.Props{motion.Y: 30, motion.Opacity: 0, motion.Scale: 0.98}, 600*time.Millisecond, tween.Power2Out,
		cfg.Trigger(config.TriggerContactInfo))
}

func (c *Contact) Unmount() {
	c.td.run()
}
