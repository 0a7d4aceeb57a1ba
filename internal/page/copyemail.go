package page

import (
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/tween"
)

// CopyEmail copies the address to the clipboard and confirms with a
// tooltip that hides itself after HideAfter. A second tooltip hints at the
// action while the pointer is over the button.
type CopyEmail struct {
	Email     string
	HideAfter time.Duration

	env     *Env
	td      teardown
	tooltip motion.Target
	hint    motion.Target
	hide    motion.Timer
	copied  bool
	pop     *tween.Handle
	peek    *tween.Handle
}

var (
	tipHidden = motion.Props{motion.Opacity: 0, motion.Y: 10, motion.Scale: 0.9}
	tipShown  = motion.Props{motion.Opacity: 1, motion.Y: 0, motion.Scale: 1}
	tipGone   = motion.Props{motion.Opacity: 0, motion.Y: -10, motion.Scale: 0.9}
)

func (c *CopyEmail) Name() string { return "copy-email" }

func (c *CopyEmail) Mount(env *Env) error {
	c.env = env
	if c.HideAfter <= 0 {
		c.HideAfter = 1400 * time.Millisecond
	}
	c.tooltip = env.Doc.Node("copy-email.tooltip")
	c.hint = env.Doc.Node("copy-email.hint")
	env.Engine.Set(c.tooltip, tipHidden)
	env.Engine.Set(c.hint, tipHidden)

	button := env.Doc.Node("copy-email")
	env.on(&c.td, button, Click, c.Copy)
	env.on(&c.td, button, PointerEnter, func() {
		c.peek.Cancel()
		c.peek = env.Engine.FromTo(c.hint, tipHidden, tipShown, 300*time.Millisecond, tween.Power3Out)
	})
	env.on(&c.td, button, PointerLeave, func() {
		c.peek.Cancel()
		c.peek = env.Engine.To(c.hint, tipGone, 300*time.Millisecond, tween.Power3In)
	})
	c.td.add(func() {
		if c.hide != nil {
			c.hide.Stop()
			c.hide = nil
		}
		c.pop.Cancel()
		c.peek.Cancel()
	})
	return nil
}

func (c *CopyEmail) Unmount() {
	c.td.run()
}

// Copied reports whether the confirmation is showing.
func (c *CopyEmail) Copied() bool { return c.copied }

// Copy writes the address and shows the confirmation. Copying again while
// it shows restarts the hide countdown.
func (c *CopyEmail) Copy() {
	if err := c.env.Doc.Copy(c.Email); err != nil {
		motion.Logger().Warn("copy-email: clipboard write failed", "error", err)
		return
	}
	c.copied = true
	toggle(c.tooltip, "copied", true)
	c.pop.Cancel()
	c.pop = c.env.Engine.FromTo(c.tooltip, tipHidden, tipShown, 300*time.Millisecond, tween.Power3Out)
	if c.hide != nil {
		c.hide.Stop()
	}
	c.hide = c.env.Sched.AfterFunc(c.HideAfter, func() {
		c.hide = nil
		c.pop = c.env.Engine.Sequence([]tween.Step{{
			Target:   c.tooltip,
			To:       tipGone,
			Duration: 300 * time.Millisecond,
			Ease:     tween.Power3In,
		}}, tween.Options{OnComplete: func() {
			c.copied = false
			toggle(c.tooltip, "copied", false)
		}})
	})
}
