package page

import (
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/tween"
	"github.com/Zachkp/portfolio/internal/theme"
)

// Switcher is the theme preference store.
type Switcher interface {
	Resolve(systemDark bool) theme.Mode
	Toggle(systemDark bool) (theme.Mode, error)
}

// ThemeToggle applies the stored colour scheme to the document root and
// flips it when the toggle button is clicked.
type ThemeToggle struct {
	Store Switcher
	// SystemDark reports the system colour scheme preference.
	SystemDark func() bool

	env  *Env
	td   teardown
	root motion.Target
	icon motion.Target
	spin *tween.Handle
}

func (t *ThemeToggle) Name() string { return "theme-toggle" }

func (t *ThemeToggle) Mount(env *Env) error {
	t.env = env
	t.root = env.Doc.Node("root")
	t.icon = env.Doc.Node("theme.icon")
	t.apply(t.Store.Resolve(t.systemDark()))
	env.on(&t.td, env.Doc.Node("theme.toggle"), Click, t.Toggle)
	t.td.add(func() { t.spin.Cancel() })
	return nil
}

func (t *ThemeToggle) Unmount() {
	t.td.run()
}

// Toggle flips the scheme. A failed save keeps the new scheme for this
// visit.
func (t *ThemeToggle) Toggle() {
	mode, err := t.Store.Toggle(t.systemDark())
	if err != nil {
		motion.Logger().Warn("theme: preference not saved", "error", err)
	}
	t.apply(mode)
	t.spin = t.env.Engine.FromTo(t.icon,
		motion.Props{motion.Rotation: -90, motion.Scale: 0},
		motion.Props{motion.Rotation: 0, motion.Scale: 1},
		300*time.Millisecond, tween.Power2Out)
}

func (t *ThemeToggle) apply(m theme.Mode) {
	toggle(t.root, "dark", m == theme.Dark)
}

func (t *ThemeToggle) systemDark() bool {
	return t.SystemDark != nil && t.SystemDark()
}
