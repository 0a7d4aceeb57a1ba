// Package page contains the animated sections of the portfolio page. Each
// component binds document nodes to the motion primitives on Mount and
// releases every subscription, listener, timer and tween on Unmount.
package page

import (
	"fmt"

	"github.com/Zachkp/portfolio/internal/motion"
)

// Component is one animated part of the page.
type Component interface {
	Name() string
	Mount(env *Env) error
	Unmount()
}

// Page mounts components in document order and unmounts them in reverse.
type Page struct {
	env        *Env
	components []Component
	mounted    int
}

// New returns a page over env.
func New(env *Env, components ...Component) *Page {
	return &Page{env: env, components: components}
}

// Env returns the shared runtime.
func (p *Page) Env() *Env { return p.env }

// Mount mounts every component. If one fails, the ones already mounted are
// unmounted again and the error is returned.
func (p *Page) Mount() error {
	for _, c := range p.components[p.mounted:] {
		if err := c.Mount(p.env); err != nil {
			p.Unmount()
			return fmt.Errorf("failed to mount %s: %w", c.Name(), err)
		}
		p.mounted++
		motion.Logger().Debug("page: mounted", "component", c.Name())
	}
	p.env.Watcher.Check()
	return nil
}

// Unmount tears components down newest first.
func (p *Page) Unmount() {
	for p.mounted > 0 {
		p.mounted--
		p.components[p.mounted].Unmount()
	}
}

// Mounted reports how many components are mounted.
func (p *Page) Mounted() int { return p.mounted }

// Site describes the components of the portfolio page.
type Site struct {
	Email      string
	Theme      Switcher
	SystemDark func() bool
	OnSection  func(id string)
}

// Components returns the page's components in document order.
func (s Site) Components() []Component {
	cs := []Component{
		&Header{OnSection: s.OnSection},
		&Hero{},
		&Projects{},
		&Skills{},
		&Experience{},
		&Certifications{},
		&FAQ{},
		&Contact{},
		&CopyEmail{Email: s.Email},
	}
	if s.Theme != nil {
		cs = append(cs, &ThemeToggle{Store: s.Theme, SystemDark: s.SystemDark})
	}
	return cs
}
