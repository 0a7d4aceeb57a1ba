package page

import (
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/header"
	"github.com/Zachkp/portfolio/internal/motion/scroll"
	"github.com/Zachkp/portfolio/internal/motion/section"
	"github.com/Zachkp/portfolio/internal/motion/tween"
)

// Sections in document order, as tracked by the header.
var Sections = []string{"hero", "work", "skills", "experience", "contact"}

// NavItems are the sections with a navigation button.
var NavItems = []string{"work", "skills", "experience", "contact"}

// Header slides the navigation bar in, hides it while scrolling down,
// moves the active-section indicator and drives the mobile menu.
//
// The indicator is a one pixel wide bar scaled horizontally to the width
// of the active button.
type Header struct {
	// OnSection runs whenever the active section changes. id is empty when
	// no section is under the probe line.
	OnSection func(id string)

	env       *Env
	td        teardown
	node      motion.Target
	nav       motion.Target
	indicator motion.Target
	menu      motion.Target
	buttons   map[string]motion.Target
	machine   *header.Machine
	resolver  *section.Resolver
	menuOpen  bool

	slide, slider, fold *tween.Handle
}

func (h *Header) Name() string { return "header" }

func (h *Header) Mount(env *Env) error {
	h.env = env
	cfg := env.Config
	doc := env.Doc

	h.node = doc.Node("header")
	h.nav = doc.Node("header.nav")
	h.indicator = doc.Node("header.indicator")
	h.menu = doc.Node("header.menu")
	h.buttons = make(map[string]motion.Target, len(NavItems))
	for _, id := range NavItems {
		h.buttons[id] = doc.Node("nav." + id)
	}

	env.Engine.Set(h.node, motion.Props{motion.Y: -100, motion.Opacity: 0})
	h.td.handle(env.Engine.Sequence([]tween.Step{{
		Target:   h.node,
		To:       motion.Props{motion.Y: 0, motion.Opacity: 1},
		Duration: cfg.Header.Intro,
		Ease:     tween.Power3Out,
	}}, tween.Options{Delay: cfg.Header.IntroDelay}))
	env.Engine.Set(h.indicator, motion.Props{motion.Opacity: 0})
	env.Engine.Set(h.menu, motion.Props{motion.ScaleY: 0, motion.Opacity: 0})

	h.machine = header.New(cfg.HeaderMachine())
	h.machine.OnTransition = h.transition
	h.machine.OnScrolled = func(on bool) { toggle(h.node, "scrolled", on) }

	named := make([]section.Named, 0, len(Sections))
	for _, id := range Sections {
		named = append(named, section.Named{ID: id, Target: doc.Node(id)})
	}
	h.resolver = section.NewResolver(named, cfg.Header.Offset)

	h.td.add(env.Tracker.Subscribe("header", h.scroll))
	h.td.add(env.Tracker.OnSettle("header", h.machine.Scroll))
	h.td.add(env.OnResize("header", func() {
		h.resolver.Relayout(env.Viewport.ScrollY())
		h.moveIndicator(h.resolver.Active())
	}))

	env.on(&h.td, doc.Node("header.logo"), Click, func() { h.Navigate("hero") })
	env.on(&h.td, doc.Node("header.menu-toggle"), Click, func() { h.SetMenuOpen(!h.menuOpen) })
	for _, id := range NavItems {
		env.on(&h.td, h.buttons[id], Click, func() { h.Navigate(id) })
		env.on(&h.td, doc.Node("menu."+id), Click, func() { h.Navigate(id) })
	}

	h.scroll(scroll.Update{OffsetY: env.Viewport.ScrollY()})
	return nil
}

func (h *Header) Unmount() {
	for _, hd := range []*tween.Handle{h.slide, h.slider, h.fold} {
		hd.Cancel()
	}
	h.td.run()
}

// State returns the header visibility.
func (h *Header) State() header.State { return h.machine.State() }

// Active returns the active section id.
func (h *Header) Active() string { return h.resolver.Active() }

// MenuOpen reports whether the mobile menu is open.
func (h *Header) MenuOpen() bool { return h.menuOpen }

// SetMenuOpen opens or closes the mobile menu. Opening it reveals the
// header.
func (h *Header) SetMenuOpen(open bool) {
	if open == h.menuOpen {
		return
	}
	h.menuOpen = open
	h.machine.SetMenuOpen(open)
	toggle(h.menu, "open", open)
	d, ease := h.env.Config.Header.Menu, h.env.Config.HeaderEase()
	h.fold.Cancel()
	if open {
		h.fold = h.env.Engine.FromTo(h.menu,
			motion.Props{motion.ScaleY: 0, motion.Opacity: 0},
			motion.Props{motion.ScaleY: 1, motion.Opacity: 1}, d, ease)
		return
	}
	h.fold = h.env.Engine.To(h.menu, motion.Props{motion.ScaleY: 0, motion.Opacity: 0}, d, ease)
}

// Navigate scrolls to a section, reveals the header and closes the menu.
func (h *Header) Navigate(id string) {
	h.env.Doc.ScrollTo(id)
	h.machine.Navigate()
	h.SetMenuOpen(false)
}

// scroll re-measures the sections on every tick. Image loads and the FAQ
// accordion move section tops without a resize.
func (h *Header) scroll(u scroll.Update) {
	h.machine.Scroll(u)
	h.resolver.Relayout(h.env.Viewport.ScrollY())
	if id, changed := h.resolver.Update(u.OffsetY); changed {
		h.moveIndicator(id)
		if h.OnSection != nil {
			h.OnSection(id)
		}
	}
}

func (h *Header) transition(tr header.Transition) {
	cfg := h.env.Config.Header
	y, d := 0.0, cfg.Show
	switch {
	case tr.To == header.Hidden:
		y, d = -100, cfg.Hide
	case tr.Cause == header.CauseSettle:
		d = cfg.SettleShow
	}
	h.slide.Cancel()
	h.slide = h.env.Engine.To(h.node, motion.Props{motion.Y: y}, d, h.env.Config.HeaderEase())
}

// moveIndicator slides the indicator under the button for id. Sections
// without a button fade it out.
func (h *Header) moveIndicator(id string) {
	d, ease := h.env.Config.Header.Indicator, h.env.Config.HeaderEase()
	btn := h.buttons[id]
	h.slider.Cancel()
	if !motion.Live(btn) || !motion.Live(h.nav) {
		h.slider = h.env.Engine.To(h.indicator, motion.Props{motion.Opacity: 0}, d, ease)
		return
	}
	b, n := btn.Bounds(), h.nav.Bounds()
	h.slider = h.env.Engine.To(h.indicator, motion.Props{
		motion.X:       b.Left - n.Left,
		motion.ScaleX:  b.Width,
		motion.Opacity: 1,
	}, d, ease)
}
