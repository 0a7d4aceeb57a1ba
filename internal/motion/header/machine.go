// Package header decides whether the navigation header is shown.
//
// The machine applies at every viewport width. It hides on a significant
// downward scroll past HideAfter and shows again on upward scroll, when
// scrolling settles, when the menu opens, or when navigation is requested.
package header

import (
	"math"

	"github.com/Zachkp/portfolio/internal/motion/scroll"
)

// State is the header visibility.
type State int

const (
	Visible State = iota
	Hidden
)

func (s State) String() string {
	if s == Hidden {
		return "hidden"
	}
	return "visible"
}

// Cause names what drove a transition. The header component picks its
// animation duration from it.
type Cause int

const (
	CauseScroll Cause = iota
	CauseSettle
	CauseMenu
	CauseNavigate
)

// Transition is emitted on every real state change.
type Transition struct {
	From, To State
	Cause    Cause
}

// Config holds the thresholds.
type Config struct {
	// HideAfter is the offset past which a downward scroll hides the header.
	HideAfter float64
	// Jitter is the minimum |deltaY| that counts as a scroll for hiding.
	Jitter float64
	// ScrolledAfter is the offset past which the header counts as scrolled
	// (drawn with a shadow).
	ScrolledAfter float64
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{HideAfter: 100, Jitter: 5, ScrolledAfter: 20}
}

// Machine is the header visibility state machine. It starts Visible.
type Machine struct {
	cfg      Config
	state    State
	menuOpen bool
	scrolled bool

	// OnTransition runs after every change of State.
	OnTransition func(Transition)
	// OnScrolled runs when the scrolled flag flips.
	OnScrolled func(bool)
}

// New returns a machine in the Visible state.
func New(cfg Config) *Machine {
	return &Machine{cfg: cfg}
}

// State returns the current visibility.
func (m *Machine) State() State { return m.state }

// MenuOpen reports the menu flag.
func (m *Machine) MenuOpen() bool { return m.menuOpen }

// Scrolled reports whether the page is past ScrolledAfter.
func (m *Machine) Scrolled() bool { return m.scrolled }

// Scroll consumes one tracker update.
func (m *Machine) Scroll(u scroll.Update) {
	if s := u.OffsetY > m.cfg.ScrolledAfter; s != m.scrolled {
		m.scrolled = s
		if m.OnScrolled != nil {
			m.OnScrolled(s)
		}
	}
	if u.Settled {
		m.Settle()
		return
	}
	switch {
	case u.Direction == scroll.Down &&
		u.DeltaY > 0 &&
		math.Abs(u.DeltaY) > m.cfg.Jitter &&
		u.OffsetY > m.cfg.HideAfter &&
		!m.menuOpen:
		m.to(Hidden, CauseScroll)
	case u.Direction == scroll.Up:
		m.to(Visible, CauseScroll)
	}
}

// Settle shows the header once scrolling has stopped.
func (m *Machine) Settle() {
	m.to(Visible, CauseSettle)
}

// SetMenuOpen records the menu flag. Opening the menu forces Visible.
func (m *Machine) SetMenuOpen(open bool) {
	m.menuOpen = open
	if open {
		m.to(Visible, CauseMenu)
	}
}

// Navigate forces Visible for a programmatic scroll to a section.
func (m *Machine) Navigate() {
	m.to(Visible, CauseNavigate)
}

func (m *Machine) to(s State, c Cause) {
	if s == Hidden && m.menuOpen {
		return
	}
	if s == m.state {
		return
	}
	tr := Transition{From: m.state, To: s, Cause: c}
	m.state = s
	if m.OnTransition != nil {
		m.OnTransition(tr)
	}
}
