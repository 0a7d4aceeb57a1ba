// Package orbit lays items out on a circle around a centre point and
// animates the circle between a collapsed and an expanded radius.
package orbit

import (
	"math"
	"sort"
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/tween"
)

// Point is an offset from the orbit centre.
type Point struct {
	X, Y float64
}

// Angle returns the angle in degrees of item i of n. Item 0 sits at
// 12 o'clock and items advance clockwise.
func Angle(i, n int) float64 {
	if n <= 0 {
		return -90
	}
	return float64(i)/float64(n)*360 - 90
}

// At returns the position of item i of n on a circle of radius r.
func At(i, n int, r float64) Point {
	rad := Angle(i, n) * math.Pi / 180
	return Point{X: math.Cos(rad) * r, Y: math.Sin(rad) * r}
}

// Positions returns the positions of n evenly spaced items.
func Positions(n int, radius float64) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, n)
	for i := range out {
		out[i] = At(i, n, radius)
	}
	return out
}

// Tiers maps viewport width to orbit radii.
type Tiers struct {
	// Wide applies at widths >= Breakpoint.
	Breakpoint float64
	Compact    Radii
	Wide       Radii
	// HoverMinWidth disables hover expansion on narrower viewports.
	HoverMinWidth float64
}

// Radii is a collapsed/expanded pair.
type Radii struct {
	Collapsed float64
	Expanded  float64
}

// DefaultTiers returns the production sizing.
func DefaultTiers() Tiers {
	return Tiers{
		Breakpoint:    1280,
		Compact:       Radii{Collapsed: 146, Expanded: 178},
		Wide:          Radii{Collapsed: 168, Expanded: 210},
		HoverMinWidth: 1024,
	}
}

// Radius returns the radius for a viewport width and hover state.
func (t Tiers) Radius(width float64, expanded bool) float64 {
	r := t.Compact
	if width >= t.Breakpoint {
		r = t.Wide
	}
	if expanded {
		return r.Expanded
	}
	return r.Collapsed
}

// Item is the layout state of one registered item.
type Item struct {
	Index         int
	AngleDeg      float64
	CurrentRadius float64
	TargetRadius  float64
}

// Timing configures the hover transitions.
type Timing struct {
	Enter time.Duration
	Leave time.Duration
	Ease  tween.Ease
	// LeaveRotation is the rotation items spin to while contracting.
	LeaveRotation float64
}

// DefaultTiming returns the production hover timing.
func DefaultTiming() Timing {
	return Timing{
		Enter:         320 * time.Millisecond,
		Leave:         240 * time.Millisecond,
		Ease:          tween.Power2Out,
		LeaveRotation: -90,
	}
}

// Orbit animates a fixed-size ring of registered items.
type Orbit struct {
	engine *tween.Engine
	n      int
	tiers  Tiers
	timing Timing

	items    map[int]motion.Target
	from, to float64
	handle   *tween.Handle
	expanded bool
}

// New returns an orbit of n slots.
func New(engine *tween.Engine, n int, tiers Tiers, timing Timing) *Orbit {
	if timing.Ease == nil {
		timing.Ease = tween.Power2Out
	}
	return &Orbit{
		engine: engine,
		n:      n,
		tiers:  tiers,
		timing: timing,
		items:  make(map[int]motion.Target, n),
	}
}

// Slots returns the number of positions on the ring.
func (o *Orbit) Slots() int { return o.n }

// Register binds target to slot index. Registering a slot again replaces
// its target. Indexes outside the ring are ignored.
func (o *Orbit) Register(index int, target motion.Target) (unregister func()) {
	if index < 0 || index >= o.n {
		motion.Logger().Debug("orbit: index outside ring ignored", "index", index, "slots", o.n)
		return func() {}
	}
	o.items[index] = target
	return func() {
		if o.items[index] == target {
			delete(o.items, index)
		}
	}
}

func (o *Orbit) indexes() []int {
	idx := make([]int, 0, len(o.items))
	for i := range o.items {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Layout places every item on the collapsed ring for width, hidden, without
// animating. It runs on mount and on every resize.
func (o *Orbit) Layout(width float64) {
	if o.handle != nil {
		o.handle.Cancel()
		o.handle = nil
	}
	r := o.tiers.Radius(width, false)
	o.from, o.to = r, r
	o.expanded = false
	for _, i := range o.indexes() {
		p := At(i, o.n, r)
		o.engine.Set(o.items[i], motion.Props{
			motion.X:        p.X,
			motion.Y:        p.Y,
			motion.Opacity:  0,
			motion.Scale:    0,
			motion.Rotation: 0,
		})
	}
}

// Expand moves every item from the fromRadius ring to the toRadius ring.
// Growing fades items in to full opacity and scale; shrinking fades them
// out. Fades start from the items' current values, so an interrupted hover
// carries on from where it is.
func (o *Orbit) Expand(fromRadius, toRadius float64, d time.Duration) *tween.Handle {
	return o.expand(fromRadius, toRadius, d, 0)
}

func (o *Orbit) expand(fromRadius, toRadius float64, d time.Duration, rotation float64) *tween.Handle {
	if o.handle != nil {
		o.handle.Cancel()
	}
	fade := 1.0
	if toRadius < fromRadius {
		fade = 0
	}
	steps := make([]tween.Step, 0, len(o.items))
	for _, i := range o.indexes() {
		a, b := At(i, o.n, fromRadius), At(i, o.n, toRadius)
		steps = append(steps, tween.Step{
			Target: o.items[i],
			From:   motion.Props{motion.X: a.X, motion.Y: a.Y},
			To: motion.Props{
				motion.X: b.X, motion.Y: b.Y,
				motion.Opacity: fade, motion.Scale: fade,
				motion.Rotation: rotation,
			},
			Duration: d,
			Ease:     o.timing.Ease,
			Absolute: true,
		})
	}
	o.from, o.to = fromRadius, toRadius
	o.handle = o.engine.Sequence(steps, tween.Options{})
	return o.handle
}

// HoverEnter expands the ring. It does nothing below HoverMinWidth or when
// already expanded.
func (o *Orbit) HoverEnter(width float64) {
	if width < o.tiers.HoverMinWidth || o.expanded {
		return
	}
	o.expanded = true
	o.expand(o.CurrentRadius(), o.tiers.Radius(width, true), o.timing.Enter, 0)
}

// HoverLeave contracts the ring and spins items out.
func (o *Orbit) HoverLeave(width float64) {
	if width < o.tiers.HoverMinWidth || !o.expanded {
		return
	}
	o.expanded = false
	o.expand(o.CurrentRadius(), o.tiers.Radius(width, false), o.timing.Leave, o.timing.LeaveRotation)
}

// Expanded reports the hover state.
func (o *Orbit) Expanded() bool { return o.expanded }

// TargetRadius is the radius the ring is heading to.
func (o *Orbit) TargetRadius() float64 { return o.to }

// CurrentRadius is the ring's radius right now. Every item moves along its
// own ray with the same ease, so the ring stays circular mid-tween.
func (o *Orbit) CurrentRadius() float64 {
	if o.handle == nil || o.from == o.to {
		return o.to
	}
	k := o.timing.Ease(o.handle.Progress())
	return o.from + (o.to-o.from)*k
}

// Items returns the layout state of registered items in index order.
func (o *Orbit) Items() []Item {
	cur := o.CurrentRadius()
	out := make([]Item, 0, len(o.items))
	for _, i := range o.indexes() {
		out = append(out, Item{Index: i, AngleDeg: Angle(i, o.n), CurrentRadius: cur, TargetRadius: o.to})
	}
	return out
}

// Stop cancels any running transition.
func (o *Orbit) Stop() {
	if o.handle != nil {
		o.handle.Cancel()
		o.handle = nil
	}
}
