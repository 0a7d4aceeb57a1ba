// Package section resolves which page section the scroll position is in.
package section

import "github.com/Zachkp/portfolio/internal/motion"

// TopGuard is the scroll offset below which the first section is always
// active. The hero's padding puts its geometric top below the fold edge.
const TopGuard = 100.0

// Descriptor is one section's extent in document coordinates.
type Descriptor struct {
	ID     string
	Top    float64
	Height float64
}

// Contains reports whether y lies in [Top, Top+Height).
func (d Descriptor) Contains(y float64) bool {
	return y >= d.Top && y < d.Top+d.Height
}

// Resolve returns the first section, in document order, containing
// scrollY+headerOffset. Below TopGuard the first section wins regardless of
// geometry. ok is false when nothing matches.
func Resolve(sections []Descriptor, scrollY, headerOffset float64) (id string, ok bool) {
	if len(sections) == 0 {
		return "", false
	}
	if scrollY < TopGuard {
		return sections[0].ID, true
	}
	probe := scrollY + headerOffset
	for _, s := range sections {
		if s.Contains(probe) {
			return s.ID, true
		}
	}
	return "", false
}

// Named pairs a section id with its node.
type Named struct {
	ID     string
	Target motion.Target
}

// Measure converts live node boxes into document-space descriptors. Missing
// nodes are skipped; nodes without layout get zero height and never match.
func Measure(nodes []Named, scrollY float64) []Descriptor {
	out := make([]Descriptor, 0, len(nodes))
	for _, n := range nodes {
		if !motion.Live(n.Target) {
			continue
		}
		b := n.Target.Bounds()
		h := b.Height
		if h < 0 {
			h = 0
		}
		out = append(out, Descriptor{ID: n.ID, Top: scrollY + b.Top, Height: h})
	}
	return out
}

// Resolver remembers the active section across updates.
type Resolver struct {
	HeaderOffset float64

	nodes    []Named
	layout   []Descriptor
	active   string
	measured bool
}

// NewResolver tracks nodes, which must be in document order.
func NewResolver(nodes []Named, headerOffset float64) *Resolver {
	return &Resolver{nodes: nodes, HeaderOffset: headerOffset}
}

// Relayout re-measures section geometry. Call it whenever sections may
// have moved.
func (r *Resolver) Relayout(scrollY float64) {
	r.layout = Measure(r.nodes, scrollY)
	r.measured = true
}

// Layout returns the last measured descriptors.
func (r *Resolver) Layout() []Descriptor { return r.layout }

// Active returns the current section id, empty when none.
func (r *Resolver) Active() string { return r.active }

// Update resolves scrollY and reports whether the active section changed.
// Geometry is measured lazily on first use.
func (r *Resolver) Update(scrollY float64) (id string, changed bool) {
	if !r.measured {
		r.Relayout(scrollY)
	}
	id, _ = Resolve(r.layout, scrollY, r.HeaderOffset)
	if id == r.active {
		return id, false
	}
	r.active = id
	return id, true
}
