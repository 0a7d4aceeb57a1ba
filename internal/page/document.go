package page

import (
	"sort"

	"github.com/Zachkp/portfolio/internal/motion"
)

// Event is a pointer event a component can listen for.
type Event string

const (
	PointerEnter Event = "mouseenter"
	PointerLeave Event = "mouseleave"
	Click        Event = "click"
)

// Document is the rendered page as seen by components. References are the
// data-motion attributes of the markup; sections are referenced by id.
type Document interface {
	// Node returns the element with the given reference, or nil.
	Node(ref string) motion.Target
	// Items calls register for every element of a list group, passing its
	// position in the list.
	Items(group string, register func(index int, t motion.Target))
	// On attaches fn to an event of t until off is called.
	On(t motion.Target, ev Event, fn func()) (off func())
	// ScrollTo smoothly scrolls the section with the given id into view.
	ScrollTo(id string)
	// Copy writes text to the clipboard.
	Copy(text string) error
}

// Registry holds list items by index. Registering an index again replaces
// its element, so re-rendered lists never accumulate stale entries.
type Registry struct {
	items map[int]motion.Target
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[int]motion.Target)}
}

// Register stores t at index. The returned func removes it again unless the
// index has since been taken by another element.
func (r *Registry) Register(index int, t motion.Target) (unregister func()) {
	r.items[index] = t
	return func() {
		if r.items[index] == t {
			delete(r.items, index)
		}
	}
}

// Len returns the number of registered items.
func (r *Registry) Len() int { return len(r.items) }

// At returns the item at index, or nil.
func (r *Registry) At(index int) motion.Target { return r.items[index] }

// Ordered returns live items sorted by index.
func (r *Registry) Ordered() []motion.Target {
	idx := make([]int, 0, len(r.items))
	for i, t := range r.items {
		if motion.Live(t) {
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)
	out := make([]motion.Target, len(idx))
	for k, i := range idx {
		out[k] = r.items[i]
	}
	return out
}

// Indexed calls fn for every live item in index order.
func (r *Registry) Indexed(fn func(index int, t motion.Target)) {
	idx := make([]int, 0, len(r.items))
	for i := range r.items {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	for _, i := range idx {
		if t := r.items[i]; motion.Live(t) {
			fn(i, t)
		}
	}
}

// collect fills a registry from a document list group.
func collect(doc Document, group string) *Registry {
	r := NewRegistry()
	doc.Items(group, func(i int, t motion.Target) { r.Register(i, t) })
	return r
}
