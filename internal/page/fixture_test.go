package page

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/motiontest"
)

type listener struct {
	fn      func()
	removed bool
}

// fakeDoc is an in-memory Document.
type fakeDoc struct {
	nodes     map[string]*motiontest.Node
	groups    map[string][]*motiontest.Node
	listeners map[*motiontest.Node]map[Event][]*listener
	scrolled  []string
	clipboard []string
	copyErr   error
}

func newFakeDoc() *fakeDoc {
	return &fakeDoc{
		nodes:     map[string]*motiontest.Node{},
		groups:    map[string][]*motiontest.Node{},
		listeners: map[*motiontest.Node]map[Event][]*listener{},
	}
}

func (d *fakeDoc) Node(ref string) motion.Target {
	if n, ok := d.nodes[ref]; ok {
		return n
	}
	return nil
}

func (d *fakeDoc) Items(group string, register func(int, motion.Target)) {
	for i, n := range d.groups[group] {
		register(i, n)
	}
}

func (d *fakeDoc) On(t motion.Target, ev Event, fn func()) func() {
	n := t.(*motiontest.Node)
	if d.listeners[n] == nil {
		d.listeners[n] = map[Event][]*listener{}
	}
	l := &listener{fn: fn}
	d.listeners[n][ev] = append(d.listeners[n][ev], l)
	return func() { l.removed = true }
}

func (d *fakeDoc) ScrollTo(id string) { d.scrolled = append(d.scrolled, id) }

func (d *fakeDoc) Copy(text string) error {
	if d.copyErr != nil {
		return d.copyErr
	}
	d.clipboard = append(d.clipboard, text)
	return nil
}

// fire dispatches ev on the node with ref.
func (d *fakeDoc) fire(t *testing.T, ref string, ev Event) {
	t.Helper()
	n, ok := d.nodes[ref]
	if !ok {
		t.Fatalf("no node %q", ref)
	}
	d.fireNode(n, ev)
}

func (d *fakeDoc) fireNode(n *motiontest.Node, ev Event) {
	for _, l := range d.listeners[n][ev] {
		if !l.removed {
			l.fn()
		}
	}
}

// live counts attached listeners.
func (d *fakeDoc) live() int {
	c := 0
	for _, evs := range d.listeners {
		for _, ls := range evs {
			for _, l := range ls {
				if !l.removed {
					c++
				}
			}
		}
	}
	return c
}

type fixture struct {
	t     *testing.T
	sched *motiontest.Scheduler
	vp    *motiontest.Viewport
	doc   *fakeDoc
	env   *Env
}

// newFixture lays out the whole page on a 900px tall viewport.
func newFixture(t *testing.T, width float64) *fixture {
	sched := motiontest.NewScheduler()
	vp := motiontest.NewViewport(width, 900)
	doc := newFakeDoc()

	place := func(ref string, top, height float64) {
		n := motiontest.NewNode(ref, motion.Rect{Width: 1000})
		vp.Place(n, top, height)
		doc.nodes[ref] = n
	}
	fixed := func(ref string, box motion.Rect) {
		doc.nodes[ref] = motiontest.NewNode(ref, box)
	}
	list := func(group string, count int, top, step, height float64) {
		for i := 0; i < count; i++ {
			n := motiontest.NewNode(fmt.Sprintf("%s.%d", group, i), motion.Rect{Width: 300})
			vp.Place(n, top+float64(i)*step, height)
			doc.groups[group] = append(doc.groups[group], n)
		}
	}

	fixed("root", motion.Rect{Width: width, Height: 900})
	fixed("header", motion.Rect{Top: 16, Left: 200, Width: 800, Height: 64})
	fixed("header.nav", motion.Rect{Top: 28, Left: 400, Width: 400, Height: 40})
	fixed("header.indicator", motion.Rect{Top: 66, Left: 400, Width: 1, Height: 2})
	fixed("header.menu", motion.Rect{Top: 80, Width: width, Height: 240})
	fixed("header.menu-toggle", motion.Rect{Top: 28, Left: 940, Width: 40, Height: 40})
	fixed("header.logo", motion.Rect{Top: 28, Left: 220, Width: 120, Height: 40})
	left := 420.0
	for _, id := range NavItems {
		fixed("nav."+id, motion.Rect{Top: 28, Left: left, Width: 80, Height: 40})
		fixed("menu."+id, motion.Rect{Top: 100, Width: width, Height: 40})
		left += 90
	}
	fixed("theme.toggle", motion.Rect{Top: 28, Left: 900, Width: 40, Height: 40})
	fixed("theme.icon", motion.Rect{Top: 36, Left: 908, Width: 24, Height: 24})

	place("hero", 0, 900)
	for i, it := range heroIntro {
		place(it.ref, 120+float64(i)*60, 50)
	}
	place("hero.orbit", 300, 420)
	list("hero.skills", 9, 480, 0, 40)
	place("copy-email", 560, 40)
	place("copy-email.tooltip", 520, 30)
	place("copy-email.hint", 520, 30)

	place("work", 900, 1200)
	place("work.header", 950, 200)
	place("work.badge", 960, 30)
	place("work.title", 1000, 80)
	place("work.lead", 1090, 40)
	list("work.cards", 3, 1200, 300, 250)
	list("work.images", 3, 1200, 300, 150)
	list("work.overlays", 3, 1200, 300, 150)

	place("skills", 2100, 700)
	list("skills.header", 2, 2150, 60, 50)
	list("skills.items", 6, 2300, 60, 50)

	place("experience", 2800, 1400)
	place("experience.header", 2850, 200)
	place("experience.badge", 2860, 30)
	place("experience.title", 2900, 80)
	place("experience.lead", 2990, 40)
	place("experience.line", 3100, 1000)
	list("experience.dots", 4, 3100, 250, 20)
	list("experience.cards", 4, 3100, 250, 200)

	place("certifications", 4200, 800)
	list("certifications.header", 2, 4250, 60, 50)
	list("certifications.cards", 3, 4400, 120, 100)
	place("certifications.education", 4800, 90)
	place("certifications.learning", 4900, 90)

	place("faq", 5000, 800)
	place("faq.header", 5050, 80)
	list("faq.items", 4, 5150, 150, 120)
	list("faq.questions", 4, 5150, 150, 40)
	list("faq.answers", 4, 5190, 150, 80)

	place("contact", 5800, 700)
	list("contact.heading", 2, 5850, 60, 50)
	place("contact.info", 6000, 300)
	list("contact.info", 3, 6000, 100, 90)

	env := NewEnv(doc, vp, sched, nil)
	env.Rand = rand.New(rand.NewSource(1))
	return &fixture{t: t, sched: sched, vp: vp, doc: doc, env: env}
}

func (f *fixture) node(ref string) *motiontest.Node {
	f.t.Helper()
	n, ok := f.doc.nodes[ref]
	if !ok {
		f.t.Fatalf("no node %q", ref)
	}
	return n
}

func (f *fixture) item(group string, i int) *motiontest.Node {
	f.t.Helper()
	items := f.doc.groups[group]
	if i >= len(items) {
		f.t.Fatalf("group %q has no item %d", group, i)
	}
	return items[i]
}

func (f *fixture) mount(cs ...Component) *Page {
	f.t.Helper()
	p := New(f.env, cs...)
	if err := p.Mount(); err != nil {
		f.t.Fatalf("Mount() error: %v", err)
	}
	return p
}

// scrollTo moves the viewport and lets the throttled update through.
func (f *fixture) scrollTo(y float64) {
	f.vp.ScrollTo(y)
	f.env.Scroll(y)
	f.sched.Advance(20 * time.Millisecond)
}

func (f *fixture) wait(d time.Duration) { f.sched.Advance(d) }

var errClipboard = errors.New("clipboard denied")
