// Package motiontest provides a deterministic host for testing the motion
// packages: a manual clock that fires timers and animation frames in order,
// fake nodes with settable boxes, and a fake viewport.
package motiontest

import (
	"sort"
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
)

// FrameInterval is the spacing of animation frames.
const FrameInterval = 16 * time.Millisecond

// Epoch is the clock's starting time.
var Epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// Scheduler is a manual motion.Scheduler. Nothing fires until Advance.
type Scheduler struct {
	now    time.Time
	seq    int
	queue  []*timer
	Frames int
}

type timer struct {
	due     time.Time
	seq     int
	fn      func()
	frame   func(time.Time)
	stopped bool
	fired   bool
}

func (t *timer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewScheduler returns a scheduler whose clock reads Epoch.
func NewScheduler() *Scheduler {
	return &Scheduler{now: Epoch}
}

func (s *Scheduler) Now() time.Time { return s.now }

func (s *Scheduler) AfterFunc(d time.Duration, fn func()) motion.Timer {
	return s.push(&timer{due: s.now.Add(d), fn: fn})
}

func (s *Scheduler) RequestFrame(fn func(time.Time)) motion.Timer {
	return s.push(&timer{due: s.nextFrame(), frame: fn})
}

// nextFrame aligns frames to FrameInterval boundaries after now.
func (s *Scheduler) nextFrame() time.Time {
	elapsed := s.now.Sub(Epoch)
	return Epoch.Add((elapsed/FrameInterval + 1) * FrameInterval)
}

func (s *Scheduler) push(t *timer) *timer {
	s.seq++
	t.seq = s.seq
	s.queue = append(s.queue, t)
	return t
}

// Pending returns the number of callbacks that have not fired or stopped.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing every callback that comes
// due in time order. Callbacks scheduled while advancing fire too if they
// fall inside the window.
func (s *Scheduler) Advance(d time.Duration) {
	end := s.now.Add(d)
	for {
		t := s.next()
		if t == nil || t.due.After(end) {
			break
		}
		if t.due.After(s.now) {
			s.now = t.due
		}
		t.fired = true
		if t.frame != nil {
			s.Frames++
			t.frame(s.now)
		} else {
			t.fn()
		}
	}
	s.now = end
	s.compact()
}

func (s *Scheduler) next() *timer {
	var live []*timer
	for _, t := range s.queue {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].due.Equal(live[j].due) {
			return live[i].seq < live[j].seq
		}
		return live[i].due.Before(live[j].due)
	})
	return live[0]
}

func (s *Scheduler) compact() {
	kept := s.queue[:0]
	for _, t := range s.queue {
		if !t.stopped && !t.fired {
			kept = append(kept, t)
		}
	}
	s.queue = kept
}

// Node is a fake motion.Target.
type Node struct {
	Name     string
	Box      motion.Rect
	Detached bool
	Props    motion.Props
	Flags    map[string]bool
	Writes   int
}

// NewNode returns an attached node with the given box.
func NewNode(name string, box motion.Rect) *Node {
	return &Node{Name: name, Box: box, Props: motion.Props{}, Flags: map[string]bool{}}
}

func (n *Node) Attached() bool      { return n != nil && !n.Detached }
func (n *Node) Bounds() motion.Rect { return n.Box }

func (n *Node) Get(p motion.Prop) float64 {
	if v, ok := n.Props[p]; ok {
		return v
	}
	return p.Rest()
}

func (n *Node) Set(p motion.Prop, v float64) {
	n.Props[p] = v
	n.Writes++
}

func (n *Node) Toggle(name string, on bool) { n.Flags[name] = on }

// Viewport is a fake motion.Viewport whose scroll offset also shifts the
// boxes of registered nodes, the way a real page scrolls.
type Viewport struct {
	W, H   float64
	Scroll float64
	nodes  map[*Node]float64
}

// NewViewport returns a viewport of the given size scrolled to the top.
func NewViewport(w, h float64) *Viewport {
	return &Viewport{W: w, H: h, nodes: map[*Node]float64{}}
}

func (v *Viewport) Width() float64   { return v.W }
func (v *Viewport) Height() float64  { return v.H }
func (v *Viewport) ScrollY() float64 { return v.Scroll }

// Place puts n at a document offset with the given height.
func (v *Viewport) Place(n *Node, docTop, height float64) {
	v.nodes[n] = docTop
	n.Box.Height = height
	n.Box.Top = docTop - v.Scroll
}

// ScrollTo moves the viewport and updates every placed node's box.
func (v *Viewport) ScrollTo(y float64) {
	v.Scroll = y
	for n, top := range v.nodes {
		n.Box.Top = top - y
	}
}
