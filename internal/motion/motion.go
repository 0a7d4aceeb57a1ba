// Package motion holds the host boundary shared by the scroll-driven
// animation layer: render targets, the viewport and the event-loop
// scheduler.
//
// Everything in this package tree runs on a single host event loop. None of
// the types are safe for concurrent use from multiple goroutines.
package motion

import (
	"fmt"
	"time"
)

// Prop names a visual-only property of a target. Layout-affecting
// properties are deliberately absent.
type Prop string

const (
	X         Prop = "x"
	Y         Prop = "y"
	Scale     Prop = "scale"
	ScaleX    Prop = "scaleX"
	ScaleY    Prop = "scaleY"
	Rotation  Prop = "rotation"
	RotationX Prop = "rotationX"
	RotationY Prop = "rotationY"
	Opacity   Prop = "opacity"
)

var knownProps = map[Prop]float64{
	X:         0,
	Y:         0,
	Scale:     1,
	ScaleX:    1,
	ScaleY:    1,
	Rotation:  0,
	RotationX: 0,
	RotationY: 0,
	Opacity:   1,
}

// Valid reports whether p is one of the writable visual properties.
func (p Prop) Valid() bool {
	_, ok := knownProps[p]
	return ok
}

// Rest returns the untransformed value of p (0 for offsets, 1 for scales
// and opacity).
func (p Prop) Rest() float64 {
	return knownProps[p]
}

// Props maps properties to values.
type Props map[Prop]float64

// Clone returns a copy of p.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Check returns an error naming the first property that is not a visual
// property.
func (p Props) Check() error {
	for k := range p {
		if !k.Valid() {
			return fmt.Errorf("motion: %q is not a visual property", string(k))
		}
	}
	return nil
}

// Rect is a box in viewport coordinates, as returned by a bounding-box query.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom returns Top+Height.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Empty reports whether the box has no height, which is what the host
// returns before layout has happened.
func (r Rect) Empty() bool { return r.Height <= 0 }

// Target is a renderable node owned by the page layer. The motion layer only
// reads its box and reads/writes visual properties on it.
type Target interface {
	// Attached reports whether the node is still in the document.
	Attached() bool
	// Bounds returns the node's box relative to the viewport.
	Bounds() Rect
	Get(p Prop) float64
	Set(p Prop, v float64)
}

// Toggler is implemented by targets that can switch a presentational state
// flag, such as the header shadow or the active navigation entry.
type Toggler interface {
	Toggle(name string, on bool)
}

// Live reports whether t can be written to. A nil target and a detached node
// are both treated as gone.
func Live(t Target) bool {
	return t != nil && t.Attached()
}

// Viewport exposes the scrolling window.
type Viewport interface {
	Width() float64
	Height() float64
	ScrollY() float64
}

// Timer is a pending scheduler callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer before it fired.
	Stop() bool
}

// Scheduler queues callbacks onto the host event loop.
type Scheduler interface {
	Now() time.Time
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Timer
	// RequestFrame runs fn before the next repaint.
	RequestFrame(fn func(now time.Time)) Timer
}
