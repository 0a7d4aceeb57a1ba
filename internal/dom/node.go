//go:build js && wasm

// Package dom binds the motion layer to the browser document through
// syscall/js.
package dom

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/motion"
)

// Node is a document element. Visual properties are kept on the Go side and
// written to the element as one transform and an opacity.
type Node struct {
	el    js.Value
	props motion.Props
}

func newNode(el js.Value) *Node {
	return &Node{el: el, props: motion.Props{}}
}

func (n *Node) Attached() bool {
	return n.el.Truthy() && n.el.Get("isConnected").Bool()
}

func (n *Node) Bounds() motion.Rect {
	r := n.el.Call("getBoundingClientRect")
	return motion.Rect{
		Top:    r.Get("top").Float(),
		Left:   r.Get("left").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (n *Node) Get(p motion.Prop) float64 {
	if v, ok := n.props[p]; ok {
		return v
	}
	return p.Rest()
}

func (n *Node) Set(p motion.Prop, v float64) {
	n.props[p] = v
	style := n.el.Get("style")
	if p == motion.Opacity {
		style.Set("opacity", v)
		return
	}
	style.Set("transform", n.transform())
}

// transform composes the transform props in a fixed order.
func (n *Node) transform() string {
	var b strings.Builder
	add := func(format string, p motion.Prop) {
		if v, ok := n.props[p]; ok && v != p.Rest() {
			fmt.Fprintf(&b, format, v)
		}
	}
	if _, ok := n.props[motion.X]; ok {
		fmt.Fprintf(&b, "translate(%gpx, %gpx) ", n.Get(motion.X), n.Get(motion.Y))
	} else {
		add("translateY(%gpx) ", motion.Y)
	}
	add("rotate(%gdeg) ", motion.Rotation)
	add("rotateX(%gdeg) ", motion.RotationX)
	add("rotateY(%gdeg) ", motion.RotationY)
	add("scale(%g) ", motion.Scale)
	add("scaleX(%g) ", motion.ScaleX)
	add("scaleY(%g) ", motion.ScaleY)
	return strings.TrimSpace(b.String())
}

// Toggle switches a class on the element.
func (n *Node) Toggle(name string, on bool) {
	n.el.Get("classList").Call("toggle", name, on)
}
