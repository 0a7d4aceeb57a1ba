//go:build js && wasm

package dom

import (
	"errors"
	"fmt"
	"syscall/js"
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/page"
)

// ErrNoClipboard is returned when the browser exposes no clipboard API.
var ErrNoClipboard = errors.New("dom: clipboard unavailable")

var (
	window   = js.Global()
	document = js.Global().Get("document")
)

// Viewport reads the browser window.
type Viewport struct{}

func (Viewport) Width() float64   { return window.Get("innerWidth").Float() }
func (Viewport) Height() float64  { return window.Get("innerHeight").Float() }
func (Viewport) ScrollY() float64 { return window.Get("scrollY").Float() }

// Scheduler queues onto the browser event loop.
type Scheduler struct{}

type timer struct {
	id     js.Value
	cancel string
	fn     js.Func
	done   bool
}

func (t *timer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	window.Call(t.cancel, t.id)
	t.fn.Release()
	return true
}

func (Scheduler) Now() time.Time { return time.Now() }

func (Scheduler) AfterFunc(d time.Duration, fn func()) motion.Timer {
	t := &timer{cancel: "clearTimeout"}
	t.fn = js.FuncOf(func(js.Value, []js.Value) any {
		t.done = true
		t.fn.Release()
		fn()
		return nil
	})
	t.id = window.Call("setTimeout", t.fn, d.Milliseconds())
	return t
}

func (Scheduler) RequestFrame(fn func(time.Time)) motion.Timer {
	t := &timer{cancel: "cancelAnimationFrame"}
	t.fn = js.FuncOf(func(js.Value, []js.Value) any {
		t.done = true
		t.fn.Release()
		fn(time.Now())
		return nil
	})
	t.id = window.Call("requestAnimationFrame", t.fn)
	return t
}

// Document resolves references against data-motion attributes. Sections
// are found by id. Elements are wrapped once so a reference always yields
// the same Target.
type Document struct {
	nodes  map[string]*Node
	groups map[string][]*Node
}

func NewDocument() *Document {
	return &Document{nodes: map[string]*Node{}, groups: map[string][]*Node{}}
}

func (d *Document) Node(ref string) motion.Target {
	if n, ok := d.nodes[ref]; ok && n.Attached() {
		return n
	}
	el := document.Call("querySelector", fmt.Sprintf(`[data-motion=%q]`, ref))
	if !el.Truthy() {
		el = document.Call("getElementById", ref)
	}
	if !el.Truthy() {
		return nil
	}
	n := newNode(el)
	d.nodes[ref] = n
	return n
}

func (d *Document) Items(group string, register func(int, motion.Target)) {
	list := document.Call("querySelectorAll", fmt.Sprintf(`[data-motion-group=%q]`, group))
	nodes := d.groups[group][:0]
	for i := 0; i < list.Length(); i++ {
		n := newNode(list.Index(i))
		nodes = append(nodes, n)
		register(i, n)
	}
	d.groups[group] = nodes
}

func (d *Document) On(t motion.Target, ev page.Event, fn func()) func() {
	n, ok := t.(*Node)
	if !ok {
		return func() {}
	}
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	n.el.Call("addEventListener", string(ev), cb)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		n.el.Call("removeEventListener", string(ev), cb)
		cb.Release()
	}
}

func (d *Document) ScrollTo(id string) {
	el := document.Call("getElementById", id)
	if !el.Truthy() {
		motion.Logger().Debug("dom: scroll target missing", "id", id)
		return
	}
	el.Call("scrollIntoView", map[string]any{"behavior": "smooth", "block": "start"})
}

// Copy starts a clipboard write. A rejected write is only logged.
func (d *Document) Copy(text string) error {
	cb := window.Get("navigator").Get("clipboard")
	if !cb.Truthy() {
		return ErrNoClipboard
	}
	var ok, fail js.Func
	release := func() {
		ok.Release()
		fail.Release()
	}
	ok = js.FuncOf(func(js.Value, []js.Value) any {
		release()
		return nil
	})
	fail = js.FuncOf(func(_ js.Value, args []js.Value) any {
		release()
		motion.Logger().Warn("dom: clipboard write rejected", "reason", args[0].Call("toString").String())
		return nil
	})
	cb.Call("writeText", text).Call("then", ok, fail)
	return nil
}

// SystemDark reports the prefers-color-scheme media query.
func SystemDark() bool {
	mq := window.Call("matchMedia", "(prefers-color-scheme: dark)")
	return mq.Truthy() && mq.Get("matches").Bool()
}

// Listen attaches fn to a window event until the returned func is called.
func Listen(event string, fn func()) func() {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	window.Call("addEventListener", event, cb, map[string]any{"passive": true})
	return func() {
		window.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

// Origin returns the page origin, such as https://example.com.
func Origin() string {
	return window.Get("location").Get("origin").String()
}

// Beacon queues a small POST that survives page unload.
func Beacon(url, contentType, body string) bool {
	nav := window.Get("navigator")
	if !nav.Get("sendBeacon").Truthy() {
		return false
	}
	blob := window.Get("Blob").New([]any{body}, map[string]any{"type": contentType})
	return nav.Call("sendBeacon", url, blob).Bool()
}

// RootData returns a data attribute of the document element.
func RootData(key string) string {
	v := document.Get("documentElement").Get("dataset").Get(key)
	if !v.Truthy() {
		return ""
	}
	return v.String()
}
