package viewport

import (
	"errors"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/motiontest"
)

func TestOnceFiresExactlyOnce(t *testing.T) {
	thresholds := []float64{0, 0.25, 0.5, 0.8, 0.9, 1}
	heights := []float64{480, 800, 1080}
	for _, th := range thresholds {
		for _, h := range heights {
			vp := motiontest.NewViewport(1280, h)
			s := motiontest.NewScheduler()
			w := NewWatcher(vp, s)
			el := motiontest.NewNode("el", motion.Rect{})
			vp.Place(el, 3*h, 200)

			fired := 0
			if _, err := w.Observe(Trigger{Target: el, Threshold: th, Mode: Once, OnEnter: func() { fired++ }}); err != nil {
				t.Fatal(err)
			}
			// Scroll down past the element and back up, twice.
			for pass := 0; pass < 2; pass++ {
				for y := 0.0; y <= 5*h; y += 37 {
					vp.ScrollTo(y)
					w.Check()
				}
				for y := 5 * h; y >= 0; y -= 41 {
					vp.ScrollTo(y)
					w.Check()
				}
			}
			if fired != 1 {
				t.Errorf("threshold %v height %v: fired %d times, want 1", th, h, fired)
			}
			if w.Len() != 0 {
				t.Errorf("threshold %v: once trigger still registered", th)
			}
		}
	}
}

func TestFiresAtThresholdLine(t *testing.T) {
	vp := motiontest.NewViewport(1280, 1000)
	w := NewWatcher(vp, motiontest.NewScheduler())
	el := motiontest.NewNode("el", motion.Rect{})
	vp.Place(el, 1500, 100)

	fired := false
	w.Observe(Trigger{Target: el, Threshold: 0.8, OnEnter: func() { fired = true }})

	vp.ScrollTo(699) // top at 801, below the 800px line
	w.Check()
	if fired {
		t.Fatal("fired before top reached the line")
	}
	vp.ScrollTo(700) // top at 800
	w.Check()
	if !fired {
		t.Fatal("did not fire when top reached 80% of viewport")
	}
}

func TestRepeatEntersAndLeaves(t *testing.T) {
	vp := motiontest.NewViewport(1280, 1000)
	w := NewWatcher(vp, motiontest.NewScheduler())
	el := motiontest.NewNode("el", motion.Rect{})
	vp.Place(el, 1500, 100)

	var events []string
	w.Observe(Trigger{
		Target:    el,
		Threshold: 0.8,
		Mode:      Repeat,
		OnEnter:   func() { events = append(events, "enter") },
		OnLeave:   func() { events = append(events, "leave") },
	})
	for _, y := range []float64{0, 800, 900, 600, 400, 900} {
		vp.ScrollTo(y)
		w.Check()
	}
	want := []string{"enter", "leave", "enter"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
}

func TestZeroHeightDefers(t *testing.T) {
	vp := motiontest.NewViewport(1280, 1000)
	s := motiontest.NewScheduler()
	w := NewWatcher(vp, s)
	el := motiontest.NewNode("el", motion.Rect{})
	// Not laid out: top 0, height 0. Would cross any line if evaluated.
	fired := 0
	w.Observe(Trigger{Target: el, Threshold: 0.8, OnEnter: func() { fired++ }})
	if fired != 0 {
		t.Fatal("fired on a zero-height box")
	}
	if s.Pending() == 0 {
		t.Fatal("no retry scheduled for unlaid-out target")
	}
	vp.Place(el, 200, 50)
	s.Advance(20 * time.Millisecond)
	if fired != 1 {
		t.Errorf("fired = %d after layout, want 1", fired)
	}
}

func TestZeroHeightStopsPolling(t *testing.T) {
	vp := motiontest.NewViewport(1280, 1000)
	s := motiontest.NewScheduler()
	w := NewWatcher(vp, s)
	el := motiontest.NewNode("el", motion.Rect{})
	fired := 0
	w.Observe(Trigger{Target: el, Threshold: 0.8, OnEnter: func() { fired++ }})

	s.Advance(time.Second)
	if s.Pending() != 0 {
		t.Fatalf("still polling a hidden target: %d pending", s.Pending())
	}

	// The next scroll or resize check starts retrying again.
	w.Check()
	if s.Pending() == 0 {
		t.Fatal("Check did not schedule a retry")
	}
	vp.Place(el, 200, 50)
	s.Advance(20 * time.Millisecond)
	if fired != 1 {
		t.Errorf("fired = %d after layout, want 1", fired)
	}
}

func TestThresholdOutOfRange(t *testing.T) {
	w := NewWatcher(motiontest.NewViewport(100, 100), motiontest.NewScheduler())
	for _, th := range []float64{-0.1, 1.01} {
		if _, err := w.Observe(Trigger{Target: motiontest.NewNode("x", motion.Rect{}), Threshold: th}); !errors.Is(err, ErrThreshold) {
			t.Errorf("threshold %v: err = %v, want ErrThreshold", th, err)
		}
	}
}

func TestObserveSameTargetReplaces(t *testing.T) {
	vp := motiontest.NewViewport(1280, 1000)
	w := NewWatcher(vp, motiontest.NewScheduler())
	el := motiontest.NewNode("el", motion.Rect{})
	vp.Place(el, 1500, 100)

	a, b := 0, 0
	stopA, _ := w.Observe(Trigger{Target: el, Threshold: 0.8, Mode: Repeat, OnEnter: func() { a++ }})
	w.Observe(Trigger{Target: el, Threshold: 0.8, Mode: Repeat, OnEnter: func() { b++ }})
	if w.Len() != 1 {
		t.Fatalf("triggers = %d, want 1 per target", w.Len())
	}
	stopA() // stale unsubscribe must not remove the replacement
	vp.ScrollTo(1000)
	w.Check()
	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want only replacement to fire", a, b)
	}
}

func TestUnsubscribeStopsCallbacks(t *testing.T) {
	vp := motiontest.NewViewport(1280, 1000)
	w := NewWatcher(vp, motiontest.NewScheduler())
	el := motiontest.NewNode("el", motion.Rect{})
	vp.Place(el, 1500, 100)
	fired := 0
	stop, _ := w.Observe(Trigger{Target: el, Threshold: 0.8, Mode: Repeat, OnEnter: func() { fired++ }, OnLeave: func() { fired++ }})
	stop()
	for _, y := range []float64{0, 1000, 0, 1000} {
		vp.ScrollTo(y)
		w.Check()
	}
	if fired != 0 {
		t.Errorf("fired %d times after unsubscribe", fired)
	}
}

func TestDetachedTargetDropped(t *testing.T) {
	vp := motiontest.NewViewport(1280, 1000)
	w := NewWatcher(vp, motiontest.NewScheduler())
	el := motiontest.NewNode("el", motion.Rect{})
	vp.Place(el, 1500, 100)
	fired := 0
	w.Observe(Trigger{Target: el, Threshold: 0.8, OnEnter: func() { fired++ }})
	el.Detached = true
	vp.ScrollTo(1500)
	w.Check()
	if fired != 0 || w.Len() != 0 {
		t.Errorf("fired=%d len=%d, want detached trigger dropped silently", fired, w.Len())
	}
}
