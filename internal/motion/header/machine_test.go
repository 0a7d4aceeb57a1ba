package header

import (
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/motion/motiontest"
	"github.com/Zachkp/portfolio/internal/motion/scroll"
)

type recorder struct {
	got []Transition
}

func (r *recorder) on(t Transition) { r.got = append(r.got, t) }

func newMachine() (*Machine, *recorder) {
	m := New(DefaultConfig())
	r := &recorder{}
	m.OnTransition = r.on
	return m, r
}

func TestHideThenShowExactlyOnce(t *testing.T) {
	s := motiontest.NewScheduler()
	tr := scroll.NewTracker(s, scroll.Options{})
	m, r := newMachine()
	tr.Subscribe("header", m.Scroll)

	tr.Feed(150)
	s.Advance(20 * time.Millisecond)
	if m.State() != Hidden || len(r.got) != 1 {
		t.Fatalf("after 150px down: state=%v transitions=%d", m.State(), len(r.got))
	}

	// More downward scrolling is a no-op.
	for _, y := range []float64{200, 260, 330} {
		tr.Feed(y)
		s.Advance(20 * time.Millisecond)
	}
	if len(r.got) != 1 {
		t.Fatalf("repeated down scroll re-triggered: %d transitions", len(r.got))
	}

	tr.Feed(320)
	s.Advance(20 * time.Millisecond)
	if m.State() != Visible || len(r.got) != 2 {
		t.Fatalf("after 10px up: state=%v transitions=%d", m.State(), len(r.got))
	}
	if r.got[1].From != Hidden || r.got[1].To != Visible || r.got[1].Cause != CauseScroll {
		t.Errorf("second transition = %+v", r.got[1])
	}
	tr.Feed(310)
	s.Advance(20 * time.Millisecond)
	if len(r.got) != 2 {
		t.Errorf("repeated up scroll re-triggered: %d transitions", len(r.got))
	}
}

func TestScrollTable(t *testing.T) {
	tests := []struct {
		name     string
		updates  []scroll.Update
		menuOpen bool
		want     State
	}{
		{
			name:    "down below threshold stays visible",
			updates: []scroll.Update{{OffsetY: 80, DeltaY: 80, Direction: scroll.Down}},
			want:    Visible,
		},
		{
			name:    "down past threshold hides",
			updates: []scroll.Update{{OffsetY: 130, DeltaY: 30, Direction: scroll.Down}},
			want:    Hidden,
		},
		{
			name:    "jitter does not hide",
			updates: []scroll.Update{{OffsetY: 300, DeltaY: 4, Direction: scroll.Down}},
			want:    Visible,
		},
		{
			name:     "menu open blocks hide",
			updates:  []scroll.Update{{OffsetY: 300, DeltaY: 50, Direction: scroll.Down}},
			menuOpen: true,
			want:     Visible,
		},
		{
			name: "settle shows",
			updates: []scroll.Update{
				{OffsetY: 300, DeltaY: 50, Direction: scroll.Down},
				{OffsetY: 300, Direction: scroll.Down, Settled: true},
			},
			want: Visible,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newMachine()
			m.SetMenuOpen(tt.menuOpen)
			for _, u := range tt.updates {
				m.Scroll(u)
			}
			if m.State() != tt.want {
				t.Errorf("state = %v, want %v", m.State(), tt.want)
			}
		})
	}
}

func TestMenuOpenForcesVisible(t *testing.T) {
	m, r := newMachine()
	m.Scroll(scroll.Update{OffsetY: 400, DeltaY: 100, Direction: scroll.Down})
	m.SetMenuOpen(true)
	if m.State() != Visible {
		t.Fatal("menu open left header hidden")
	}
	if last := r.got[len(r.got)-1]; last.Cause != CauseMenu {
		t.Errorf("cause = %v, want CauseMenu", last.Cause)
	}
	m.Scroll(scroll.Update{OffsetY: 600, DeltaY: 200, Direction: scroll.Down})
	if m.State() != Visible {
		t.Error("hidden while menu open")
	}
}

func TestNavigateFromAnyState(t *testing.T) {
	m, r := newMachine()
	m.Navigate()
	if len(r.got) != 0 {
		t.Error("navigate from visible emitted a transition")
	}
	m.Scroll(scroll.Update{OffsetY: 400, DeltaY: 100, Direction: scroll.Down})
	m.Navigate()
	if m.State() != Visible || r.got[len(r.got)-1].Cause != CauseNavigate {
		t.Errorf("navigate: state=%v transitions=%+v", m.State(), r.got)
	}
}

func TestSettleViaTracker(t *testing.T) {
	s := motiontest.NewScheduler()
	tr := scroll.NewTracker(s, scroll.Options{})
	m, r := newMachine()
	tr.Subscribe("header", m.Scroll)
	tr.OnSettle("header", m.Scroll)

	tr.Feed(500)
	s.Advance(20 * time.Millisecond)
	if m.State() != Hidden {
		t.Fatal("not hidden after scrolling down")
	}
	s.Advance(200 * time.Millisecond)
	if m.State() != Visible || r.got[len(r.got)-1].Cause != CauseSettle {
		t.Errorf("after settle: state=%v transitions=%+v", m.State(), r.got)
	}
}

func TestScrolledFlag(t *testing.T) {
	m, _ := newMachine()
	var flips []bool
	m.OnScrolled = func(on bool) { flips = append(flips, on) }
	m.Scroll(scroll.Update{OffsetY: 10})
	m.Scroll(scroll.Update{OffsetY: 25, DeltaY: 15, Direction: scroll.Down})
	m.Scroll(scroll.Update{OffsetY: 40, DeltaY: 15, Direction: scroll.Down})
	m.Scroll(scroll.Update{OffsetY: 0, DeltaY: -40, Direction: scroll.Up})
	if len(flips) != 2 || !flips[0] || flips[1] {
		t.Errorf("flips = %v, want [true false]", flips)
	}
}
