package section

import (
	"math/rand"
	"testing"

	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/motiontest"
)

var page = []Descriptor{
	{ID: "hero", Top: 200, Height: 800},
	{ID: "work", Top: 1000, Height: 1200},
	{ID: "skills", Top: 2200, Height: 600},
	{ID: "experience", Top: 2800, Height: 1400},
	{ID: "contact", Top: 4200, Height: 700},
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		scrollY float64
		want    string
		wantOK  bool
	}{
		{"top guard beats geometry", 50, "hero", true},
		{"zero offset", 0, "hero", true},
		{"probe inside hero", 150, "hero", true},
		{"probe at section start", 900, "work", true},
		{"probe just before boundary", 2099, "work", true},
		{"last section", 4300, "contact", true},
		{"below last section", 5000, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(page, tt.scrollY, 100)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Resolve(%v) = %q,%v want %q,%v", tt.scrollY, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveTopGuardIgnoresGeometry(t *testing.T) {
	odd := []Descriptor{
		{ID: "first", Top: 5000, Height: 10},
		{ID: "second", Top: 0, Height: 10000},
	}
	if got, _ := Resolve(odd, 50, 100); got != "first" {
		t.Errorf("Resolve at 50 = %q, want first", got)
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	overlap := []Descriptor{
		{ID: "a", Top: 0, Height: 1000},
		{ID: "b", Top: 500, Height: 1000},
	}
	if got, _ := Resolve(overlap, 600, 0); got != "a" {
		t.Errorf("Resolve = %q, want a (document order)", got)
	}
}

func TestResolveEmpty(t *testing.T) {
	if _, ok := Resolve(nil, 0, 0); ok {
		t.Error("empty layout resolved a section")
	}
}

func TestDownwardScrollNeverJumpsBackward(t *testing.T) {
	index := map[string]int{}
	for i, d := range page {
		index[d.ID] = i
	}
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 200; run++ {
		y := 0.0
		best := -1
		for y < 5200 {
			y += rng.Float64() * 300
			id, ok := Resolve(page, y, 100)
			if !ok {
				continue
			}
			if index[id] < best {
				t.Fatalf("run %d: at %v resolved %q after index %d", run, y, id, best)
			}
			best = index[id]
		}
	}
}

func TestResolverUpdateReportsChanges(t *testing.T) {
	vp := motiontest.NewViewport(1280, 900)
	var nodes []Named
	for _, d := range page {
		n := motiontest.NewNode(d.ID, motion.Rect{})
		vp.Place(n, d.Top, d.Height)
		nodes = append(nodes, Named{ID: d.ID, Target: n})
	}
	r := NewResolver(nodes, 100)

	steps := []struct {
		y       float64
		want    string
		changed bool
	}{
		{0, "hero", true},
		{80, "hero", false},
		{950, "work", true},
		{1200, "work", false},
		{4300, "contact", true},
		{6000, "", true},
	}
	for _, st := range steps {
		vp.ScrollTo(st.y)
		id, changed := r.Update(st.y)
		if id != st.want || changed != st.changed {
			t.Errorf("Update(%v) = %q,%v want %q,%v", st.y, id, changed, st.want, st.changed)
		}
	}
}

func TestMeasureSkipsMissingNodes(t *testing.T) {
	gone := motiontest.NewNode("gone", motion.Rect{Top: 10, Height: 10})
	gone.Detached = true
	live := motiontest.NewNode("live", motion.Rect{Top: -50, Height: 300})
	got := Measure([]Named{{"gone", gone}, {"live", live}, {"nil", nil}}, 1000)
	if len(got) != 1 || got[0].ID != "live" || got[0].Top != 950 {
		t.Errorf("Measure = %+v, want only live at 950", got)
	}
}
