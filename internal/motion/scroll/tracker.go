// Package scroll turns raw scroll events into throttled position updates
// with a jitter-filtered direction and a debounced settle signal.
package scroll

import (
	"math"
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
)

// Direction is the classified scroll direction.
type Direction int

const (
	None Direction = iota
	Down
	Up
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return "none"
}

// Sample is one observed scroll position.
type Sample struct {
	OffsetY float64
	At      time.Time
}

// Update is emitted at most once per throttle window, and once more when
// scrolling settles.
type Update struct {
	OffsetY   float64
	DeltaY    float64
	Direction Direction
	Settled   bool
}

// Options tune the tracker. Zero fields take the defaults.
type Options struct {
	Throttle time.Duration // 16ms
	Settle   time.Duration // 150ms
	Jitter   float64       // 5px
}

func (o Options) withDefaults() Options {
	if o.Throttle <= 0 {
		o.Throttle = 16 * time.Millisecond
	}
	if o.Settle <= 0 {
		o.Settle = 150 * time.Millisecond
	}
	if o.Jitter <= 0 {
		o.Jitter = 5
	}
	return o
}

type subscriber struct {
	key     string
	fn      func(Update)
	removed bool
}

// Tracker owns the last-sample cache. Feed it every native scroll event.
type Tracker struct {
	sched motion.Scheduler
	opts  Options

	latest   float64
	last     Sample
	prev     Sample
	dir      Direction
	settled  bool
	throttle motion.Timer
	settle   motion.Timer
	closed   bool

	updates []*subscriber
	settles []*subscriber
}

// NewTracker returns a tracker that starts settled at offset 0.
func NewTracker(sched motion.Scheduler, opts Options) *Tracker {
	return &Tracker{
		sched:   sched,
		opts:    opts.withDefaults(),
		settled: true,
		last:    Sample{At: sched.Now()},
	}
}

// Options returns the effective options.
func (t *Tracker) Options() Options { return t.opts }

// Latest returns the most recent emitted sample.
func (t *Tracker) Latest() Sample { return t.last }

// Previous returns the sample before Latest.
func (t *Tracker) Previous() Sample { return t.prev }

// Direction returns the current classified direction.
func (t *Tracker) Direction() Direction { return t.dir }

// Settled reports whether the quiet period has elapsed since the last
// emission.
func (t *Tracker) Settled() bool { return t.settled }

// Subscribers returns the number of live update and settle callbacks.
func (t *Tracker) Subscribers() int { return len(t.updates) + len(t.settles) }

// Subscribe registers fn for every throttled update. Subscribing again with
// the same key replaces the earlier callback in place, keeping its position
// in the call order.
func (t *Tracker) Subscribe(key string, fn func(Update)) (unsubscribe func()) {
	return t.add(&t.updates, key, fn)
}

// OnSettle registers fn to run once per quiet period.
func (t *Tracker) OnSettle(key string, fn func(Update)) (unsubscribe func()) {
	return t.add(&t.settles, key, fn)
}

func (t *Tracker) add(list *[]*subscriber, key string, fn func(Update)) func() {
	for _, s := range *list {
		if s.key == key && !s.removed {
			s.fn = fn
			return t.remover(list, s)
		}
	}
	s := &subscriber{key: key, fn: fn}
	*list = append(*list, s)
	return t.remover(list, s)
}

func (t *Tracker) remover(list *[]*subscriber, s *subscriber) func() {
	return func() {
		if s.removed {
			return
		}
		s.removed = true
		for i, x := range *list {
			if x == s {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return
			}
		}
	}
}

// Feed records a native scroll event. Events inside one throttle window
// coalesce into a single update carrying the latest offset.
func (t *Tracker) Feed(offsetY float64) {
	if t.closed {
		return
	}
	if offsetY < 0 || math.IsNaN(offsetY) {
		offsetY = 0
	}
	t.latest = offsetY
	if t.throttle != nil {
		return
	}
	t.throttle = t.sched.AfterFunc(t.opts.Throttle, t.flush)
}

// Sync emits an update for offsetY immediately, bypassing the throttle. It
// is used once on mount so subscribers see the initial position.
func (t *Tracker) Sync(offsetY float64) {
	if t.closed {
		return
	}
	if t.throttle != nil {
		t.throttle.Stop()
		t.throttle = nil
	}
	if offsetY < 0 {
		offsetY = 0
	}
	t.latest = offsetY
	t.flush()
}

func (t *Tracker) flush() {
	t.throttle = nil
	if t.closed {
		return
	}
	now := t.sched.Now()
	delta := t.latest - t.last.OffsetY
	if math.Abs(delta) > t.opts.Jitter {
		if delta > 0 {
			t.dir = Down
		} else {
			t.dir = Up
		}
	}
	t.prev = t.last
	t.last = Sample{OffsetY: t.latest, At: now}
	t.settled = false

	if t.settle != nil {
		t.settle.Stop()
	}
	t.settle = t.sched.AfterFunc(t.opts.Settle, t.quiet)

	t.emit(t.updates, Update{OffsetY: t.last.OffsetY, DeltaY: delta, Direction: t.dir})
}

func (t *Tracker) quiet() {
	t.settle = nil
	if t.closed || t.settled {
		return
	}
	t.settled = true
	t.emit(t.settles, Update{OffsetY: t.last.OffsetY, Direction: t.dir, Settled: true})
}

func (t *Tracker) emit(list []*subscriber, u Update) {
	// Copy so callbacks can unsubscribe during delivery; removed entries
	// are skipped.
	for _, s := range append([]*subscriber(nil), list...) {
		if s.removed {
			continue
		}
		s.fn(u)
	}
}

// Close stops pending timers and drops every subscriber.
func (t *Tracker) Close() {
	if t.closed {
		return
	}
	t.closed = true
	if t.throttle != nil {
		t.throttle.Stop()
	}
	if t.settle != nil {
		t.settle.Stop()
	}
	for _, s := range t.updates {
		s.removed = true
	}
	for _, s := range t.settles {
		s.removed = true
	}
	t.updates, t.settles = nil, nil
}
