package tween

import (
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
)

// Defaults is the process-wide animation configuration.
type Defaults struct {
	// Duration applies to steps that leave Duration at zero.
	Duration time.Duration
	// Ease applies to steps that leave Ease nil.
	Ease Ease
	// Overwrite makes a newly playing tween take its properties away from
	// older active tweens on the same target.
	Overwrite bool
	// Frame gaps longer than LagThreshold advance by LagStep instead, so a
	// backgrounded tab does not jump animations to their end.
	LagThreshold time.Duration
	LagStep      time.Duration
}

var (
	initOnce sync.Once
	defaults = builtinDefaults()
)

func builtinDefaults() Defaults {
	return Defaults{
		Duration:     550 * time.Millisecond,
		Ease:         Power2Out,
		Overwrite:    true,
		LagThreshold: 500 * time.Millisecond,
		LagStep:      33 * time.Millisecond,
	}
}

// Init installs d as the process-wide defaults. Only the first call has any
// effect; it reports whether this call was the one that applied. Zero fields
// in d keep the built-in value. Engines created before Init keep the
// built-in defaults.
func Init(d Defaults) bool {
	applied := false
	initOnce.Do(func() {
		b := builtinDefaults()
		if d.Duration > 0 {
			b.Duration = d.Duration
		}
		if d.Ease != nil {
			b.Ease = d.Ease
		}
		b.Overwrite = d.Overwrite
		if d.LagThreshold > 0 {
			b.LagThreshold = d.LagThreshold
		}
		if d.LagStep > 0 {
			b.LagStep = d.LagStep
		}
		defaults = b
		applied = true
		motion.Logger().Info("tween defaults installed",
			"duration", b.Duration, "overwrite", b.Overwrite, "lagThreshold", b.LagThreshold)
	})
	return applied
}

// Current returns the defaults new engines start from.
func Current() Defaults {
	return defaults
}
