package tween

import (
	"time"

	"github.com/Zachkp/portfolio/internal/motion"
)

// Stagger returns one step per target, each starting each later than the
// previous one, all animating from → to. Place the result with Sequence.
func Stagger(targets []motion.Target, from, to motion.Props, d time.Duration, ease Ease, each time.Duration) []Step {
	steps := make([]Step, 0, len(targets))
	for i, t := range targets {
		var f motion.Props
		if from != nil {
			f = from.Clone()
		}
		steps = append(steps, Step{
			Target:   t,
			From:     f,
			To:       to.Clone(),
			Duration: d,
			Ease:     ease,
			Offset:   time.Duration(i) * each,
			Absolute: true,
		})
	}
	return steps
}

// Rest returns props with every key of p set to its untransformed value.
// It is the usual destination of an entrance animation.
func Rest(p motion.Props) motion.Props {
	out := make(motion.Props, len(p))
	for k := range p {
		out[k] = k.Rest()
	}
	return out
}
