package tween

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Ease maps linear progress t ∈ [0, 1] to eased progress. Curves may
// overshoot 1 in the middle (back.out) but always return 0 at 0 and 1 at 1.
type Ease func(t float64) float64

// ErrUnknownEase is returned by ParseEase for names it does not know.
var ErrUnknownEase = errors.New("tween: unknown ease")

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

func powerIn(p float64) Ease {
	return func(t float64) float64 { return math.Pow(t, p) }
}

func powerOut(p float64) Ease {
	return func(t float64) float64 { return 1 - math.Pow(1-t, p) }
}

func powerInOut(p float64) Ease {
	return func(t float64) float64 {
		if t < 0.5 {
			return math.Pow(2*t, p) / 2
		}
		return 1 - math.Pow(2-2*t, p)/2
	}
}

// Power curves. powerN.out is 1-(1-t)^(N+1), matching the usual naming where
// power1 is quadratic.
var (
	Power1In    = powerIn(2)
	Power1Out   = powerOut(2)
	Power1InOut = powerInOut(2)
	Power2In    = powerIn(3)
	Power2Out   = powerOut(3)
	Power2InOut = powerInOut(3)
	Power3In    = powerIn(4)
	Power3Out   = powerOut(4)
	Power3InOut = powerInOut(4)
	Power4In    = powerIn(5)
	Power4Out   = powerOut(5)
	Power4InOut = powerInOut(5)
)

// BackOut overshoots the end value by an amount controlled by s before
// settling. s=1.70158 is the classic default.
func BackOut(s float64) Ease {
	return func(t float64) float64 {
		u := t - 1
		return u*u*((s+1)*u+s) + 1
	}
}

var namedEases = map[string]Ease{
	"linear":       Linear,
	"none":         Linear,
	"power1.in":    Power1In,
	"power1.out":   Power1Out,
	"power1.inout": Power1InOut,
	"power2.in":    Power2In,
	"power2.out":   Power2Out,
	"power2.inout": Power2InOut,
	"power3.in":    Power3In,
	"power3.out":   Power3Out,
	"power3.inout": Power3InOut,
	"power4.in":    Power4In,
	"power4.out":   Power4Out,
	"power4.inout": Power4InOut,
	"back.out":     BackOut(1.70158),
}

// ParseEase resolves an ease name such as "power2.out" or "back.out(1.7)".
// Names are case-insensitive.
func ParseEase(name string) (Ease, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if open := strings.IndexByte(n, '('); open >= 0 && strings.HasSuffix(n, ")") {
		base, arg := n[:open], n[open+1:len(n)-1]
		if base != "back.out" {
			return nil, fmt.Errorf("%w: %q takes no parameter", ErrUnknownEase, name)
		}
		s, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad parameter in %q: %v", ErrUnknownEase, name, err)
		}
		return BackOut(s), nil
	}
	if e, ok := namedEases[n]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
}

// MustEase is ParseEase for names known at compile time.
func MustEase(name string) Ease {
	e, err := ParseEase(name)
	if err != nil {
		panic(err)
	}
	return e
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
