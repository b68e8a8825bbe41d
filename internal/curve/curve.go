// Package curve maps raw 0-100 feature values onto bounded preference scores.
package curve

import (
	"fmt"
	"math"
)

// DefaultBandWidth is the decay width used by Band when none is given.
const DefaultBandWidth = 15.0

// Kind identifies the shape of a Curve.
type Kind string

const (
	KindRampUp   Kind = "ramp_up"
	KindRampDown Kind = "ramp_down"
	KindBand     Kind = "band"
	KindIdentity Kind = "identity"
)

// Curve is a tagged curve variant. A and B are the start/end of a ramp or the
// low/high edges of a band; Width only applies to bands.
type Curve struct {
	Kind  Kind    `json:"kind" yaml:"kind"`
	A     float64 `json:"a,omitempty" yaml:"a,omitempty"`
	B     float64 `json:"b,omitempty" yaml:"b,omitempty"`
	Width float64 `json:"width,omitempty" yaml:"width,omitempty"`
}

// Up returns a rising ramp from start to end.
func Up(start, end float64) Curve { return Curve{Kind: KindRampUp, A: start, B: end} }

// Down returns a falling ramp from start to end.
func Down(start, end float64) Curve { return Curve{Kind: KindRampDown, A: start, B: end} }

// Prefer returns a band curve with a plateau on [low, high].
func Prefer(low, high, width float64) Curve {
	return Curve{Kind: KindBand, A: low, B: high, Width: width}
}

// Identity passes the input through, clamped.
func Identity() Curve { return Curve{Kind: KindIdentity} }

// Eval evaluates the curve at x.
func (c Curve) Eval(x float64) float64 {
	switch c.Kind {
	case KindRampUp:
		return RampUp(x, c.A, c.B)
	case KindRampDown:
		return RampDown(x, c.A, c.B)
	case KindBand:
		return Band(x, c.A, c.B, c.Width)
	case KindIdentity:
		return clamp(x)
	default:
		return 0
	}
}

func (c Curve) String() string {
	switch c.Kind {
	case KindRampUp, KindRampDown:
		return fmt.Sprintf("%s(%g,%g)", c.Kind, c.A, c.B)
	case KindBand:
		return fmt.Sprintf("%s(%g,%g,%g)", c.Kind, c.A, c.B, c.Width)
	default:
		return string(c.Kind)
	}
}

// RampUp is 0 at or below start, 100 at or above end and linear in between.
// A degenerate range (end <= start) yields 0.
func RampUp(x, start, end float64) float64 {
	if end <= start {
		return 0
	}
	return clamp((x - start) / (end - start) * 100)
}

// RampDown mirrors RampUp: 100 at or below start, 0 at or above end.
func RampDown(x, start, end float64) float64 {
	if end <= start {
		return 0
	}
	return clamp(100 - (x-start)/(end-start)*100)
}

// Band is 100 on [low, high] and decays linearly to 0 over width on each
// side. The two slopes are computed independently; low > high is not guarded.
func Band(x, low, high, width float64) float64 {
	left0, right0 := low-width, high+width
	switch {
	case x < left0:
		return 0
	case x < low:
		return clamp((x - left0) / (low - left0) * 100)
	case x <= high:
		return 100
	case x <= right0:
		return clamp((right0 - x) / (right0 - high) * 100)
	default:
		return 0
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
