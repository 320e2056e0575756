package vmath

import "math"

// EasingFunc maps normalized time t in [0,1] to eased progress
// Boundary contract: f(0) = 0 and f(1) = 1; output is not clamped
type EasingFunc func(t float64) float64

// Linear passes time through unchanged
func Linear(t float64) float64 {
	return t
}

// EaseIn is the cubic 1-(1-t)^3 curve: fast start, slow finish
// NOTE: name kept with its formula, the shape is what is conventionally called ease-out
func EaseIn(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseOut is the cubic t^3 curve: slow start, fast finish
// NOTE: shape is conventionally called ease-in, see EaseIn
func EaseOut(t float64) float64 {
	return t * t * t
}

// EaseInOut is smoothstep 3t^2 - 2t^3: slow at both ends, fast in the middle
func EaseInOut(t float64) float64 {
	return 3*t*t - 2*t*t*t
}

// Easings indexes the easing family by name for configuration lookup
var Easings = map[string]EasingFunc{
	"linear":    Linear,
	"easeIn":    EaseIn,
	"easeOut":   EaseOut,
	"easeInOut": EaseInOut,
}

// Clamp restricts v to [lo, hi]
// NaN propagates unchanged, callers decide how to treat it
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
