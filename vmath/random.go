package vmath

import "math"

// Float64Source is a uniform [0,1) generator, satisfied by *math/rand.Rand
type Float64Source interface {
	Float64() float64
}

// Random draws from src and remaps an exact 1.0 to 0, keeping the interval half-open
// for sources that may return the upper bound
func Random(src Float64Source) float64 {
	x := src.Float64()
	if x == 1 {
		return 0
	}
	return x
}

// RandInt returns a uniform integer in the inclusive range [a, b]
func RandInt(src Float64Source, a, b int) int {
	return int(math.Floor(Random(src)*float64(b-a+1))) + a
}
