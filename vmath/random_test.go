package vmath

import (
	"math/rand"
	"testing"
)

// fixedSource replays a fixed sequence of values
type fixedSource struct {
	values []float64
	pos    int
}

func (s *fixedSource) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func TestRandomRemapsUpperBound(t *testing.T) {
	src := &fixedSource{values: []float64{1.0, 0.5}}

	if got := Random(src); got != 0 {
		t.Errorf("Random with 1.0 = %v, want 0", got)
	}
	if got := Random(src); got != 0.5 {
		t.Errorf("Random with 0.5 = %v, want 0.5", got)
	}
}

func TestRandIntBounds(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.999999, 255},
		{1.0, 0},
		{0.5, 128},
		{200.0 / 256, 200},
	}

	for _, tt := range tests {
		src := &fixedSource{values: []float64{tt.in}}
		if got := RandInt(src, 0, 255); got != tt.want {
			t.Errorf("RandInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRandIntDistribution(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	seen := make(map[int]bool)

	for i := 0; i < 20000; i++ {
		v := RandInt(src, 3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("RandInt out of range: %d", v)
		}
		seen[v] = true
	}

	if len(seen) != 5 {
		t.Errorf("Expected all 5 values to appear, saw %d", len(seen))
	}
}
