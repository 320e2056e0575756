package vmath

import (
	"math"
	"testing"
)

func TestEasingBoundaries(t *testing.T) {
	for name, fn := range Easings {
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEasingRange(t *testing.T) {
	for name, fn := range Easings {
		for i := 0; i <= 100; i++ {
			x := float64(i) / 100
			if y := fn(x); y < 0 || y > 1 {
				t.Errorf("%s(%v) = %v, outside [0,1]", name, x, y)
			}
		}
	}
}

func TestEasingFormulas(t *testing.T) {
	tests := []struct {
		name string
		fn   EasingFunc
		in   float64
		want float64
	}{
		{"linear", Linear, 0.3, 0.3},
		{"easeIn", EaseIn, 0.5, 0.875},
		{"easeOut", EaseOut, 0.5, 0.125},
		{"easeInOut midpoint", EaseInOut, 0.5, 0.5},
		{"easeInOut quarter", EaseInOut, 0.25, 0.15625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// EaseIn and EaseOut mirror each other around the center point
func TestEaseInOutMirror(t *testing.T) {
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		if d := EaseIn(x) - (1 - EaseOut(1-x)); math.Abs(d) > 1e-12 {
			t.Errorf("EaseIn(%v) not mirror of EaseOut, diff %v", x, d)
		}
	}
}

func TestEasingMonotonic(t *testing.T) {
	for name, fn := range Easings {
		prev := fn(0)
		for i := 1; i <= 50; i++ {
			cur := fn(float64(i) / 50)
			if cur < prev {
				t.Errorf("%s decreases at step %d: %v < %v", name, i, cur, prev)
			}
			prev = cur
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.5) = %v, want 0", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp(1.5) = %v, want 1", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("Clamp(0.25) = %v, want 0.25", got)
	}
}
