package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{0.5, 0.875},
		{1, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.t); math.Abs(got-tt.want) > epsilon {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestEaseInOutCubicIsSymmetric(t *testing.T) {
	for _, x := range []float64{0.1, 0.25, 0.4} {
		a := EaseInOutCubic(x)
		b := 1 - EaseInOutCubic(1-x)
		if math.Abs(a-b) > epsilon {
			t.Errorf("EaseInOutCubic not symmetric at %v: %v vs %v", x, a, b)
		}
	}
	if EaseInOutCubic(0.5) != 0.5 {
		t.Errorf("EaseInOutCubic(0.5) = %v", EaseInOutCubic(0.5))
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp = %v, want 12.5", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp out of range")
	}
	if Clamp01(1.5) != 1 {
		t.Error("Clamp01(1.5) != 1")
	}
}

func TestSmoothstep(t *testing.T) {
	if Smoothstep(30, 100, 10) != 0 {
		t.Error("below edge0 should be 0")
	}
	if Smoothstep(30, 100, 200) != 1 {
		t.Error("above edge1 should be 1")
	}
	if got := Smoothstep(30, 100, 65); math.Abs(got-0.5) > epsilon {
		t.Errorf("midpoint = %v, want 0.5", got)
	}
	if Smoothstep(5, 5, 4) != 0 || Smoothstep(5, 5, 6) != 1 {
		t.Error("degenerate range should step")
	}
}
