package slider

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		min   float64
		max   float64
		want  float64
	}{
		{name: "inside", value: 5, min: 0, max: 10, want: 5},
		{name: "below min", value: -5, min: 0, max: 10, want: 0},
		{name: "above max", value: 25, min: 0, max: 10, want: 10},
		{name: "on bound", value: 10, min: 0, max: 10, want: 10},
		{name: "degenerate range", value: 7, min: 5, max: 5, want: 5},
		{name: "nan maps to min", value: math.NaN(), min: -1, max: 1, want: -1},
		{name: "infinity", value: math.Inf(1), min: 0, max: 1, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestClampIdempotentAndBounded(t *testing.T) {
	for v := -30.0; v <= 30; v += 0.7 {
		once := Clamp(v, -10, 10)
		if once < -10 || once > 10 {
			t.Fatalf("Clamp(%v) = %v outside bounds", v, once)
		}
		if twice := Clamp(once, -10, 10); twice != once {
			t.Fatalf("Clamp not idempotent for %v: %v then %v", v, once, twice)
		}
	}
}

func TestSnapToStep(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		step  float64
		want  float64
	}{
		{name: "round down", value: 12.4, step: 5, want: 10},
		{name: "tie rounds up", value: 12.5, step: 5, want: 15},
		{name: "round up", value: 13, step: 5, want: 15},
		{name: "already on grid", value: 20, step: 5, want: 20},
		{name: "fractional step", value: 6.1, step: 2.5, want: 5},
		{name: "negative rounds to nearer", value: -7, step: 2.5, want: -7.5},
		{name: "negative towards zero", value: -6.2, step: 2.5, want: -5},
		{name: "negative tie rounds up", value: -2.5, step: 5, want: 0},
		{name: "zero step unchanged", value: 3.3, step: 0, want: 3.3},
		{name: "negative step unchanged", value: 3.3, step: -1, want: 3.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SnapToStep(tt.value, tt.step)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("SnapToStep(%v, %v) = %v, want %v", tt.value, tt.step, got, tt.want)
			}
		})
	}
}

func TestSnapToStepPicksNearestMultiple(t *testing.T) {
	const step = 0.75
	for v := -20.0; v <= 20; v += 0.13 {
		got := SnapToStep(v, step)
		n := got / step
		if math.Abs(n-math.Round(n)) > 1e-6 {
			t.Fatalf("SnapToStep(%v) = %v is not a multiple of %v", v, got, step)
		}
		if d := math.Abs(got - v); d > step/2+1e-9 {
			t.Fatalf("SnapToStep(%v) = %v is %v away, more than half a step", v, got, d)
		}
	}
}

func TestNormalizeSnapsBeforeClamping(t *testing.T) {
	tests := []struct {
		name  string
		b     Bounds
		value float64
		want  float64
	}{
		{name: "snap past max is clamped", b: Bounds{Min: -10, Max: 10, Step: 2.5}, value: 8.9, want: 10},
		{name: "max off the grid stays reachable", b: Bounds{Min: 0, Max: 9, Step: 5}, value: 8.9, want: 9},
		{name: "below min", b: Bounds{Min: 0, Max: 100, Step: 1}, value: -3.2, want: 0},
		{name: "raw 105 clamps to 100", b: Bounds{Min: 0, Max: 100, Step: 1}, value: 105, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.value, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Normalize(%v, %+v) = %v, want %v", tt.value, tt.b, got, tt.want)
			}
		})
	}
}
