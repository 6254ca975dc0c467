package slider

import "math"

// Clamp constrains v to the [min, max] interval. NaN is mapped to min so the
// result is always inside the bounds.
func Clamp(v, min, max float64) float64 {
	if math.IsNaN(v) || v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// SnapToStep rounds v to the nearest multiple of step. Ties round up, so the
// fractional part of v/step decides: below one half rounds down.
// A non-positive step is a caller error; v is returned unchanged.
func SnapToStep(v, step float64) float64 {
	if !(step > 0) || math.IsInf(step, 0) {
		return v
	}
	q := v / step
	n := math.Floor(q)
	if q-n < 0.5 {
		return n * step
	}
	return (n + 1) * step
}

// Normalize snaps v to the step grid and then clamps it to the bounds.
// Snapping can push a value past a bound, so the order matters.
func Normalize(v float64, b Bounds) float64 {
	return Clamp(SnapToStep(v, b.Step), b.Min, b.Max)
}
