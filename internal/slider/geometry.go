package slider

import "math"

// Geometry holds the measured pixel dimensions of the track and the handle.
// Dimensions start out unmeasured; the flags record whether a measurement
// has arrived.
type Geometry struct {
	TrackWidth     float64
	TrackOrigin    float64
	HandleWidth    float64
	TrackMeasured  bool
	HandleMeasured bool
}

// measured reports whether both track and handle are known and the track has
// a usable width.
func (g Geometry) measured() bool {
	return g.TrackMeasured && g.HandleMeasured && g.TrackWidth > 0
}

// RenderHint tells a renderer where to place the handle.
type RenderHint struct {
	// PercentOffset is the handle's left edge as a percentage of the track width.
	PercentOffset float64
	// Factor is the pixels-per-unit scale in effect.
	Factor float64
}

// Factor returns the pixel-per-unit scale (trackWidth - handleWidth) / (max - min).
// It falls back to 1 until both dimensions are measured, and whenever the
// result is not a finite positive number (max == min, handle wider than track).
func Factor(g Geometry, b Bounds) float64 {
	if !g.TrackMeasured || !g.HandleMeasured {
		return 1
	}
	f := (g.TrackWidth - g.HandleWidth) / (b.Max - b.Min)
	if !(f > 0) || math.IsInf(f, 0) {
		return 1
	}
	return f
}

// ValueToPixel converts v to the handle's pixel offset from the track start.
// v is clamped for display only.
func ValueToPixel(v float64, b Bounds, g Geometry) float64 {
	return (Clamp(v, b.Min, b.Max) - b.Min) * Factor(g, b)
}

// ValueToPercent converts v to the handle offset as a percentage of the track
// width. It is 0 until the geometry is measured, which keeps the handle at the
// origin.
func ValueToPercent(v float64, b Bounds, g Geometry) float64 {
	if !g.measured() {
		return 0
	}
	return ValueToPixel(v, b, g) * (100 / g.TrackWidth)
}

// PointerToValue maps an absolute pointer X to a candidate value, treating
// the pointer as the center of the handle. The result is not snapped or
// clamped; pass it through Normalize.
func PointerToValue(x float64, g Geometry, b Bounds) float64 {
	f := Factor(g, b)
	handle := 0.0
	if g.HandleMeasured {
		handle = g.HandleWidth
	}
	raw := x - g.TrackOrigin + b.Min*f
	centered := raw - handle/2
	return centered / f
}

// ValueToPointer is the inverse of PointerToValue for in-range values: the
// pointer X at the center of a handle showing v.
func ValueToPointer(v float64, g Geometry, b Bounds) float64 {
	handle := 0.0
	if g.HandleMeasured {
		handle = g.HandleWidth
	}
	return g.TrackOrigin + ValueToPixel(v, b, g) + handle/2
}
