package slider

import (
	"math"
	"testing"
)

func measuredGeometry(track, handle, origin float64) Geometry {
	return Geometry{
		TrackWidth:     track,
		TrackOrigin:    origin,
		HandleWidth:    handle,
		TrackMeasured:  true,
		HandleMeasured: true,
	}
}

func TestFactor(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		b    Bounds
		want float64
	}{
		{name: "unmeasured", g: Geometry{}, b: DefaultBounds(), want: 1},
		{name: "track only", g: Geometry{TrackWidth: 200, TrackMeasured: true}, b: DefaultBounds(), want: 1},
		{name: "measured", g: measuredGeometry(220, 20, 0), b: DefaultBounds(), want: 2},
		{name: "fractional", g: measuredGeometry(200, 20, 0), b: DefaultBounds(), want: 1.8},
		{name: "min equals max", g: measuredGeometry(200, 20, 0), b: Bounds{Min: 5, Max: 5, Step: 1}, want: 1},
		{name: "handle fills track", g: measuredGeometry(20, 20, 0), b: DefaultBounds(), want: 1},
		{name: "handle wider than track", g: measuredGeometry(10, 20, 0), b: DefaultBounds(), want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Factor(tt.g, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Factor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueToPercent(t *testing.T) {
	g := measuredGeometry(220, 20, 0)
	b := DefaultBounds()
	tests := []struct {
		name  string
		value float64
		g     Geometry
		want  float64
	}{
		{name: "min", value: 0, g: g, want: 0},
		{name: "middle", value: 50, g: g, want: 100 * 100.0 / 220},
		{name: "max", value: 100, g: g, want: 200 * 100.0 / 220},
		{name: "above max is clamped", value: 150, g: g, want: 200 * 100.0 / 220},
		{name: "below min is clamped", value: -3, g: g, want: 0},
		{name: "unmeasured", value: 50, g: Geometry{}, want: 0},
		{name: "handle unmeasured", value: 50, g: Geometry{TrackWidth: 220, TrackMeasured: true}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueToPercent(tt.value, b, tt.g)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("ValueToPercent(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestPointerToValue(t *testing.T) {
	b := DefaultBounds()
	g := measuredGeometry(220, 20, 40)
	// handle center at origin + half handle is the minimum
	if got := PointerToValue(50, g, b); math.Abs(got) > 1e-9 {
		t.Fatalf("PointerToValue(50) = %v, want 0", got)
	}
	if got := PointerToValue(250, g, b); math.Abs(got-100) > 1e-9 {
		t.Fatalf("PointerToValue(250) = %v, want 100", got)
	}
	shifted := Bounds{Min: 10, Max: 60, Step: 1}
	if got := PointerToValue(150, g, shifted); math.Abs(got-35) > 1e-9 {
		t.Fatalf("PointerToValue(150) with min 10 = %v, want 35", got)
	}
}

func TestPointerRoundTrip(t *testing.T) {
	geometries := []Geometry{
		measuredGeometry(200, 20, 0),
		measuredGeometry(333, 17, 12.5),
		{},
	}
	bounds := []Bounds{
		DefaultBounds(),
		{Min: -50, Max: 50, Step: 0.5},
		{Min: 1, Max: 2, Step: 0.1},
	}
	for _, g := range geometries {
		for _, b := range bounds {
			for i := 1; i < 10; i++ {
				v := b.Min + (b.Max-b.Min)*float64(i)/10
				x := ValueToPointer(v, g, b)
				got := PointerToValue(x, g, b)
				if math.Abs(got-v) > 1e-9 {
					t.Fatalf("round trip of %v through x=%v gave %v (g=%+v b=%+v)", v, x, got, g, b)
				}
				if n := Normalize(got, b); math.Abs(n-SnapToStep(v, b.Step)) > 1e-9 {
					t.Fatalf("normalized round trip of %v gave %v", v, n)
				}
			}
		}
	}
}
