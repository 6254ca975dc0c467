package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/edward-ap/rangeslider/internal/slider"
)

func TestCaptionText(t *testing.T) {
	tests := []struct {
		name string
		b    slider.Bounds
		want string
	}{
		{name: "defaults", b: slider.DefaultBounds(), want: "0 … 100  step 1"},
		{name: "fractional", b: slider.Bounds{Min: -1.5, Max: 1.5, Step: 0.25}, want: "-1.5 … 1.5  step 0.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := captionText(tt.b); got != tt.want {
				t.Fatalf("captionText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewBoundsCaptionRasterizes(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	c := NewBoundsCaption(slider.DefaultBounds())
	obj := c.CanvasObject()
	if obj == nil {
		t.Fatal("caption has no canvas object")
	}
	if sz := obj.MinSize(); sz.Width < 2 || sz.Height < 2 {
		t.Fatalf("caption image too small: %v", sz)
	}
}
