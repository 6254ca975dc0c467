package ui

import (
	"image"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/edward-ap/rangeslider/internal/slider"
)

// BoundsCaption is a static "min … max" caption shown under a slider. It is
// rasterized once on creation and reused as an image.
type BoundsCaption struct {
	text string
	col  color.Color
	img  *canvas.Image
}

// NewBoundsCaption renders the caption for b with the current theme colors.
func NewBoundsCaption(b slider.Bounds) *BoundsCaption {
	c := &BoundsCaption{text: captionText(b), col: theme.DisabledColor()}
	c.render()
	return c
}

// CanvasObject exposes the underlying canvas.Image for layout containers.
func (c *BoundsCaption) CanvasObject() fyne.CanvasObject { return c.img }

// Text returns the caption text.
func (c *BoundsCaption) Text() string { return c.text }

func captionText(b slider.Bounds) string {
	return formatBound(b.Min) + " … " + formatBound(b.Max) + "  step " + formatBound(b.Step)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *BoundsCaption) render() {
	face := captionFace()
	if closer, ok := face.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	d := &font.Drawer{Face: face}
	adv := d.MeasureString(c.text)
	pad := 4
	metrics := face.Metrics()
	w := adv.Ceil() + pad
	h := (metrics.Ascent + metrics.Descent).Ceil() + pad
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = dst
	d.Src = image.NewUniform(color.NRGBAModel.Convert(c.col))
	d.Dot = fixed.P(pad/2, metrics.Ascent.Ceil()+pad/2)
	d.DrawString(c.text)

	img := canvas.NewImageFromImage(dst)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	c.img = img
}

// captionFace loads the theme font at a small size and falls back to a
// bitmap face when it cannot be parsed.
func captionFace() font.Face {
	res := theme.TextFont()
	size := float64(theme.CaptionTextSize())
	if size <= 0 {
		size = 11
	}
	size *= currentScale() * 0.75
	if size < 6 {
		size = 6
	}
	if res != nil {
		if data := res.Content(); len(data) > 0 {
			if ttf, err := opentype.Parse(data); err == nil {
				if face, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: size, DPI: 96, Hinting: font.HintingFull}); err == nil {
					return face
				}
			}
		}
	}
	return basicfont.Face7x13
}
