package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// smallHandleTheme halves the inline icon size, which RangeSlider uses for
// its handle diameter.
type smallHandleTheme struct{ fyne.Theme }

func (t smallHandleTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameInlineIcon {
		return t.Theme.Size(n) * 0.5
	}
	return t.Theme.Size(n)
}

// UseSmallHandleTheme wraps the current app theme. Call it before any slider
// is laid out: the handle width is measured once.
func UseSmallHandleTheme() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	app.Settings().SetTheme(smallHandleTheme{Theme: app.Settings().Theme()})
}
