package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/rangeslider/internal/slider"
)

const trackThickness float32 = 4

// RangeSlider is a horizontal single-handle slider driven by a slider.Engine.
// The widget measures the track and handle, forwards pointer, scroll and key
// input to the engine and draws the handle where the engine's RenderHint says.
//
// Like every Fyne widget it must only be used from the UI goroutine.
type RangeSlider struct {
	widget.BaseWidget

	engine  *slider.Engine
	focused bool

	// host updates made from inside engine callbacks are applied once the
	// engine operation has returned
	dispatching bool
	pending     *slider.Props
}

// NewRangeSlider creates a slider for the given props. Passing a non-nil
// props.Value (or props.Controlled) makes it controlled: the host must then
// call SetValue to move the handle.
func NewRangeSlider(p slider.Props) *RangeSlider {
	s := &RangeSlider{engine: slider.NewEngine(p)}
	s.ExtendBaseWidget(s)
	return s
}

func (s *RangeSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &rangeSliderRenderer{
		s:        s,
		track:    canvas.NewRectangle(theme.ShadowColor()),
		fill:     canvas.NewRectangle(theme.PrimaryColor()),
		thumb:    canvas.NewCircle(theme.ForegroundColor()),
		disabled: canvas.NewHorizontalGradient(color.Transparent, theme.DisabledColor()),
	}
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.thumb, r.disabled}
	r.Refresh()
	return r
}

// Props returns the current host configuration, including an update that is
// still waiting for the running engine operation to finish.
func (s *RangeSlider) Props() slider.Props {
	if s.pending != nil {
		return *s.pending
	}
	return s.engine.Props()
}

// SetProps runs a host update pass and redraws. Calls made from OnChange or
// AfterChange are deferred until the triggering operation returns.
func (s *RangeSlider) SetProps(p slider.Props) {
	if s.dispatching {
		s.pending = &p
		return
	}
	s.engine.Update(p)
	s.Refresh()
}

// SetValue pushes a host value into a controlled slider. Uncontrolled sliders
// keep their own value.
func (s *RangeSlider) SetValue(v float64) {
	p := s.Props()
	p.Value = &v
	s.SetProps(p)
}

// Value returns the displayed value.
func (s *RangeSlider) Value() float64 { return s.engine.CurrentDisplayValue() }

// Mode reports whether the slider is controlled.
func (s *RangeSlider) Mode() slider.Mode { return s.engine.Mode() }

// Enable implements fyne.Disableable.
func (s *RangeSlider) Enable() { s.setDisabled(false) }

// Disable implements fyne.Disableable.
func (s *RangeSlider) Disable() { s.setDisabled(true) }

// Disabled implements fyne.Disableable.
func (s *RangeSlider) Disabled() bool { return s.Props().Disabled }

func (s *RangeSlider) setDisabled(d bool) {
	p := s.Props()
	if p.Disabled == d {
		return
	}
	p.Disabled = d
	s.SetProps(p)
}

// SetReadOnly toggles read-only mode: the value is shown but cannot be moved.
func (s *RangeSlider) SetReadOnly(ro bool) {
	p := s.Props()
	if p.ReadOnly == ro {
		return
	}
	p.ReadOnly = ro
	s.SetProps(p)
}

// Tapped moves the handle to the tapped position.
func (s *RangeSlider) Tapped(e *fyne.PointEvent) {
	if e == nil {
		return
	}
	s.requestFocus()
	s.dispatch(func() { s.engine.PointerDown(float64(e.Position.X)) })
}

// Dragged moves the handle with the pointer.
func (s *RangeSlider) Dragged(e *fyne.DragEvent) {
	if e == nil {
		return
	}
	s.dispatch(func() { s.engine.PointerMove(float64(e.Position.X)) })
}

// DragEnd is a no-op: every drag update already reported its value.
func (s *RangeSlider) DragEnd() {}

// Scrolled steps the value with the mouse wheel.
func (s *RangeSlider) Scrolled(ev *fyne.ScrollEvent) {
	if ev == nil {
		return
	}
	if ev.Scrolled.DY > 0 {
		s.stepBy(1)
	} else if ev.Scrolled.DY < 0 {
		s.stepBy(-1)
	}
}

// FocusGained implements fyne.Focusable.
func (s *RangeSlider) FocusGained() {
	s.focused = true
	s.Refresh()
}

// FocusLost implements fyne.Focusable.
func (s *RangeSlider) FocusLost() {
	s.focused = false
	s.Refresh()
}

// TypedRune implements fyne.Focusable.
func (s *RangeSlider) TypedRune(rune) {}

// TypedKey steps the value with the arrow keys.
func (s *RangeSlider) TypedKey(ev *fyne.KeyEvent) {
	if ev == nil {
		return
	}
	switch ev.Name {
	case fyne.KeyRight, fyne.KeyUp:
		s.stepBy(1)
	case fyne.KeyLeft, fyne.KeyDown:
		s.stepBy(-1)
	}
}

func (s *RangeSlider) stepBy(n int) {
	s.dispatch(func() { s.engine.StepBy(n) })
}

// dispatch runs one engine operation, then applies any host update its
// callbacks made and redraws.
func (s *RangeSlider) dispatch(op func()) {
	s.dispatching = true
	op()
	s.dispatching = false
	if s.pending != nil {
		p := *s.pending
		s.pending = nil
		s.engine.Update(p)
	}
	s.Refresh()
}

func (s *RangeSlider) requestFocus() {
	if !s.engine.Interactive() {
		return
	}
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return
	}
	if c := app.Driver().CanvasForObject(s); c != nil {
		c.Focus(s)
	}
}

// MinSize keeps a comfortable touch target height.
func (s *RangeSlider) MinSize() fyne.Size {
	return fyne.NewSize(100, theme.IconInlineSize())
}

type rangeSliderRenderer struct {
	s        *RangeSlider
	track    *canvas.Rectangle
	fill     *canvas.Rectangle
	thumb    *canvas.Circle
	disabled *canvas.LinearGradient
	objs     []fyne.CanvasObject
}

// measure reports the laid out geometry to the engine. Event positions are
// widget-local, so the track origin is 0.
func (r *rangeSliderRenderer) measure(sz fyne.Size) {
	r.s.engine.SetTrackGeometry(float64(sz.Width), 0)
	r.s.engine.SetHandleGeometry(float64(theme.IconInlineSize() / 2))
}

func (r *rangeSliderRenderer) Layout(sz fyne.Size) {
	r.measure(sz)
	g := r.s.engine.Geometry()
	hint := r.s.engine.RenderHint()

	y := (sz.Height - trackThickness) / 2
	r.track.Move(fyne.NewPos(0, y))
	r.track.Resize(fyne.NewSize(sz.Width, trackThickness))

	d := float32(g.HandleWidth)
	left := float32(hint.PercentOffset/100) * sz.Width
	r.thumb.Resize(fyne.NewSize(d, d))
	r.thumb.Move(fyne.NewPos(left, (sz.Height-d)/2))

	// highlighted part of the track ends under the handle center
	fillW := left + d/2
	if fillW > sz.Width {
		fillW = sz.Width
	}
	r.fill.Move(fyne.NewPos(0, y))
	r.fill.Resize(fyne.NewSize(fillW, trackThickness))

	r.disabled.Move(fyne.NewPos(0, 0))
	r.disabled.Resize(sz)
}

func (r *rangeSliderRenderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *rangeSliderRenderer) Refresh() {
	p := r.s.engine.Props()
	r.track.FillColor = theme.ShadowColor()
	switch {
	case p.Disabled:
		r.fill.FillColor = theme.DisabledColor()
		r.thumb.FillColor = theme.DisabledColor()
	case r.s.focused:
		r.fill.FillColor = theme.PrimaryColor()
		r.thumb.FillColor = theme.FocusColor()
	default:
		r.fill.FillColor = theme.PrimaryColor()
		r.thumb.FillColor = theme.ForegroundColor()
	}
	r.disabled.EndColor = theme.DisabledColor()
	if p.Disabled {
		r.disabled.Show()
	} else {
		r.disabled.Hide()
	}
	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.thumb)
	canvas.Refresh(r.disabled)
}

func (r *rangeSliderRenderer) Destroy() {}

func (r *rangeSliderRenderer) Objects() []fyne.CanvasObject { return r.objs }
