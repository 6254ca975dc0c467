package slider

// Mode records who owns the slider value. It is chosen once by NewEngine.
type Mode int

const (
	// Uncontrolled engines own their value after an optional initial seed.
	Uncontrolled Mode = iota
	// Controlled engines mirror the value supplied by the host.
	Controlled
)

func (m Mode) String() string {
	if m == Controlled {
		return "controlled"
	}
	return "uncontrolled"
}

// Engine owns the interaction state of one slider: the current value and the
// measured geometry. Bounds and flags come from the host through Props.
//
// Engine is not safe for concurrent use and its operations are not
// reentrant: OnChange and AfterChange run synchronously inside the operation
// that triggered them, and a callback that calls back into the engine sees
// partially applied state.
type Engine struct {
	mode  Mode
	props Props
	geom  Geometry

	value    float64
	hasValue bool
}

// NewEngine creates an engine for p. The mode is controlled when p.Controlled
// is set or p.Value is non-nil, and uncontrolled otherwise.
func NewEngine(p Props) *Engine {
	e := &Engine{props: p}
	switch {
	case p.Controlled || p.Value != nil:
		e.mode = Controlled
		if p.Value != nil {
			e.value, e.hasValue = *p.Value, true
		}
	case p.DefaultValue != nil:
		e.value, e.hasValue = *p.DefaultValue, true
	}
	tracef("new %s engine, bounds %+v, seeded=%v value=%v", e.mode, p.Bounds, e.hasValue, e.value)
	return e
}

// Mode reports the mode chosen at construction.
func (e *Engine) Mode() Mode { return e.mode }

// Props returns the current host configuration.
func (e *Engine) Props() Props { return e.props }

// Geometry returns the measured geometry snapshot.
func (e *Engine) Geometry() Geometry { return e.geom }

// Value returns the stored value and whether one has been set.
func (e *Engine) Value() (float64, bool) { return e.value, e.hasValue }

// Interactive reports whether mutating operations are currently allowed.
func (e *Engine) Interactive() bool {
	return !e.props.Disabled && !e.props.ReadOnly
}

// Update replaces the host configuration. In controlled mode the host value
// is taken over unconditionally, including nil. Uncontrolled engines ignore
// the host value, even if the host starts supplying one.
func (e *Engine) Update(p Props) {
	e.props = p
	if e.mode == Controlled {
		e.SyncFromHost(p.Value)
	}
}

// SyncFromHost overwrites the value with the host's. nil clears it. It is a
// no-op for uncontrolled engines.
func (e *Engine) SyncFromHost(v *float64) {
	if e.mode != Controlled {
		if v != nil {
			tracef("ignoring host value %v on uncontrolled engine", *v)
		}
		return
	}
	if v == nil {
		e.value, e.hasValue = 0, false
		return
	}
	e.value, e.hasValue = *v, true
}

// SetTrackGeometry records the measured track width and its origin X.
// It emits no notification.
func (e *Engine) SetTrackGeometry(width, origin float64) {
	if width < 0 {
		width = 0
	}
	e.geom.TrackWidth = width
	e.geom.TrackOrigin = origin
	e.geom.TrackMeasured = true
}

// SetHandleGeometry records the handle width unless one was already recorded.
// Only the first positive measurement is kept; it reports whether w was stored.
func (e *Engine) SetHandleGeometry(w float64) bool {
	if e.geom.HandleMeasured || !(w > 0) {
		return false
	}
	e.geom.HandleWidth = w
	e.geom.HandleMeasured = true
	return true
}

// CurrentDisplayValue returns the stored value, or Min when none is set.
func (e *Engine) CurrentDisplayValue() float64 {
	if !e.hasValue {
		return e.props.Min
	}
	return e.value
}

// RenderHint returns where the renderer should place the handle.
func (e *Engine) RenderHint() RenderHint {
	v := e.CurrentDisplayValue()
	return RenderHint{
		PercentOffset: ValueToPercent(v, e.props.Bounds, e.geom),
		Factor:        Factor(e.geom, e.props.Bounds),
	}
}

// StepBy moves the value by n whole steps, clamped to the bounds. It fires
// OnChange but never AfterChange.
func (e *Engine) StepBy(n int) {
	if !e.Interactive() {
		tracef("step %d suppressed (disabled=%v readOnly=%v)", n, e.props.Disabled, e.props.ReadOnly)
		return
	}
	b := e.props.Bounds
	candidate := Clamp(e.CurrentDisplayValue()+float64(n)*b.Step, b.Min, b.Max)
	if e.hasValue && candidate == e.value {
		return
	}
	e.commit(candidate)
	e.emitChange(candidate)
}

// MoveToPointerPosition moves the handle center to pointer X. A changed value
// fires OnChange followed by AfterChange.
func (e *Engine) MoveToPointerPosition(x float64) {
	if !e.Interactive() {
		tracef("pointer %v suppressed (disabled=%v readOnly=%v)", x, e.props.Disabled, e.props.ReadOnly)
		return
	}
	if !isFinite(x) {
		return
	}
	b := e.props.Bounds
	candidate := Normalize(PointerToValue(x, e.geom, b), b)
	if candidate == e.CurrentDisplayValue() {
		return
	}
	e.commit(candidate)
	e.emitChange(candidate)
	e.emitAfterChange(candidate)
}

// commit stores v when the engine owns its value.
func (e *Engine) commit(v float64) {
	if e.mode == Controlled {
		tracef("controlled engine proposes %v", v)
		return
	}
	e.value, e.hasValue = v, true
	tracef("value committed: %v", v)
}

func (e *Engine) emitChange(v float64) {
	if e.props.OnChange != nil {
		e.props.OnChange(Change{Value: v})
	}
}

func (e *Engine) emitAfterChange(v float64) {
	if e.props.AfterChange != nil {
		e.props.AfterChange(Change{Value: v})
	}
}
