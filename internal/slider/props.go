// Package slider implements the value model, geometry mapping and interaction
// state machine behind a single-handle range slider. It has no GUI
// dependencies; adapters feed it measured geometry and pointer positions and
// read back a RenderHint.
package slider

import (
	"errors"
	"fmt"
)

const (
	// DefaultMin is the lower bound used when the host supplies none.
	DefaultMin = 0
	// DefaultMax is the upper bound used when the host supplies none.
	DefaultMax = 100
	// DefaultStep is the step used when the host supplies none.
	DefaultStep = 1
)

var (
	// ErrInvalidStep reports a step that is not a positive number.
	ErrInvalidStep = errors.New("slider step must be greater than zero")
	// ErrInvertedBounds reports max < min.
	ErrInvertedBounds = errors.New("slider max must not be less than min")
)

// Bounds is the {min, max, step} domain of a slider. The range does not need
// to be an exact multiple of the step.
type Bounds struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultBounds returns {0, 100, 1}.
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMin, Max: DefaultMax, Step: DefaultStep}
}

// Validate checks the host contract. The engine never calls it: bounds that
// fail validation give undefined (but finite) results.
func (b Bounds) Validate() error {
	if !(b.Step > 0) {
		return fmt.Errorf("step %v: %w", b.Step, ErrInvalidStep)
	}
	if b.Max < b.Min {
		return fmt.Errorf("min %v, max %v: %w", b.Min, b.Max, ErrInvertedBounds)
	}
	return nil
}

// Change is the payload of OnChange and AfterChange notifications.
type Change struct {
	Value float64
}

// Props is the host-supplied configuration of a slider. It is read-only for
// the engine and replaced wholesale on every Update.
type Props struct {
	Bounds
	Disabled bool
	ReadOnly bool

	// Value is the host-owned value. A non-nil Value at construction selects
	// controlled mode.
	Value *float64
	// DefaultValue seeds an uncontrolled slider. Ignored in controlled mode.
	DefaultValue *float64
	// Controlled forces controlled mode even when Value starts out nil.
	Controlled bool

	OnChange    func(Change)
	AfterChange func(Change)
}

// DefaultProps returns uncontrolled, enabled props with DefaultBounds.
func DefaultProps() Props {
	return Props{Bounds: DefaultBounds()}
}

// Float returns a pointer to v, for filling Props.Value and Props.DefaultValue.
func Float(v float64) *float64 { return &v }
