package slider

import "math"

// PointerDown handles a press (mouse click or tap) at absolute X.
func (e *Engine) PointerDown(x float64) {
	e.MoveToPointerPosition(x)
}

// PointerMove handles a drag update at absolute X. Every move is independent;
// there is no separate release step.
func (e *Engine) PointerMove(x float64) {
	e.MoveToPointerPosition(x)
}

// TouchStart handles the start of a touch gesture with the X of every active
// touch point. Only a single touch moves the handle. It reports whether the
// event was consumed; callers must leave the platform default action alone
// when it returns false.
func (e *Engine) TouchStart(xs []float64) bool {
	if !e.Interactive() || len(xs) != 1 {
		return false
	}
	e.MoveToPointerPosition(xs[0])
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
