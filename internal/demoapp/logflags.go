package demoapp

import (
	playerpkg "github.com/edward-ap/rangeslider/internal/player"
	"github.com/edward-ap/rangeslider/internal/slider"
)

// SetTraceLogEnabled toggles trace logging for the slider engine and the
// player (including libVLC file logging). Call it before NewApp.
func SetTraceLogEnabled(b bool) {
	playerpkg.SetTraceLoggingEnabled(b)
	slider.SetTraceLoggingEnabled(b)
}
