package slider

import (
	"log"
	"sync/atomic"
)

var traceLogEnabled atomic.Bool

// SetTraceLoggingEnabled toggles trace logging of engine state transitions.
func SetTraceLoggingEnabled(enabled bool) {
	traceLogEnabled.Store(enabled)
}

func isTraceLoggingEnabled() bool {
	return traceLogEnabled.Load()
}

func tracef(format string, args ...any) {
	if !isTraceLoggingEnabled() {
		return
	}
	log.Printf("slider: "+format, args...)
}
