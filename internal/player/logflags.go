package player

import (
	"log"
	"sync/atomic"
)

var traceLogEnabled atomic.Bool

// SetTraceLoggingEnabled enables or disables trace logging, including libVLC
// file logging on Init.
func SetTraceLoggingEnabled(enabled bool) {
	traceLogEnabled.Store(enabled)
}

// isTraceLoggingEnabled checks if trace-level logging is currently enabled.
func isTraceLoggingEnabled() bool {
	return traceLogEnabled.Load()
}

func tracef(format string, args ...any) {
	if !isTraceLoggingEnabled() {
		return
	}
	log.Printf("player: "+format, args...)
}
