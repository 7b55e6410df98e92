// Package logging holds the module-wide structured logger used by the
// formula packages to report out-of-envelope inputs before returning NaN.
//
// The default logger is a nop: importing sandcalc as a library is silent
// unless the host application installs a real logger via SetLogger.
//
//	logging.SetLogger(zap.Must(zap.NewProduction()))
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// logger is the current module logger. Stored atomically so SetLogger is
// safe to call while calculations run on other goroutines.
var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs l as the module-wide logger. Panics on nil: installing
// a nil logger is a programmer error, use zap.NewNop() to silence output.
func SetLogger(l *zap.Logger) {
	if l == nil {
		panic("logging: SetLogger(nil)")
	}
	logger.Store(l)
}

// L returns the current module logger, never nil.
func L() *zap.Logger {
	return logger.Load()
}
