// Package logger provides a package-level zap logger shared across the
// chunking service, following the same Init/Get/Sync lifecycle the rest of
// the module's ambient stack uses.
package logger

import "go.uber.org/zap"

var instance *zap.Logger

// Init sets up the package-level logger with zap's production JSON
// encoding. Call this once during process bootstrap.
func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	instance = l
	return nil
}

// Get returns the package-level logger, lazily falling back to a
// production logger if Init was never called.
func Get() *zap.Logger {
	if instance == nil {
		l, err := zap.NewProduction()
		if err != nil {
			return zap.NewNop()
		}
		instance = l
	}
	return instance
}

// Sync flushes any buffered log entries. Call this before process exit.
func Sync() {
	if instance != nil {
		_ = instance.Sync()
	}
}
