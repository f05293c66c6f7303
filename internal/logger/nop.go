package logger

import "context"

type nopLogger struct{}

// Nop returns a Logger that discards everything. Handy in tests.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(ctx context.Context, msg string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...interface{}) {}
