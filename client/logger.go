package client

// Logger receives non-fatal diagnostics. The zero configuration logs
// nothing.
type Logger interface {
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}
