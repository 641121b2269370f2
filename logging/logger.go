package logging

import (
	"context"
	"io"
	"log"
)

// Classification is the type of the log entry's classification name.
type Classification string

// Set of standard classifications that can be used by clients.
const (
	Warn  Classification = "WARN"
	Debug Classification = "DEBUG"
)

// Logger is an interface for logging entries at certain classifications.
type Logger interface {
	// Logf is expected to support the standard fmt package "verbs".
	Logf(level Classification, format string, v ...interface{})
}

// LoggerFunc is a Logger implementation that wraps a standalone function.
type LoggerFunc func(classification Classification, format string, v ...interface{})

// Logf delegates to the underlying function.
func (f LoggerFunc) Logf(classification Classification, format string, v ...interface{}) {
	f(classification, format, v...)
}

// ContextLogger is an optional interface a Logger implementation may expose that provides
// the ability to create context aware log entries.
type ContextLogger interface {
	WithContext(context.Context) Logger
}

// WithContext will pass the provided context to logger if it implements the ContextLogger interface and return the resulting
// logger. Otherwise the logger will be returned as is.
func WithContext(ctx context.Context, logger Logger) Logger {
	cl, ok := logger.(ContextLogger)
	if !ok {
		return logger
	}

	return cl.WithContext(ctx)
}

// Noop is a Logger implementation that simply does not perform any logging.
type Noop struct{}

// Logf does nothing.
func (n Noop) Logf(Classification, string, ...interface{}) {}

// StandardLogger is a Logger implementation that wraps the standard library logger, and delegates logging to it's
// Printf method.
type StandardLogger struct {
	Logger *log.Logger
}

// Logf logs the given classification and message to the underlying logger.
func (s StandardLogger) Logf(classification Classification, format string, v ...interface{}) {
	if len(classification) != 0 {
		format = string(classification) + " " + format
	}

	s.Logger.Printf(format, v...)
}

// NewStandardLogger returns a new StandardLogger
func NewStandardLogger(writer io.Writer) *StandardLogger {
	return &StandardLogger{
		Logger: log.New(writer, "QUERY ", log.LstdFlags),
	}
}

// ClientLogMode selects which parts of an operation invocation a client
// writes to its Logger at the Debug classification.
type ClientLogMode uint64

// Supported ClientLogMode bits.
const (
	LogRequest ClientLogMode = 1 << iota
	LogResponse
)

// IsRequest reports whether request logging is enabled.
func (m ClientLogMode) IsRequest() bool { return m&LogRequest != 0 }

// IsResponse reports whether response logging is enabled.
func (m ClientLogMode) IsResponse() bool { return m&LogResponse != 0 }
