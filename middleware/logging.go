package middleware

import (
	"context"

	"github.com/awslabs/aws-query-go/logging"
)

// loggerKey is the context value key for which the logger is associated with.
type loggerKey struct{}

// GetLogger takes a context to retrieve a Logger from. If no logger is present on the context a logging.Noop logger
// is returned. If the logger retrieved from context supports the ContextLogger interface, the context will be passed
// to the WithContext method and the resulting logger will be returned. Otherwise the stored logger is returned as is.
func GetLogger(ctx context.Context) logging.Logger {
	logger, ok := ctx.Value(loggerKey{}).(logging.Logger)
	if !ok || logger == nil {
		return logging.Noop{}
	}

	return logging.WithContext(ctx, logger)
}

// SetLogger sets the provided logger value on the provided ctx.
func SetLogger(ctx context.Context, logger logging.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

type logModeKey struct{}

// GetClientLogMode returns the log mode set on the context.
func GetClientLogMode(ctx context.Context) logging.ClientLogMode {
	v, _ := ctx.Value(logModeKey{}).(logging.ClientLogMode)
	return v
}

// SetClientLogMode sets the log mode on the provided ctx.
func SetClientLogMode(ctx context.Context, mode logging.ClientLogMode) context.Context {
	return context.WithValue(ctx, logModeKey{}, mode)
}
