package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

// loggerKey is the context key for the logger.
const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}

	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	return Default()
}

// Ctx returns a logger from the context or the default logger.
// This is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithProvider returns a context whose logger carries the provider ID.
func WithProvider(ctx context.Context, providerID string) context.Context {
	logger := FromContext(ctx).With().Str("provider_id", providerID).Logger()
	return WithLogger(ctx, &logger)
}

// WithMonth returns a context whose logger carries the month being processed.
func WithMonth(ctx context.Context, month string) context.Context {
	logger := FromContext(ctx).With().Str("month", month).Logger()
	return WithLogger(ctx, &logger)
}
