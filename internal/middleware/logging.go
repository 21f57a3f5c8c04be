package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// CommandFunc is one console action. The context carries the command-scoped logger.
type CommandFunc func(ctx context.Context) error

// Middleware wraps a named command.
type Middleware func(command string, next CommandFunc) CommandFunc

// StructuredLoggingMiddleware creates a middleware that injects a command-scoped
// logger into the context and logs the outcome and latency of every command.
func StructuredLoggingMiddleware(baseLogger *slog.Logger) Middleware {
	return func(command string, next CommandFunc) CommandFunc {
		return func(ctx context.Context) error {
			start := time.Now()
			commandID := uuid.NewString()

			// Create a logger enriched with command-specific fields
			commandLogger := baseLogger.With(
				slog.String("command_id", commandID),
				slog.String("command", command),
			)

			ctx = WithLogger(ctx, commandLogger)
			ctx = context.WithValue(ctx, commandIDKey, commandID)

			err := next(ctx)

			latency := time.Since(start)
			if err != nil {
				commandLogger.Warn("Command failed",
					slog.String("error", err.Error()),
					slog.Duration("latency", latency),
				)
				return err
			}
			commandLogger.Info("Command completed", slog.Duration("latency", latency))
			return nil
		}
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerFromCtx retrieves the command-scoped logger from the context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}
