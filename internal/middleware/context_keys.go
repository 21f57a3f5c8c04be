package middleware

import "context"

// contextKey is the type of keys this package stores in a context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	commandIDKey = contextKey("commandID")
)

// GetCommandIDFromContext retrieves the ID assigned to the running command.
// It returns the ID and a boolean indicating if it was found.
func GetCommandIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(commandIDKey).(string)
	return id, ok && id != ""
}
