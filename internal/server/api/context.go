package api

import "context"

// Keys under which middleware stores values in the gin context.
const (
	UserIDKey    = "userID"
	RequestIDKey = "requestID"
)

type ctxKey string

const userIDCtxKey ctxKey = "userID"

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDCtxKey).(string)
	return id, ok && id != ""
}
