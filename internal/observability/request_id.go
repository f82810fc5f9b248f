package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDKey    contextKey = "request_id"
	RequestIDHeader            = "X-Request-ID"
)

func NewRequestID() string {
	return uuid.New().String()
}

// RequestIDOrNew returns incoming when it parses as a UUID, so callers can
// correlate their own ids, and a fresh id otherwise.
func RequestIDOrNew(incoming string) string {
	if _, err := uuid.Parse(incoming); err != nil {
		return NewRequestID()
	}
	return incoming
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
