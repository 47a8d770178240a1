// Package reqid carries the per-request ID through a context.
package reqid

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// With returns a copy of ctx carrying id.
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// From returns the request ID stored in ctx, or "" if there is none.
func From(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Prefix formats a log prefix for ctx's request ID, or "" if there is none.
func Prefix(ctx context.Context) string {
	if id := From(ctx); id != "" {
		return "[request_id=" + id + "] "
	}
	return ""
}
