// Package context carries per-request values shared by logging, audit and
// error responses without importing the transport layer.
package context

import "context"

type requestIDKey struct{}

// WithRequestID tags ctx with the id the RequestID middleware accepted or
// generated for this request.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the request id, or "" outside a request (startup,
// seeding, background publishes).
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
