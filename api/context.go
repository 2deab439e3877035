package api

import (
	"context"

	"github.com/segmentio/ksuid"
)

type contextKey int

const (
	viewerKey contextKey = iota
	requestIDKey
)

// WithViewer returns a copy of ctx authenticated as the user with the given id.
func WithViewer(ctx context.Context, id UserID) context.Context {
	return context.WithValue(ctx, viewerKey, id)
}

// Viewer returns the id of the authenticated user, if any.
func Viewer(ctx context.Context) (UserID, bool) {
	id, ok := ctx.Value(viewerKey).(UserID)
	return id, ok
}

func WithRequestID(ctx context.Context, id ksuid.KSUID) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request id carried by ctx, or ksuid.Nil.
func RequestID(ctx context.Context) ksuid.KSUID {
	id, ok := ctx.Value(requestIDKey).(ksuid.KSUID)
	if !ok {
		return ksuid.Nil
	}
	return id
}
