// Package dumb provides an execution context for tools that run queries
// outside of any request, such as schema introspection.
package dumb

import (
	"context"

	"github.com/segmentio/ksuid"

	"github.com/graph-gophers/schemadoc/api"
)

// Context returns an anonymous context carrying a fresh request id.
func Context() context.Context {
	return api.WithRequestID(context.Background(), ksuid.New())
}
