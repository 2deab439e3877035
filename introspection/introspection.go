// Package introspection runs the canonical introspection query against a schema.
package introspection

import (
	"context"
	"encoding/json"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/errors"
	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrNoSchema is returned by Run when no executor is given.
	ErrNoSchema = pkgerrors.New("introspection: no schema")
	// ErrNoData is returned by Run when the execution reports no errors but no data either.
	ErrNoData = pkgerrors.New("introspection: empty result")
)

// Executor executes a query against a schema. *graphql.Schema satisfies it.
type Executor interface {
	Exec(ctx context.Context, queryString string, operationName string, variables map[string]interface{}) *graphql.Response
}

// ExecutionError holds the errors reported by an introspection execution.
// Partial data is never returned alongside it.
type ExecutionError struct {
	Errors []*errors.QueryError
}

func (e *ExecutionError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "introspection: execution failed"
	case 1:
		return fmt.Sprintf("introspection: %v", e.Errors[0])
	default:
		return fmt.Sprintf("introspection: %v (and %d more errors)", e.Errors[0], len(e.Errors)-1)
	}
}

// PanicError is returned by Run when the executor panics, e.g. a
// *graphql.Schema parsed without a resolver.
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("introspection: executor panicked: %v", e.Value)
}

// Run executes Query against exec and returns the data object of the response.
func Run(ctx context.Context, exec Executor) (data json.RawMessage, err error) {
	if exec == nil {
		return nil, ErrNoSchema
	}

	defer func() {
		if r := recover(); r != nil {
			data, err = nil, &PanicError{Value: r}
		}
	}()

	resp := exec.Exec(ctx, Query, "", nil)
	if resp == nil {
		return nil, ErrNoData
	}
	if len(resp.Errors) != 0 {
		return nil, &ExecutionError{Errors: resp.Errors}
	}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil, ErrNoData
	}
	return resp.Data, nil
}
