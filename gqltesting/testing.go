// Package gqltesting runs table-driven GraphQL queries against a schema in tests.
package gqltesting

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test is a GraphQL test case to be used with RunTest(s).
type Test struct {
	Context        context.Context
	Schema         *graphql.Schema
	Query          string
	OperationName  string
	Variables      map[string]interface{}
	ExpectedResult string
	// ExpectedErrors lists the expected error messages, without the
	// "graphql: " prefix, in path order.
	ExpectedErrors []string
}

// RunTests runs the given GraphQL test cases as subtests.
func RunTests(t *testing.T, tests []*Test) {
	t.Helper()
	if len(tests) == 1 {
		RunTest(t, tests[0])
		return
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i+1), func(t *testing.T) {
			t.Helper()
			RunTest(t, test)
		})
	}
}

// RunTest runs a single GraphQL test case.
func RunTest(t *testing.T, test *Test) {
	t.Helper()
	if test.Context == nil {
		test.Context = context.Background()
	}
	result := test.Schema.Exec(test.Context, test.Query, test.OperationName, test.Variables)

	checkErrors(t, test.ExpectedErrors, result.Errors)

	if test.ExpectedResult == "" {
		if result.Data != nil && string(result.Data) != "null" {
			t.Fatalf("got: %s, want: null", result.Data)
		}
		return
	}

	require.NotNil(t, result.Data, "got: null")
	assert.JSONEq(t, test.ExpectedResult, string(result.Data))
}

func checkErrors(t *testing.T, want []string, got []*errors.QueryError) {
	t.Helper()
	sortErrors(got)

	messages := make([]string, 0, len(got))
	for _, err := range got {
		messages = append(messages, err.Message)
	}
	if len(want) == 0 && len(messages) == 0 {
		return
	}
	require.Equal(t, want, messages, "unexpected errors:\n%s", formatErrors(got))
}

func formatErrors(errs []*errors.QueryError) string {
	var errorStr string
	for _, err := range errs {
		errorStr += fmt.Sprintf("%s\nPath: %v\nResolver: %v\n", err.Error(), err.Path, err.ResolverError)
	}
	return errorStr
}

func sortErrors(errors []*errors.QueryError) {
	if len(errors) <= 1 {
		return
	}
	sort.Slice(errors, func(i, j int) bool {
		return fmt.Sprintf("%s", errors[i].Path) < fmt.Sprintf("%s", errors[j].Path)
	})
}
