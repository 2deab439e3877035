package schemadoc_test

import (
	"context"
	"strings"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/errors"
	"github.com/jensneuse/abstractlogger"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/graph-gophers/schemadoc"
	"github.com/graph-gophers/schemadoc/api"
	"github.com/graph-gophers/schemadoc/api/dumb"
	"github.com/graph-gophers/schemadoc/config"
	"github.com/graph-gophers/schemadoc/envelope"
	"github.com/graph-gophers/schemadoc/introspection"
)

const helloSchema = `
	type Query {
		hello: String
	}
`

type helloResolver struct{}

func (*helloResolver) Hello() *string { return nil }

func helloProvider() schemadoc.SchemaProvider {
	return schemadoc.SchemaProviderFunc(func() (introspection.Executor, error) {
		return graphql.ParseSchema(helloSchema, &helloResolver{})
	})
}

func background() schemadoc.ContextProvider {
	return schemadoc.ContextProviderFunc(context.Background)
}

func export(t *testing.T, schema schemadoc.SchemaProvider, opts ...schemadoc.Opt) (afero.Fs, error) {
	t.Helper()
	fs := afero.NewMemMapFs()
	opts = append([]schemadoc.Opt{schemadoc.Filesystem(fs)}, opts...)
	return fs, schemadoc.New(schema, background(), opts...).Export()
}

func readOutput(t *testing.T, fs afero.Fs) []byte {
	t.Helper()
	doc, err := afero.ReadFile(fs, config.DefaultOutputPath)
	require.NoError(t, err)
	return doc
}

func TestExport(t *testing.T) {
	fs, err := export(t, helloProvider())
	require.NoError(t, err)

	doc := readOutput(t, fs)
	assert.True(t, strings.HasPrefix(string(doc), "{\"data\":{\n  \"__schema\": {"))
	assert.True(t, strings.HasSuffix(string(doc), "\n}}"))

	data, err := envelope.Unwrap(doc)
	require.NoError(t, err)

	schema := gjson.ParseBytes(data).Get("__schema")
	require.True(t, schema.Exists())
	assert.Equal(t, "Query", schema.Get("queryType.name").String())
	assert.True(t, schema.Get(`types.#(name=="String")`).Exists())
	assert.Equal(t, "hello", schema.Get(`types.#(name=="Query").fields.0.name`).String())
}

func TestExport_Deterministic(t *testing.T) {
	first, err := export(t, helloProvider())
	require.NoError(t, err)
	second, err := export(t, helloProvider())
	require.NoError(t, err)

	assert.Equal(t, readOutput(t, first), readOutput(t, second))
}

func TestExport_Overwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, config.DefaultOutputPath, []byte("stale"), 0o644))

	err := schemadoc.New(helloProvider(), background(), schemadoc.Filesystem(fs)).Export()
	require.NoError(t, err)

	_, err = envelope.Unwrap(readOutput(t, fs))
	assert.NoError(t, err)
}

func TestExport_APISchema(t *testing.T) {
	fs := afero.NewMemMapFs()
	provider := &api.Provider{Directory: api.NewDirectory()}

	err := schemadoc.New(provider, schemadoc.ContextProviderFunc(dumb.Context), schemadoc.Filesystem(fs)).Export()
	require.NoError(t, err)

	schema := gjson.GetBytes(readOutput(t, fs), "data.__schema")
	assert.Equal(t, "Query", schema.Get("queryType.name").String())
	assert.Equal(t, "Mutation", schema.Get("mutationType.name").String())
	assert.Equal(t, gjson.Null, schema.Get("subscriptionType").Type)
	assert.Equal(t, "OBJECT", schema.Get(`types.#(name=="MyUser").kind`).String())
	assert.Equal(t, "SCALAR", schema.Get(`types.#(name=="UserLogin").kind`).String())
	assert.Equal(t, "ENUM", schema.Get(`types.#(name=="DisplayNameSetting").kind`).String())
	assert.Equal(t, "The authenticated user.", schema.Get(`types.#(name=="MyUser").description`).String())
}

func TestExport_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := abstractlogger.NewZapLogger(zap.New(core), abstractlogger.DebugLevel)

	_, err := export(t, helloProvider(), schemadoc.Logger(logger))
	require.NoError(t, err)

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{"schema built", "schema introspected", "result wrapped", "schema exported"}, messages)

	exported := logs.FilterMessage("schema exported").All()
	require.Len(t, exported, 1)
	assert.Equal(t, config.DefaultOutputPath, exported[0].ContextMap()["path"])
}

func TestExport_CustomConfig(t *testing.T) {
	fs, err := export(t, helloProvider(), schemadoc.Config(&config.Config{OutputPath: "schema.json", Perm: 0o600}))
	require.NoError(t, err)

	ok, err := afero.Exists(fs, "schema.json")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExport_NilContext(t *testing.T) {
	fs := afero.NewMemMapFs()
	nilCtx := schemadoc.ContextProviderFunc(func() context.Context { return nil })

	err := schemadoc.New(helloProvider(), nilCtx, schemadoc.Filesystem(fs)).Export()
	require.NoError(t, err)
	readOutput(t, fs)
}

func TestExport_Unwritable(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := schemadoc.New(helloProvider(), background(), schemadoc.Filesystem(fs)).Export()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.DefaultOutputPath)
}

func TestExport_SchemaFailure(t *testing.T) {
	provider := schemadoc.SchemaProviderFunc(func() (introspection.Executor, error) {
		return nil, pkgerrors.New("resolver mismatch")
	})

	fs, err := export(t, provider)
	require.EqualError(t, err, "build schema: resolver mismatch")

	ok, existsErr := afero.Exists(fs, config.DefaultOutputPath)
	require.NoError(t, existsErr)
	assert.False(t, ok)
}

func TestExport_SchemaWithoutResolver(t *testing.T) {
	provider := schemadoc.SchemaProviderFunc(func() (introspection.Executor, error) {
		return graphql.ParseSchema(helloSchema, nil)
	})

	var (
		fs  afero.Fs
		err error
	)
	require.NotPanics(t, func() {
		fs, err = export(t, provider)
	})

	var panicErr *introspection.PanicError
	require.ErrorAs(t, err, &panicErr)

	ok, existsErr := afero.Exists(fs, config.DefaultOutputPath)
	require.NoError(t, existsErr)
	assert.False(t, ok)
}

func TestExport_NoSchemaProvider(t *testing.T) {
	_, err := export(t, nil)
	assert.ErrorIs(t, err, introspection.ErrNoSchema)
}

type partialExecutor struct{}

func (partialExecutor) Exec(context.Context, string, string, map[string]interface{}) *graphql.Response {
	return &graphql.Response{
		Data:   []byte(`{"__schema":{"queryType":{"name":"Query"}}}`),
		Errors: []*errors.QueryError{errors.Errorf("field failed")},
	}
}

func TestExport_PartialResultAborts(t *testing.T) {
	provider := schemadoc.SchemaProviderFunc(func() (introspection.Executor, error) {
		return partialExecutor{}, nil
	})

	fs, err := export(t, provider)
	require.Error(t, err)

	var execErr *introspection.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Len(t, execErr.Errors, 1)
	assert.EqualError(t, err, "introspect schema: introspection: graphql: field failed")

	ok, existsErr := afero.Exists(fs, config.DefaultOutputPath)
	require.NoError(t, existsErr)
	assert.False(t, ok, "no file is written for partial results")
}

type arrayExecutor struct{}

func (arrayExecutor) Exec(context.Context, string, string, map[string]interface{}) *graphql.Response {
	return &graphql.Response{Data: []byte(`[1,2]`)}
}

func TestExport_EncodingFailure(t *testing.T) {
	provider := schemadoc.SchemaProviderFunc(func() (introspection.Executor, error) {
		return arrayExecutor{}, nil
	})

	_, err := export(t, provider)
	assert.ErrorIs(t, err, envelope.ErrNotObject)
}
