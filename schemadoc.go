// Package schemadoc exports the introspection of a GraphQL schema to a JSON
// file shaped for documentation generators such as GraphDoc.
package schemadoc

import (
	"context"

	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/graph-gophers/schemadoc/config"
	"github.com/graph-gophers/schemadoc/envelope"
	"github.com/graph-gophers/schemadoc/introspection"
	"github.com/graph-gophers/schemadoc/output"
)

// SchemaProvider supplies a schema ready to be introspected.
type SchemaProvider interface {
	Schema() (introspection.Executor, error)
}

// SchemaProviderFunc is a function type that implements SchemaProvider.
type SchemaProviderFunc func() (introspection.Executor, error)

func (f SchemaProviderFunc) Schema() (introspection.Executor, error) {
	return f()
}

// ContextProvider supplies the context the schema's resolvers expect.
type ContextProvider interface {
	Context() context.Context
}

// ContextProviderFunc is a function type that implements ContextProvider.
type ContextProviderFunc func() context.Context

func (f ContextProviderFunc) Context() context.Context {
	return f()
}

// Exporter runs the export pipeline: introspection, wrapping, writing.
type Exporter struct {
	schema SchemaProvider
	ctx    ContextProvider
	fs     afero.Fs
	cfg    *config.Config
	logger abstractlogger.Logger
}

// Opt is an option for an Exporter.
type Opt func(*Exporter)

// Filesystem sets the filesystem the document is written to. Defaults to the OS filesystem.
func Filesystem(fs afero.Fs) Opt {
	return func(e *Exporter) {
		e.fs = fs
	}
}

// Logger sets the logger. Defaults to a no-op logger.
func Logger(logger abstractlogger.Logger) Opt {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// Config replaces config.Default().
func Config(cfg *config.Config) Opt {
	return func(e *Exporter) {
		e.cfg = cfg
	}
}

func New(schema SchemaProvider, ctx ContextProvider, opts ...Opt) *Exporter {
	e := &Exporter{
		schema: schema,
		ctx:    ctx,
		fs:     afero.NewOsFs(),
		cfg:    config.Default(),
		logger: abstractlogger.NoopLogger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the wrapped introspection result. It stops at the first
// failure; nothing is written unless introspection and wrapping succeed.
func (e *Exporter) Export() error {
	if e.schema == nil {
		return errors.Wrap(introspection.ErrNoSchema, "build schema")
	}
	schema, err := e.schema.Schema()
	if err != nil {
		return errors.Wrap(err, "build schema")
	}
	e.logger.Debug("schema built")

	ctx := context.Background()
	if e.ctx != nil {
		if c := e.ctx.Context(); c != nil {
			ctx = c
		}
	}

	data, err := introspection.Run(ctx, schema)
	if err != nil {
		return errors.Wrap(err, "introspect schema")
	}
	e.logger.Debug("schema introspected", abstractlogger.Int("bytes", len(data)))

	doc, err := envelope.Wrap(data)
	if err != nil {
		return errors.Wrap(err, "encode introspection result")
	}
	e.logger.Debug("result wrapped", abstractlogger.Int("bytes", len(doc)))

	w := output.New(e.fs, e.cfg)
	if err := w.Write(doc); err != nil {
		return err
	}
	e.logger.Info("schema exported",
		abstractlogger.String("path", w.Path()),
		abstractlogger.Int("bytes", len(doc)),
	)
	return nil
}
