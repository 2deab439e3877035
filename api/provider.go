package api

import (
	graphql "github.com/graph-gophers/graphql-go"
	gqlopentracing "github.com/graph-gophers/graphql-go/trace/opentracing"
	"github.com/jensneuse/abstractlogger"

	"github.com/graph-gophers/schemadoc/introspection"
	"github.com/graph-gophers/schemadoc/log"
)

// NewSchema parses Schema against resolver. Descriptions are taken from
// string literals and execution is traced with the global opentracing tracer.
func NewSchema(resolver *Resolver, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	opts = append([]graphql.SchemaOpt{
		graphql.UseStringDescriptions(),
		graphql.Tracer(gqlopentracing.Tracer{}),
	}, opts...)
	return graphql.ParseSchema(Schema, resolver, opts...)
}

// Provider builds the API schema on demand.
type Provider struct {
	// Directory backs the resolvers. An empty one is used when nil.
	Directory *Directory
	// Logger receives panics recovered while resolving fields.
	Logger abstractlogger.Logger
}

func (p *Provider) Schema() (introspection.Executor, error) {
	logger := p.Logger
	if logger == nil {
		logger = abstractlogger.NoopLogger
	}

	schema, err := NewSchema(NewResolver(p.Directory), graphql.Logger(&log.PanicLogger{Logger: logger}))
	if err != nil {
		return nil, err
	}
	return schema, nil
}
