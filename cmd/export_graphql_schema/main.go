// Command export_graphql_schema writes the introspection of the API schema to
// graphql.schema.json in the working directory, wrapped as {"data": ...} for
// GraphDoc.
//
// Usage:
//
//	go run ./cmd/export_graphql_schema
package main

import (
	"context"
	"os"

	"github.com/jensneuse/abstractlogger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/graph-gophers/schemadoc"
	"github.com/graph-gophers/schemadoc/api"
	"github.com/graph-gophers/schemadoc/api/dumb"
	"github.com/graph-gophers/schemadoc/log"
)

func newRootCmd(fs afero.Fs, logger abstractlogger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          "export_graphql_schema",
		Short:        "Export the GraphQL schema introspection to graphql.schema.json",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := dumb.Context()
			logger.Debug("exporting schema", abstractlogger.String("request_id", api.RequestID(ctx).String()))

			exporter := schemadoc.New(
				&api.Provider{Logger: logger},
				schemadoc.ContextProviderFunc(func() context.Context { return ctx }),
				schemadoc.Filesystem(fs),
				schemadoc.Logger(logger),
			)
			return exporter.Export()
		},
	}
}

func main() {
	logger, err := log.New(abstractlogger.InfoLevel)
	if err != nil {
		panic(err)
	}

	if err := newRootCmd(afero.NewOsFs(), logger).Execute(); err != nil {
		os.Exit(1)
	}
}
