package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hanpama/gqlkit/internal/compose"
	"github.com/hanpama/gqlkit/internal/logging"
	"github.com/hanpama/gqlkit/internal/otel"
	"github.com/hanpama/gqlkit/internal/schema"
)

func newComposeCommand() *cobra.Command {
	var schemaPath, directivesPath string
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Build a schema, optionally add directive definitions, and print it as SDL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, span := otel.Start(cmd.Context(), "gqlkit.compose")
			defer span.End()

			sdl, err := readSource(schemaPath)
			if err != nil {
				return err
			}
			s, err := compose.ParseSchema(sdl)
			if err != nil {
				span.RecordError(err)
				return err
			}
			if directivesPath != "" {
				extra, err := readSource(directivesPath)
				if err != nil {
					return err
				}
				s, err = compose.WithDirectivesSDL(s, extra)
				if err != nil {
					span.RecordError(err)
					return err
				}
			}
			span.SetAttributes(
				attribute.Int("gqlkit.schema.types", len(s.Types())),
				attribute.Int("gqlkit.schema.directives", len(s.Directives())),
			)
			logging.Info().
				Str("schema", schemaPath).
				Int("types", len(s.Types())).
				Int("directives", len(s.Directives())).
				Msg("composed schema")

			_, err = fmt.Fprint(cmd.OutOrStdout(), schema.Render(s))
			return err
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "SDL file to build the schema from (required)")
	cmd.Flags().StringVar(&directivesPath, "directives", "", "SDL file of directive definitions to add")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
