package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hanpama/gqlkit/internal/language"
	"github.com/hanpama/gqlkit/internal/logging"
	"github.com/hanpama/gqlkit/internal/otel"
)

func newRewriteCommand() *cobra.Command {
	var (
		typename bool
		remove   []string
	)
	cmd := &cobra.Command{
		Use:   "rewrite FILE",
		Short: "Add __typename selections or drop client-only directives from an executable document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, span := otel.Start(cmd.Context(), "gqlkit.rewrite")
			defer span.End()
			span.SetAttributes(
				attribute.Bool("gqlkit.typename", typename),
				attribute.StringSlice("gqlkit.remove", remove),
			)

			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			doc, err := language.ParseQuery(src)
			if err != nil {
				span.RecordError(err)
				return err
			}
			if len(remove) > 0 {
				doc = language.RemoveDirectives(doc, remove...)
			}
			if typename {
				doc = language.WithTypename(doc)
			}
			logging.Debug().
				Str("file", args[0]).
				Bool("typename", typename).
				Strs("remove", remove).
				Msg("rewrote document")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), language.PrintQuery(doc))
			return err
		},
	}
	cmd.Flags().BoolVar(&typename, "typename", false, "select __typename in every nested selection set")
	cmd.Flags().StringSliceVar(&remove, "remove-directive", nil, "directive to strip (repeatable)")
	return cmd
}
