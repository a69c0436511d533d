package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hanpama/gqlkit/internal/compose"
	"github.com/hanpama/gqlkit/internal/language"
	"github.com/hanpama/gqlkit/internal/otel"
	"github.com/hanpama/gqlkit/internal/schema"
	"github.com/hanpama/gqlkit/internal/typeutil"
)

type namedNode interface {
	language.Node
	Name() string
}

func newClassifyCommand() *cobra.Command {
	var (
		schemaPath string
		source     bool
	)
	cmd := &cobra.Command{
		Use:   "classify FILE",
		Short: "List the top-level definitions of a GraphQL document with their category",
		Long: `List the top-level definitions of a GraphQL document in source order, one
line per definition: kind, category (schema, operation or other) and name.

With --schema, operations gain a fourth column naming the root type they
select from. With --source, each line is followed by its location and the
printed definition.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, span := otel.Start(cmd.Context(), "gqlkit.classify")
			defer span.End()

			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			nodes, err := parseNodes(args[0], src)
			if err != nil {
				span.RecordError(err)
				return err
			}
			var s *schema.Schema
			if schemaPath != "" {
				sdl, err := readSource(schemaPath)
				if err != nil {
					return err
				}
				if s, err = compose.ParseSchema(sdl); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, node := range nodes {
				name := ""
				if n, ok := node.(namedNode); ok {
					name = n.Name()
				}
				line := fmt.Sprintf("%s\t%s\t%s", node.Kind(), category(node), name)
				if op, ok := node.(language.OperationNode); ok && s != nil {
					root, err := typeutil.OperationRootType(s, op.Operation)
					if err != nil {
						return err
					}
					line += "\t" + root.Name
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
				if source {
					if err := writeSource(out, args[0], node); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "SDL file used to resolve operation root types")
	cmd.Flags().BoolVar(&source, "source", false, "print the location and text of each definition")
	return cmd
}

func writeSource(w io.Writer, path string, node language.Node) error {
	pos := language.PositionOf(node)
	if pos == nil {
		return nil
	}
	file := language.FilePath(pos)
	if file == "" {
		file = path
	}
	_, err := fmt.Fprintf(w, "# %s:%d\n%s\n", file, pos.Line, language.Print(node))
	return err
}

// parseNodes reads src as a schema document first and falls back to an
// executable document.
func parseNodes(name, src string) ([]language.Node, error) {
	if doc, err := language.ParseSchema(name, src); err == nil {
		return language.SchemaNodes(doc), nil
	}
	doc, err := language.ParseQuery(src)
	if err != nil {
		return nil, err
	}
	return language.QueryNodes(doc), nil
}

func category(node language.Node) string {
	switch {
	case language.IsOperationDefinition(node):
		return "operation"
	case language.IsSchemaDefinition(node):
		return "schema"
	default:
		return "other"
	}
}
