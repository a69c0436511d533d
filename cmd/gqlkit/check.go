package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hanpama/gqlkit/internal/compose"
	"github.com/hanpama/gqlkit/internal/language"
	"github.com/hanpama/gqlkit/internal/otel"
	"github.com/hanpama/gqlkit/internal/schema"
	"github.com/hanpama/gqlkit/internal/typeutil"
)

func newCheckCommand() *cobra.Command {
	var (
		schemaPath string
		typeRef    string
		implements string
		fieldName  string
		hasID      bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Resolve a type reference against a schema and report how it classifies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, span := otel.Start(cmd.Context(), "gqlkit.check")
			defer span.End()
			span.SetAttributes(attribute.String("gqlkit.type", typeRef))

			sdl, err := readSource(schemaPath)
			if err != nil {
				return err
			}
			s, err := compose.ParseSchema(sdl)
			if err != nil {
				return err
			}
			node, err := language.ParseType(typeRef)
			if err != nil {
				return err
			}
			ref, err := typeutil.TypeFromAST(s, node)
			if err != nil {
				span.RecordError(err)
				return err
			}
			raw, err := typeutil.RawType(ref)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report := []reportLine{
				{"type", ref},
				{"raw", raw},
				{"singular", typeutil.SingularType(ref)},
				{"kind", raw.Kind},
				{"list", typeutil.IsList(ref)},
				{"abstract", typeutil.IsAbstractType(ref)},
				{"selections", typeutil.CanHaveSelections(ref)},
			}
			if raw.Kind == schema.TypeKindEnum {
				var names []string
				for _, v := range typeutil.SortEnumValues(raw.EnumValues) {
					names = append(names, v.Name)
				}
				report = append(report, reportLine{"values", strings.Join(names, " ")})
			}
			if fieldName != "" {
				field := typeutil.FieldDef(s, raw, fieldName)
				if field == nil {
					return fmt.Errorf("type %s has no field %q", raw.Name, fieldName)
				}
				report = append(report, reportLine{"field(" + fieldName + ")", field.Type})
			}
			if err := writeReport(out, report); err != nil {
				return err
			}
			if implements != "" {
				if _, err := fmt.Fprintf(out, "mayImplement(%s)\t%t\n", implements, typeutil.MayImplement(s, ref, implements)); err != nil {
					return err
				}
			}
			if hasID {
				ok, err := typeutil.HasID(s, ref)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "hasID\t%t\n", ok); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "SDL file to build the schema from (required)")
	cmd.Flags().StringVar(&typeRef, "type", "", "type reference to inspect, e.g. [User!]! (required)")
	cmd.Flags().StringVar(&implements, "implements", "", "report whether the type may stand in for this named type")
	cmd.Flags().StringVar(&fieldName, "field", "", "report the type of this field on the raw type, including __typename, __schema and __type")
	cmd.Flags().BoolVar(&hasID, "has-id", false, "report whether the type exposes an identity field")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

type reportLine struct {
	key   string
	value any
}

func writeReport(w io.Writer, report []reportLine) error {
	for _, line := range report {
		if _, err := fmt.Fprintf(w, "%s\t%v\n", line.key, line.value); err != nil {
			return err
		}
	}
	return nil
}
