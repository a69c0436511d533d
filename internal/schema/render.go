package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Render produces SDL from the Schema.
// Deterministic ordering: types sorted by name, directives in declaration
// order. Builtin types and directives are omitted.
func Render(s *Schema) string {
	if s == nil {
		return ""
	}
	p := &printer{}
	p.schemaDefinition(s)

	for _, typ := range s.Types() {
		if typ.BuiltIn || strings.HasPrefix(typ.Name, "__") {
			continue
		}
		p.namedType(typ)
	}
	for _, d := range s.Directives() {
		if !d.BuiltIn {
			p.directive(d)
		}
	}

	return strings.TrimRight(p.String(), "\n") + "\n"
}

type printer struct {
	strings.Builder
}

func (p *printer) print(parts ...string) {
	for _, part := range parts {
		p.WriteString(part)
	}
}

// schemaDefinition writes an explicit schema block only when a root type
// deviates from the default Query/Mutation/Subscription name.
func (p *printer) schemaDefinition(s *Schema) {
	roots := []struct {
		op  string
		typ *Type
	}{
		{"query", s.QueryType()},
		{"mutation", s.MutationType()},
		{"subscription", s.SubscriptionType()},
	}
	conventional := true
	for _, r := range roots {
		if r.typ != nil && !strings.EqualFold(r.typ.Name, r.op) {
			conventional = false
		}
	}
	if conventional {
		return
	}
	p.print("schema {\n")
	for _, r := range roots {
		if r.typ != nil {
			p.print("  ", r.op, ": ", r.typ.Name, "\n")
		}
	}
	p.print("}\n\n")
}

func (p *printer) namedType(typ *Type) {
	p.description("", typ.Description)
	switch typ.Kind {
	case TypeKindScalar:
		p.print("scalar ", typ.Name)
		if typ.SpecifiedByURL != nil {
			p.print(" @specifiedBy(url: ", strconv.Quote(*typ.SpecifiedByURL), ")")
		}
		p.print("\n\n")

	case TypeKindEnum:
		p.print("enum ", typ.Name, " {\n")
		for _, v := range typ.EnumValues {
			p.description("  ", v.Description)
			p.print("  ", v.Name)
			p.deprecated(v.IsDeprecated, v.DeprecationReason)
			p.print("\n")
		}
		p.print("}\n\n")

	case TypeKindInputObject:
		p.print("input ", typ.Name)
		if typ.OneOf {
			p.print(" @oneOf")
		}
		p.print(" {\n")
		for _, f := range typ.InputFields {
			p.description("  ", f.Description)
			p.print("  ")
			p.inputValue(f)
			p.deprecated(f.IsDeprecated, f.DeprecationReason)
			p.print("\n")
		}
		p.print("}\n\n")

	case TypeKindObject, TypeKindInterface:
		keyword := "type "
		if typ.Kind == TypeKindInterface {
			keyword = "interface "
		}
		p.print(keyword, typ.Name)
		if len(typ.Interfaces) > 0 {
			p.print(" implements ", strings.Join(typ.Interfaces, " & "))
		}
		p.print(" {\n")
		for _, f := range typ.Fields {
			p.field(f)
		}
		p.print("}\n\n")

	case TypeKindUnion:
		p.print("union ", typ.Name, " = ", strings.Join(typ.Members, " | "), "\n\n")
	}
}

func (p *printer) field(f *Field) {
	p.description("  ", f.Description)
	p.print("  ", f.Name)
	p.arguments(f.Arguments)
	p.print(": ", typeRefString(f.Type))
	p.deprecated(f.IsDeprecated, f.DeprecationReason)
	p.print("\n")
}

func (p *printer) directive(d *Directive) {
	p.description("", d.Description)
	p.print("directive @", d.Name)
	p.arguments(d.Arguments)
	if d.IsRepeatable {
		p.print(" repeatable")
	}
	p.print(" on ", strings.Join(d.Locations, " | "), "\n\n")
}

func (p *printer) arguments(args []*InputValue) {
	if len(args) == 0 {
		return
	}
	p.print("(")
	for i, arg := range args {
		if i > 0 {
			p.print(", ")
		}
		p.inputValue(arg)
	}
	p.print(")")
}

func (p *printer) inputValue(v *InputValue) {
	p.print(v.Name, ": ", typeRefString(v.Type))
	if v.DefaultValue != nil {
		p.print(" = ", renderValue(v.DefaultValue))
	}
}

func (p *printer) description(indent, desc string) {
	if desc == "" {
		return
	}
	p.print(indent, `"""`, "\n")
	for _, line := range strings.Split(strings.ReplaceAll(desc, `"""`, `\"""`), "\n") {
		p.print(indent, line, "\n")
	}
	p.print(indent, `"""`, "\n")
}

func (p *printer) deprecated(isDeprecated bool, reason string) {
	if !isDeprecated {
		return
	}
	p.print(" @deprecated")
	if reason != "" {
		p.print("(reason: ", strconv.Quote(reason), ")")
	}
}

func typeRefString(ref TypeRef) string {
	if ref == nil {
		return ""
	}
	return ref.String()
}

// renderValue renders a default value as a GraphQL literal.
func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case EnumLiteral:
		return string(v)
	case string:
		return strconv.Quote(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, renderValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+renderValue(v[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprint(value)
}
