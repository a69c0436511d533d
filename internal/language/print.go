package language

import (
	"bytes"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// Print renders a node back to GraphQL source text. It is meant for
// diagnostics; whitespace follows gqlparser's formatter.
func Print(node Node) string {
	switch n := node.(type) {
	case OperationNode:
		return formatQuery(&ast.QueryDocument{Operations: ast.OperationList{n.Operation}})
	case FragmentNode:
		return formatQuery(&ast.QueryDocument{Fragments: ast.FragmentDefinitionList{n.Fragment}})
	case TypeDefinitionNode:
		return formatSchema(&ast.SchemaDocument{Definitions: ast.DefinitionList{n.Definition}})
	case TypeExtensionNode:
		return formatSchema(&ast.SchemaDocument{Extensions: ast.DefinitionList{n.Definition}})
	case DirectiveDefinitionNode:
		return formatSchema(&ast.SchemaDocument{Directives: ast.DirectiveDefinitionList{n.Definition}})
	case SchemaDefinitionNode:
		return formatSchema(&ast.SchemaDocument{Schema: ast.SchemaDefinitionList{n.Definition}})
	case FieldDefinitionNode:
		return printFieldDefinition(n.Definition)
	case DirectiveNode:
		return printDirective(n.Directive)
	case nil:
		return ""
	default:
		return string(node.Kind())
	}
}

// PrintQuery renders a whole executable document.
func PrintQuery(doc *QueryDocument) string {
	if doc == nil {
		return ""
	}
	return formatQuery(doc)
}

// PrintType renders a type reference in SDL notation, e.g. "[User!]!".
func PrintType(t *Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func formatQuery(doc *ast.QueryDocument) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return strings.TrimSpace(buf.String())
}

func formatSchema(doc *ast.SchemaDocument) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(doc)
	return strings.TrimSpace(buf.String())
}

func printFieldDefinition(def *ast.FieldDefinition) string {
	var b strings.Builder
	b.WriteString(def.Name)
	if len(def.Arguments) > 0 {
		b.WriteString("(")
		for i, arg := range def.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			b.WriteString(PrintType(arg.Type))
			if arg.DefaultValue != nil {
				b.WriteString(" = ")
				b.WriteString(arg.DefaultValue.String())
			}
		}
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(PrintType(def.Type))
	for _, d := range def.Directives {
		b.WriteString(" ")
		b.WriteString(printDirective(d))
	}
	return b.String()
}

func printDirective(d *ast.Directive) string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(d.Name)
	if len(d.Arguments) > 0 {
		b.WriteString("(")
		for i, arg := range d.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			b.WriteString(arg.Value.String())
		}
		b.WriteString(")")
	}
	return b.String()
}
