package schema

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
)

// BuildFromDocument validates an SDL document together with the GraphQL
// prelude (builtin scalars, introspection types and directives) and converts
// the result into a Schema. Validation errors from gqlparser are returned
// unchanged.
func BuildFromDocument(doc *ast.SchemaDocument) (*Schema, error) {
	prelude, err := parser.ParseSchema(validator.Prelude)
	if err != nil {
		return nil, err
	}
	merged := mergeDocuments(prelude, doc)

	validated, verr := validator.ValidateSchemaDocument(merged)
	if verr != nil {
		return nil, verr
	}
	return buildFromAST(validated, merged.Directives)
}

func mergeDocuments(docs ...*ast.SchemaDocument) *ast.SchemaDocument {
	merged := &ast.SchemaDocument{}
	for _, doc := range docs {
		merged.Schema = append(merged.Schema, doc.Schema...)
		merged.SchemaExtension = append(merged.SchemaExtension, doc.SchemaExtension...)
		merged.Directives = append(merged.Directives, doc.Directives...)
		merged.Definitions = append(merged.Definitions, doc.Definitions...)
		merged.Extensions = append(merged.Extensions, doc.Extensions...)
	}
	return merged
}

func buildFromAST(src *ast.Schema, directiveOrder ast.DirectiveDefinitionList) (*Schema, error) {
	types := make(map[string]*Type, len(src.Types))
	for name, def := range src.Types {
		types[name] = buildType(def)
	}
	lookup := func(name string) *Type { return types[name] }

	all := make([]*Type, 0, len(types))
	for name, def := range src.Types {
		t := types[name]
		switch t.Kind {
		case TypeKindObject, TypeKindInterface:
			for _, fieldDef := range def.Fields {
				if strings.HasPrefix(fieldDef.Name, "__") {
					continue
				}
				f, err := buildField(fieldDef, lookup)
				if err != nil {
					return nil, err
				}
				t.AddField(f)
			}
		case TypeKindInputObject:
			for _, fieldDef := range def.Fields {
				typ, err := buildTypeRef(fieldDef.Type, lookup)
				if err != nil {
					return nil, err
				}
				in := NewInputValue(fieldDef.Name, fieldDef.Description, typ).
					SetDefault(buildValue(fieldDef.DefaultValue))
				deprecate(fieldDef.Directives, in.Deprecate)
				t.AddInputField(in)
			}
		}
		all = append(all, t)
	}

	directives := make([]*Directive, 0, len(src.Directives))
	for _, ordered := range directiveOrder {
		def, ok := src.Directives[ordered.Name]
		if !ok {
			continue
		}
		d, err := buildDirective(def, lookup)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}

	cfg := Config{
		Types:       all,
		Directives:  directives,
		Description: src.Description,
	}
	if src.Query != nil {
		cfg.Query = types[src.Query.Name]
	}
	if src.Mutation != nil {
		cfg.Mutation = types[src.Mutation.Name]
	}
	if src.Subscription != nil {
		cfg.Subscription = types[src.Subscription.Name]
	}
	return New(cfg)
}

// BuildDirectives converts the directive definitions of a standalone SDL
// document. Argument types are resolved against s, so they may reference
// builtin scalars or any type s defines. Documents carrying anything other
// than directive definitions are rejected.
func BuildDirectives(s *Schema, doc *ast.SchemaDocument) ([]*Directive, error) {
	if len(doc.Definitions) > 0 || len(doc.Extensions) > 0 || len(doc.Schema) > 0 || len(doc.SchemaExtension) > 0 {
		return nil, fmt.Errorf("expected a document of directive definitions only")
	}
	directives := make([]*Directive, 0, len(doc.Directives))
	for _, def := range doc.Directives {
		d, err := buildDirective(def, s.Type)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	return directives, nil
}

func buildType(def *ast.Definition) *Type {
	t := NewType(def.Name, buildTypeKind(def.Kind), def.Description)
	t.BuiltIn = def.BuiltIn || isBuiltIn(def.Position)
	for _, name := range def.Interfaces {
		t.AddInterface(name)
	}
	for _, name := range def.Types {
		t.AddMember(name)
	}
	for _, v := range def.EnumValues {
		e := NewEnumValue(v.Name, v.Description)
		deprecate(v.Directives, e.Deprecate)
		t.AddEnumValue(e)
	}
	if d := def.Directives.ForName("specifiedBy"); d != nil {
		if arg := d.Arguments.ForName("url"); arg != nil && arg.Value != nil {
			url := arg.Value.Raw
			t.SpecifiedByURL = &url
		}
	}
	t.SetOneOf(def.Directives.ForName("oneOf") != nil)
	return t
}

func buildTypeKind(kind ast.DefinitionKind) TypeKind {
	switch kind {
	case ast.Scalar:
		return TypeKindScalar
	case ast.Object:
		return TypeKindObject
	case ast.Interface:
		return TypeKindInterface
	case ast.Union:
		return TypeKindUnion
	case ast.Enum:
		return TypeKindEnum
	case ast.InputObject:
		return TypeKindInputObject
	}
	panic("unreachable")
}

func buildField(def *ast.FieldDefinition, lookup func(string) *Type) (*Field, error) {
	typ, err := buildTypeRef(def.Type, lookup)
	if err != nil {
		return nil, err
	}
	f := NewField(def.Name, def.Description, typ)
	deprecate(def.Directives, f.Deprecate)
	for _, arg := range def.Arguments {
		in, err := buildArgument(arg, lookup)
		if err != nil {
			return nil, err
		}
		f.AddArgument(in)
	}
	return f, nil
}

func buildArgument(def *ast.ArgumentDefinition, lookup func(string) *Type) (*InputValue, error) {
	typ, err := buildTypeRef(def.Type, lookup)
	if err != nil {
		return nil, err
	}
	in := NewInputValue(def.Name, def.Description, typ).SetDefault(buildValue(def.DefaultValue))
	deprecate(def.Directives, in.Deprecate)
	return in, nil
}

func buildDirective(def *ast.DirectiveDefinition, lookup func(string) *Type) (*Directive, error) {
	d := NewDirective(def.Name, def.Description).SetRepeatable(def.IsRepeatable)
	d.BuiltIn = isBuiltIn(def.Position)
	for _, loc := range def.Locations {
		d.AddLocation(string(loc))
	}
	for _, arg := range def.Arguments {
		in, err := buildArgument(arg, lookup)
		if err != nil {
			return nil, fmt.Errorf("directive @%s: %w", def.Name, err)
		}
		d.AddArgument(in)
	}
	return d, nil
}

func buildTypeRef(t *ast.Type, lookup func(string) *Type) (TypeRef, error) {
	var ref TypeRef
	if t.Elem != nil {
		elem, err := buildTypeRef(t.Elem, lookup)
		if err != nil {
			return nil, err
		}
		ref = ListOf(elem)
	} else {
		named := lookup(t.NamedType)
		if named == nil {
			return nil, &UnknownTypeError{Source: t.String()}
		}
		ref = named
	}
	if t.NonNull {
		ref = NonNullOf(ref)
	}
	return ref, nil
}

// buildValue converts a literal into the Go value stored as a default.
// Enum values become EnumLiteral so they render unquoted.
func buildValue(v *ast.Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case ast.EnumValue:
		return EnumLiteral(v.Raw)
	case ast.ListValue:
		out := make([]any, 0, len(v.Children))
		for _, child := range v.Children {
			out = append(out, buildValue(child.Value))
		}
		return out
	case ast.ObjectValue:
		out := make(map[string]any, len(v.Children))
		for _, child := range v.Children {
			out[child.Name] = buildValue(child.Value)
		}
		return out
	}
	val, err := v.Value(nil)
	if err != nil {
		return v.Raw
	}
	return val
}

func isBuiltIn(pos *ast.Position) bool {
	return pos != nil && pos.Src != nil && pos.Src.BuiltIn
}

func deprecate(directives ast.DirectiveList, apply func(reason string)) {
	d := directives.ForName("deprecated")
	if d == nil {
		return
	}
	reason := ""
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		reason = arg.Value.Raw
	}
	apply(reason)
}

// The constructors below mutate the value they are called on and are meant
// for assembling types before handing them to New. Types must not be changed
// once a Schema references them.

func NewType(name string, kind TypeKind, description string) *Type {
	return &Type{Name: name, Kind: kind, Description: description}
}

func (t *Type) AddField(f *Field) *Type {
	t.Fields = append(t.Fields, f)
	return t
}

func (t *Type) AddInterface(name string) *Type {
	t.Interfaces = append(t.Interfaces, name)
	return t
}

func (t *Type) AddMember(name string) *Type {
	t.Members = append(t.Members, name)
	return t
}

func (t *Type) AddEnumValue(v *EnumValue) *Type {
	t.EnumValues = append(t.EnumValues, v)
	return t
}

func (t *Type) AddInputField(v *InputValue) *Type {
	t.InputFields = append(t.InputFields, v)
	return t
}

func (t *Type) SetOneOf(oneOf bool) *Type {
	t.OneOf = oneOf
	return t
}

func NewField(name, description string, typ TypeRef) *Field {
	return &Field{Name: name, Description: description, Type: typ}
}

func (f *Field) AddArgument(arg *InputValue) *Field {
	f.Arguments = append(f.Arguments, arg)
	return f
}

func (f *Field) Deprecate(reason string) {
	f.IsDeprecated = true
	f.DeprecationReason = reason
}

func NewEnumValue(name, description string) *EnumValue {
	return &EnumValue{Name: name, Description: description}
}

func (e *EnumValue) Deprecate(reason string) {
	e.IsDeprecated = true
	e.DeprecationReason = reason
}

func NewInputValue(name, description string, typ TypeRef) *InputValue {
	return &InputValue{Name: name, Description: description, Type: typ}
}

func (in *InputValue) SetDefault(v any) *InputValue {
	in.DefaultValue = v
	return in
}

func (in *InputValue) Deprecate(reason string) {
	in.IsDeprecated = true
	in.DeprecationReason = reason
}

func NewDirective(name, description string) *Directive {
	return &Directive{Name: name, Description: description}
}

func (d *Directive) SetRepeatable(repeatable bool) *Directive {
	d.IsRepeatable = repeatable
	return d
}

func (d *Directive) AddLocation(loc string) *Directive {
	d.Locations = append(d.Locations, loc)
	return d
}

func (d *Directive) AddArgument(arg *InputValue) *Directive {
	d.Arguments = append(d.Arguments, arg)
	return d
}
