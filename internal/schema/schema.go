package schema

import (
	"sort"
)

// Schema represents the complete GraphQL schema.
//
// A Schema is immutable once built: all state is unexported and accessors hand
// out copies of collections. Composition produces new Schema values that share
// the (equally immutable) named types of their source.
type Schema struct {
	queryType        *Type
	mutationType     *Type
	subscriptionType *Type
	types            map[string]*Type // All named types keyed by name
	directives       []*Directive     // In declaration order
	description      string

	// possible object types of each abstract type, keyed by abstract type name
	possibleTypes map[string][]*Type
}

// Config holds everything New needs to assemble a Schema.
type Config struct {
	Query        *Type
	Mutation     *Type
	Subscription *Type
	Types        []*Type
	Directives   []*Directive
	Description  string
}

// New assembles a Schema. Root types missing from cfg.Types are added.
// Type and directive names must be unique.
func New(cfg Config) (*Schema, error) {
	s := &Schema{
		queryType:        cfg.Query,
		mutationType:     cfg.Mutation,
		subscriptionType: cfg.Subscription,
		types:            make(map[string]*Type, len(cfg.Types)+3),
		directives:       make([]*Directive, 0, len(cfg.Directives)),
		description:      cfg.Description,
		possibleTypes:    make(map[string][]*Type),
	}
	for _, t := range cfg.Types {
		if _, exists := s.types[t.Name]; exists {
			return nil, &DuplicateTypeError{Name: t.Name}
		}
		s.types[t.Name] = t
	}
	for _, root := range []*Type{cfg.Query, cfg.Mutation, cfg.Subscription} {
		if root == nil {
			continue
		}
		if existing, ok := s.types[root.Name]; ok && existing != root {
			return nil, &DuplicateTypeError{Name: root.Name}
		}
		s.types[root.Name] = root
	}

	seen := make(map[string]struct{}, len(cfg.Directives))
	for _, d := range cfg.Directives {
		if _, exists := seen[d.Name]; exists {
			return nil, &DuplicateDirectiveError{Name: d.Name}
		}
		seen[d.Name] = struct{}{}
		s.directives = append(s.directives, d)
	}

	s.indexPossibleTypes()
	return s, nil
}

func (s *Schema) indexPossibleTypes() {
	for _, t := range s.types {
		switch t.Kind {
		case TypeKindUnion:
			members := make([]*Type, 0, len(t.Members))
			for _, name := range t.Members {
				if m, ok := s.types[name]; ok && m.Kind == TypeKindObject {
					members = append(members, m)
				}
			}
			s.possibleTypes[t.Name] = members
		case TypeKindObject:
			for _, iface := range t.Interfaces {
				s.possibleTypes[iface] = append(s.possibleTypes[iface], t)
			}
		}
	}
	for name, objs := range s.possibleTypes {
		if t, ok := s.types[name]; ok && t.Kind == TypeKindInterface {
			sort.Slice(objs, func(i, j int) bool { return objs[i].Name < objs[j].Name })
		}
	}
}

// QueryType returns the root query type (may be nil if absent)
func (s *Schema) QueryType() *Type { return s.queryType }

// MutationType returns the root mutation type (may be nil if absent)
func (s *Schema) MutationType() *Type { return s.mutationType }

// SubscriptionType returns the root subscription type (may be nil if absent)
func (s *Schema) SubscriptionType() *Type { return s.subscriptionType }

func (s *Schema) Description() string { return s.description }

// Type looks up a named type. It returns nil when the schema has no such type.
func (s *Schema) Type(name string) *Type {
	if s == nil {
		return nil
	}
	return s.types[name]
}

// Types returns every named type sorted by name.
func (s *Schema) Types() []*Type {
	out := make([]*Type, 0, len(s.types))
	for _, t := range s.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Directives returns the directive definitions in declaration order.
func (s *Schema) Directives() []*Directive {
	return append([]*Directive(nil), s.directives...)
}

// Directive looks up a directive definition by name.
func (s *Schema) Directive(name string) *Directive {
	for _, d := range s.directives {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// PossibleTypes returns the object types an abstract type may resolve to:
// the members of a union, or the objects declaring an interface. It returns
// nil for any other type.
func (s *Schema) PossibleTypes(t *Type) []*Type {
	if s == nil || t == nil || !t.IsAbstract() || s.types[t.Name] != t {
		return nil
	}
	return append([]*Type(nil), s.possibleTypes[t.Name]...)
}

// Type is a named GraphQL type (object, interface, union, scalar, enum, input)
type Type struct {
	Name           string
	Kind           TypeKind
	Description    string
	Fields         []*Field      // For OBJECT and INTERFACE
	Interfaces     []string      // For OBJECT and INTERFACE (implemented/extended)
	Members        []string      // For UNION
	EnumValues     []*EnumValue  // For ENUM
	InputFields    []*InputValue // For INPUT_OBJECT
	SpecifiedByURL *string
	OneOf          bool
	BuiltIn        bool
}

// Field returns the field with the given name, or nil.
func (t *Type) Field(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// IsAbstract reports whether the type is an interface or a union.
func (t *Type) IsAbstract() bool {
	return t.Kind == TypeKindInterface || t.Kind == TypeKindUnion
}

func (t *Type) String() string { return t.Name }
func (*Type) isTypeRef()       {}

// Field represents a field on an object or interface
type Field struct {
	Name              string
	Description       string
	Type              TypeRef
	Arguments         []*InputValue
	IsDeprecated      bool
	DeprecationReason string
}

// TypeKind represents the kind of GraphQL type
type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
)

type EnumValue struct {
	Name              string
	Description       string
	IsDeprecated      bool
	DeprecationReason string
}

// EnumLiteral is an enum value appearing in a default value.
type EnumLiteral string

type InputValue struct {
	Name              string
	Description       string
	Type              TypeRef
	DefaultValue      any
	IsDeprecated      bool
	DeprecationReason string
}

type Directive struct {
	Name         string
	Description  string
	Locations    []string
	Arguments    []*InputValue
	IsRepeatable bool
	BuiltIn      bool
}
