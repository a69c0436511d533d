package typeutil

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/hanpama/gqlkit/internal/schema"
)

// IsMetaFieldName reports whether name is reserved for introspection.
func IsMetaFieldName(name string) bool {
	return strings.HasPrefix(name, "__")
}

// FieldDef returns the definition of field name on parent. Besides the
// parent's own fields it knows the introspection meta fields: __typename on
// any composite type, and __schema and __type on the query root. It returns
// nil when no such field exists or the schema lacks the introspection types
// the meta field needs.
func FieldDef(s *schema.Schema, parent *schema.Type, name string) *schema.Field {
	if parent == nil {
		return nil
	}
	switch name {
	case "__typename":
		str := s.Type("String")
		if str == nil || !IsCompositeType(parent) {
			return nil
		}
		return schema.NewField("__typename", "The name of the current Object type at runtime.", schema.NonNullOf(str))
	case "__schema":
		schemaType := s.Type("__Schema")
		if schemaType == nil || parent != s.QueryType() {
			return nil
		}
		return schema.NewField("__schema", "Access the current type schema of this server.", schema.NonNullOf(schemaType))
	case "__type":
		typeType, str := s.Type("__Type"), s.Type("String")
		if typeType == nil || str == nil || parent != s.QueryType() {
			return nil
		}
		return schema.NewField("__type", "Request the type information of a single type.", typeType).
			AddArgument(schema.NewInputValue("name", "", schema.NonNullOf(str)))
	}
	if parent.Kind != schema.TypeKindObject && parent.Kind != schema.TypeKindInterface {
		return nil
	}
	return parent.Field(name)
}

// OperationRootType returns the root type an operation selects from.
func OperationRootType(s *schema.Schema, op *ast.OperationDefinition) (*schema.Type, error) {
	var root *schema.Type
	switch op.Operation {
	case ast.Query, "":
		root = s.QueryType()
	case ast.Mutation:
		root = s.MutationType()
	case ast.Subscription:
		root = s.SubscriptionType()
	default:
		return nil, fmt.Errorf("unknown operation type %q", op.Operation)
	}
	if root == nil {
		return nil, fmt.Errorf("schema is not configured for %ss", op.Operation)
	}
	return root, nil
}

// SortEnumValues returns a copy of values ordered by name.
func SortEnumValues(values []*schema.EnumValue) []*schema.EnumValue {
	sorted := append([]*schema.EnumValue(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted
}
