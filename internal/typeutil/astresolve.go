package typeutil

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/hanpama/gqlkit/internal/invariant"
	"github.com/hanpama/gqlkit/internal/schema"
)

// TypeFromAST resolves a syntax-tree type reference against the schema,
// rebuilding its List and NonNull layers. If the named leaf is not defined,
// the error is a *schema.UnknownTypeError carrying the printed node.
func TypeFromAST(s *schema.Schema, node *ast.Type) (schema.TypeRef, error) {
	if node == nil {
		return nil, invariant.Errorf("type reference node is nil")
	}
	ref, ok := typeFromAST(s, node)
	if !ok {
		return nil, &schema.UnknownTypeError{Source: node.String()}
	}
	return ref, nil
}

func typeFromAST(s *schema.Schema, node *ast.Type) (schema.TypeRef, bool) {
	var ref schema.TypeRef
	if node.Elem != nil {
		elem, ok := typeFromAST(s, node.Elem)
		if !ok {
			return nil, false
		}
		ref = schema.ListOf(elem)
	} else {
		named := s.Type(node.NamedType)
		if named == nil {
			return nil, false
		}
		ref = named
	}
	if node.NonNull {
		ref = schema.NonNullOf(ref)
	}
	return ref, true
}

// AssertNamedType checks that v is a named type and not a List or NonNull
// wrapper.
func AssertNamedType(v any) (*schema.Type, error) {
	ref, ok := v.(schema.TypeRef)
	if !ok || ref == nil {
		return nil, invariant.Errorf("expected %v to be a type", v)
	}
	raw, err := RawType(ref)
	if err != nil {
		return nil, err
	}
	if schema.TypeRef(raw) != ref {
		return nil, invariant.Errorf("expected %v to be a named type", ref)
	}
	return raw, nil
}

// AssertTypeWithFields checks that ref is an object or an interface type.
func AssertTypeWithFields(ref schema.TypeRef) (*schema.Type, error) {
	t, ok := ref.(*schema.Type)
	if !ok || t == nil || (t.Kind != schema.TypeKindObject && t.Kind != schema.TypeKindInterface) {
		return nil, invariant.Errorf("expected %v to be an object or interface type", ref)
	}
	return t, nil
}
