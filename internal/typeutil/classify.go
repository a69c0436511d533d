package typeutil

import (
	"github.com/hanpama/gqlkit/internal/invariant"
	"github.com/hanpama/gqlkit/internal/schema"
)

// RawType strips every List and NonNull layer from ref and returns the named
// type underneath.
func RawType(ref schema.TypeRef) (*schema.Type, error) {
	current := ref
	for {
		switch t := current.(type) {
		case *schema.Type:
			if t == nil {
				return nil, invariant.Errorf("type reference %v has no named type", ref)
			}
			return t, nil
		case *schema.List:
			current = t.OfType
		case *schema.NonNull:
			current = t.OfType
		default:
			return nil, invariant.Errorf("type reference %v has no named type", ref)
		}
	}
}

// SingularType strips List layers only. NonNull layers are never removed,
// so unwrapping stops at the first one: SingularType([Int!]) is Int!, while
// SingularType([Int]!) is [Int]! unchanged.
func SingularType(ref schema.TypeRef) schema.TypeRef {
	current := ref
	for {
		l, ok := current.(*schema.List)
		if !ok {
			return current
		}
		current = l.OfType
	}
}

// NullableType strips a single outer NonNull layer.
func NullableType(ref schema.TypeRef) schema.TypeRef {
	if nn, ok := ref.(*schema.NonNull); ok {
		return nn.OfType
	}
	return ref
}

// IsList reports whether ref is a list, possibly non-null.
func IsList(ref schema.TypeRef) bool {
	_, ok := NullableType(ref).(*schema.List)
	return ok
}

// CanHaveSelections reports whether a selection set can be made on values of
// ref's raw type, that is whether it is an object or an interface.
func CanHaveSelections(ref schema.TypeRef) bool {
	raw, err := RawType(ref)
	if err != nil {
		return false
	}
	switch raw.Kind {
	case schema.TypeKindObject, schema.TypeKindInterface:
		return true
	}
	return false
}

// IsAbstractType reports whether ref's raw type is an interface or a union.
func IsAbstractType(ref schema.TypeRef) bool {
	raw, err := RawType(ref)
	if err != nil {
		return false
	}
	return raw.IsAbstract()
}

// IsCompositeType reports whether ref's raw type is an object, an interface
// or a union.
func IsCompositeType(ref schema.TypeRef) bool {
	raw, err := RawType(ref)
	if err != nil {
		return false
	}
	switch raw.Kind {
	case schema.TypeKindObject, schema.TypeKindInterface, schema.TypeKindUnion:
		return true
	}
	return false
}
