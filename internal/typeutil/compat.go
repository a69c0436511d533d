package typeutil

import (
	"slices"

	"github.com/hanpama/gqlkit/internal/invariant"
	"github.com/hanpama/gqlkit/internal/schema"
)

// MayImplement reports whether a value of ref's raw type may stand in for the
// named type typeName. That is the case when the raw type is typeName itself,
// when it is an object declaring typeName among its interfaces, or when it is
// abstract and at least one of its possible types declares typeName.
//
// Only directly declared interfaces count; interfaces implemented by an
// interface are not followed.
func MayImplement(s *schema.Schema, ref schema.TypeRef, typeName string) bool {
	raw, err := RawType(ref)
	if err != nil {
		return false
	}
	if raw.Name == typeName {
		return true
	}
	if ImplementsInterface(raw, typeName) {
		return true
	}
	if raw.IsAbstract() {
		for _, possible := range s.PossibleTypes(raw) {
			if ImplementsInterface(possible, typeName) {
				return true
			}
		}
	}
	return false
}

// ImplementsInterface reports whether ref's raw type is an object that
// declares interfaceName. Interfaces, unions and leaf types never implement
// anything themselves.
func ImplementsInterface(ref schema.TypeRef, interfaceName string) bool {
	raw, err := RawType(ref)
	if err != nil || raw.Kind != schema.TypeKindObject {
		return false
	}
	return slices.Contains(raw.Interfaces, interfaceName)
}

// ConcreteTypes returns the object types the schema associates with an
// abstract type.
func ConcreteTypes(s *schema.Schema, abstract schema.TypeRef) ([]*schema.Type, error) {
	raw, err := RawType(abstract)
	if err != nil {
		return nil, err
	}
	if !raw.IsAbstract() {
		return nil, invariant.Errorf("expected %s to be an abstract type, got %s", raw.Name, raw.Kind)
	}
	return s.PossibleTypes(raw), nil
}

// IsTypeProperSuperTypeOf reports whether super is an abstract type distinct
// from sub that sub may be narrowed from.
func IsTypeProperSuperTypeOf(s *schema.Schema, super, sub *schema.Type) bool {
	if super == nil || sub == nil || super == sub || !super.IsAbstract() {
		return false
	}
	return slices.Contains(s.PossibleTypes(super), sub)
}
