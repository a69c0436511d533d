package typeutil

import (
	"github.com/hanpama/gqlkit/internal/invariant"
	"github.com/hanpama/gqlkit/internal/schema"
)

const (
	idFieldName = "id"
	idTypeName  = "ID"
)

// HasID reports whether the object or interface behind ref exposes an
// identity field: a field named "id" whose raw type is the schema's own "ID"
// scalar. Identity is by type instance, so a look-alike "ID" type from
// another schema does not count.
//
// A schema without an "ID" type yields false rather than an error.
func HasID(s *schema.Schema, ref schema.TypeRef) (bool, error) {
	raw, err := RawType(ref)
	if err != nil {
		return false, err
	}
	if raw.Kind != schema.TypeKindObject && raw.Kind != schema.TypeKindInterface {
		return false, invariant.Errorf("expected %s to be an object or interface type, got %s", raw.Name, raw.Kind)
	}
	field := raw.Field(idFieldName)
	if field == nil {
		return false, nil
	}
	idType := s.Type(idTypeName)
	if idType == nil {
		return false, nil
	}
	fieldType, err := RawType(field.Type)
	if err != nil {
		return false, err
	}
	return fieldType == idType, nil
}
