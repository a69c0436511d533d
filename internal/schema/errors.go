package schema

import "fmt"

// DuplicateDirectiveError is returned when two directive definitions of a
// schema share a name.
type DuplicateDirectiveError struct {
	Name string
}

func (e *DuplicateDirectiveError) Error() string {
	return fmt.Sprintf("duplicate directive @%s: directive names must be unique", e.Name)
}

// DuplicateTypeError is returned when two named types of a schema share a name.
type DuplicateTypeError struct {
	Name string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("duplicate type %q: type names must be unique", e.Name)
}

// UnknownTypeError is returned when a type reference names a type the schema
// does not define. Source is the printed reference, e.g. "[Usr!]".
type UnknownTypeError struct {
	Source string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %q", e.Source)
}
