package schema

// TypeRef is a reference to a type as written on a field or argument: either
// a named *Type, or a *List or *NonNull wrapping another TypeRef. The set of
// implementations is closed.
type TypeRef interface {
	String() string
	isTypeRef()
}

// List wraps a type reference in a list modifier.
type List struct {
	OfType TypeRef
}

func (l *List) String() string {
	if l.OfType == nil {
		return "[]"
	}
	return "[" + l.OfType.String() + "]"
}

func (*List) isTypeRef() {}

// NonNull wraps a type reference in a non-null modifier. OfType is never
// itself a *NonNull.
type NonNull struct {
	OfType TypeRef
}

func (n *NonNull) String() string {
	if n.OfType == nil {
		return "!"
	}
	return n.OfType.String() + "!"
}

func (*NonNull) isTypeRef() {}

func ListOf(t TypeRef) *List { return &List{OfType: t} }

// NonNullOf wraps t in a non-null modifier. Wrapping a non-null reference
// again is a construction bug and panics.
func NonNullOf(t TypeRef) *NonNull {
	if _, ok := t.(*NonNull); ok {
		panic("schema: non-null of non-null type " + t.String())
	}
	return &NonNull{OfType: t}
}

// Unwrap removes one layer of Non-Null or List wrapping and returns the inner type.
// Named types are returned unchanged.
func Unwrap(t TypeRef) TypeRef {
	switch t := t.(type) {
	case *List:
		return t.OfType
	case *NonNull:
		return t.OfType
	default:
		return t
	}
}
