package typeutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hanpama/gqlkit/internal/invariant"
	"github.com/hanpama/gqlkit/internal/schema"
)

func TestRawType(t *testing.T) {
	intType := schema.BuiltinScalars()[1]

	for _, ref := range []schema.TypeRef{
		intType,
		schema.NonNullOf(intType),
		schema.ListOf(intType),
		schema.NonNullOf(schema.ListOf(schema.NonNullOf(intType))),
		schema.ListOf(schema.ListOf(schema.NonNullOf(intType))),
	} {
		raw, err := RawType(ref)
		require.NoError(t, err, ref.String())
		require.Same(t, intType, raw, ref.String())
	}
}

func TestRawTypeMalformed(t *testing.T) {
	for name, ref := range map[string]schema.TypeRef{
		"nil":             nil,
		"nil named":       (*schema.Type)(nil),
		"empty list":      &schema.List{},
		"empty non-null":  &schema.NonNull{},
		"list of nothing": schema.ListOf(&schema.NonNull{}),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := RawType(ref)
			require.True(t, invariant.Is(err), "got %v", err)
		})
	}
}

func TestSingularType(t *testing.T) {
	intType := schema.BuiltinScalars()[1]
	nonNullInt := schema.NonNullOf(intType)

	require.Same(t, nonNullInt, SingularType(schema.ListOf(nonNullInt)))
	require.Same(t, nonNullInt, SingularType(schema.ListOf(schema.ListOf(nonNullInt))))
	require.Same(t, intType, SingularType(schema.ListOf(intType)))
	require.Same(t, nonNullInt, SingularType(nonNullInt))
	require.Same(t, intType, SingularType(intType))

	// A NonNull is never removed, even when it wraps a list.
	requiredList := schema.NonNullOf(schema.ListOf(intType))
	require.Same(t, requiredList, SingularType(requiredList))
	require.Equal(t, "[Int]!", SingularType(requiredList).String())

	requiredInner := schema.NonNullOf(schema.ListOf(nonNullInt))
	require.Same(t, requiredInner, SingularType(schema.ListOf(requiredInner)))
	require.Equal(t, "[Int!]!", SingularType(schema.ListOf(requiredInner)).String())
}

func TestClassification(t *testing.T) {
	s := mustBuild(t, catalogSDL)

	cases := []struct {
		ref        schema.TypeRef
		selections bool
		abstract   bool
		composite  bool
	}{
		{s.Type("Product"), true, false, true},
		{s.Type("Node"), true, true, true},
		{s.Type("SearchResult"), false, true, true},
		{s.Type("Currency"), false, false, false},
		{s.Type("ReviewInput"), false, false, false},
		{s.Type("String"), false, false, false},
		{schema.NonNullOf(schema.ListOf(schema.NonNullOf(s.Type("Node")))), true, true, true},
		{schema.ListOf(s.Type("SearchResult")), false, true, true},
	}
	for _, tc := range cases {
		require.Equal(t, tc.selections, CanHaveSelections(tc.ref), "CanHaveSelections(%s)", tc.ref)
		require.Equal(t, tc.abstract, IsAbstractType(tc.ref), "IsAbstractType(%s)", tc.ref)
		require.Equal(t, tc.composite, IsCompositeType(tc.ref), "IsCompositeType(%s)", tc.ref)
	}

	require.False(t, CanHaveSelections(nil))
	require.False(t, IsAbstractType(&schema.List{}))
}

func TestIsListAndNullableType(t *testing.T) {
	str := schema.BuiltinScalars()[0]
	list := schema.ListOf(str)

	require.True(t, IsList(list))
	require.True(t, IsList(schema.NonNullOf(list)))
	require.False(t, IsList(str))
	require.False(t, IsList(schema.NonNullOf(str)))

	require.Same(t, list, NullableType(schema.NonNullOf(list)))
	require.Same(t, list, NullableType(list))
}

// wrap applies depth list layers to ref, putting a non-null on each layer
// when the drawn flag is set.
func wrap(rt *rapid.T, ref schema.TypeRef, depth int) schema.TypeRef {
	for i := 0; i < depth; i++ {
		ref = schema.ListOf(ref)
		if rapid.Bool().Draw(rt, "nonNull") {
			ref = schema.NonNullOf(ref)
		}
	}
	return ref
}

func TestRawTypeIgnoresWrapping(t *testing.T) {
	s := mustBuild(t, catalogSDL)
	types := s.Types()

	rapid.Check(t, func(rt *rapid.T) {
		named := rapid.SampledFrom(types).Draw(rt, "type")
		ref := wrap(rt, named, rapid.IntRange(0, 6).Draw(rt, "depth"))

		raw, err := RawType(ref)
		require.NoError(rt, err)
		require.Same(rt, named, raw)
		require.Equal(rt, IsAbstractType(named), IsAbstractType(ref))
		require.Equal(rt, CanHaveSelections(named), CanHaveSelections(ref))
	})
}

func countNonNull(ref schema.TypeRef) int {
	n := 0
	for {
		switch t := ref.(type) {
		case *schema.NonNull:
			n++
			ref = t.OfType
		case *schema.List:
			ref = t.OfType
		default:
			return n
		}
	}
}

func TestSingularTypeKeepsNonNull(t *testing.T) {
	intType := schema.BuiltinScalars()[1]

	rapid.Check(t, func(rt *rapid.T) {
		var ref schema.TypeRef = intType
		if rapid.Bool().Draw(rt, "nonNullElement") {
			ref = schema.NonNullOf(ref)
		}
		ref = wrap(rt, ref, rapid.IntRange(0, 6).Draw(rt, "depth"))

		singular := SingularType(ref)
		require.Equal(rt, countNonNull(ref), countNonNull(singular))
		_, isList := singular.(*schema.List)
		require.False(rt, isList)
	})
}
