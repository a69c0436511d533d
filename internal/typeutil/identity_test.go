package typeutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/gqlkit/internal/invariant"
	"github.com/hanpama/gqlkit/internal/schema"
)

func TestHasID(t *testing.T) {
	s := mustBuild(t, `
		interface Node { id: ID! }
		type User implements Node { id: ID!, name: String }
		type Account { id: String }
		type Anonymous { name: String }
		type Listed { id: [ID!] }
		union Entity = User
		type Query { user: User }
	`)

	cases := []struct {
		ref  schema.TypeRef
		want bool
	}{
		{s.Type("User"), true},
		{s.Type("Node"), true},
		{schema.NonNullOf(schema.ListOf(s.Type("User"))), true},
		{s.Type("Account"), false},
		{s.Type("Anonymous"), false},
		{s.Type("Listed"), true},
	}
	for _, tc := range cases {
		got, err := HasID(s, tc.ref)
		require.NoError(t, err, tc.ref.String())
		require.Equal(t, tc.want, got, tc.ref.String())
	}

	for _, name := range []string{"Entity", "ID", "String"} {
		_, err := HasID(s, s.Type(name))
		require.True(t, invariant.Is(err), "%s: got %v", name, err)
	}
}

func TestHasIDComparesTypeIdentity(t *testing.T) {
	scalars := schema.BuiltinScalars()
	lookalike := schema.NewType("ID", schema.TypeKindScalar, "")
	user := schema.NewType("User", schema.TypeKindObject, "").
		AddField(schema.NewField("id", "", schema.NonNullOf(lookalike)))

	s, err := schema.New(schema.Config{Query: user, Types: scalars})
	require.NoError(t, err)

	ok, err := HasID(s, user)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHasIDWithoutIDType(t *testing.T) {
	custom := schema.NewType("Key", schema.TypeKindScalar, "")
	user := schema.NewType("User", schema.TypeKindObject, "").
		AddField(schema.NewField("id", "", custom))

	s, err := schema.New(schema.Config{Query: user, Types: []*schema.Type{custom}})
	require.NoError(t, err)

	ok, err := HasID(s, user)
	require.NoError(t, err)
	require.False(t, ok)
}
