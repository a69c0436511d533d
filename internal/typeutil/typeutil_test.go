package typeutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/gqlkit/internal/language"
	"github.com/hanpama/gqlkit/internal/schema"
)

const entitySDL = `
interface Node { id: ID }
type User implements Node { id: ID, name: String }
union Entity = User
`

const catalogSDL = `
interface Node { id: ID! }
interface Named { name: String }
type Product implements Node & Named { id: ID!, name: String, price: Float }
type Review implements Node { id: ID!, body: String }
type Tag { label: String }
union SearchResult = Product | Tag
union Orphan = Tag
enum Currency { EUR USD }
input ReviewInput { body: String }
type Query {
  node(id: ID!): Node
  search(term: String!): [SearchResult!]!
}
type Mutation { review(input: ReviewInput!): Review }
`

func mustBuild(t *testing.T, sdl string) *schema.Schema {
	t.Helper()
	doc, err := language.ParseSchema("test.graphql", sdl)
	require.NoError(t, err)
	s, err := schema.BuildFromDocument(doc)
	require.NoError(t, err)
	return s
}
