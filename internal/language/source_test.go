package language

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestSourceAt(t *testing.T) {
	src := &ast.Source{Name: "café.graphql", Input: "# café\ntype Query { a: Int }"}

	require.Equal(t, "type", SourceAt(&Position{Start: 7, End: 11, Src: src}))
	require.Equal(t, "café", SourceAt(&Position{Start: 2, End: 6, Src: src}))
	require.Equal(t, "}", SourceAt(&Position{Start: 27, End: 99, Src: src}))
	require.Equal(t, "", SourceAt(&Position{Start: 5, End: 5, Src: src}))
	require.Equal(t, "", SourceAt(&Position{Start: 0, End: 3}))
	require.Equal(t, "", SourceAt(nil))

	require.Equal(t, "café.graphql", FilePath(&Position{Src: src}))
	require.Equal(t, "", FilePath(nil))
}
