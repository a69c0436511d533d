package compose

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/goleak"

	"github.com/hanpama/gqlkit/internal/logging"
	"github.com/hanpama/gqlkit/internal/schema"
	"github.com/hanpama/gqlkit/internal/typeutil"
)

const baseSDL = `
interface Node { id: ID }
type User implements Node { id: ID, name: String }
union Entity = User
`

func mustParse(t *testing.T, sdl string) *schema.Schema {
	t.Helper()
	s, err := ParseSchema(sdl)
	require.NoError(t, err)
	return s
}

func directiveNames(s *schema.Schema) []string {
	var names []string
	for _, d := range s.Directives() {
		names = append(names, d.Name)
	}
	return names
}

func TestParseSchema(t *testing.T) {
	s := mustParse(t, baseSDL)
	require.Nil(t, s.QueryType())
	require.NotNil(t, s.Type("User"))

	_, err := ParseSchema(`type {`)
	var syntaxErr *gqlerror.Error
	require.ErrorAs(t, err, &syntaxErr)

	_, err = ParseSchema(`type User implements Missing { id: ID }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Missing")
}

func TestWithDirectives(t *testing.T) {
	base := mustParse(t, baseSDL)
	before := directiveNames(base)

	cached := schema.NewDirective("cached", "").AddLocation("FIELD_DEFINITION")
	composed, err := WithDirectives(base, cached)
	require.NoError(t, err)

	require.Len(t, composed.Directives(), len(before)+1)
	require.Same(t, cached, composed.Directive("cached"))
	require.Equal(t, append(before, "cached"), directiveNames(composed))

	// The source schema is unchanged.
	require.Equal(t, before, directiveNames(base))
	require.Nil(t, base.Directive("cached"))

	// Named types are shared, so type relations hold across both schemas.
	require.Same(t, base.Type("User"), composed.Type("User"))
	require.True(t, typeutil.MayImplement(composed, composed.Type("Entity"), "Node"))
	require.Equal(t, base.QueryType(), composed.QueryType())
}

func TestWithDirectivesKeepsRootTypes(t *testing.T) {
	base := mustParse(t, `type Query { a: Int } type Mutation { b: Int }`)

	composed, err := WithDirectives(base)
	require.NoError(t, err)
	require.Same(t, base.QueryType(), composed.QueryType())
	require.Same(t, base.MutationType(), composed.MutationType())
	require.Nil(t, composed.SubscriptionType())
	require.Equal(t, directiveNames(base), directiveNames(composed))
}

func TestWithDirectivesDuplicates(t *testing.T) {
	base := mustParse(t, baseSDL)

	cases := map[string]struct {
		directives []*schema.Directive
		want       string
	}{
		"existing directive": {
			directives: []*schema.Directive{schema.NewDirective("skip", "")},
			want:       "skip",
		},
		"within new set": {
			directives: []*schema.Directive{
				schema.NewDirective("a", ""),
				schema.NewDirective("b", ""),
				schema.NewDirective("a", ""),
			},
			want: "a",
		},
		"first repeat in order": {
			directives: []*schema.Directive{
				schema.NewDirective("b", ""),
				schema.NewDirective("a", ""),
				schema.NewDirective("a", ""),
				schema.NewDirective("b", ""),
			},
			want: "a",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := WithDirectives(base, tc.directives...)
			var dup *schema.DuplicateDirectiveError
			require.ErrorAs(t, err, &dup)
			require.Equal(t, tc.want, dup.Name)
		})
	}
	require.Nil(t, base.Directive("a"))
}

func TestWithDirectivesSDL(t *testing.T) {
	base := mustParse(t, baseSDL+`enum Scope { PUBLIC PRIVATE }`)

	composed, err := WithDirectivesSDL(base, `
		directive @cacheControl(maxAge: Int, scope: Scope = PUBLIC) on FIELD_DEFINITION | OBJECT
		directive @key(fields: String!) repeatable on OBJECT | INTERFACE
	`)
	require.NoError(t, err)

	cache := composed.Directive("cacheControl")
	require.NotNil(t, cache)
	require.Same(t, base.Type("Scope"), cache.Arguments[1].Type)
	require.Equal(t, schema.EnumLiteral("PUBLIC"), cache.Arguments[1].DefaultValue)
	require.True(t, composed.Directive("key").IsRepeatable)
	require.Contains(t, schema.Render(composed), "directive @key(fields: String!) repeatable on OBJECT | INTERFACE")

	_, err = WithDirectivesSDL(base, `directive @include(if: Boolean!) on FIELD`)
	var dup *schema.DuplicateDirectiveError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "include", dup.Name)

	_, err = WithDirectivesSDL(base, `directive @tag(name: Label) on OBJECT`)
	var unknown *schema.UnknownTypeError
	require.ErrorAs(t, err, &unknown)

	_, err = WithDirectivesSDL(base, `directive @tag on`)
	require.Error(t, err)
}

func TestWithDirectivesConcurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	base := mustParse(t, baseSDL)
	before := directiveNames(base)

	const workers = 16
	results := make([]*schema.Schema, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d := schema.NewDirective(fmt.Sprintf("d%d", i), "").AddLocation("OBJECT")
			results[i], errs[i] = WithDirectives(base, d)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Len(t, results[i].Directives(), len(before)+1)
		require.NotNil(t, results[i].Directive(fmt.Sprintf("d%d", i)))
	}
	require.Equal(t, before, directiveNames(base))
}

func TestWithDirectivesSDLLogsComposition(t *testing.T) {
	var buf bytes.Buffer
	logging.SetGlobalLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() { logging.SetGlobalLogger(zerolog.Nop()) })

	base := mustParse(t, baseSDL)
	composed, err := WithDirectivesSDL(base, `directive @a on OBJECT directive @b on OBJECT`)
	require.NoError(t, err)

	require.Contains(t, buf.String(), `"added":2`)
	require.Contains(t, buf.String(), fmt.Sprintf(`"directives":%d`, len(composed.Directives())))
	require.Contains(t, buf.String(), `"message":"composed schema directives"`)
}
