// Package compose builds schemas from SDL and derives new schemas from
// existing ones without modifying them.
package compose

import (
	"github.com/hanpama/gqlkit/internal/language"
	"github.com/hanpama/gqlkit/internal/logging"
	"github.com/hanpama/gqlkit/internal/schema"
)

// ParseSchema parses SDL text and builds a schema from it. Syntax errors from
// the parser and validation errors from the schema builder are returned
// unchanged.
func ParseSchema(text string) (*schema.Schema, error) {
	doc, err := language.ParseSchema("schema.graphql", text)
	if err != nil {
		return nil, err
	}
	return schema.BuildFromDocument(doc)
}

// WithDirectives returns a new schema holding the root types and named types
// of s and its directives followed by directives. The first name repeated in
// that combined sequence fails the call with a *schema.DuplicateDirectiveError.
// s itself is never modified, so concurrent calls on a shared s are safe.
func WithDirectives(s *schema.Schema, directives ...*schema.Directive) (*schema.Schema, error) {
	combined := append(s.Directives(), directives...)
	seen := make(map[string]struct{}, len(combined))
	for _, d := range combined {
		if _, dup := seen[d.Name]; dup {
			return nil, &schema.DuplicateDirectiveError{Name: d.Name}
		}
		seen[d.Name] = struct{}{}
	}

	composed, err := schema.New(schema.Config{
		Query:        s.QueryType(),
		Mutation:     s.MutationType(),
		Subscription: s.SubscriptionType(),
		Types:        s.Types(),
		Directives:   combined,
		Description:  s.Description(),
	})
	if err != nil {
		return nil, err
	}
	logging.Debug().
		Int("added", len(directives)).
		Int("directives", len(combined)).
		Msg("composed schema directives")
	return composed, nil
}

// WithDirectivesSDL parses directive definitions from SDL text and adds them
// to s with WithDirectives. Argument types may name any type s defines.
func WithDirectivesSDL(s *schema.Schema, sdl string) (*schema.Schema, error) {
	doc, err := language.ParseSchema("directives.graphql", sdl)
	if err != nil {
		return nil, err
	}
	directives, err := schema.BuildDirectives(s, doc)
	if err != nil {
		return nil, err
	}
	return WithDirectives(s, directives...)
}
