package language

import "github.com/vektah/gqlparser/v2/ast"

const typenameField = "__typename"

// WithTypename returns a copy of doc in which every selection set below an
// operation's root carries a __typename field. Selection sets that already
// select __typename (without an alias) are left as they are. doc is not
// modified.
func WithTypename(doc *QueryDocument) *QueryDocument {
	r := rewriter{
		selectionSet: func(ss ast.SelectionSet, root bool) ast.SelectionSet {
			if root || selectsTypename(ss) {
				return ss
			}
			out := make(ast.SelectionSet, 0, len(ss)+1)
			out = append(out, &ast.Field{Alias: typenameField, Name: typenameField})
			return append(out, ss...)
		},
	}
	return r.document(doc)
}

// RemoveDirectives returns a copy of doc with every application of the named
// directives dropped, e.g. client-only `@connection` or `@client`. doc is not
// modified.
func RemoveDirectives(doc *QueryDocument, names ...string) *QueryDocument {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[name] = struct{}{}
	}
	r := rewriter{
		directives: func(list ast.DirectiveList) ast.DirectiveList {
			var out ast.DirectiveList
			for _, d := range list {
				if _, ok := drop[d.Name]; !ok {
					out = append(out, d)
				}
			}
			return out
		},
	}
	return r.document(doc)
}

func selectsTypename(ss ast.SelectionSet) bool {
	for _, sel := range ss {
		if f, ok := sel.(*ast.Field); ok && f.Name == typenameField && (f.Alias == "" || f.Alias == typenameField) {
			return true
		}
	}
	return false
}

// rewriter copies a query document, giving each hook a chance to replace the
// selection sets and directive lists it walks over. Nodes are copied on the
// way down, so hooks may return new slices without touching the original.
type rewriter struct {
	selectionSet func(ss ast.SelectionSet, root bool) ast.SelectionSet
	directives   func(ast.DirectiveList) ast.DirectiveList
}

func (r rewriter) document(doc *QueryDocument) *QueryDocument {
	out := &QueryDocument{}
	for _, op := range doc.Operations {
		cp := *op
		cp.Directives = r.directiveList(op.Directives)
		cp.SelectionSet = r.selections(op.SelectionSet, true)
		out.Operations = append(out.Operations, &cp)
	}
	for _, frag := range doc.Fragments {
		cp := *frag
		cp.Directives = r.directiveList(frag.Directives)
		cp.SelectionSet = r.selections(frag.SelectionSet, false)
		out.Fragments = append(out.Fragments, &cp)
	}
	return out
}

func (r rewriter) selections(ss ast.SelectionSet, root bool) ast.SelectionSet {
	if ss == nil {
		return nil
	}
	copied := make(ast.SelectionSet, 0, len(ss))
	for _, sel := range ss {
		switch s := sel.(type) {
		case *ast.Field:
			cp := *s
			cp.Directives = r.directiveList(s.Directives)
			if len(s.SelectionSet) > 0 {
				cp.SelectionSet = r.selections(s.SelectionSet, false)
			}
			copied = append(copied, &cp)
		case *ast.InlineFragment:
			cp := *s
			cp.Directives = r.directiveList(s.Directives)
			cp.SelectionSet = r.selections(s.SelectionSet, false)
			copied = append(copied, &cp)
		case *ast.FragmentSpread:
			cp := *s
			cp.Directives = r.directiveList(s.Directives)
			copied = append(copied, &cp)
		default:
			copied = append(copied, sel)
		}
	}
	if r.selectionSet != nil {
		return r.selectionSet(copied, root)
	}
	return copied
}

func (r rewriter) directiveList(list ast.DirectiveList) ast.DirectiveList {
	if r.directives == nil {
		return list
	}
	return r.directives(list)
}
