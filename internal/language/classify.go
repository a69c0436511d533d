package language

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
)

// Kind tags a syntax node. The set of kinds is closed.
type Kind string

const (
	KindOperationDefinition       Kind = "OperationDefinition"
	KindFragmentDefinition        Kind = "FragmentDefinition"
	KindDirectiveDefinition       Kind = "DirectiveDefinition"
	KindEnumTypeDefinition        Kind = "EnumTypeDefinition"
	KindInputObjectTypeDefinition Kind = "InputObjectTypeDefinition"
	KindInterfaceTypeDefinition   Kind = "InterfaceTypeDefinition"
	KindObjectTypeDefinition      Kind = "ObjectTypeDefinition"
	KindScalarTypeDefinition      Kind = "ScalarTypeDefinition"
	KindTypeExtensionDefinition   Kind = "TypeExtensionDefinition"
	KindUnionTypeDefinition       Kind = "UnionTypeDefinition"
	KindSchemaDefinition          Kind = "SchemaDefinition"
	KindFieldDefinition           Kind = "FieldDefinition"
	KindDirective                 Kind = "Directive"
)

// Node is a syntax node carrying its kind.
type Node interface {
	Kind() Kind
}

// ExecutableNode is an operation or fragment definition.
type ExecutableNode interface {
	Node
	Name() string
	SelectionSet() ast.SelectionSet
	executable()
}

// IsOperationDefinition reports whether node is an operation or a fragment
// definition.
func IsOperationDefinition(node Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind() {
	case KindFragmentDefinition, KindOperationDefinition:
		return true
	}
	return false
}

// IsSchemaDefinition reports whether node declares a type, a type extension
// or a directive. Schema blocks and nested nodes such as field definitions
// are neither schema nor operation definitions.
func IsSchemaDefinition(node Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind() {
	case KindDirectiveDefinition,
		KindEnumTypeDefinition,
		KindInputObjectTypeDefinition,
		KindInterfaceTypeDefinition,
		KindObjectTypeDefinition,
		KindScalarTypeDefinition,
		KindTypeExtensionDefinition,
		KindUnionTypeDefinition:
		return true
	}
	return false
}

// OperationDefinitionOf narrows node to an ExecutableNode. It reports false
// for every node IsOperationDefinition rejects.
func OperationDefinitionOf(node Node) (ExecutableNode, bool) {
	if !IsOperationDefinition(node) {
		return nil, false
	}
	exec, ok := node.(ExecutableNode)
	return exec, ok
}

// SchemaNodes flattens a schema document into its top-level nodes in source
// order.
func SchemaNodes(doc *SchemaDocument) []Node {
	nodes := make([]Node, 0, len(doc.Schema)+len(doc.Directives)+len(doc.Definitions)+len(doc.Extensions))
	for _, def := range doc.Schema {
		nodes = append(nodes, SchemaDefinitionNode{Definition: def})
	}
	for _, def := range doc.Directives {
		nodes = append(nodes, DirectiveDefinitionNode{Definition: def})
	}
	for _, def := range doc.Definitions {
		nodes = append(nodes, TypeDefinitionNode{Definition: def})
	}
	for _, def := range doc.Extensions {
		nodes = append(nodes, TypeExtensionNode{Definition: def})
	}
	sortBySource(nodes)
	return nodes
}

// QueryNodes flattens a query document into its operations and fragments in
// source order.
func QueryNodes(doc *QueryDocument) []Node {
	nodes := make([]Node, 0, len(doc.Operations)+len(doc.Fragments))
	for _, op := range doc.Operations {
		nodes = append(nodes, OperationNode{Operation: op})
	}
	for _, frag := range doc.Fragments {
		nodes = append(nodes, FragmentNode{Fragment: frag})
	}
	sortBySource(nodes)
	return nodes
}

// PositionOf returns the source position of node, or nil when it has none.
func PositionOf(node Node) *Position {
	if p, ok := node.(interface{ Position() *ast.Position }); ok {
		return p.Position()
	}
	return nil
}

// sortBySource orders nodes by their offset in the source. Nodes without a
// position keep their relative order after the positioned ones.
func sortBySource(nodes []Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		pi, pj := PositionOf(nodes[i]), PositionOf(nodes[j])
		switch {
		case pi == nil:
			return false
		case pj == nil:
			return true
		}
		return pi.Start < pj.Start
	})
}

type OperationNode struct {
	Operation *ast.OperationDefinition
}

func (OperationNode) Kind() Kind                       { return KindOperationDefinition }
func (n OperationNode) Name() string                   { return n.Operation.Name }
func (n OperationNode) SelectionSet() ast.SelectionSet { return n.Operation.SelectionSet }
func (n OperationNode) Position() *ast.Position        { return n.Operation.Position }
func (OperationNode) executable()                      {}

type FragmentNode struct {
	Fragment *ast.FragmentDefinition
}

func (FragmentNode) Kind() Kind                       { return KindFragmentDefinition }
func (n FragmentNode) Name() string                   { return n.Fragment.Name }
func (n FragmentNode) SelectionSet() ast.SelectionSet { return n.Fragment.SelectionSet }
func (n FragmentNode) Position() *ast.Position        { return n.Fragment.Position }
func (FragmentNode) executable()                      {}

// TypeDefinitionNode is a type declaration. Its kind follows the declared
// definition kind.
type TypeDefinitionNode struct {
	Definition *ast.Definition
}

func (n TypeDefinitionNode) Kind() Kind {
	switch n.Definition.Kind {
	case ast.Scalar:
		return KindScalarTypeDefinition
	case ast.Object:
		return KindObjectTypeDefinition
	case ast.Interface:
		return KindInterfaceTypeDefinition
	case ast.Union:
		return KindUnionTypeDefinition
	case ast.Enum:
		return KindEnumTypeDefinition
	case ast.InputObject:
		return KindInputObjectTypeDefinition
	}
	panic("unreachable")
}

func (n TypeDefinitionNode) Name() string            { return n.Definition.Name }
func (n TypeDefinitionNode) Position() *ast.Position { return n.Definition.Position }

// TypeExtensionNode is an `extend type|interface|...` declaration.
type TypeExtensionNode struct {
	Definition *ast.Definition
}

func (TypeExtensionNode) Kind() Kind                { return KindTypeExtensionDefinition }
func (n TypeExtensionNode) Name() string            { return n.Definition.Name }
func (n TypeExtensionNode) Position() *ast.Position { return n.Definition.Position }

type DirectiveDefinitionNode struct {
	Definition *ast.DirectiveDefinition
}

func (DirectiveDefinitionNode) Kind() Kind                { return KindDirectiveDefinition }
func (n DirectiveDefinitionNode) Name() string            { return n.Definition.Name }
func (n DirectiveDefinitionNode) Position() *ast.Position { return n.Definition.Position }

type SchemaDefinitionNode struct {
	Definition *ast.SchemaDefinition
}

func (SchemaDefinitionNode) Kind() Kind                { return KindSchemaDefinition }
func (SchemaDefinitionNode) Name() string              { return "" }
func (n SchemaDefinitionNode) Position() *ast.Position { return n.Definition.Position }

type FieldDefinitionNode struct {
	Definition *ast.FieldDefinition
}

func (FieldDefinitionNode) Kind() Kind                { return KindFieldDefinition }
func (n FieldDefinitionNode) Name() string            { return n.Definition.Name }
func (n FieldDefinitionNode) Position() *ast.Position { return n.Definition.Position }

// DirectiveNode is a directive application such as `@deprecated`.
type DirectiveNode struct {
	Directive *ast.Directive
}

func (DirectiveNode) Kind() Kind                { return KindDirective }
func (n DirectiveNode) Name() string            { return n.Directive.Name }
func (n DirectiveNode) Position() *ast.Position { return n.Directive.Position }
