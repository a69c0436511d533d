// Package typeutil answers structural questions about schema types.
//
// The operations are grouped by file:
//
//   - classify.go: unwrapping modifiers and classifying types
//     (RawType, SingularType, CanHaveSelections, IsAbstractType).
//   - compat.go: whether one type may stand in for another
//     (MayImplement, ImplementsInterface, ConcreteTypes).
//   - identity.go: identity field detection (HasID).
//   - astresolve.go: resolving syntax-tree type references against a schema
//     (TypeFromAST, AssertNamedType, AssertTypeWithFields).
//   - fields.go: field lookup including introspection meta fields.
//
// Every function is pure. Precondition failures are reported as
// *invariant.Violation; a reference to an undefined type as
// *schema.UnknownTypeError.
package typeutil
