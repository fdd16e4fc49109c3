package bindings

import "github.com/lclang/l/internal/ast"

// CompletedKind tags which variant a CompletedEvaluation holds.
type CompletedKind int

const (
	CompletedPrimitiveKind CompletedKind = iota
	CompletedClosureKind
)

// Closure pairs a function's parameter and body with the bindings in
// effect when the function was evaluated (not when it is later applied).
// Body is generic over the expression representation an evaluator uses
// internally (e.g. a pool reference) so one Bindings implementation serves
// any evaluator built around this store.
type Closure[E any] struct {
	Parameter ast.Identifier
	Body      E
	Bindings  Bindings[E]
}

// CompletedEvaluation is the result of evaluating a core expression to
// normal form: either a primitive value or a closure.
type CompletedEvaluation[E any] struct {
	kind      CompletedKind
	primitive ast.Primitive
	closure   Closure[E]
}

// PrimitiveResult wraps a primitive as a completed evaluation.
func PrimitiveResult[E any](p ast.Primitive) CompletedEvaluation[E] {
	return CompletedEvaluation[E]{kind: CompletedPrimitiveKind, primitive: p}
}

// ClosureResult wraps a closure as a completed evaluation.
func ClosureResult[E any](c Closure[E]) CompletedEvaluation[E] {
	return CompletedEvaluation[E]{kind: CompletedClosureKind, closure: c}
}

// Kind reports which variant c holds.
func (c CompletedEvaluation[E]) Kind() CompletedKind { return c.kind }

// IsPrimitive reports whether c holds a primitive.
func (c CompletedEvaluation[E]) IsPrimitive() bool { return c.kind == CompletedPrimitiveKind }

// AsPrimitive returns the wrapped primitive; panics if Kind() != CompletedPrimitiveKind.
func (c CompletedEvaluation[E]) AsPrimitive() ast.Primitive {
	if c.kind != CompletedPrimitiveKind {
		panic("bindings: CompletedEvaluation is not a primitive")
	}
	return c.primitive
}

// AsClosure returns the wrapped closure; panics if Kind() != CompletedClosureKind.
func (c CompletedEvaluation[E]) AsClosure() Closure[E] {
	if c.kind != CompletedClosureKind {
		panic("bindings: CompletedEvaluation is not a closure")
	}
	return c.closure
}

// String renders the completed value for diagnostics. A closure's body is
// evaluator-specific, so it is rendered opaquely; callers that can walk the
// body (e.g. the pooling evaluator's arena) should format closures
// themselves when a fuller rendering is needed.
func (c CompletedEvaluation[E]) String() string {
	switch c.kind {
	case CompletedPrimitiveKind:
		return c.primitive.String()
	case CompletedClosureKind:
		return "fn " + c.closure.Parameter.String() + " -> <closure>"
	default:
		return "<invalid>"
	}
}
