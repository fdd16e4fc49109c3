package evalpool

import (
	"github.com/lclang/l/internal/ast"
	"github.com/lclang/l/internal/bindings"
	"github.com/lclang/l/internal/langerr"
)

// Store is the binding store this evaluator threads through recursion:
// identifiers resolve to thunks over pool references rather than raw
// expressions, so forcing a binding never re-walks the source AST.
type Store = bindings.Bindings[NodeRef]

// Evaluator is a big-step recursive evaluator over a flattened Tree. It
// holds no mutable state of its own beyond the pool; all evaluation state
// lives in the Store threaded through each call, so one Evaluator can
// safely evaluate independent expressions (or the same expression with
// different bindings) concurrently.
type Evaluator struct {
	tree Tree
}

// New returns an evaluator over the given flattened tree.
func New(tree Tree) *Evaluator {
	return &Evaluator{tree: tree}
}

// EvaluateRoot evaluates the tree's root expression in an empty store.
func (e *Evaluator) EvaluateRoot() (bindings.CompletedEvaluation[NodeRef], error) {
	return e.Evaluate(e.tree.Root, bindings.Empty[NodeRef]())
}

// Evaluate evaluates ref under store to a Completed value: a primitive or
// a closure capturing store as it existed when the function was reached.
func (e *Evaluator) Evaluate(ref NodeRef, store Store) (bindings.CompletedEvaluation[NodeRef], error) {
	var zero bindings.CompletedEvaluation[NodeRef]

	node, ok := e.tree.Pool.Get(ref)
	if !ok {
		panic("evalpool: dangling node reference")
	}

	switch node.Kind {
	case ast.KindPrimitive:
		return bindings.PrimitiveResult[NodeRef](node.Primitive), nil

	case ast.KindNative:
		ctx := &nativeContext{evaluator: e, store: store}
		value, err := node.Native.Implementation(ctx)
		if err != nil {
			return zero, err
		}
		return bindings.PrimitiveResult[NodeRef](value), nil

	case ast.KindIdentifier:
		thunk, ok := store.Read(node.Identifier)
		if !ok {
			return zero, &langerr.UnknownVariable{Span: node.Span, Name: node.Identifier.Name()}
		}
		return thunk.ResolveBy(e.Evaluate)

	case ast.KindFunction:
		return bindings.ClosureResult(bindings.Closure[NodeRef]{
			Parameter: node.Function.Parameter,
			Body:      node.Function.Body,
			Bindings:  store,
		}), nil

	case ast.KindApply:
		fnResult, err := e.Evaluate(node.Apply.Function, store)
		if err != nil {
			return zero, err
		}
		if fnResult.Kind() != bindings.CompletedClosureKind {
			return zero, &langerr.InvalidFunctionApplication{Span: node.Span}
		}
		closure := fnResult.AsClosure()
		extended := closure.Bindings.With(closure.Parameter, node.Apply.Argument, store)
		return e.Evaluate(closure.Body, extended)

	case ast.KindAssign:
		extended := store.With(node.Assign.Name, node.Assign.Value, store)
		return e.Evaluate(node.Assign.Inner, extended)

	case ast.KindMatch:
		return e.evaluateMatch(node, store)

	case ast.KindTyped:
		return e.Evaluate(node.Typed.Expression, store)

	default:
		panic("evalpool: unrecognised node kind")
	}
}

// evaluateMatch forces the scrutinee through a single shared thunk, so it
// is evaluated at most once no matter how many Primitive patterns examine
// it, and only if a Primitive pattern is actually reached.
func (e *Evaluator) evaluateMatch(node Node, store Store) (bindings.CompletedEvaluation[NodeRef], error) {
	var zero bindings.CompletedEvaluation[NodeRef]

	value := bindings.NewThunk(node.Match.Value, store)
	for _, pm := range node.Match.Patterns {
		if pm.Pattern.Kind == ast.PatternAnything {
			return e.Evaluate(pm.Result, store)
		}
		forced, err := value.ResolveBy(e.Evaluate)
		if err != nil {
			return zero, err
		}
		if !forced.IsPrimitive() {
			return zero, &langerr.InvalidPrimitive{Span: valueSpan(e.tree, node.Match.Value)}
		}
		if forced.AsPrimitive().Equal(pm.Pattern.Value) {
			return e.Evaluate(pm.Result, store)
		}
	}
	return zero, &langerr.MatchWithoutBaseCase{Span: node.Span}
}

func valueSpan(tree Tree, ref NodeRef) *ast.Span {
	if node, ok := tree.Pool.Get(ref); ok {
		return node.Span
	}
	return nil
}

// nativeContext is the pooling evaluator's NativeContext: lookups resolve
// directly against the live binding store, with no deferred substitution
// layer (there is no substitution in this evaluator).
type nativeContext struct {
	evaluator *Evaluator
	store     Store
}

func (c *nativeContext) LookupValue(id ast.Identifier) (ast.Primitive, error) {
	thunk, ok := c.store.Read(id)
	if !ok {
		return ast.Primitive{}, &langerr.UnknownVariable{Name: id.Name()}
	}
	completed, err := thunk.ResolveBy(c.evaluator.Evaluate)
	if err != nil {
		return ast.Primitive{}, err
	}
	if !completed.IsPrimitive() {
		return ast.Primitive{}, &langerr.InvalidPrimitive{}
	}
	return completed.AsPrimitive(), nil
}
