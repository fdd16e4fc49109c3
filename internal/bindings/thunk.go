// Package bindings implements the persistent identifier-to-thunk store
// shared by the arena/pooling evaluator: a let-bound name is wired to its
// defining expression and the store in effect at the point of binding, and
// is evaluated at most once no matter how many times it is read.
//
// The store is generic over the expression representation E so that it can
// hold either a raw core expression or a pool reference without
// duplicating the memoisation logic.
package bindings

import "sync"

// Thunk is a one-shot, thread-safe memo cell. It starts Unresolved, holding
// the expression and the bindings captured at the point of binding; the
// first successful ResolveBy call computes and caches the value, and every
// later call (even concurrent ones) returns the cached value without
// invoking the evaluator again.
//
// A resolve that fails is not cached: the thunk remains unresolved, so a
// later attempt (e.g. after fixing an unrelated error upstream) can retry.
// This mirrors that evaluation errors are not memoisable results.
type Thunk[E any] struct {
	mu       sync.Mutex
	resolved bool
	expr     E
	bindings Bindings[E]
	value    CompletedEvaluation[E]
}

// NewThunk wraps an unresolved (expression, bindings) pair.
func NewThunk[E any](expr E, bindings Bindings[E]) *Thunk[E] {
	return &Thunk[E]{expr: expr, bindings: bindings}
}

// ResolveBy returns the thunk's value, computing it with evaluate on first
// access and caching the result for every subsequent call. evaluate is
// invoked with the lock held, so a thunk reached re-entrantly while it is
// still being resolved (a binding cycle) will deadlock rather than race;
// the reference semantics permit such a cycle to diverge.
func (t *Thunk[E]) ResolveBy(evaluate func(expr E, bindings Bindings[E]) (CompletedEvaluation[E], error)) (CompletedEvaluation[E], error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.resolved {
		return t.value, nil
	}
	value, err := evaluate(t.expr, t.bindings)
	if err != nil {
		var zero CompletedEvaluation[E]
		return zero, err
	}
	t.value = value
	t.resolved = true
	return t.value, nil
}
