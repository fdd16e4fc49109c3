package bindings

import "github.com/lclang/l/internal/ast"

// Bindings is the persistent identifier-to-thunk store. With returns an
// extended copy, leaving the receiver untouched, so a closure can capture
// the store as it existed at one point in evaluation even as evaluation
// continues to extend further copies derived from it.
type Bindings[E any] struct {
	entries map[string]*Thunk[E]
}

// Empty returns a store with no bindings.
func Empty[E any]() Bindings[E] {
	return Bindings[E]{entries: map[string]*Thunk[E]{}}
}

// With returns a copy of b extended with name bound to a new thunk over
// expr, captured together with atPoint — the store in effect at the point
// of binding, which is what the thunk's expression will see once forced.
func (b Bindings[E]) With(name ast.Identifier, expr E, atPoint Bindings[E]) Bindings[E] {
	next := make(map[string]*Thunk[E], len(b.entries)+1)
	for k, v := range b.entries {
		next[k] = v
	}
	next[name.Key()] = NewThunk(expr, atPoint)
	return Bindings[E]{entries: next}
}

// Read returns the thunk bound to name, if any. The caller resolves it
// with the evaluator of its choice via Thunk.ResolveBy.
func (b Bindings[E]) Read(name ast.Identifier) (*Thunk[E], bool) {
	t, ok := b.entries[name.Key()]
	return t, ok
}
