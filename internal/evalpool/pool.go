// Package evalpool implements the optimised evaluator: the core expression
// tree is flattened once into an arena of nodes addressed by integer
// reference, and evaluation proceeds as a big-step recursive walk over the
// arena using a persistent, memoising binding store instead of
// substitution.
package evalpool

// Ref is an opaque index into a Pool, scoped to the pool that issued it (and
// valid in any pool descended from it by Fork).
type Ref[T any] struct {
	index int
}

type segment[T any] struct {
	offset int
	nodes  []T
}

// Pool is a forkable, append-only arena of nodes. Built pools are
// immutable; a Builder accumulates new nodes into its own tail segment
// while sharing everything inherited from the pool it was forked from.
type Pool[T any] struct {
	segments []segment[T]
}

// Builder accumulates new nodes on top of a (possibly empty) pool.
type Builder[T any] struct {
	inherited  []segment[T]
	tail       []T
	tailOffset int
}

// NewBuilder returns a builder for a fresh, empty pool.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Fork returns a builder that shares every node already in p and
// accumulates new nodes independently. Refs issued by p (or any ancestor
// of p) remain valid in the pool this builder eventually builds.
func Fork[T any](p Pool[T]) *Builder[T] {
	inherited := make([]segment[T], len(p.segments))
	copy(inherited, p.segments)
	return &Builder[T]{inherited: inherited, tailOffset: countNodes(p.segments)}
}

func countNodes[T any](segments []segment[T]) int {
	if len(segments) == 0 {
		return 0
	}
	last := segments[len(segments)-1]
	return last.offset + len(last.nodes)
}

// Push appends node to the builder's tail and returns its ref.
func (b *Builder[T]) Push(node T) Ref[T] {
	index := b.tailOffset + len(b.tail)
	b.tail = append(b.tail, node)
	return Ref[T]{index: index}
}

// Get resolves a ref against everything pushed or inherited so far,
// including the builder's own in-progress tail.
func (b *Builder[T]) Get(ref Ref[T]) (T, bool) {
	if ref.index >= b.tailOffset && ref.index < b.tailOffset+len(b.tail) {
		return b.tail[ref.index-b.tailOffset], true
	}
	return getFromSegments(b.inherited, ref)
}

// Build freezes the builder into an immutable Pool. The builder remains
// usable afterwards (further Push calls extend a new, not-yet-built tail),
// mirroring the arena's append-only, fork-sharing discipline.
func (b *Builder[T]) Build() Pool[T] {
	segments := make([]segment[T], len(b.inherited), len(b.inherited)+1)
	copy(segments, b.inherited)
	if len(b.tail) > 0 {
		segments = append(segments, segment[T]{offset: b.tailOffset, nodes: append([]T(nil), b.tail...)})
	}
	return Pool[T]{segments: segments}
}

// Get resolves ref against p's node storage. It returns false only for a
// ref that was never issued by p or one of its ancestors.
func (p Pool[T]) Get(ref Ref[T]) (T, bool) {
	return getFromSegments(p.segments, ref)
}

func getFromSegments[T any](segments []segment[T], ref Ref[T]) (T, bool) {
	for i := len(segments) - 1; i >= 0; i-- {
		s := segments[i]
		if ref.index >= s.offset && ref.index < s.offset+len(s.nodes) {
			return s.nodes[ref.index-s.offset], true
		}
	}
	var zero T
	return zero, false
}
