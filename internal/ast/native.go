package ast

// NativeContext is the protocol a native implementation uses to read the
// bindings active at its evaluation site. Each evaluator supplies its own
// implementation: the reducing evaluator a chain of deferred-substitution
// frames, the pooling evaluator a view of its live binding store.
type NativeContext interface {
	LookupValue(identifier Identifier) (Primitive, error)
}

// Implementation is a native's pure function of the evaluation context.
type Implementation func(ctx NativeContext) (Primitive, error)

// Native is a host-provided primitive, looked up by a stable unique name in
// the typing and binding environments. Two natives compare equal iff their
// unique names do; the implementation is not part of identity.
type Native struct {
	UniqueName     Identifier
	Implementation Implementation
}

// Equal compares two natives by unique name only.
func (n Native) Equal(other Native) bool {
	return n.UniqueName.Equal(other.UniqueName)
}

// String renders the native by its unique name.
func (n Native) String() string { return n.UniqueName.String() }
