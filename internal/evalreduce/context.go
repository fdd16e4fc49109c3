// Package evalreduce implements the reference evaluator: capture-avoiding
// substitution on the core expression tree, with no environment or arena.
// It exists to be the oracle the pooling evaluator is checked against.
package evalreduce

import (
	"github.com/lclang/l/internal/ast"
	"github.com/lclang/l/internal/langerr"
)

// emptyContext is the base of every native invocation's lookup chain: no
// substitutions are pending, so every lookup is unknown.
type emptyContext struct{}

func (emptyContext) LookupValue(id ast.Identifier) (ast.Primitive, error) {
	return ast.Primitive{}, &langerr.UnknownVariable{Name: id.Name()}
}

// substContext is one frame of a native's deferred-substitution chain. A
// substitution {name -> value} that passed over a Native node during
// substitute() cannot rewrite the Go closure inside it, so instead it is
// recorded as a frame consulted lazily the first time the native's
// implementation looks a name up.
type substContext struct {
	name  ast.Identifier
	value ast.Expr
	rest  ast.NativeContext
}

func (c *substContext) LookupValue(id ast.Identifier) (ast.Primitive, error) {
	if id.Equal(c.name) {
		result, err := Evaluate(c.value)
		if err != nil {
			return ast.Primitive{}, err
		}
		if result.Kind() != ast.KindPrimitive {
			return ast.Primitive{}, &langerr.InvalidPrimitive{Span: c.value.Span()}
		}
		return result.AsPrimitive(), nil
	}
	return c.rest.LookupValue(id)
}
