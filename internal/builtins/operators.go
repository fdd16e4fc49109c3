package builtins

import (
	"github.com/lclang/l/internal/ast"
	"github.com/lclang/l/internal/types"
)

// The core expression grammar has no dedicated infix node: a surface
// `a + b` rewrites (see ast.RewriteInfix) to `Apply(Apply(Identifier(+), a),
// b)`, and Identifier(x) typing/evaluation both require x to already be
// bound in scope. So `+`, `-`, and `*` are not special-cased anywhere in
// the type checker or either evaluator; they are ordinary curried natives
// of type Integer -> Integer -> Integer, bound by the same Assign cascade
// that binds trace.
//
// Each operator's native leaf is given the operator's own identifier as its
// unique_name, and that identifier is seeded in BaseTypeEnv with type
// Integer — the native's inferred type on its own. The curried function
// wrapping it is then pinned to Integer -> Integer -> Integer with an
// explicit Typed annotation, which is what actually forces both parameters
// to Integer (the native's body gives the type checker no structural link
// between its own type and its parameters, unlike trace's pass-through).
func operatorBinding(op ast.Operation) (ast.Identifier, ast.Expr) {
	left := ast.MustName("left")
	right := ast.MustName("right")

	implementation := func(ctx ast.NativeContext) (ast.Primitive, error) {
		l, err := ctx.LookupValue(left)
		if err != nil {
			return ast.Primitive{}, err
		}
		r, err := ctx.LookupValue(right)
		if err != nil {
			return ast.Primitive{}, err
		}
		return ast.IntegerPrimitive(op.Apply(l.Integer(), r.Integer())), nil
	}

	native := ast.NewNative(nil, ast.Native{UniqueName: op.Identifier(), Implementation: implementation})
	curried := ast.NewFunction(nil, left, ast.NewFunction(nil, right, native))
	signature := types.Function(types.Integer(), types.Function(types.Integer(), types.Integer()))
	annotated := ast.NewTyped(nil, curried, signature)

	return op.Identifier(), annotated
}

// BaseTypeEnv returns the typing environment operator natives need to be
// inferred at all: each operator identifier bound to the plain Integer
// type its native leaf reduces to, prior to the Typed annotation pinning
// the surrounding function's parameters. InferTypeWithEnv must be seeded
// with this (or an environment extending it) before type-checking any
// program prepared with Prepare.
func BaseTypeEnv() types.Env {
	env := types.NewEnv()
	for _, op := range []ast.Operation{ast.Add, ast.Subtract, ast.Multiply} {
		env = env.With(op.Identifier(), types.Monomorphic(types.Integer()))
	}
	return env
}
