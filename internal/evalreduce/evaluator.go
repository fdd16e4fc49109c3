package evalreduce

import (
	"github.com/lclang/l/internal/ast"
	"github.com/lclang/l/internal/langerr"
)

// Evaluate reduces expr to normal form by repeated substitution, with no
// binding environment: every step either reaches a value (Primitive or
// Function) or produces a smaller expression with one substitution applied.
// The result's Kind is always KindPrimitive or KindFunction.
func Evaluate(expr ast.Expr) (ast.Expr, error) {
	for {
		switch expr.Kind() {
		case ast.KindPrimitive, ast.KindFunction:
			return expr, nil

		case ast.KindNative:
			n := expr.AsNative()
			value, err := n.Implementation(emptyContext{})
			if err != nil {
				return ast.Expr{}, err
			}
			expr = ast.NewPrimitive(expr.Span(), value)

		case ast.KindIdentifier:
			return ast.Expr{}, &langerr.UnknownVariable{Span: expr.Span(), Name: expr.AsIdentifier().Name()}

		case ast.KindApply:
			a := expr.AsApply()
			fn, err := Evaluate(a.Function)
			if err != nil {
				return ast.Expr{}, err
			}
			if fn.Kind() != ast.KindFunction {
				return ast.Expr{}, &langerr.InvalidFunctionApplication{Span: expr.Span()}
			}
			f := fn.AsFunction()
			expr = substitute(f.Parameter, a.Argument, f.Body, map[string]bool{})

		case ast.KindAssign:
			a := expr.AsAssign()
			expr = substitute(a.Name, a.Value, a.Inner, map[string]bool{})

		case ast.KindMatch:
			next, err := stepMatch(expr)
			if err != nil {
				return ast.Expr{}, err
			}
			expr = next

		case ast.KindTyped:
			expr = expr.AsTyped().Expression

		default:
			return ast.Expr{}, &langerr.InvalidPrimitive{Span: expr.Span()}
		}
	}
}

// stepMatch advances a Match one step: taking an Anything arm immediately,
// or forcing the scrutinee once and comparing it against the head
// Primitive pattern, dropping the head and retrying on a mismatch so the
// already-forced value is never re-evaluated.
func stepMatch(expr ast.Expr) (ast.Expr, error) {
	m := expr.AsMatch()
	if len(m.Patterns) == 0 {
		return ast.Expr{}, &langerr.MatchWithoutBaseCase{Span: expr.Span()}
	}
	head := m.Patterns[0]
	if head.Pattern.Kind == ast.PatternAnything {
		return head.Result, nil
	}

	value, err := Evaluate(m.Value)
	if err != nil {
		return ast.Expr{}, err
	}
	if value.Kind() != ast.KindPrimitive {
		return ast.Expr{}, &langerr.InvalidPrimitive{Span: m.Value.Span()}
	}
	if value.AsPrimitive().Equal(head.Pattern.Value) {
		return head.Result, nil
	}
	return ast.NewMatch(expr.Span(), value, m.Patterns[1:]), nil
}
