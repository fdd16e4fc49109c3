// Package agreement holds only a test: the two evaluators (evalreduce's
// reference substitution and evalpool's arena-backed evaluation) must reach
// equal results, or both fail, on every prepared program. Neither
// evaluator package can import the other or sensibly import both, since
// that is a transitive-dependency tangle with no third package to own, so
// the comparison lives here instead.
package agreement

import (
	"testing"

	"github.com/kr/pretty"

	"github.com/lclang/l/internal/ast"
	"github.com/lclang/l/internal/builtins"
	"github.com/lclang/l/internal/diagnostics"
	"github.com/lclang/l/internal/evalpool"
	"github.com/lclang/l/internal/evalreduce"
)

func integer(n int32) ast.Expr { return ast.PrimitiveInteger(nil, ast.SmallInteger(n)) }

func name(n string) ast.Identifier { return ast.MustName(n) }

func ident(n string) ast.Expr { return ast.NewIdentifier(nil, name(n)) }

// outcome is the two evaluators' results reduced to a shape that can be
// compared despite each evaluator representing a closure differently (a
// substituted ast.Function vs. a pool reference plus a bindings store).
type outcome struct {
	Failed      bool
	IsPrimitive bool
	Primitive   string
}

func reduceOutcome(t *testing.T, expr ast.Expr) outcome {
	t.Helper()
	result, err := evalreduce.Evaluate(expr)
	if err != nil {
		return outcome{Failed: true}
	}
	if result.Kind() == ast.KindPrimitive {
		return outcome{IsPrimitive: true, Primitive: result.AsPrimitive().String()}
	}
	return outcome{}
}

func poolOutcome(t *testing.T, expr ast.Expr) outcome {
	t.Helper()
	result, err := evalpool.New(evalpool.Flatten(expr)).EvaluateRoot()
	if err != nil {
		return outcome{Failed: true}
	}
	if result.IsPrimitive() {
		return outcome{IsPrimitive: true, Primitive: result.AsPrimitive().String()}
	}
	return outcome{}
}

func assertAgree(t *testing.T, label string, expr ast.Expr) {
	t.Helper()
	got := reduceOutcome(t, expr)
	want := poolOutcome(t, expr)
	if got != want {
		t.Errorf("%s: evaluators disagree:\nreduce: %s\npool:   %s", label, pretty.Sprint(got), pretty.Sprint(want))
	}
}

func TestEvaluatorsAgreeOnLiteral(t *testing.T) {
	assertAgree(t, "literal", integer(123))
}

func TestEvaluatorsAgreeOnArithmetic(t *testing.T) {
	product := ast.RewriteInfix(nil, ast.Multiply, integer(3), integer(5))
	sum := ast.RewriteInfix(nil, ast.Add, integer(7), product)
	expr := ast.RewriteInfix(nil, ast.Subtract, sum, integer(2))
	assertAgree(t, "arithmetic", builtins.Prepare(&diagnostics.Collecting{}, expr))
}

func TestEvaluatorsAgreeOnSelfAdd(t *testing.T) {
	body := ast.RewriteInfix(nil, ast.Add, ident("x"), ident("x"))
	fn := ast.NewFunction(nil, name("x"), body)
	expr := ast.NewApply(nil, fn, integer(9))
	assertAgree(t, "self-add", builtins.Prepare(&diagnostics.Collecting{}, expr))
}

func TestEvaluatorsAgreeOnDoubleDouble(t *testing.T) {
	body := ast.RewriteInfix(nil, ast.Add, ident("input"), ident("input"))
	double := ast.NewFunction(nil, name("input"), body)
	inner := ast.NewApply(nil, ident("double"), ast.NewApply(nil, ident("double"), integer(4)))
	expr := ast.NewAssign(nil, name("double"), double, inner)
	assertAgree(t, "double-double", builtins.Prepare(&diagnostics.Collecting{}, expr))
}

func TestEvaluatorsAgreeOnIdChain(t *testing.T) {
	idFn := ast.NewFunction(nil, name("x"), ident("x"))
	applied := ast.NewApply(nil, ident("id"), integer(7))
	applied = ast.NewApply(nil, ident("id"), applied)
	applied = ast.NewApply(nil, ident("id"), applied)
	expr := ast.NewAssign(nil, name("id"), idFn, applied)
	assertAgree(t, "id-chain", expr)
}

func TestEvaluatorsAgreeOnMatch(t *testing.T) {
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: integer(2)},
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(2))), Result: integer(3)},
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(3))), Result: integer(4)},
		{Pattern: ast.Anything(), Result: integer(0)},
	}
	assertAgree(t, "match", ast.NewMatch(nil, integer(2), patterns))
}

func TestEvaluatorsAgreeOnMatchProducingFunction(t *testing.T) {
	constTwo := ast.NewFunction(nil, name("x"), integer(2))
	idFn := ast.NewFunction(nil, name("x"), ident("x"))
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: constTwo},
		{Pattern: ast.Anything(), Result: idFn},
	}
	m := ast.NewMatch(nil, integer(1), patterns)
	assertAgree(t, "match-function", ast.NewApply(nil, m, integer(3)))
}

func TestEvaluatorsAgreeOnUnboundVariable(t *testing.T) {
	expr := ast.RewriteInfix(nil, ast.Add, integer(123), ident("xyz"))
	assertAgree(t, "unbound-variable", builtins.Prepare(&diagnostics.Collecting{}, expr))
}

func TestEvaluatorsAgreeOnApplyNonFunction(t *testing.T) {
	assertAgree(t, "apply-non-function", ast.NewApply(nil, integer(1), integer(2)))
}

func TestEvaluatorsAgreeOnMatchWithoutBaseCase(t *testing.T) {
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: integer(2)},
	}
	assertAgree(t, "match-no-base-case", ast.NewMatch(nil, integer(0), patterns))
}

func TestEvaluatorsAgreeOnCallByNameUnforcedArgument(t *testing.T) {
	constOne := ast.NewFunction(nil, name("x"), integer(1))
	expr := ast.NewApply(nil, constOne, ident("undefined"))
	assertAgree(t, "call-by-name-unforced", expr)
}

func TestEvaluatorsAgreeOnTrace(t *testing.T) {
	expr := ast.NewApply(nil, ident("trace"), integer(42))
	assertAgree(t, "trace", builtins.Prepare(&diagnostics.Collecting{}, expr))
}
