package evalreduce

import (
	"testing"

	"github.com/lclang/l/internal/ast"
	"github.com/lclang/l/internal/builtins"
	"github.com/lclang/l/internal/diagnostics"
)

func integer(n int32) ast.Expr {
	return ast.PrimitiveInteger(nil, ast.SmallInteger(n))
}

func name(n string) ast.Identifier { return ast.MustName(n) }

func ident(n string) ast.Expr { return ast.NewIdentifier(nil, name(n)) }

func prepared(expr ast.Expr) ast.Expr {
	return builtins.Prepare(&diagnostics.Collecting{}, expr)
}

func evalInteger(t *testing.T, expr ast.Expr) ast.Integer {
	t.Helper()
	result, err := Evaluate(expr)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if result.Kind() != ast.KindPrimitive {
		t.Fatalf("Evaluate result kind = %v, want KindPrimitive", result.Kind())
	}
	return result.AsPrimitive().Integer()
}

func TestEvaluateLiteral(t *testing.T) {
	if got := evalInteger(t, integer(123)); got.String() != "123" {
		t.Errorf("got %s, want 123", got.String())
	}
}

func TestEvaluateArithmetic(t *testing.T) {
	product := ast.RewriteInfix(nil, ast.Multiply, integer(3), integer(5))
	sum := ast.RewriteInfix(nil, ast.Add, integer(7), product)
	expr := ast.RewriteInfix(nil, ast.Subtract, sum, integer(2))
	if got := evalInteger(t, prepared(expr)); got.String() != "20" {
		t.Errorf("7 + 3 * 5 - 2 = %s, want 20", got.String())
	}
}

func TestEvaluateSelfAdd(t *testing.T) {
	body := ast.RewriteInfix(nil, ast.Add, ident("x"), ident("x"))
	fn := ast.NewFunction(nil, name("x"), body)
	expr := ast.NewApply(nil, fn, integer(9))
	if got := evalInteger(t, prepared(expr)); got.String() != "18" {
		t.Errorf("(fn x -> x + x) 9 = %s, want 18", got.String())
	}
}

func TestEvaluateDoubleDouble(t *testing.T) {
	body := ast.RewriteInfix(nil, ast.Add, ident("input"), ident("input"))
	double := ast.NewFunction(nil, name("input"), body)
	inner := ast.NewApply(nil, ident("double"), ast.NewApply(nil, ident("double"), integer(4)))
	expr := ast.NewAssign(nil, name("double"), double, inner)
	if got := evalInteger(t, prepared(expr)); got.String() != "16" {
		t.Errorf("let double = ... in double (double 4) = %s, want 16", got.String())
	}
}

func TestEvaluateIdChain(t *testing.T) {
	idFn := ast.NewFunction(nil, name("x"), ident("x"))
	applied := ast.NewApply(nil, ident("id"), integer(7))
	applied = ast.NewApply(nil, ident("id"), applied)
	applied = ast.NewApply(nil, ident("id"), applied)
	expr := ast.NewAssign(nil, name("id"), idFn, applied)
	if got := evalInteger(t, expr); got.String() != "7" {
		t.Errorf("id id id (id 7) = %s, want 7", got.String())
	}
}

func TestEvaluateMatch(t *testing.T) {
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: integer(2)},
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(2))), Result: integer(3)},
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(3))), Result: integer(4)},
		{Pattern: ast.Anything(), Result: integer(0)},
	}
	expr := ast.NewMatch(nil, integer(2), patterns)
	if got := evalInteger(t, expr); got.String() != "3" {
		t.Errorf("match 2 {...} = %s, want 3", got.String())
	}
}

func TestEvaluateMatchProducingFunction(t *testing.T) {
	constTwo := ast.NewFunction(nil, name("x"), integer(2))
	idFn := ast.NewFunction(nil, name("x"), ident("x"))
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: constTwo},
		{Pattern: ast.Anything(), Result: idFn},
	}
	m := ast.NewMatch(nil, integer(1), patterns)
	expr := ast.NewApply(nil, m, integer(3))
	if got := evalInteger(t, expr); got.String() != "2" {
		t.Errorf("(match 1 {...}) 3 = %s, want 2", got.String())
	}
}

func TestEvaluateUnboundVariableErrors(t *testing.T) {
	expr := ast.RewriteInfix(nil, ast.Add, integer(123), ident("xyz"))
	if _, err := Evaluate(prepared(expr)); err == nil {
		t.Error("Evaluate should error on an unbound variable")
	}
}

func TestEvaluateApplyNonFunctionErrors(t *testing.T) {
	expr := ast.NewApply(nil, integer(1), integer(2))
	if _, err := Evaluate(expr); err == nil {
		t.Error("Evaluate should error applying a non-function")
	}
}

func TestEvaluateMatchWithoutBaseCaseErrors(t *testing.T) {
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: integer(2)},
	}
	expr := ast.NewMatch(nil, integer(0), patterns)
	if _, err := Evaluate(expr); err == nil {
		t.Error("Evaluate should error on a match with no base case")
	}
}

func TestEvaluateCallByNameDoesNotForceUnusedArgument(t *testing.T) {
	// fn x -> 1 applied to an undefined variable: since x is never used,
	// call-by-name must never force the argument.
	constOne := ast.NewFunction(nil, name("x"), integer(1))
	expr := ast.NewApply(nil, constOne, ident("undefined"))
	if got := evalInteger(t, expr); got.String() != "1" {
		t.Errorf("(fn x -> 1) undefined = %s, want 1 (argument must not be forced)", got.String())
	}
}

func TestEvaluateTraceReturnsItsArgumentAndRecordsLine(t *testing.T) {
	sink := &diagnostics.Collecting{}
	expr := builtins.Prepare(sink, ast.NewApply(nil, ident("trace"), integer(42)))
	if got := evalInteger(t, expr); got.String() != "42" {
		t.Errorf("trace 42 = %s, want 42", got.String())
	}
	lines := sink.Lines()
	if len(lines) != 1 || lines[0] != "trace: 42" {
		t.Errorf("sink.Lines() = %v, want [\"trace: 42\"]", lines)
	}
}
