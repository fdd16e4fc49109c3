package evalpool

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

func runInteger(t *testing.T, expr ast.Expr) ast.Integer {
	t.Helper()
	completed, err := New(Flatten(expr)).EvaluateRoot()
	if err != nil {
		t.Fatalf("EvaluateRoot error: %v", err)
	}
	if !completed.IsPrimitive() {
		t.Fatal("expected a primitive result")
	}
	return completed.AsPrimitive().Integer()
}

func TestPoolEvaluateLiteral(t *testing.T) {
	if got := runInteger(t, integer(123)); got.String() != "123" {
		t.Errorf("got %s, want 123", got.String())
	}
}

func TestPoolEvaluateArithmetic(t *testing.T) {
	product := ast.RewriteInfix(nil, ast.Multiply, integer(3), integer(5))
	sum := ast.RewriteInfix(nil, ast.Add, integer(7), product)
	expr := ast.RewriteInfix(nil, ast.Subtract, sum, integer(2))
	if got := runInteger(t, prepared(expr)); got.String() != "20" {
		t.Errorf("7 + 3 * 5 - 2 = %s, want 20", got.String())
	}
}

func TestPoolEvaluateSelfAdd(t *testing.T) {
	body := ast.RewriteInfix(nil, ast.Add, ident("x"), ident("x"))
	fn := ast.NewFunction(nil, name("x"), body)
	expr := ast.NewApply(nil, fn, integer(9))
	if got := runInteger(t, prepared(expr)); got.String() != "18" {
		t.Errorf("(fn x -> x + x) 9 = %s, want 18", got.String())
	}
}

func TestPoolEvaluateDoubleDouble(t *testing.T) {
	body := ast.RewriteInfix(nil, ast.Add, ident("input"), ident("input"))
	double := ast.NewFunction(nil, name("input"), body)
	inner := ast.NewApply(nil, ident("double"), ast.NewApply(nil, ident("double"), integer(4)))
	expr := ast.NewAssign(nil, name("double"), double, inner)
	if got := runInteger(t, prepared(expr)); got.String() != "16" {
		t.Errorf("let double = ... in double (double 4) = %s, want 16", got.String())
	}
}

func TestPoolEvaluateIdChain(t *testing.T) {
	idFn := ast.NewFunction(nil, name("x"), ident("x"))
	applied := ast.NewApply(nil, ident("id"), integer(7))
	applied = ast.NewApply(nil, ident("id"), applied)
	applied = ast.NewApply(nil, ident("id"), applied)
	expr := ast.NewAssign(nil, name("id"), idFn, applied)
	if got := runInteger(t, expr); got.String() != "7" {
		t.Errorf("id id id (id 7) = %s, want 7", got.String())
	}
}

func TestPoolEvaluateMatch(t *testing.T) {
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: integer(2)},
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(2))), Result: integer(3)},
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(3))), Result: integer(4)},
		{Pattern: ast.Anything(), Result: integer(0)},
	}
	expr := ast.NewMatch(nil, integer(2), patterns)
	if got := runInteger(t, expr); got.String() != "3" {
		t.Errorf("match 2 {...} = %s, want 3", got.String())
	}
}

func TestPoolEvaluateMatchForcesScrutineeAtMostOnce(t *testing.T) {
	var calls int
	counter := ast.NewNative(nil, ast.Native{
		UniqueName: name("counter"),
		Implementation: func(ctx ast.NativeContext) (ast.Primitive, error) {
			calls++
			return ast.IntegerPrimitive(ast.SmallInteger(2)), nil
		},
	})
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: integer(10)},
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(2))), Result: integer(20)},
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(3))), Result: integer(30)},
		{Pattern: ast.Anything(), Result: integer(0)},
	}
	expr := ast.NewMatch(nil, counter, patterns)

	if got := runInteger(t, expr); got.String() != "20" {
		t.Errorf("match result = %s, want 20", got.String())
	}
	if calls != 1 {
		t.Errorf("scrutinee native invoked %d times, want 1", calls)
	}
}

func TestPoolEvaluateMatchProducingFunction(t *testing.T) {
	constTwo := ast.NewFunction(nil, name("x"), integer(2))
	idFn := ast.NewFunction(nil, name("x"), ident("x"))
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: constTwo},
		{Pattern: ast.Anything(), Result: idFn},
	}
	m := ast.NewMatch(nil, integer(1), patterns)
	expr := ast.NewApply(nil, m, integer(3))
	if got := runInteger(t, expr); got.String() != "2" {
		t.Errorf("(match 1 {...}) 3 = %s, want 2", got.String())
	}
}

func TestPoolEvaluateUnboundVariableErrors(t *testing.T) {
	expr := ast.RewriteInfix(nil, ast.Add, integer(123), ident("xyz"))
	if _, err := New(Flatten(prepared(expr))).EvaluateRoot(); err == nil {
		t.Error("Evaluate should error on an unbound variable")
	}
}

func TestPoolEvaluateApplyNonFunctionErrors(t *testing.T) {
	expr := ast.NewApply(nil, integer(1), integer(2))
	if _, err := New(Flatten(expr)).EvaluateRoot(); err == nil {
		t.Error("Evaluate should error applying a non-function")
	}
}

func TestPoolEvaluateMatchWithoutBaseCaseErrors(t *testing.T) {
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: integer(2)},
	}
	expr := ast.NewMatch(nil, integer(0), patterns)
	if _, err := New(Flatten(expr)).EvaluateRoot(); err == nil {
		t.Error("Evaluate should error on a match with no base case")
	}
}

func TestPoolEvaluateAssignDoesNotSeeItself(t *testing.T) {
	// let x = x in x : x's own defining value is looked up in the
	// pre-extension store, so this must be UnknownVariable, not a hang.
	expr := ast.NewAssign(nil, name("x"), ident("x"), ident("x"))
	if _, err := New(Flatten(expr)).EvaluateRoot(); err == nil {
		t.Error("a self-referential let should fail to resolve x, not loop or succeed")
	}
}

func TestPoolEvaluateCallCapturesClosureBindingsNotCallerBindings(t *testing.T) {
	// let y = 1 in (let f = fn ignored -> y in let y = 2 in f 0) should yield 1:
	// f's body resolves y against the bindings in effect when f was formed.
	innerFn := ast.NewFunction(nil, name("ignored"), ident("y"))
	shadowed := ast.NewAssign(nil, name("y"), integer(2), ast.NewApply(nil, ident("f"), integer(0)))
	withF := ast.NewAssign(nil, name("f"), innerFn, shadowed)
	expr := ast.NewAssign(nil, name("y"), integer(1), withF)

	if got := runInteger(t, expr); got.String() != "1" {
		t.Errorf("got %s, want 1 (closure must capture definition-site bindings)", got.String())
	}
}

func TestPoolEvaluateTraceReturnsItsArgumentAndRecordsLine(t *testing.T) {
	sink := &diagnostics.Collecting{}
	expr := builtins.Prepare(sink, ast.NewApply(nil, ident("trace"), integer(42)))
	if got := runInteger(t, expr); got.String() != "42" {
		t.Errorf("trace 42 = %s, want 42", got.String())
	}
	lines := sink.Lines()
	if len(lines) != 1 || lines[0] != "trace: 42" {
		t.Errorf("sink.Lines() = %v, want [\"trace: 42\"]", lines)
	}
}
