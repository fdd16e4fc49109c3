package main

import (
	"sort"

	"github.com/lclang/l/internal/ast"
	"github.com/lclang/l/internal/types"
)

// Without a surface lexer/parser (out of scope for this module; see
// SPEC_FULL.md), cmd/l cannot turn arbitrary program text into a core
// expression. Instead it ships the worked scenarios as pre-built trees,
// standing in for what a real frontend would hand the core pipeline.
// Selecting one by name is the CLI's substitute for "read a program".
var demos = map[string]ast.Expr{
	"123":                 demoLiteral(),
	"arithmetic":          demoArithmetic(),
	"distribute":          demoDistribute(),
	"self-add":            demoSelfAdd(),
	"double-double":       demoDoubleDouble(),
	"id-id-id":            demoIdChain(),
	"match":               demoMatch(),
	"match-function":      demoMatchFunction(),
	"typed-id":            demoTypedId(),
	"unbound-variable":    demoUnboundVariable(),
	"unbound-in-closure":  demoUnboundInClosure(),
	"apply-non-function":  demoApplyNonFunction(),
	"match-type-mismatch": demoMatchTypeMismatch(),
	"match-no-base-case":  demoMatchNoBaseCase(),
}

// demoNames returns every demo key, sorted, for the CLI's listing output.
func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func integer(n int32) ast.Expr {
	return ast.PrimitiveInteger(nil, ast.SmallInteger(n))
}

func name(n string) ast.Identifier {
	return ast.MustName(n)
}

func ident(n string) ast.Expr {
	return ast.NewIdentifier(nil, name(n))
}

// demoLiteral: 123
func demoLiteral() ast.Expr {
	return integer(123)
}

// demoArithmetic: 7 + 3 * 5 - 2  =>  (7 + (3 * 5)) - 2  =  20
func demoArithmetic() ast.Expr {
	product := ast.RewriteInfix(nil, ast.Multiply, integer(3), integer(5))
	sum := ast.RewriteInfix(nil, ast.Add, integer(7), product)
	return ast.RewriteInfix(nil, ast.Subtract, sum, integer(2))
}

// demoDistribute: 2 * (3 + 4) = 14
func demoDistribute() ast.Expr {
	sum := ast.RewriteInfix(nil, ast.Add, integer(3), integer(4))
	return ast.RewriteInfix(nil, ast.Multiply, integer(2), sum)
}

// demoSelfAdd: (fn x -> x + x) 9 = 18
func demoSelfAdd() ast.Expr {
	body := ast.RewriteInfix(nil, ast.Add, ident("x"), ident("x"))
	fn := ast.NewFunction(nil, name("x"), body)
	return ast.NewApply(nil, fn, integer(9))
}

// demoDoubleDouble: let double = fn input -> input + input in double (double 4) = 16
func demoDoubleDouble() ast.Expr {
	body := ast.RewriteInfix(nil, ast.Add, ident("input"), ident("input"))
	double := ast.NewFunction(nil, name("input"), body)
	inner := ast.NewApply(nil, ident("double"), ast.NewApply(nil, ident("double"), integer(4)))
	return ast.NewAssign(nil, name("double"), double, inner)
}

// demoIdChain: let id = fn x -> x in id id id (id 7) = 7
func demoIdChain() ast.Expr {
	idFn := ast.NewFunction(nil, name("x"), ident("x"))
	applied := ast.NewApply(nil, ident("id"), integer(7))
	applied = ast.NewApply(nil, ident("id"), applied)
	applied = ast.NewApply(nil, ident("id"), applied)
	return ast.NewAssign(nil, name("id"), idFn, applied)
}

// demoMatch: match 2 { 1 -> 2; 2 -> 3; 3 -> 4; _ -> 0 } = 3
func demoMatch() ast.Expr {
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: integer(2)},
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(2))), Result: integer(3)},
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(3))), Result: integer(4)},
		{Pattern: ast.Anything(), Result: integer(0)},
	}
	return ast.NewMatch(nil, integer(2), patterns)
}

// demoMatchFunction: (match 1 { 1 -> fn x -> 2; _ -> fn x -> x }) 3 = 2
func demoMatchFunction() ast.Expr {
	constTwo := ast.NewFunction(nil, name("x"), integer(2))
	idFn := ast.NewFunction(nil, name("x"), ident("x"))
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: constTwo},
		{Pattern: ast.Anything(), Result: idFn},
	}
	m := ast.NewMatch(nil, integer(1), patterns)
	return ast.NewApply(nil, m, integer(3))
}

// demoTypedId: let id_int = fn x -> (x: Integer) in id_int (1 + (2: Integer)) = 3
func demoTypedId() ast.Expr {
	typedParam := ast.NewTyped(nil, ident("x"), types.Integer())
	idInt := ast.NewFunction(nil, name("x"), typedParam)
	typedTwo := ast.NewTyped(nil, integer(2), types.Integer())
	arg := ast.RewriteInfix(nil, ast.Add, integer(1), typedTwo)
	inner := ast.NewApply(nil, ident("id_int"), arg)
	return ast.NewAssign(nil, name("id_int"), idInt, inner)
}

// demoUnboundVariable: 123 + xyz -> UnknownVariable{xyz}
func demoUnboundVariable() ast.Expr {
	return ast.RewriteInfix(nil, ast.Add, integer(123), ident("xyz"))
}

// demoUnboundInClosure: let fun = (let one = 1 in fn param -> one + param + external)
//
//	in let external = 2 in fun 3
//
// fun's closure is formed before external is bound, so it never sees it.
func demoUnboundInClosure() ast.Expr {
	sum := ast.RewriteInfix(nil, ast.Add, ident("one"), ident("param"))
	sum = ast.RewriteInfix(nil, ast.Add, sum, ident("external"))
	closureBody := ast.NewFunction(nil, name("param"), sum)
	fun := ast.NewAssign(nil, name("one"), integer(1), closureBody)
	callFun := ast.NewApply(nil, ident("fun"), integer(3))
	bindExternal := ast.NewAssign(nil, name("external"), integer(2), callFun)
	return ast.NewAssign(nil, name("fun"), fun, bindExternal)
}

// demoApplyNonFunction: 1 + (fn x -> 3) -> TypeUnificationError
func demoApplyNonFunction() ast.Expr {
	fn := ast.NewFunction(nil, name("x"), integer(3))
	return ast.RewriteInfix(nil, ast.Add, integer(1), fn)
}

// demoMatchTypeMismatch: match 0 { 1 -> 2; _ -> fn x -> x } -> TypeUnificationError
func demoMatchTypeMismatch() ast.Expr {
	idFn := ast.NewFunction(nil, name("x"), ident("x"))
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: integer(2)},
		{Pattern: ast.Anything(), Result: idFn},
	}
	return ast.NewMatch(nil, integer(0), patterns)
}

// demoMatchNoBaseCase: match 0 { 1 -> 2 } -> MatchWithoutBaseCase
func demoMatchNoBaseCase() ast.Expr {
	patterns := []ast.PatternMatch{
		{Pattern: ast.PrimitivePattern(ast.IntegerPrimitive(ast.SmallInteger(1))), Result: integer(2)},
	}
	return ast.NewMatch(nil, integer(0), patterns)
}
