// Package builtins wraps a core expression with the host-provided natives
// every program can see: trace and the arithmetic operators.
package builtins

import (
	"github.com/lclang/l/internal/ast"
	"github.com/lclang/l/internal/diagnostics"
)

// Prepare wraps expr with a cascade of Assign nodes, one per built-in, so
// that evaluating or type-checking the result sees every built-in as an
// ordinary bound identifier. The innermost assignment — the one closest to
// expr, and so the last to be shadowed by a user `let` of the same name —
// binds the last-listed built-in below.
func Prepare(sink diagnostics.Sink, expr ast.Expr) ast.Expr {
	bindings := []func() (ast.Identifier, ast.Expr){
		func() (ast.Identifier, ast.Expr) { return operatorBinding(ast.Add) },
		func() (ast.Identifier, ast.Expr) { return operatorBinding(ast.Subtract) },
		func() (ast.Identifier, ast.Expr) { return operatorBinding(ast.Multiply) },
		func() (ast.Identifier, ast.Expr) { return traceBinding(sink) },
	}

	result := expr
	for i := len(bindings) - 1; i >= 0; i-- {
		name, value := bindings[i]()
		result = ast.NewAssign(nil, name, value, result)
	}
	return result
}
