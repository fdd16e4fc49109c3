package builtins

import (
	"fmt"

	"github.com/lclang/l/internal/ast"
	"github.com/lclang/l/internal/diagnostics"
)

// traceBinding builds `fn param -> native trace`: a native whose
// unique_name is literally the function's own parameter identifier. That
// makes the native's type, under the ordinary identifier lookup rule,
// exactly the parameter's type variable — so the type checker derives
// `forall a. a -> a` for the whole function with no special case, even
// though at runtime the native reads param through the context protocol
// rather than by structural substitution into the Native node.
func traceBinding(sink diagnostics.Sink) (ast.Identifier, ast.Expr) {
	name, _ := ast.NewName("trace")
	param := ast.MustName("param")

	implementation := func(ctx ast.NativeContext) (ast.Primitive, error) {
		value, err := ctx.LookupValue(param)
		if err != nil {
			return ast.Primitive{}, err
		}
		sink.Write(fmt.Sprintf("trace: %s", value.String()))
		return value, nil
	}

	body := ast.NewNative(nil, ast.Native{UniqueName: param, Implementation: implementation})
	return name, ast.NewFunction(nil, param, body)
}
