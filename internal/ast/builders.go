package ast

// Builders for constructing core expressions, mirroring what the external
// parser is expected to call after rewriting surface syntax. Grouped here
// rather than alongside the New* constructors so that call sites which only
// need "build me a well-formed tree" can import a single obvious surface.

// PrimitiveInteger builds a Primitive(Integer) node.
func PrimitiveInteger(span *Span, value Integer) Expr {
	return NewPrimitive(span, IntegerPrimitive(value))
}

// IdentifierName builds an Identifier node from a Name.
func IdentifierName(span *Span, name string) (Expr, error) {
	id, err := NewName(name)
	if err != nil {
		return Expr{}, err
	}
	return NewIdentifier(span, id), nil
}

// IdentifierOperator builds an Identifier node from an Operator symbol.
func IdentifierOperator(span *Span, symbol string) Expr {
	return NewIdentifier(span, NewOperatorMust(symbol))
}
