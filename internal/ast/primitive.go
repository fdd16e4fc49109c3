package ast

// Primitive is the set of valid runtime values. Currently just Integer;
// the type is a sum so that a second primitive kind can be added without
// disturbing callers that switch exhaustively over Kind().
type Primitive struct {
	integer Integer
}

// IntegerPrimitive wraps an Integer as a Primitive.
func IntegerPrimitive(value Integer) Primitive {
	return Primitive{integer: value}
}

// Integer returns the wrapped Integer value.
func (p Primitive) Integer() Integer { return p.integer }

// String renders the primitive's value.
func (p Primitive) String() string { return p.integer.String() }

// Equal compares two primitives by value.
func (p Primitive) Equal(other Primitive) bool {
	return p.integer.Equal(other.integer)
}
