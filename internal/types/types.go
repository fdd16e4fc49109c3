// Package types implements the Hindley-Milner type system: monotypes,
// polytypes, substitutions, and Algorithm W over the core expression tree.
package types

import "fmt"

// Kind tags which variant of Type a Monotype holds.
type Kind int

const (
	KindInteger Kind = iota
	KindFunction
	KindVariable
)

// TypeVariable names a fresh type variable, issued monotonically by a
// Supply as _0, _1, _2, ...
type TypeVariable struct {
	id int
}

// String renders the variable the way the fresh-variable supply names it.
func (v TypeVariable) String() string { return fmt.Sprintf("_%d", v.id) }

// Equal reports whether two type variables were issued with the same id.
func (v TypeVariable) Equal(other TypeVariable) bool { return v.id == other.id }

// Monotype is an immutable, structurally-shared type: Integer, a function
// type, or a type variable. The zero value is not valid; use one of the
// constructors.
//
// Like ast.Expr, Monotype wraps a pointer to a private tagged node so the
// value stays cheap to copy while subtrees can be shared (instantiation and
// substitution both reuse untouched parts of a type).
type Monotype struct {
	node *typeNode
}

type typeNode struct {
	kind     Kind
	function FunctionType
	variable TypeVariable
}

// FunctionType is `parameter -> body`.
type FunctionType struct {
	Parameter Monotype
	Body      Monotype
}

// Integer constructs the Integer monotype.
func Integer() Monotype {
	return Monotype{node: &typeNode{kind: KindInteger}}
}

// Function constructs a function monotype.
func Function(parameter, body Monotype) Monotype {
	return Monotype{node: &typeNode{kind: KindFunction, function: FunctionType{Parameter: parameter, Body: body}}}
}

// Variable constructs a type-variable monotype.
func Variable(v TypeVariable) Monotype {
	return Monotype{node: &typeNode{kind: KindVariable, variable: v}}
}

// Kind reports which variant m holds.
func (m Monotype) Kind() Kind { return m.node.kind }

// IsValid reports whether m was constructed through one of the
// constructors, as opposed to being the zero value.
func (m Monotype) IsValid() bool { return m.node != nil }

// AsFunction returns the wrapped FunctionType; panics if Kind() != KindFunction.
func (m Monotype) AsFunction() FunctionType {
	if m.node.kind != KindFunction {
		panic("types: Monotype kind mismatch")
	}
	return m.node.function
}

// AsVariable returns the wrapped TypeVariable; panics if Kind() != KindVariable.
func (m Monotype) AsVariable() TypeVariable {
	if m.node.kind != KindVariable {
		panic("types: Monotype kind mismatch")
	}
	return m.node.variable
}

// String renders the monotype using arrow notation, parenthesising a
// function type that appears as a parameter.
func (m Monotype) String() string {
	switch m.node.kind {
	case KindInteger:
		return "Integer"
	case KindVariable:
		return m.node.variable.String()
	case KindFunction:
		f := m.node.function
		param := f.Parameter.String()
		if f.Parameter.Kind() == KindFunction {
			param = "(" + param + ")"
		}
		return param + " -> " + f.Body.String()
	default:
		return "<invalid type>"
	}
}

// Equal reports structural equality, including type-variable identity (no
// unification is performed).
func (m Monotype) Equal(other Monotype) bool {
	if m.node.kind != other.node.kind {
		return false
	}
	switch m.node.kind {
	case KindInteger:
		return true
	case KindVariable:
		return m.node.variable.Equal(other.node.variable)
	case KindFunction:
		return m.node.function.Parameter.Equal(other.node.function.Parameter) &&
			m.node.function.Body.Equal(other.node.function.Body)
	default:
		return false
	}
}

// FreeVariables returns the set of type variables occurring in m.
func FreeVariables(m Monotype) map[TypeVariable]bool {
	out := map[TypeVariable]bool{}
	collectFree(m, out)
	return out
}

func collectFree(m Monotype, out map[TypeVariable]bool) {
	switch m.Kind() {
	case KindVariable:
		out[m.AsVariable()] = true
	case KindFunction:
		f := m.AsFunction()
		collectFree(f.Parameter, out)
		collectFree(f.Body, out)
	}
}

// Polytype is a type scheme: a monotype universally quantified over a set
// of type variables, as produced by let-generalisation.
type Polytype struct {
	Quantifiers map[TypeVariable]bool
	Mono        Monotype
}

// Monomorphic wraps m as a polytype with no quantifiers.
func Monomorphic(m Monotype) Polytype {
	return Polytype{Quantifiers: map[TypeVariable]bool{}, Mono: m}
}

// FreeVariables returns the type variables free in p: those occurring in
// its monotype but not bound by its quantifiers.
func (p Polytype) FreeVariables() map[TypeVariable]bool {
	free := FreeVariables(p.Mono)
	for v := range p.Quantifiers {
		delete(free, v)
	}
	return free
}
