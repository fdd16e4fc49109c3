// Package ast defines the core expression tree: validated identifiers,
// primitive values, and the tagged expression sum type that both the type
// checker and the two evaluators share.
package ast

import (
	"fmt"
	"regexp"

	"github.com/lclang/l/internal/langerr"
)

// Identifier is a validated name for a variable, an operator, or a
// capture-avoidance rename introduced during substitution.
//
// The zero value is not a valid Identifier; always construct one through
// NewName, NewOperator, or NewAvoidingCapture.
type Identifier struct {
	kind     identKind
	name     string      // for kindName and kindOperator
	original *Identifier // for kindAvoidingCapture
	suffix   uint32      // for kindAvoidingCapture
}

type identKind int

const (
	kindName identKind = iota
	kindOperator
	kindAvoidingCapture
)

var (
	validNameRegexp = regexp.MustCompile(`^[_\p{L}][_\p{L}\p{N}]*$`)
	validOperators  = map[string]bool{"+": true, "-": true, "*": true}
	keywords        = map[string]bool{"fn": true, "in": true, "let": true, "match": true}
)

// NewName constructs a Name identifier, rejecting reserved keywords,
// all-underscore names, and anything not matching the identifier grammar.
func NewName(name string) (Identifier, error) {
	if !isValidName(name) {
		return Identifier{}, &langerr.InvalidIdentifierError{Name: name}
	}
	return Identifier{kind: kindName, name: name}, nil
}

// MustName is NewName, panicking on an invalid name. Intended for
// constructing well-known identifiers (e.g. built-in names) at init time.
func MustName(name string) Identifier {
	id, err := NewName(name)
	if err != nil {
		panic(err)
	}
	return id
}

// NewOperator constructs an Operator identifier from one of the fixed set
// of infix operator symbols ("+", "-", "*").
func NewOperator(symbol string) (Identifier, error) {
	if !validOperators[symbol] {
		return Identifier{}, &langerr.InvalidIdentifierError{Name: symbol}
	}
	return Identifier{kind: kindOperator, name: symbol}, nil
}

// NewAvoidingCapture synthesises a rename of original with the given
// suffix, used during capture-avoiding substitution. suffix must be >= 1.
func NewAvoidingCapture(original Identifier, suffix uint32) Identifier {
	if suffix < 1 {
		panic("ast: AvoidingCapture suffix must be >= 1")
	}
	o := original
	return Identifier{kind: kindAvoidingCapture, original: &o, suffix: suffix}
}

func isValidName(name string) bool {
	if keywords[name] {
		return false
	}
	allUnderscores := true
	for _, r := range name {
		if r != '_' {
			allUnderscores = false
			break
		}
	}
	if allUnderscores {
		return false
	}
	return validNameRegexp.MatchString(name)
}

// IsName reports whether id is a Name variant (as opposed to an Operator or
// an AvoidingCapture rename).
func (id Identifier) IsName() bool { return id.kind == kindName }

// IsOperator reports whether id is an Operator variant.
func (id Identifier) IsOperator() bool { return id.kind == kindOperator }

// Name returns the printable name of the identifier: the bare name for
// Name, the symbol parenthesised for Operator, and the original's name for
// AvoidingCapture (the rename is invisible to display).
func (id Identifier) Name() string {
	switch id.kind {
	case kindName:
		return id.name
	case kindOperator:
		return fmt.Sprintf("(%s)", id.name)
	case kindAvoidingCapture:
		return id.original.Name()
	default:
		return ""
	}
}

// String implements fmt.Stringer, printing the identifier the way Display
// does: AvoidingCapture prints identically to its original.
func (id Identifier) String() string {
	switch id.kind {
	case kindName, kindOperator:
		return id.name
	case kindAvoidingCapture:
		return id.original.String()
	default:
		return "<invalid identifier>"
	}
}

// Equal reports structural equality. Two AvoidingCapture identifiers are
// equal only if their originals are equal and their suffixes match; an
// AvoidingCapture is never equal to a plain Name even if the names match.
func (id Identifier) Equal(other Identifier) bool {
	if id.kind != other.kind {
		return false
	}
	switch id.kind {
	case kindName, kindOperator:
		return id.name == other.name
	case kindAvoidingCapture:
		return id.suffix == other.suffix && id.original.Equal(*other.original)
	default:
		return false
	}
}

// Key returns a string usable as a Go map key, so that Identifier can back
// persistent environments and binding stores (map[Identifier]T would compare
// AvoidingCapture variants by pointer identity of their original, which is
// not the structural equality Equal implements).
func (id Identifier) Key() string {
	switch id.kind {
	case kindName:
		return "n:" + id.name
	case kindOperator:
		return "o:" + id.name
	case kindAvoidingCapture:
		return fmt.Sprintf("a:%d:%s", id.suffix, id.original.Key())
	default:
		return "?"
	}
}

