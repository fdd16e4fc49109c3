package types

import (
	"fmt"

	"github.com/lclang/l/internal/ast"
)

// TypeUnificationError reports that two monotypes could not be unified. It
// carries both sides' spans (where available) so the CLI can point at both
// the expression that produced each type.
type TypeUnificationError struct {
	LeftSpan  *ast.Span
	Left      Monotype
	RightSpan *ast.Span
	Right     Monotype
}

func (e *TypeUnificationError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.Left, e.Right)
}

// Unify computes the most general substitution making left and right equal,
// or reports a TypeUnificationError carrying the supplied spans.
func Unify(left, right Monotype, leftSpan, rightSpan *ast.Span) (Subst, error) {
	switch {
	case left.Kind() == KindInteger && right.Kind() == KindInteger:
		return Empty(), nil

	case left.Kind() == KindVariable && right.Kind() == KindVariable && left.AsVariable().Equal(right.AsVariable()):
		return Empty(), nil

	case left.Kind() == KindVariable:
		return Singleton(left.AsVariable(), right), nil

	case right.Kind() == KindVariable:
		return Singleton(right.AsVariable(), left), nil

	case left.Kind() == KindFunction && right.Kind() == KindFunction:
		lf, rf := left.AsFunction(), right.AsFunction()
		s1, err := Unify(lf.Parameter, rf.Parameter, leftSpan, rightSpan)
		if err != nil {
			return nil, err
		}
		s2, err := Unify(s1.Apply(lf.Body), s1.Apply(rf.Body), leftSpan, rightSpan)
		if err != nil {
			return nil, err
		}
		return s1.Then(s2), nil

	default:
		return nil, &TypeUnificationError{LeftSpan: leftSpan, Left: left, RightSpan: rightSpan, Right: right}
	}
}
