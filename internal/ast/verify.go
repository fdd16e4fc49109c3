package ast

import "github.com/lclang/l/internal/langerr"

// Verify walks expr and checks the structural invariants the core AST
// promises: every Match has at least one pattern and its last pattern is
// Anything (the base case). It aggregates on the first violation found,
// matching the reference verifier's short-circuiting behaviour.
func Verify(expr Expr) error {
	if !expr.IsValid() {
		return nil
	}
	switch expr.Kind() {
	case KindPrimitive, KindNative, KindIdentifier:
		return nil
	case KindFunction:
		return Verify(expr.AsFunction().Body)
	case KindApply:
		a := expr.AsApply()
		if err := Verify(a.Function); err != nil {
			return err
		}
		return Verify(a.Argument)
	case KindAssign:
		a := expr.AsAssign()
		if err := Verify(a.Value); err != nil {
			return err
		}
		return Verify(a.Inner)
	case KindMatch:
		m := expr.AsMatch()
		if len(m.Patterns) == 0 || m.Patterns[len(m.Patterns)-1].Pattern.Kind != PatternAnything {
			return &langerr.MatchWithoutBaseCase{Span: expr.Span()}
		}
		if err := Verify(m.Value); err != nil {
			return err
		}
		for _, pm := range m.Patterns {
			if err := Verify(pm.Result); err != nil {
				return err
			}
		}
		return nil
	case KindTyped:
		return Verify(expr.AsTyped().Expression)
	default:
		return nil
	}
}
