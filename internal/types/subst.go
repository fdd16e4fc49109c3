package types

import "fmt"

// Subst is a finite map from type variables to the monotypes that replace
// them. The zero value is the empty substitution.
type Subst map[TypeVariable]Monotype

// Empty returns a substitution with no entries.
func Empty() Subst { return Subst{} }

// Singleton returns the substitution {v -> m}.
func Singleton(v TypeVariable, m Monotype) Subst {
	return Subst{v: m}
}

// Apply performs the structural replacement sigma(m): every free type
// variable in m that sigma binds is replaced by its image, recursively.
func (s Subst) Apply(m Monotype) Monotype {
	if len(s) == 0 || !m.IsValid() {
		return m
	}
	switch m.Kind() {
	case KindInteger:
		return m
	case KindVariable:
		if replacement, ok := s[m.AsVariable()]; ok {
			return replacement
		}
		return m
	case KindFunction:
		f := m.AsFunction()
		return Function(s.Apply(f.Parameter), s.Apply(f.Body))
	default:
		return m
	}
}

// ApplyPolytype substitutes throughout p's monotype, leaving its
// quantifiers untouched (they are bound, not free).
func (s Subst) ApplyPolytype(p Polytype) Polytype {
	if len(s) == 0 {
		return p
	}
	restricted := Subst{}
	for v, m := range s {
		if !p.Quantifiers[v] {
			restricted[v] = m
		}
	}
	return Polytype{Quantifiers: p.Quantifiers, Mono: restricted.Apply(p.Mono)}
}

// Then composes two substitutions: (s.Then(next)) applied to a monotype is
// equivalent to applying s first, then next. next is applied on top of s's
// codomain, and next's own bindings are carried through for variables not
// already in s's domain.
func (s Subst) Then(next Subst) Subst {
	result := Subst{}
	for v, m := range s {
		result[v] = next.Apply(m)
	}
	for v, m := range next {
		if _, ok := result[v]; !ok {
			result[v] = m
		}
	}
	return result
}

// MergeError reports that two substitutions disagreed on a shared variable
// when Merge attempted to combine them.
type MergeError struct {
	Variable TypeVariable
	Left     Monotype
	Right    Monotype
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("substitutions disagree on %s: %s vs %s", e.Variable, e.Left, e.Right)
}

// Merge combines two substitutions built from independent branches of
// inference (e.g. separate Match arms). It succeeds only if, after mutual
// application, both agree on every variable they share.
func (s Subst) Merge(other Subst) (Subst, error) {
	result := Subst{}
	for v, m := range s {
		result[v] = other.Apply(m)
	}
	for v, m := range other {
		applied := s.Apply(m)
		if existing, ok := result[v]; ok {
			if !existing.Equal(applied) {
				return nil, &MergeError{Variable: v, Left: existing, Right: applied}
			}
			continue
		}
		result[v] = applied
	}
	return result, nil
}
