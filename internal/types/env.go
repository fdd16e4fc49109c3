package types

import "github.com/lclang/l/internal/ast"

// Env is the persistent typing environment Gamma: identifier to polytype.
// With returns an extended copy, leaving the receiver untouched, so that
// sibling branches of inference (e.g. two Match arms) can each extend the
// same base environment independently.
type Env struct {
	bindings map[string]entry
}

type entry struct {
	id   ast.Identifier
	poly Polytype
}

// NewEnv returns the empty environment.
func NewEnv() Env {
	return Env{bindings: map[string]entry{}}
}

// With returns a copy of e extended with id bound to poly, shadowing any
// existing binding for id.
func (e Env) With(id ast.Identifier, poly Polytype) Env {
	next := make(map[string]entry, len(e.bindings)+1)
	for k, v := range e.bindings {
		next[k] = v
	}
	next[id.Key()] = entry{id: id, poly: poly}
	return Env{bindings: next}
}

// Lookup returns the polytype bound to id, if any.
func (e Env) Lookup(id ast.Identifier) (Polytype, bool) {
	entry, ok := e.bindings[id.Key()]
	return entry.poly, ok
}

// FreeVariables returns the union of free variables over every binding's
// polytype.
func (e Env) FreeVariables() map[TypeVariable]bool {
	out := map[TypeVariable]bool{}
	for _, entry := range e.bindings {
		for v := range entry.poly.FreeVariables() {
			out[v] = true
		}
	}
	return out
}

// Apply substitutes throughout every binding's polytype, returning a new
// environment (Env is persistent; this never mutates e).
func (e Env) Apply(s Subst) Env {
	if len(s) == 0 {
		return e
	}
	next := make(map[string]entry, len(e.bindings))
	for k, v := range e.bindings {
		next[k] = entry{id: v.id, poly: s.ApplyPolytype(v.poly)}
	}
	return Env{bindings: next}
}

// Generalize quantifies m over the type variables free in m but not free in
// e, implementing let-generalisation.
func Generalize(e Env, m Monotype) Polytype {
	envFree := e.FreeVariables()
	quantifiers := map[TypeVariable]bool{}
	for v := range FreeVariables(m) {
		if !envFree[v] {
			quantifiers[v] = true
		}
	}
	return Polytype{Quantifiers: quantifiers, Mono: m}
}

// Instantiate replaces every quantifier in p with a fresh type variable,
// alpha-renaming consistently throughout p's monotype.
func Instantiate(supply *Supply, p Polytype) Monotype {
	if len(p.Quantifiers) == 0 {
		return p.Mono
	}
	rename := Subst{}
	for v := range p.Quantifiers {
		rename[v] = supply.FreshType()
	}
	return rename.Apply(p.Mono)
}
