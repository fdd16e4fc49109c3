package types

import (
	"fmt"

	"github.com/lclang/l/internal/ast"
	"github.com/lclang/l/internal/langerr"
)

// TypeOfPrimitive returns the monotype of a primitive value. Lives here
// rather than as a method on ast.Primitive to avoid ast depending on types.
func TypeOfPrimitive(p ast.Primitive) Monotype {
	_ = p // the only primitive kind today is Integer
	return Integer()
}

// InferType runs Algorithm W over expr in the empty environment and returns
// its principal monotype. This is only correct for an expr with no
// operator natives: a program prepared by builtins.Prepare binds `+`, `-`,
// and `*` as Assign nodes, but their own native leaves still need
// builtins.BaseTypeEnv seeded ahead of time (the Typed annotation pins the
// surrounding function's parameters, not the native's own looked-up type;
// see operators.go). Call InferTypeWithEnv(builtins.BaseTypeEnv(), expr)
// for any prepared program; this function will report UnknownVariable on
// the first operator it reaches otherwise.
func InferType(expr ast.Expr) (Monotype, error) {
	return InferTypeWithEnv(NewEnv(), expr)
}

// InferTypeWithEnv runs Algorithm W over expr starting from env instead of
// the empty environment. Used to seed built-in natives whose type cannot
// be recovered structurally from their defining expression alone (e.g. an
// arithmetic native's result type), by binding their unique name directly;
// see builtins.BaseTypeEnv.
func InferTypeWithEnv(env Env, expr ast.Expr) (Monotype, error) {
	supply := NewSupply()
	_, mono, err := infer(supply, env, expr)
	return mono, err
}

// infer is Algorithm W: given an environment and an expression, it returns
// the substitution discovered while inferring, and the expression's
// monotype under that substitution.
func infer(supply *Supply, env Env, expr ast.Expr) (Subst, Monotype, error) {
	switch expr.Kind() {
	case ast.KindPrimitive:
		return Empty(), TypeOfPrimitive(expr.AsPrimitive()), nil

	case ast.KindIdentifier:
		return inferLookup(supply, env, expr.AsIdentifier(), expr.Span())

	case ast.KindNative:
		return inferLookup(supply, env, expr.AsNative().UniqueName, expr.Span())

	case ast.KindFunction:
		f := expr.AsFunction()
		alpha := supply.FreshType()
		bodyEnv := env.With(f.Parameter, Monomorphic(alpha))
		sigma, bodyType, err := infer(supply, bodyEnv, f.Body)
		if err != nil {
			return nil, Monotype{}, err
		}
		return sigma, sigma.Apply(Function(alpha, bodyType)), nil

	case ast.KindApply:
		a := expr.AsApply()
		sigmaF, tauF, err := infer(supply, env, a.Function)
		if err != nil {
			return nil, Monotype{}, err
		}
		sigmaA, tauA, err := infer(supply, env.Apply(sigmaF), a.Argument)
		if err != nil {
			return nil, Monotype{}, err
		}
		beta := supply.FreshType()
		sigmaU, err := Unify(sigmaA.Apply(tauF), Function(tauA, beta), a.Function.Span(), a.Argument.Span())
		if err != nil {
			return nil, Monotype{}, err
		}
		return sigmaF.Then(sigmaA).Then(sigmaU), sigmaU.Apply(beta), nil

	case ast.KindAssign:
		a := expr.AsAssign()
		sigmaV, tauV, err := infer(supply, env, a.Value)
		if err != nil {
			return nil, Monotype{}, err
		}
		envAfterV := env.Apply(sigmaV)
		poly := Generalize(envAfterV, tauV)
		sigmaInner, tauInner, err := infer(supply, envAfterV.With(a.Name, poly), a.Inner)
		if err != nil {
			return nil, Monotype{}, err
		}
		return sigmaV.Then(sigmaInner), tauInner, nil

	case ast.KindMatch:
		return inferMatch(supply, env, expr.AsMatch(), expr.Span())

	case ast.KindTyped:
		t := expr.AsTyped()
		annotated, ok := t.Type.(Monotype)
		if !ok {
			return nil, Monotype{}, fmt.Errorf("types: Typed node at %v carries no resolved annotation", expr.Span())
		}
		sigmaE, tauE, err := infer(supply, env, t.Expression)
		if err != nil {
			return nil, Monotype{}, err
		}
		sigmaU, err := Unify(sigmaE.Apply(tauE), sigmaE.Apply(annotated), expr.Span(), expr.Span())
		if err != nil {
			return nil, Monotype{}, err
		}
		result := sigmaE.Then(sigmaU)
		return result, result.Apply(tauE), nil

	default:
		return nil, Monotype{}, fmt.Errorf("types: unrecognised expression kind %d", expr.Kind())
	}
}

func inferLookup(supply *Supply, env Env, id ast.Identifier, span *ast.Span) (Subst, Monotype, error) {
	poly, ok := env.Lookup(id)
	if !ok {
		return nil, Monotype{}, &langerr.UnknownVariable{Span: span, Name: id.Name()}
	}
	return Empty(), Instantiate(supply, poly), nil
}

// inferMatch implements the Match rule: the scrutinee's type is inferred
// but not used for dispatch; every arm's result type is unified against a
// single fresh placeholder, so a mismatch is reported against the first
// arm's result.
func inferMatch(supply *Supply, env Env, m ast.Match, span *ast.Span) (Subst, Monotype, error) {
	if len(m.Patterns) == 0 || m.Patterns[len(m.Patterns)-1].Pattern.Kind != ast.PatternAnything {
		return nil, Monotype{}, &langerr.MatchWithoutBaseCase{Span: span}
	}

	sigma, _, err := infer(supply, env, m.Value)
	if err != nil {
		return nil, Monotype{}, err
	}

	placeholder := supply.FreshType()
	var firstResultSpan *ast.Span

	for i, pm := range m.Patterns {
		armEnv := env.Apply(sigma)
		sigmaArm, tauArm, err := infer(supply, armEnv, pm.Result)
		if err != nil {
			return nil, Monotype{}, err
		}
		sigma = sigma.Then(sigmaArm)

		if i == 0 {
			firstResultSpan = pm.Result.Span()
		}

		sigmaUnify, err := Unify(sigma.Apply(placeholder), sigma.Apply(tauArm), firstResultSpan, pm.Result.Span())
		if err != nil {
			return nil, Monotype{}, err
		}
		sigma = sigma.Then(sigmaUnify)
	}

	return sigma, sigma.Apply(placeholder), nil
}
