package evalreduce

import "github.com/lclang/l/internal/ast"

// substitute replaces free occurrences of target in expr with value,
// renaming bound identifiers in value that would otherwise be captured by
// a binder in expr. bound is the set of identifier keys currently in
// scope at the point of recursion (identifiers bound by an enclosing
// Function or Assign between the call's root and the current node; Match
// patterns bind no identifiers).
func substitute(target ast.Identifier, value ast.Expr, expr ast.Expr, bound map[string]bool) ast.Expr {
	switch expr.Kind() {
	case ast.KindPrimitive:
		return expr

	case ast.KindIdentifier:
		if expr.AsIdentifier().Equal(target) {
			return avoidCapture(value, bound)
		}
		return expr

	case ast.KindNative:
		return substituteNative(target, value, expr, bound)

	case ast.KindFunction:
		f := expr.AsFunction()
		if f.Parameter.Equal(target) {
			return expr // target is shadowed; nothing inside refers to the outer x
		}
		withBound := extend(bound, f.Parameter)
		return ast.NewFunction(expr.Span(), f.Parameter, substitute(target, value, f.Body, withBound))

	case ast.KindApply:
		a := expr.AsApply()
		return ast.NewApply(expr.Span(),
			substitute(target, value, a.Function, bound),
			substitute(target, value, a.Argument, bound))

	case ast.KindAssign:
		a := expr.AsAssign()
		newValue := substitute(target, value, a.Value, bound)
		if a.Name.Equal(target) {
			return ast.NewAssign(expr.Span(), a.Name, newValue, a.Inner) // inner is shadowed
		}
		withBound := extend(bound, a.Name)
		return ast.NewAssign(expr.Span(), a.Name, newValue, substitute(target, value, a.Inner, withBound))

	case ast.KindMatch:
		m := expr.AsMatch()
		patterns := make([]ast.PatternMatch, len(m.Patterns))
		for i, pm := range m.Patterns {
			patterns[i] = ast.PatternMatch{Pattern: pm.Pattern, Result: substitute(target, value, pm.Result, bound)}
		}
		return ast.NewMatch(expr.Span(), substitute(target, value, m.Value, bound), patterns)

	case ast.KindTyped:
		t := expr.AsTyped()
		return ast.NewTyped(expr.Span(), substitute(target, value, t.Expression, bound), t.Type)

	default:
		return expr
	}
}

// substituteNative defers the substitution as a context frame, since the
// native's Go implementation closure cannot be rewritten structurally.
func substituteNative(target ast.Identifier, value ast.Expr, expr ast.Expr, bound map[string]bool) ast.Expr {
	n := expr.AsNative()
	renamedValue := avoidCapture(value, bound)
	inner := n.Implementation
	wrapped := func(ctx ast.NativeContext) (ast.Primitive, error) {
		return inner(&substContext{name: target, value: renamedValue, rest: ctx})
	}
	return ast.NewNative(expr.Span(), ast.Native{UniqueName: n.UniqueName, Implementation: wrapped})
}

func extend(bound map[string]bool, id ast.Identifier) map[string]bool {
	next := make(map[string]bool, len(bound)+1)
	for k := range bound {
		next[k] = true
	}
	next[id.Key()] = true
	return next
}

// avoidCapture alpha-renames every identifier free in value that occurs in
// bound, so inserting value at a point where those names are bound cannot
// capture them. Each renamed identifier is promoted to an AvoidingCapture
// variant of itself with the least positive suffix not already in use.
func avoidCapture(value ast.Expr, bound map[string]bool) ast.Expr {
	free := map[string]ast.Identifier{}
	collectFree(value, map[string]bool{}, free)

	result := value
	used := make(map[string]bool, len(bound))
	for k := range bound {
		used[k] = true
	}
	for key, id := range free {
		if !bound[key] {
			continue
		}
		renamed := nextAvailableRename(id, used)
		used[renamed.Key()] = true
		result = substitute(id, ast.NewIdentifier(nil, renamed), result, map[string]bool{})
	}
	return result
}

func nextAvailableRename(id ast.Identifier, used map[string]bool) ast.Identifier {
	for n := uint32(1); ; n++ {
		candidate := ast.NewAvoidingCapture(id, n)
		if !used[candidate.Key()] {
			return candidate
		}
	}
}

// collectFree gathers the identifiers free in expr (not bound by an
// enclosing binder within expr itself) into out, keyed by Identifier.Key.
func collectFree(expr ast.Expr, bound map[string]bool, out map[string]ast.Identifier) {
	switch expr.Kind() {
	case ast.KindPrimitive, ast.KindNative:
		return

	case ast.KindIdentifier:
		id := expr.AsIdentifier()
		if !bound[id.Key()] {
			out[id.Key()] = id
		}

	case ast.KindFunction:
		f := expr.AsFunction()
		collectFree(f.Body, extend(bound, f.Parameter), out)

	case ast.KindApply:
		a := expr.AsApply()
		collectFree(a.Function, bound, out)
		collectFree(a.Argument, bound, out)

	case ast.KindAssign:
		a := expr.AsAssign()
		collectFree(a.Value, bound, out)
		collectFree(a.Inner, extend(bound, a.Name), out)

	case ast.KindMatch:
		m := expr.AsMatch()
		collectFree(m.Value, bound, out)
		for _, pm := range m.Patterns {
			collectFree(pm.Result, bound, out)
		}

	case ast.KindTyped:
		collectFree(expr.AsTyped().Expression, bound, out)
	}
}
