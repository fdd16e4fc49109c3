package evalpool

import "github.com/lclang/l/internal/ast"

// NodeRef is a reference to a flattened expression node within a Tree's
// pool. It is the expression representation the binding store and
// evaluator in this package operate on instead of ast.Expr.
type NodeRef = Ref[Node]

// Node is a core expression with every child replaced by a NodeRef into
// the owning pool, the flattened counterpart of ast.Expr.
type Node struct {
	Span       *ast.Span
	Kind       ast.Kind
	Primitive  ast.Primitive
	Native     ast.Native
	Identifier ast.Identifier
	Function   PooledFunction
	Apply      PooledApply
	Assign     PooledAssign
	Match      PooledMatch
	Typed      PooledTyped
}

// PooledFunction is Function with its body replaced by a reference.
type PooledFunction struct {
	Parameter ast.Identifier
	Body      NodeRef
}

// PooledApply is Apply with its children replaced by references.
type PooledApply struct {
	Function NodeRef
	Argument NodeRef
}

// PooledAssign is Assign with its children replaced by references.
type PooledAssign struct {
	Name  ast.Identifier
	Value NodeRef
	Inner NodeRef
}

// PooledPatternMatch is PatternMatch with its result replaced by a reference.
type PooledPatternMatch struct {
	Pattern ast.Pattern
	Result  NodeRef
}

// PooledMatch is Match with its children replaced by references.
type PooledMatch struct {
	Value    NodeRef
	Patterns []PooledPatternMatch
}

// PooledTyped is Typed with its inner expression replaced by a reference.
type PooledTyped struct {
	Expression NodeRef
	Type       interface{}
}

// Tree is a flattened expression ready for the pooling evaluator: a pool of
// nodes plus the reference to the overall expression's root.
type Tree struct {
	Pool Pool[Node]
	Root NodeRef
}

// Flatten pushes every node of expr into a fresh pool in post-order, so a
// parent's children always carry lower indices than the parent itself.
func Flatten(expr ast.Expr) Tree {
	b := NewBuilder[Node]()
	root := push(b, expr)
	return Tree{Pool: b.Build(), Root: root}
}

func push(b *Builder[Node], expr ast.Expr) NodeRef {
	switch expr.Kind() {
	case ast.KindPrimitive:
		return b.Push(Node{Span: expr.Span(), Kind: ast.KindPrimitive, Primitive: expr.AsPrimitive()})

	case ast.KindNative:
		return b.Push(Node{Span: expr.Span(), Kind: ast.KindNative, Native: expr.AsNative()})

	case ast.KindIdentifier:
		return b.Push(Node{Span: expr.Span(), Kind: ast.KindIdentifier, Identifier: expr.AsIdentifier()})

	case ast.KindFunction:
		f := expr.AsFunction()
		body := push(b, f.Body)
		return b.Push(Node{Span: expr.Span(), Kind: ast.KindFunction, Function: PooledFunction{Parameter: f.Parameter, Body: body}})

	case ast.KindApply:
		a := expr.AsApply()
		fn := push(b, a.Function)
		arg := push(b, a.Argument)
		return b.Push(Node{Span: expr.Span(), Kind: ast.KindApply, Apply: PooledApply{Function: fn, Argument: arg}})

	case ast.KindAssign:
		a := expr.AsAssign()
		value := push(b, a.Value)
		inner := push(b, a.Inner)
		return b.Push(Node{Span: expr.Span(), Kind: ast.KindAssign, Assign: PooledAssign{Name: a.Name, Value: value, Inner: inner}})

	case ast.KindMatch:
		m := expr.AsMatch()
		value := push(b, m.Value)
		patterns := make([]PooledPatternMatch, len(m.Patterns))
		for i, pm := range m.Patterns {
			patterns[i] = PooledPatternMatch{Pattern: pm.Pattern, Result: push(b, pm.Result)}
		}
		return b.Push(Node{Span: expr.Span(), Kind: ast.KindMatch, Match: PooledMatch{Value: value, Patterns: patterns}})

	case ast.KindTyped:
		t := expr.AsTyped()
		inner := push(b, t.Expression)
		return b.Push(Node{Span: expr.Span(), Kind: ast.KindTyped, Typed: PooledTyped{Expression: inner, Type: t.Type}})

	default:
		panic("evalpool: unrecognised expression kind")
	}
}

// ToExpr walks the pool from ref and rebuilds a spanless ast.Expr, used to
// render a closure returned at top level for display. Evaluation results
// are otherwise compared at the primitive level only.
func (t Tree) ToExpr(ref NodeRef) ast.Expr {
	node, ok := t.Pool.Get(ref)
	if !ok {
		panic("evalpool: dangling ref")
	}
	switch node.Kind {
	case ast.KindPrimitive:
		return ast.NewPrimitive(nil, node.Primitive)
	case ast.KindNative:
		return ast.NewNative(nil, node.Native)
	case ast.KindIdentifier:
		return ast.NewIdentifier(nil, node.Identifier)
	case ast.KindFunction:
		return ast.NewFunction(nil, node.Function.Parameter, t.ToExpr(node.Function.Body))
	case ast.KindApply:
		return ast.NewApply(nil, t.ToExpr(node.Apply.Function), t.ToExpr(node.Apply.Argument))
	case ast.KindAssign:
		return ast.NewAssign(nil, node.Assign.Name, t.ToExpr(node.Assign.Value), t.ToExpr(node.Assign.Inner))
	case ast.KindMatch:
		patterns := make([]ast.PatternMatch, len(node.Match.Patterns))
		for i, pm := range node.Match.Patterns {
			patterns[i] = ast.PatternMatch{Pattern: pm.Pattern, Result: t.ToExpr(pm.Result)}
		}
		return ast.NewMatch(nil, t.ToExpr(node.Match.Value), patterns)
	case ast.KindTyped:
		return ast.NewTyped(nil, t.ToExpr(node.Typed.Expression), node.Typed.Type)
	default:
		panic("evalpool: unrecognised node kind")
	}
}
