package ast

// Expr is the core expression tree: a tagged node carrying an optional
// source span. The zero value is never valid; construct one of the node
// kinds with the New* functions below.
//
// Expr is a value type wrapping a pointer to its payload so that the large
// sum-of-structs stays small to copy and children can be shared structurally
// (the same sub-Expr can appear under more than one parent, e.g. after
// substitution reuses untouched subtrees).
type Expr struct {
	node *node
}

type node struct {
	span *Span
	kind Kind
	// exactly one of the following is populated, selected by kind
	primitive  Primitive
	native     Native
	identifier Identifier
	function   Function
	apply      Apply
	assign     Assign
	match      Match
	typed      Typed
}

// Kind tags which variant of the core expression an Expr holds.
type Kind int

const (
	KindPrimitive Kind = iota
	KindNative
	KindIdentifier
	KindFunction
	KindApply
	KindAssign
	KindMatch
	KindTyped
)

// Function is `fn parameter -> body`.
type Function struct {
	Parameter Identifier
	Body      Expr
}

// Apply is `function argument`.
type Apply struct {
	Function Expr
	Argument Expr
}

// Assign is `let name = value in inner`. At surface provenance name is
// always a Name identifier (operators become identifiers only through
// infix rewriting, never through `let`); a synthesized prelude binding may
// legitimately use an Operator identifier instead. name is never an
// AvoidingCapture rename.
type Assign struct {
	Name  Identifier
	Value Expr
	Inner Expr
}

// Match is `match value { pattern -> result, ... }`. The last entry in
// Patterns must be Anything; see Verify.
type Match struct {
	Value    Expr
	Patterns []PatternMatch
}

// Typed is `expression : typ`, an explicit annotation consumed by the type
// checker and otherwise transparent to evaluation.
//
// The annotated type is stored as an opaque value (interface{}) rather than
// a concrete types.Monotype to avoid an import cycle between ast and types;
// the types package is the only consumer and knows how to recover its own
// concrete type from it.
type Typed struct {
	Expression Expr
	Type       interface{}
}

// Span returns the expression's source span, or nil if synthesised.
func (e Expr) Span() *Span { return e.node.span }

// Kind reports which variant e holds.
func (e Expr) Kind() Kind { return e.node.kind }

// IsValid reports whether e was constructed through one of the New*
// functions (as opposed to being the zero value).
func (e Expr) IsValid() bool { return e.node != nil }

// AsPrimitive returns the wrapped Primitive; panics if Kind() != KindPrimitive.
func (e Expr) AsPrimitive() Primitive { e.mustBe(KindPrimitive); return e.node.primitive }

// AsNative returns the wrapped Native; panics if Kind() != KindNative.
func (e Expr) AsNative() Native { e.mustBe(KindNative); return e.node.native }

// AsIdentifier returns the wrapped Identifier; panics if Kind() != KindIdentifier.
func (e Expr) AsIdentifier() Identifier { e.mustBe(KindIdentifier); return e.node.identifier }

// AsFunction returns the wrapped Function; panics if Kind() != KindFunction.
func (e Expr) AsFunction() Function { e.mustBe(KindFunction); return e.node.function }

// AsApply returns the wrapped Apply; panics if Kind() != KindApply.
func (e Expr) AsApply() Apply { e.mustBe(KindApply); return e.node.apply }

// AsAssign returns the wrapped Assign; panics if Kind() != KindAssign.
func (e Expr) AsAssign() Assign { e.mustBe(KindAssign); return e.node.assign }

// AsMatch returns the wrapped Match; panics if Kind() != KindMatch.
func (e Expr) AsMatch() Match { e.mustBe(KindMatch); return e.node.match }

// AsTyped returns the wrapped Typed; panics if Kind() != KindTyped.
func (e Expr) AsTyped() Typed { e.mustBe(KindTyped); return e.node.typed }

func (e Expr) mustBe(k Kind) {
	if !e.IsValid() || e.node.kind != k {
		panic("ast: Expr kind mismatch")
	}
}

// WithSpan returns a copy of e annotated with a different span, leaving the
// payload untouched. Used when re-wrapping a node produced by substitution.
func (e Expr) WithSpan(span *Span) Expr {
	n := *e.node
	n.span = span
	return Expr{node: &n}
}

func newExpr(span *Span, n node) Expr {
	n.span = span
	return Expr{node: &n}
}

// NewPrimitive constructs a Primitive node.
func NewPrimitive(span *Span, value Primitive) Expr {
	return newExpr(span, node{kind: KindPrimitive, primitive: value})
}

// NewNative constructs a Native node.
func NewNative(span *Span, value Native) Expr {
	return newExpr(span, node{kind: KindNative, native: value})
}

// NewIdentifier constructs an Identifier node.
func NewIdentifier(span *Span, value Identifier) Expr {
	return newExpr(span, node{kind: KindIdentifier, identifier: value})
}

// NewFunction constructs a Function node.
func NewFunction(span *Span, parameter Identifier, body Expr) Expr {
	return newExpr(span, node{kind: KindFunction, function: Function{Parameter: parameter, Body: body}})
}

// NewApply constructs an Apply node.
func NewApply(span *Span, function, argument Expr) Expr {
	return newExpr(span, node{kind: KindApply, apply: Apply{Function: function, Argument: argument}})
}

// NewAssign constructs an Assign node. Panics if name is an
// AvoidingCapture rename: Assign.Name always comes from surface syntax or
// from a synthesized prelude binding, never from a substitution-time
// rename. Name and Operator identifiers are both allowed — surface `let`
// only ever supplies a Name (operators become identifiers solely through
// infix rewriting, never through `let`), but the prelude legitimately
// binds `+`, `-`, and `*` by their Operator identifiers (see
// builtins.operatorBinding), so the constructor itself cannot reject them.
func NewAssign(span *Span, name Identifier, value, inner Expr) Expr {
	if name.kind == kindAvoidingCapture {
		panic("ast: Assign.Name must not be a capture-avoidance rename")
	}
	return newExpr(span, node{kind: KindAssign, assign: Assign{Name: name, Value: value, Inner: inner}})
}

// NewMatch constructs a Match node. The pattern list is not checked here
// (it may even be empty); Verify reports a missing base case.
func NewMatch(span *Span, value Expr, patterns []PatternMatch) Expr {
	return newExpr(span, node{kind: KindMatch, match: Match{Value: value, Patterns: patterns}})
}

// NewTyped constructs a Typed node.
func NewTyped(span *Span, expression Expr, typ interface{}) Expr {
	return newExpr(span, node{kind: KindTyped, typed: Typed{Expression: expression, Type: typ}})
}

// String renders a surface-like representation of the expression tree,
// sufficient for diagnostics and for the CLI's evaluator-agreement report.
// It is not guaranteed to re-parse (the parser is out of scope here).
func (e Expr) String() string {
	if !e.IsValid() {
		return "<invalid>"
	}
	switch e.node.kind {
	case KindPrimitive:
		return e.node.primitive.String()
	case KindNative:
		return "native " + e.node.native.UniqueName.String()
	case KindIdentifier:
		return e.node.identifier.String()
	case KindFunction:
		f := e.node.function
		return "fn " + f.Parameter.String() + " -> (" + f.Body.String() + ")"
	case KindApply:
		a := e.node.apply
		return "(" + a.Function.String() + ") (" + a.Argument.String() + ")"
	case KindAssign:
		a := e.node.assign
		return "let " + a.Name.String() + " = (" + a.Value.String() + ") in (" + a.Inner.String() + ")"
	case KindMatch:
		m := e.node.match
		s := "match " + m.Value.String() + " { "
		for i, p := range m.Patterns {
			if i > 0 {
				s += "; "
			}
			s += p.String()
		}
		return s + " }"
	case KindTyped:
		t := e.node.typed
		return "(" + t.Expression.String() + ") : <type>"
	default:
		return "<unknown>"
	}
}
