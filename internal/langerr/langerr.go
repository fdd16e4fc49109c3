// Package langerr defines the stable error taxonomy shared by the type
// checker and both evaluators.
//
// Each category is its own exported struct implementing error, in the style
// of this codebase's small per-package error types (see, for example, the
// type system's own TypeUnificationError): callers that care about the exact
// failure compare with errors.As rather than matching on a message string.
//
// langerr intentionally has no dependency on the ast or types packages, so
// that both can depend on it without introducing an import cycle; errors
// that need to carry a type (TypeUnificationError) live in the types
// package instead, next to the inferencer that raises them.
package langerr

import (
	"fmt"
	"strings"
)

// Span is a half-open byte range into the original source, used purely for
// diagnostics. A nil *Span means "synthesised, no source location".
type Span struct {
	Start int
	End   int
}

// Join returns the smallest span covering both a and b. Either argument may
// be nil; the result is nil only if both are.
func Join(a, b *Span) *Span {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		start := a.Start
		if b.Start < start {
			start = b.Start
		}
		end := a.End
		if b.End > end {
			end = b.End
		}
		return &Span{Start: start, End: end}
	}
}

func spanSuffix(s *Span) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf(" at [%d, %d)", s.Start, s.End)
}

// InvalidIdentifierError reports that a candidate identifier or operator
// name failed validation.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier: %q", e.Name)
}

// UnexpectedToken is surfaced by the (external) lexer; the core module
// only needs to be able to represent and propagate it.
type UnexpectedToken struct {
	Span  *Span
	Token string
}

func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected token: %s%s", e.Token, spanSuffix(e.Span))
}

// ParseError is surfaced by the (external) parser; the core module only
// needs to be able to represent and propagate it.
type ParseError struct {
	Span           *Span
	ExpectedTokens []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: expected %s%s", expectedOneOf(e.ExpectedTokens), spanSuffix(e.Span))
}

func expectedOneOf(tokens []string) string {
	switch len(tokens) {
	case 0:
		return "<nothing>"
	case 1:
		return tokens[0]
	case 2:
		return fmt.Sprintf("%s or %s", tokens[0], tokens[1])
	default:
		return fmt.Sprintf("one of %s, or %s", strings.Join(tokens[:len(tokens)-1], ", "), tokens[len(tokens)-1])
	}
}

// MatchWithoutBaseCase reports that a Match expression's pattern list was
// empty, or its last pattern was not Anything, violating the invariant that
// every match must end with a base case.
type MatchWithoutBaseCase struct {
	Span *Span
}

func (e *MatchWithoutBaseCase) Error() string {
	return fmt.Sprintf("match expression without a base case%s", spanSuffix(e.Span))
}

// InvalidFunctionApplication reports that the function position of an Apply
// node evaluated to a non-function.
type InvalidFunctionApplication struct {
	Span *Span
}

func (e *InvalidFunctionApplication) Error() string {
	return fmt.Sprintf("invalid function application%s", spanSuffix(e.Span))
}

// InvalidPrimitive reports that a native implementation looked up a value
// that evaluated to a closure instead of a primitive.
type InvalidPrimitive struct {
	Span *Span
}

func (e *InvalidPrimitive) Error() string {
	return fmt.Sprintf("invalid primitive%s", spanSuffix(e.Span))
}

// UnknownVariable reports a free identifier with no binding, raised by
// either the type checker or an evaluator.
type UnknownVariable struct {
	Span *Span
	Name string
}

func (e *UnknownVariable) Error() string {
	return fmt.Sprintf("unknown variable: %q%s", e.Name, spanSuffix(e.Span))
}
