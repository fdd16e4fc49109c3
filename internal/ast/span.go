package ast

import "github.com/lclang/l/internal/langerr"

// Span is a half-open byte range into the original source. It is re-exported
// from langerr so that every package that needs to talk about source
// locations (ast, types, evalreduce, evalpool) shares one representation.
type Span = langerr.Span

// JoinSpans returns the smallest span covering both a and b; see
// langerr.Join.
func JoinSpans(a, b *Span) *Span { return langerr.Join(a, b) }
