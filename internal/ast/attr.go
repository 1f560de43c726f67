package ast

import (
	"lyra/internal/source"
)

// AttrValueKind discriminates how an attribute carries its value.
type AttrValueKind uint8

const (
	// AttrValueNone: bare attribute, no value (`disabled`).
	AttrValueNone AttrValueKind = iota
	// AttrValueString: quoted string literal; Raw keeps the quotes.
	AttrValueString
	// AttrValueExpr: expression container; Expr points at a NodeExpr.
	AttrValueExpr
)

// Attr is one attribute-like child of an element, in source order.
// A spread (`{...rest}`) has Spread set and Raw holding the braced text;
// its Name is empty and it always passes through transforms untouched.
type Attr struct {
	Name      string
	Span      source.Span
	NameSpan  source.Span
	ValueKind AttrValueKind
	Raw       string
	Expr      NodeID
	Spread    bool
}
