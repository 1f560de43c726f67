package a11y

import (
	"strings"

	"lyra/internal/ast"
)

// hasAttr reports whether the element carries any of the named attributes,
// with or without a value.
func hasAttr(b *ast.Builder, n *ast.Node, names ...string) bool {
	for _, aid := range n.Attrs {
		a := b.Attr(aid)
		if a == nil || a.Spread {
			continue
		}
		for _, name := range names {
			if a.Name == name {
				return true
			}
		}
	}
	return false
}

// attrValue returns the first named attribute's value with quotes and braces
// stripped. ok is false when none of the names is present.
func attrValue(b *ast.Builder, n *ast.Node, names ...string) (string, bool) {
	for _, aid := range n.Attrs {
		a := b.Attr(aid)
		if a == nil || a.Spread {
			continue
		}
		for _, name := range names {
			if a.Name != name {
				continue
			}
			switch a.ValueKind {
			case ast.AttrValueNone:
				return "", true
			case ast.AttrValueString:
				return stripQuotes(a.Raw), true
			case ast.AttrValueExpr:
				if expr := b.Node(a.Expr); expr != nil {
					return strings.TrimSpace(stripQuotes(strings.TrimSpace(expr.Text))), true
				}
				return "", true
			}
		}
	}
	return "", false
}

func stripQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// hasContent reports whether an element body has anything that renders:
// non-whitespace text, any expression child, or any element/fragment child.
func hasContent(b *ast.Builder, n *ast.Node) bool {
	for _, cid := range n.Children {
		c := b.Node(cid)
		if c == nil {
			continue
		}
		switch c.Kind {
		case ast.NodeText:
			if strings.TrimSpace(c.Text) != "" {
				return true
			}
		case ast.NodeExpr, ast.NodeElement, ast.NodeFragment:
			return true
		case ast.NodeRaw:
		}
	}
	return false
}
