// Package printer serializes a parsed (and possibly transformed) module
// back to text. Raw runs and text children are emitted verbatim; tags are
// printed in canonical form (single space between attributes, ` />` for
// self-closing elements), so directive rewrites surface as plain attribute
// renames in otherwise untouched output.
package printer

import (
	"strings"

	"lyra/internal/ast"
)

// Print renders the module rooted at fileID.
func Print(b *ast.Builder, fileID ast.FileID) string {
	f := b.File(fileID)
	if f == nil {
		return ""
	}
	var sb strings.Builder
	for _, id := range f.Roots {
		printNode(&sb, b, id)
	}
	return sb.String()
}

func printNode(sb *strings.Builder, b *ast.Builder, id ast.NodeID) {
	n := b.Node(id)
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.NodeRaw, ast.NodeText:
		sb.WriteString(n.Text)
	case ast.NodeExpr:
		sb.WriteByte('{')
		for _, c := range n.Children {
			printNode(sb, b, c)
		}
		sb.WriteByte('}')
	case ast.NodeFragment:
		sb.WriteString("<>")
		for _, c := range n.Children {
			printNode(sb, b, c)
		}
		sb.WriteString("</>")
	case ast.NodeElement:
		printElement(sb, b, n)
	}
}

func printElement(sb *strings.Builder, b *ast.Builder, n *ast.Node) {
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, aid := range n.Attrs {
		a := b.Attr(aid)
		if a == nil {
			continue
		}
		sb.WriteByte(' ')
		printAttr(sb, b, a)
	}
	if n.SelfClosing {
		sb.WriteString(" />")
		return
	}
	sb.WriteByte('>')
	for _, c := range n.Children {
		printNode(sb, b, c)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}

func printAttr(sb *strings.Builder, b *ast.Builder, a *ast.Attr) {
	if a.Spread {
		sb.WriteString(a.Raw)
		return
	}
	sb.WriteString(a.Name)
	switch a.ValueKind {
	case ast.AttrValueNone:
	case ast.AttrValueString:
		sb.WriteByte('=')
		sb.WriteString(a.Raw)
	case ast.AttrValueExpr:
		sb.WriteByte('=')
		printNode(sb, b, a.Expr)
	}
}
