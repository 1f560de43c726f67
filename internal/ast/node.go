package ast

import (
	"lyra/internal/source"
)

// NodeKind discriminates the node variants of a parsed module.
type NodeKind uint8

const (
	// NodeRaw is a verbatim run of module text outside (or between) JSX trees.
	NodeRaw NodeKind = iota
	// NodeText is literal text inside an element body.
	NodeText
	// NodeElement is a JSX element, paired or self-closing.
	NodeElement
	// NodeFragment is the tagless <>...</> form.
	NodeFragment
	// NodeExpr is a balanced {...} container; its children interleave raw
	// expression chunks (NodeRaw) with any elements nested inside.
	NodeExpr
)

func (k NodeKind) String() string {
	switch k {
	case NodeRaw:
		return "raw"
	case NodeText:
		return "text"
	case NodeElement:
		return "element"
	case NodeFragment:
		return "fragment"
	case NodeExpr:
		return "expr"
	}
	return "unknown"
}

// Node is one AST node. Field use depends on Kind:
// Text for NodeRaw/NodeText, Tag/SelfClosing/Attrs for NodeElement,
// Children for element/fragment/expr bodies.
type Node struct {
	Kind        NodeKind
	Span        source.Span
	Text        string
	Tag         string
	SelfClosing bool
	Attrs       []AttrID
	Children    []NodeID
}

// FileNode is the root of one parsed module: an ordered sequence of raw runs
// and top-level JSX trees.
type FileNode struct {
	Span  source.Span
	Roots []NodeID
}
