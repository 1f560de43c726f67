package ast

// WalkElements calls visit for every element node reachable from the file
// root, in source order, descending into fragments and expression containers.
// Returning false from visit stops the walk.
func (b *Builder) WalkElements(fileID FileID, visit func(id NodeID, n *Node) bool) {
	f := b.File(fileID)
	if f == nil {
		return
	}
	stopped := false
	var walk func(ids []NodeID)
	walk = func(ids []NodeID) {
		for _, id := range ids {
			if stopped {
				return
			}
			n := b.Node(id)
			if n == nil {
				continue
			}
			switch n.Kind {
			case NodeElement:
				if !visit(id, n) {
					stopped = true
					return
				}
				walk(n.Children)
				b.walkAttrExprs(n, walk)
			case NodeFragment, NodeExpr:
				walk(n.Children)
			case NodeRaw, NodeText:
			}
		}
	}
	walk(f.Roots)
}

// walkAttrExprs descends into attribute expression containers, which may hold
// further elements ({cond && <img />}).
func (b *Builder) walkAttrExprs(n *Node, walk func([]NodeID)) {
	for _, aid := range n.Attrs {
		a := b.Attr(aid)
		if a == nil || a.ValueKind != AttrValueExpr || !a.Expr.IsValid() {
			continue
		}
		if expr := b.Node(a.Expr); expr != nil {
			walk(expr.Children)
		}
	}
}
