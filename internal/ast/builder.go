package ast

import (
	"lyra/internal/source"
)

// Builder bundles the arenas for one parse. The parser allocates into it;
// the transformer rewrites attribute lists in place; the printer reads it.
type Builder struct {
	Files *Arena[FileNode]
	Nodes *Arena[Node]
	Attrs *Arena[Attr]
}

// NewBuilder creates a builder with arena capacities hinted by capHint.
func NewBuilder(capHint uint) *Builder {
	return &Builder{
		Files: NewArena[FileNode](1),
		Nodes: NewArena[Node](capHint),
		Attrs: NewArena[Attr](capHint),
	}
}

// NewFile allocates the root node for one module.
func (b *Builder) NewFile(span source.Span) FileID {
	return FileID(b.Files.Allocate(FileNode{Span: span}))
}

// File returns the root for id, or nil.
func (b *Builder) File(id FileID) *FileNode {
	return b.Files.Get(uint32(id))
}

// NewNode allocates a node and returns its ID.
func (b *Builder) NewNode(n Node) NodeID {
	return NodeID(b.Nodes.Allocate(n))
}

// Node returns the node for id, or nil.
func (b *Builder) Node(id NodeID) *Node {
	return b.Nodes.Get(uint32(id))
}

// NewAttr allocates an attribute and returns its ID.
func (b *Builder) NewAttr(a Attr) AttrID {
	return AttrID(b.Attrs.Allocate(a))
}

// Attr returns the attribute for id, or nil.
func (b *Builder) Attr(id AttrID) *Attr {
	return b.Attrs.Get(uint32(id))
}
