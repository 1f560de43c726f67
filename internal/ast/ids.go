package ast

type (
	// FileID addresses a parsed module in the Builder.
	FileID uint32
	// NodeID addresses a node (raw run, text, element, fragment, expression).
	NodeID uint32
	// AttrID addresses one attribute of an element.
	AttrID uint32
)

const (
	NoFileID FileID = 0
	NoNodeID NodeID = 0
	NoAttrID AttrID = 0
)

func (id FileID) IsValid() bool { return id != NoFileID }
func (id NodeID) IsValid() bool { return id != NoNodeID }
func (id AttrID) IsValid() bool { return id != NoAttrID }
