package parser

import (
	"fmt"

	"fortio.org/safecast"

	"lyra/internal/source"
)

// cursor is a byte position inside one file's content.
type cursor struct {
	file  *source.File
	off   uint32
	limit uint32
}

func newCursor(f *source.File) cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file content overflow: %w", err))
	}
	return cursor{file: f, off: 0, limit: limit}
}

func (c *cursor) eof() bool {
	return c.off >= c.limit
}

// peek reads the current byte, or 0 at EOF.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.file.Content[c.off]
}

// peekAt reads the byte n positions ahead, or 0 past EOF.
func (c *cursor) peekAt(n uint32) byte {
	if c.off+n >= c.limit {
		return 0
	}
	return c.file.Content[c.off+n]
}

// bump advances by one byte.
func (c *cursor) bump() {
	if !c.eof() {
		c.off++
	}
}

// slice returns the content between from and the current offset.
func (c *cursor) slice(from uint32) string {
	return string(c.file.Content[from:c.off])
}

// spanFrom builds a span from a start offset to the current offset.
func (c *cursor) spanFrom(from uint32) source.Span {
	return source.Span{File: c.file.ID, Start: from, End: c.off}
}

func isTagNameStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isTagNameByte(b byte) bool {
	return isTagNameStart(b) || b >= '0' && b <= '9' || b == '.' || b == '-' || b == '_'
}

func isAttrNameByte(b byte) bool {
	return isTagNameByte(b) || b == ':' || b == '@'
}

func isIdentByte(b byte) bool {
	return isTagNameStart(b) || b >= '0' && b <= '9' || b == '_' || b == '$'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
