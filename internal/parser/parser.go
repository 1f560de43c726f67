package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"lyra/internal/ast"
	"lyra/internal/diag"
	"lyra/internal/source"
)

// MaxSourceLen bounds a single module. Anything larger fails the parse
// outright instead of producing a tree.
const MaxSourceLen = 64 << 20

var (
	// ErrNotUTF8 is returned when the module content is not valid UTF-8.
	ErrNotUTF8 = errors.New("source is not valid UTF-8")
	// ErrSourceTooLarge is returned when the module exceeds MaxSourceLen.
	ErrSourceTooLarge = errors.New("source exceeds maximum module size")
)

// Options configures one parse.
type Options struct {
	Reporter  diag.Reporter
	MaxErrors uint // 0 = unlimited
}

// Parser holds the state for parsing one module: a byte cursor over the
// file plus the arena builder the tree is allocated into.
type Parser struct {
	cur  cursor
	b    *ast.Builder
	opts Options
	errs uint
}

// ParseFile splits a module into raw-code runs and JSX trees and returns the
// allocated file root. Structural problems are reported as diagnostics and
// the parse still returns a tree; only catastrophic conditions (non-UTF-8
// input, oversized input) return an error.
func ParseFile(fs *source.FileSet, fileID source.FileID, b *ast.Builder, opts Options) (ast.FileID, error) {
	f := fs.Get(fileID)
	if f == nil {
		return ast.NoFileID, fmt.Errorf("file %d not found in FileSet", fileID)
	}
	if len(f.Content) > MaxSourceLen {
		return ast.NoFileID, ErrSourceTooLarge
	}
	if !utf8.Valid(f.Content) {
		return ast.NoFileID, ErrNotUTF8
	}

	p := Parser{
		cur:  newCursor(f),
		b:    b,
		opts: opts,
	}
	if p.opts.Reporter == nil {
		p.opts.Reporter = diag.NopReporter{}
	}

	roots := p.scanCode(false)
	span := source.Span{File: f.ID, Start: 0, End: p.cur.limit}
	id := b.NewFile(span)
	b.File(id).Roots = roots
	return id, nil
}

// report forwards a diagnostic, honoring MaxErrors.
func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.MaxErrors != 0 && p.errs >= p.opts.MaxErrors {
		return
	}
	p.errs++
	p.opts.Reporter.Report(diag.NewError(code, sp, msg))
}

// scanCode consumes module text, emitting NodeRaw runs and parsing JSX trees
// where a '<' appears in expression position. When inExpr is true the scan
// started just past a '{' and stops before the balancing '}' (not consumed).
func (p *Parser) scanCode(inExpr bool) []ast.NodeID {
	var out []ast.NodeID
	rawStart := p.cur.off
	depth := 0

	// prevSig is the last significant byte seen; ident accumulates the
	// trailing identifier so `return <div>` parses as JSX.
	var prevSig byte
	var ident []byte
	if inExpr {
		prevSig = '{'
	}

	flushRaw := func(end uint32) {
		if end <= rawStart {
			return
		}
		sp := source.Span{File: p.cur.file.ID, Start: rawStart, End: end}
		out = append(out, p.b.NewNode(ast.Node{
			Kind: ast.NodeRaw,
			Span: sp,
			Text: string(p.cur.file.Content[rawStart:end]),
		}))
	}

	for !p.cur.eof() {
		b := p.cur.peek()
		switch {
		case b == '"' || b == '\'':
			p.skipJSString(b)
			prevSig = b
			ident = ident[:0]
			continue
		case b == '`':
			p.skipTemplate()
			prevSig = b
			ident = ident[:0]
			continue
		case b == '/' && p.cur.peekAt(1) == '/':
			p.skipLineComment()
			continue
		case b == '/' && p.cur.peekAt(1) == '*':
			p.skipBlockComment()
			continue
		case b == '<' && p.atJSXStart(prevSig, ident):
			flushRaw(p.cur.off)
			out = append(out, p.parseElementOrFragment())
			rawStart = p.cur.off
			prevSig = '>'
			ident = ident[:0]
			continue
		case inExpr && b == '}':
			if depth == 0 {
				flushRaw(p.cur.off)
				return out
			}
			depth--
		case inExpr && b == '{':
			depth++
		}

		if !isSpace(b) {
			prevSig = b
			if isIdentByte(b) {
				ident = append(ident, b)
			} else {
				ident = ident[:0]
			}
		}
		p.cur.bump()
	}

	flushRaw(p.cur.off)
	return out
}

// atJSXStart decides whether a '<' opens a JSX tree rather than being a
// comparison or generic. It must be followed by a tag-name start or '>'
// (fragment), and the preceding significant byte must put us in expression
// position.
func (p *Parser) atJSXStart(prevSig byte, ident []byte) bool {
	next := p.cur.peekAt(1)
	if !isTagNameStart(next) && next != '>' {
		return false
	}
	switch prevSig {
	case 0, '(', ',', '=', '?', ':', '&', '|', '{', '[', ';', '>':
		return true
	}
	if isIdentByte(prevSig) {
		switch string(ident) {
		case "return", "yield", "case", "do", "else", "typeof", "in", "of", "await":
			return true
		}
	}
	return false
}

func (p *Parser) skipJSString(quote byte) {
	p.cur.bump() // opening quote
	for !p.cur.eof() {
		b := p.cur.peek()
		if b == '\\' {
			p.cur.bump()
			p.cur.bump()
			continue
		}
		if b == quote || b == '\n' {
			p.cur.bump()
			return
		}
		p.cur.bump()
	}
}

func (p *Parser) skipTemplate() {
	p.cur.bump() // opening backtick
	for !p.cur.eof() {
		b := p.cur.peek()
		if b == '\\' {
			p.cur.bump()
			p.cur.bump()
			continue
		}
		if b == '`' {
			p.cur.bump()
			return
		}
		p.cur.bump()
	}
}

func (p *Parser) skipLineComment() {
	for !p.cur.eof() && p.cur.peek() != '\n' {
		p.cur.bump()
	}
}

func (p *Parser) skipBlockComment() {
	p.cur.bump()
	p.cur.bump()
	for !p.cur.eof() {
		if p.cur.peek() == '*' && p.cur.peekAt(1) == '/' {
			p.cur.bump()
			p.cur.bump()
			return
		}
		p.cur.bump()
	}
}
