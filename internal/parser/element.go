package parser

import (
	"fmt"

	"lyra/internal/ast"
	"lyra/internal/diag"
	"lyra/internal/source"
)

// parseElementOrFragment parses a JSX tree at the current '<'.
func (p *Parser) parseElementOrFragment() ast.NodeID {
	start := p.cur.off
	p.cur.bump() // '<'

	if p.cur.peek() == '>' {
		p.cur.bump()
		return p.parseFragmentBody(start)
	}
	return p.parseElement(start)
}

// parseFragmentBody parses children of <> up to the matching </>.
func (p *Parser) parseFragmentBody(start uint32) ast.NodeID {
	children, closed := p.parseChildren("")
	if !closed {
		p.report(diag.SynUnclosedFragment, p.cur.spanFrom(start), "unclosed fragment: missing </>")
	}
	return p.b.NewNode(ast.Node{
		Kind:     ast.NodeFragment,
		Span:     p.cur.spanFrom(start),
		Children: children,
	})
}

// parseElement parses a tag opened at start (the '<' is already consumed).
func (p *Parser) parseElement(start uint32) ast.NodeID {
	nameStart := p.cur.off
	for !p.cur.eof() && isTagNameByte(p.cur.peek()) {
		p.cur.bump()
	}
	tag := p.cur.slice(nameStart)

	attrs, selfClosing, closed := p.parseAttrs(start, tag)

	n := ast.Node{
		Kind:        ast.NodeElement,
		Tag:         tag,
		SelfClosing: selfClosing,
		Attrs:       attrs,
	}

	if selfClosing || !closed {
		n.Span = p.cur.spanFrom(start)
		return p.b.NewNode(n)
	}

	var bodyClosed bool
	n.Children, bodyClosed = p.parseChildren(tag)
	if !bodyClosed {
		p.report(diag.SynUnclosedTag, p.cur.spanFrom(start),
			fmt.Sprintf("unclosed element <%s>: missing </%s>", tag, tag))
	}
	n.Span = p.cur.spanFrom(start)
	return p.b.NewNode(n)
}

// parseAttrs consumes the attribute list of an opening tag up to '>' or '/>'.
// closed is false when EOF was hit before the tag ended.
func (p *Parser) parseAttrs(elemStart uint32, tag string) (attrs []ast.AttrID, selfClosing, closed bool) {
	for {
		for !p.cur.eof() && isSpace(p.cur.peek()) {
			p.cur.bump()
		}
		if p.cur.eof() {
			p.report(diag.SynUnclosedTag, p.cur.spanFrom(elemStart),
				fmt.Sprintf("unclosed tag <%s", tag))
			return attrs, false, false
		}

		b := p.cur.peek()
		switch {
		case b == '/' && p.cur.peekAt(1) == '>':
			p.cur.bump()
			p.cur.bump()
			return attrs, true, true
		case b == '>':
			p.cur.bump()
			return attrs, false, true
		case b == '{':
			attrs = append(attrs, p.parseSpreadAttr())
		case isTagNameStart(b) || b == '_' || b == '@':
			attrs = append(attrs, p.parseAttr())
		default:
			p.report(diag.SynBadAttribute, p.cur.spanFrom(p.cur.off),
				fmt.Sprintf("unexpected %q in attribute list of <%s>", string(b), tag))
			p.cur.bump()
		}
	}
}

// parseSpreadAttr consumes a braced attribute ({...rest}) verbatim.
func (p *Parser) parseSpreadAttr() ast.AttrID {
	start := p.cur.off
	p.cur.bump() // '{'
	depth := 0
	for !p.cur.eof() {
		b := p.cur.peek()
		if b == '"' || b == '\'' {
			p.skipJSString(b)
			continue
		}
		if b == '{' {
			depth++
		} else if b == '}' {
			if depth == 0 {
				p.cur.bump()
				return p.b.NewAttr(ast.Attr{
					Span:   p.cur.spanFrom(start),
					Raw:    p.cur.slice(start),
					Spread: true,
				})
			}
			depth--
		}
		p.cur.bump()
	}
	p.report(diag.SynUnterminatedExpr, p.cur.spanFrom(start), "unterminated spread attribute")
	return p.b.NewAttr(ast.Attr{
		Span:   p.cur.spanFrom(start),
		Raw:    p.cur.slice(start),
		Spread: true,
	})
}

// parseAttr consumes one named attribute with its optional value.
func (p *Parser) parseAttr() ast.AttrID {
	nameStart := p.cur.off
	for !p.cur.eof() && isAttrNameByte(p.cur.peek()) {
		p.cur.bump()
	}
	name := p.cur.slice(nameStart)
	nameSpan := p.cur.spanFrom(nameStart)

	a := ast.Attr{
		Name:      name,
		NameSpan:  nameSpan,
		ValueKind: ast.AttrValueNone,
	}

	// JSX tolerates spaces around '='.
	mark := p.cur.off
	for !p.cur.eof() && isSpace(p.cur.peek()) {
		p.cur.bump()
	}
	if p.cur.peek() != '=' {
		p.cur.off = mark
		a.Span = nameSpan
		return p.b.NewAttr(a)
	}
	p.cur.bump() // '='
	for !p.cur.eof() && isSpace(p.cur.peek()) {
		p.cur.bump()
	}

	switch b := p.cur.peek(); {
	case b == '"' || b == '\'':
		a.ValueKind = ast.AttrValueString
		a.Raw = p.parseStringValue(b)
	case b == '{':
		a.ValueKind = ast.AttrValueExpr
		a.Expr = p.parseExprContainer()
	default:
		p.report(diag.SynBadAttribute, source.Span{File: p.cur.file.ID, Start: nameStart, End: p.cur.off},
			fmt.Sprintf("attribute %q expects a quoted string or {expression} value", name))
	}
	a.Span = source.Span{File: p.cur.file.ID, Start: nameStart, End: p.cur.off}
	return p.b.NewAttr(a)
}

// parseStringValue consumes a quoted attribute value and returns it with
// the quotes included.
func (p *Parser) parseStringValue(quote byte) string {
	start := p.cur.off
	p.cur.bump()
	for !p.cur.eof() {
		if p.cur.peek() == quote {
			p.cur.bump()
			return p.cur.slice(start)
		}
		p.cur.bump()
	}
	p.report(diag.SynUnterminatedString, p.cur.spanFrom(start), "unterminated attribute string")
	return p.cur.slice(start)
}

// parseExprContainer consumes a balanced {...} and returns a NodeExpr whose
// children interleave raw chunks with any elements nested in the expression.
func (p *Parser) parseExprContainer() ast.NodeID {
	start := p.cur.off
	p.cur.bump() // '{'
	children := p.scanCode(true)
	if p.cur.peek() == '}' {
		p.cur.bump()
	} else {
		p.report(diag.SynUnterminatedExpr, p.cur.spanFrom(start), "unterminated expression container")
	}
	sp := p.cur.spanFrom(start)

	inner := ""
	if sp.Len() >= 2 {
		end := sp.End - 1
		if p.cur.file.Content[end] != '}' {
			end = sp.End
		}
		inner = string(p.cur.file.Content[sp.Start+1 : end])
	}
	return p.b.NewNode(ast.Node{
		Kind:     ast.NodeExpr,
		Span:     sp,
		Text:     inner,
		Children: children,
	})
}

// parseChildren consumes element or fragment body nodes until the matching
// closing tag (</tag> or </>) or EOF. The closing tag itself is consumed;
// closed reports whether one was found before EOF.
func (p *Parser) parseChildren(tag string) (out []ast.NodeID, closed bool) {
	textStart := p.cur.off

	flushText := func(end uint32) {
		if end <= textStart {
			return
		}
		sp := source.Span{File: p.cur.file.ID, Start: textStart, End: end}
		out = append(out, p.b.NewNode(ast.Node{
			Kind: ast.NodeText,
			Span: sp,
			Text: string(p.cur.file.Content[textStart:end]),
		}))
	}

	for !p.cur.eof() {
		b := p.cur.peek()
		switch {
		case b == '{':
			flushText(p.cur.off)
			out = append(out, p.parseExprContainer())
			textStart = p.cur.off
		case b == '<' && p.cur.peekAt(1) == '/':
			flushText(p.cur.off)
			p.consumeClosingTag(tag)
			return out, true
		case b == '<' && (isTagNameStart(p.cur.peekAt(1)) || p.cur.peekAt(1) == '>'):
			flushText(p.cur.off)
			out = append(out, p.parseElementOrFragment())
			textStart = p.cur.off
		default:
			p.cur.bump()
		}
	}
	flushText(p.cur.off)
	return out, false
}

// consumeClosingTag eats `</name>` and checks the name against the open tag.
// An empty tag means we are closing a fragment and expect `</>`.
func (p *Parser) consumeClosingTag(tag string) {
	start := p.cur.off
	p.cur.bump() // '<'
	p.cur.bump() // '/'
	nameStart := p.cur.off
	for !p.cur.eof() && isTagNameByte(p.cur.peek()) {
		p.cur.bump()
	}
	name := p.cur.slice(nameStart)
	for !p.cur.eof() && isSpace(p.cur.peek()) {
		p.cur.bump()
	}
	if p.cur.peek() == '>' {
		p.cur.bump()
	} else {
		p.report(diag.SynUnclosedTag, p.cur.spanFrom(start), "malformed closing tag")
	}
	if name != tag {
		p.report(diag.SynMismatchedClose, p.cur.spanFrom(start),
			fmt.Sprintf("expected </%s>, found </%s>", tag, name))
	}
}
