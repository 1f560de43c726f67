// Package a11y implements the static accessibility analyzer: one read-only
// walk over a parsed module evaluating up to eight rules per element. Rules
// never mutate the tree; every finding becomes a diagnostic with a stable
// LYRA_A11Y_* code, a concrete fix hint, and a documentation link.
package a11y

import (
	"fmt"
	"strconv"

	"lyra/internal/ast"
	"lyra/internal/diag"
)

const docBase = "https://lyra.dev/docs/a11y/"

// Check runs every rule over the module rooted at fileID and returns the
// diagnostics in traversal order. Returns nil immediately when level is off.
func Check(b *ast.Builder, fileID ast.FileID, level Level) []diag.Diagnostic {
	if level == LevelOff {
		return nil
	}

	sev := diag.SevWarn
	if level == LevelStrict {
		sev = diag.SevError
	}

	c := checker{
		b:            b,
		sev:          sev,
		labelTargets: collectLabelTargets(b, fileID),
	}
	b.WalkElements(fileID, func(_ ast.NodeID, n *ast.Node) bool {
		c.checkElement(n)
		return true
	})
	return c.out
}

type checker struct {
	b            *ast.Builder
	sev          diag.Severity
	labelTargets map[string]bool
	out          []diag.Diagnostic
}

// collectLabelTargets gathers every identifier a <label> points at through
// htmlFor/for, used by the label-association rule.
func collectLabelTargets(b *ast.Builder, fileID ast.FileID) map[string]bool {
	targets := make(map[string]bool)
	b.WalkElements(fileID, func(_ ast.NodeID, n *ast.Node) bool {
		if n.Tag != "label" {
			return true
		}
		if v, ok := attrValue(b, n, "htmlFor", "for"); ok && v != "" {
			targets[v] = true
		}
		return true
	})
	return targets
}

func (c *checker) checkElement(n *ast.Node) {
	tag := n.Tag
	switch tag {
	case "input", "select", "textarea":
		c.accessibleName(n)
		c.labelAssociation(n)
	case "button":
		c.accessibleName(n)
		c.buttonLabel(n)
	case "img":
		c.imageAlt(n)
	case "a":
		c.anchorHref(n)
	case "iframe":
		c.iframeTitle(n)
	case "h1", "h2", "h3", "h4", "h5", "h6":
		c.headingNonempty(n)
	}
	c.tabindexBound(n)
}

func (c *checker) emit(code diag.Code, n *ast.Node, msg, hint, slug string) {
	c.out = append(c.out, diag.New(c.sev, code, n.Span, msg).
		WithHint(hint).
		WithDocURL(docBase+slug))
}

// Rule 1: interactive controls need an accessible name.
func (c *checker) accessibleName(n *ast.Node) {
	if hasAttr(c.b, n, "aria-label", "aria-labelledby", "title", "id") {
		return
	}
	c.emit(diag.A11yAccessibleName, n,
		fmt.Sprintf("<%s> is missing an accessible name", n.Tag),
		fmt.Sprintf("add aria-label, aria-labelledby, title, or an id to the <%s> so assistive technology can name it", n.Tag),
		"accessible-name")
}

// Rule 2: images need alternative text.
func (c *checker) imageAlt(n *ast.Node) {
	if hasAttr(c.b, n, "alt", "aria-label", "aria-labelledby") {
		return
	}
	c.emit(diag.A11yImageAlt, n,
		"<img> is missing alternative text",
		`add alt="..." describing the image, or alt="" if it is decorative`,
		"image-alt")
}

// Rule 3: buttons need a label or visible content.
func (c *checker) buttonLabel(n *ast.Node) {
	if hasAttr(c.b, n, "aria-label", "aria-labelledby") {
		return
	}
	if !n.SelfClosing && hasContent(c.b, n) {
		return
	}
	c.emit(diag.A11yButtonLabel, n,
		"<button> has no label or content",
		"give the button text content or an aria-label",
		"button-label")
}

// Rule 4: a control with an id should have a <label> pointing at it.
func (c *checker) labelAssociation(n *ast.Node) {
	if hasAttr(c.b, n, "aria-label", "aria-labelledby") {
		return
	}
	id, ok := attrValue(c.b, n, "id")
	if !ok || id == "" {
		return
	}
	if c.labelTargets[id] {
		return
	}
	c.emit(diag.A11yLabelAssociation, n,
		fmt.Sprintf("<%s id=%q> has no associated <label>", n.Tag, id),
		fmt.Sprintf("add <label htmlFor=%q>...</label>, or aria-label directly on the <%s>", id, n.Tag),
		"label-association")
}

// Rule 5: anchors need an href.
func (c *checker) anchorHref(n *ast.Node) {
	if hasAttr(c.b, n, "href") {
		return
	}
	c.emit(diag.A11yAnchorHref, n,
		"<a> is missing an href attribute",
		"add an href, or use a <button> for non-navigation actions",
		"anchor-href")
}

// Rule 6: positive tabIndex values break natural tab order.
func (c *checker) tabindexBound(n *ast.Node) {
	v, ok := attrValue(c.b, n, "tabIndex", "tabindex")
	if !ok {
		return
	}
	num, err := strconv.ParseFloat(v, 64)
	if err != nil || num <= 0 {
		return
	}
	c.emit(diag.A11yTabindexBound, n,
		fmt.Sprintf("<%s> has a positive tabIndex (%s)", n.Tag, v),
		"use tabIndex={0} to join the natural tab order or tabIndex={-1} to leave it",
		"tabindex-bound")
}

// Rule 7: headings need content. Only the paired opening-element form is
// checked; a self-closing heading is left to other tooling.
func (c *checker) headingNonempty(n *ast.Node) {
	if n.SelfClosing {
		return
	}
	if hasAttr(c.b, n, "aria-label", "aria-labelledby") {
		return
	}
	if hasContent(c.b, n) {
		return
	}
	c.emit(diag.A11yHeadingNonempty, n,
		fmt.Sprintf("<%s> is empty", n.Tag),
		"give the heading text content or an aria-label",
		"heading-nonempty")
}

// Rule 8: iframes need a title.
func (c *checker) iframeTitle(n *ast.Node) {
	if hasAttr(c.b, n, "title", "aria-label", "aria-labelledby") {
		return
	}
	c.emit(diag.A11yIframeTitle, n,
		"<iframe> is missing a title",
		`add title="..." describing the embedded content`,
		"iframe-title")
}
