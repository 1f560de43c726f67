// Package transform rewrites Lyra directive attributes (`on:*`, `class:*`)
// into plain `data-*` attributes the runtime mount engine understands.
// Everything else (attribute order, element identity, self-closing form,
// spreads, non-element nodes) passes through untouched.
package transform

import (
	"fmt"
	"strings"

	"lyra/internal/ast"
	"lyra/internal/diag"
)

const (
	onPrefix    = "on:"
	classPrefix = "class:"

	docURL = "https://lyra.dev/docs/directives"
)

// Apply rewrites directives on every element reachable from fileID,
// including elements nested inside attribute expression containers.
// Diagnostics (string-literal directive values) go to r. Returns the number
// of attributes rewritten.
func Apply(b *ast.Builder, fileID ast.FileID, r diag.Reporter) int {
	if r == nil {
		r = diag.NopReporter{}
	}
	rewritten := 0
	b.WalkElements(fileID, func(_ ast.NodeID, n *ast.Node) bool {
		for _, aid := range n.Attrs {
			a := b.Attr(aid)
			if a == nil || a.Spread {
				continue
			}
			if rewriteAttr(a, r) {
				rewritten++
			}
		}
		return true
	})
	return rewritten
}

// rewriteAttr renames one directive attribute in place, preserving its value.
func rewriteAttr(a *ast.Attr, r diag.Reporter) bool {
	var replacement string
	switch {
	case strings.HasPrefix(a.Name, onPrefix) && len(a.Name) > len(onPrefix):
		replacement = "data-on-" + a.Name[len(onPrefix):]
	case strings.HasPrefix(a.Name, classPrefix) && len(a.Name) > len(classPrefix):
		replacement = "data-class-" + a.Name[len(classPrefix):]
	default:
		return false
	}

	// A string literal where an expression was expected is a developer-error
	// signal, not a hard failure: warn and still rename, carrying the inert
	// literal along.
	if a.ValueKind == ast.AttrValueString {
		d := diag.NewWarn(diag.DirectiveString, a.Span,
			fmt.Sprintf("directive %q expects an expression value, got a string literal", a.Name)).
			WithHint(fmt.Sprintf("write %s={...} instead of %s=%s", a.Name, a.Name, a.Raw)).
			WithDocURL(docURL)
		r.Report(d)
	}

	a.Name = replacement
	return true
}
