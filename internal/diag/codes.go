package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. The String form is the stable machine
// identifier surfaced to build tools and editors.
type Code uint16

const (
	UnknownCode Code = 0

	// ParseError is the catastrophic-parser-failure code: the input could
	// not be turned into a tree at all.
	ParseError Code = 1

	// Accessibility rules, one code per rule.
	A11yAccessibleName   Code = 101
	A11yImageAlt         Code = 102
	A11yButtonLabel      Code = 103
	A11yLabelAssociation Code = 104
	A11yAnchorHref       Code = 105
	A11yTabindexBound    Code = 106
	A11yHeadingNonempty  Code = 107
	A11yIframeTitle      Code = 108

	// DirectiveString flags a directive carrying a string literal where an
	// expression container was expected.
	DirectiveString Code = 201

	// Structural syntax diagnostics reported by the parser without aborting.
	SynUnexpectedToken    Code = 2001
	SynUnclosedTag        Code = 2002
	SynMismatchedClose    Code = 2003
	SynUnterminatedString Code = 2004
	SynUnterminatedExpr   Code = 2005
	SynBadAttribute       Code = 2006
	SynUnclosedFragment   Code = 2007
)

func (c Code) String() string {
	switch {
	case c == ParseError:
		return "LYRA_PARSE_ERROR"
	case c >= A11yAccessibleName && c <= A11yIframeTitle:
		return fmt.Sprintf("LYRA_A11Y_%03d", c-100)
	case c == DirectiveString:
		return "LYRA_DIRECTIVE_STRING"
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("LYRA_SYN_%d", c)
	}
	return fmt.Sprintf("LYRA_%04d", uint16(c))
}
