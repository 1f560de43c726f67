package diag

import (
	"lyra/internal/source"
)

// Diagnostic is one immutable problem report produced during a compile.
// Hint and DocURL are optional; an empty Primary span means "whole file".
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Hint     string
	DocURL   string
}

// New constructs a diagnostic with no hint or doc link.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError is a shortcut for SevError diagnostics.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewWarn is a shortcut for SevWarn diagnostics.
func NewWarn(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarn, code, primary, msg)
}

// WithHint returns a copy carrying a concrete fix suggestion.
func (d Diagnostic) WithHint(hint string) Diagnostic {
	d.Hint = hint
	return d
}

// WithDocURL returns a copy carrying a documentation link.
func (d Diagnostic) WithDocURL(url string) Diagnostic {
	d.DocURL = url
	return d
}
