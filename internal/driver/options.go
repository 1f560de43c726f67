package driver

import (
	"lyra/internal/a11y"
	"lyra/internal/diag"
	"lyra/internal/source"
	"lyra/internal/sourcemap"
)

// DefaultMaxDiagnostics caps how many diagnostics one compile collects.
const DefaultMaxDiagnostics = 100

// Options is the immutable input to one compile invocation.
type Options struct {
	Filename string
	Source   string
	A11y     a11y.Level
	// SourceMap requests a line-identity source map alongside the code.
	SourceMap bool
	// Dev is reserved for development-mode output (symbols, islands).
	Dev bool
	// MaxDiagnostics overrides DefaultMaxDiagnostics when > 0.
	MaxDiagnostics int
}

// Meta carries per-compile bookkeeping for build tooling.
// Symbols and Islands are reserved for future island extraction.
type Meta struct {
	A11yErrors  int
	Transformed bool
	Symbols     []string
	Islands     bool
}

// Result is the outcome of one compile. Code is always printable output:
// either the transformed module or, on the two non-transforming paths, the
// source unchanged. Compile problems live in Diagnostics, never in an error.
type Result struct {
	Code        string
	Map         *sourcemap.Map
	Diagnostics []diag.Diagnostic
	Meta        Meta

	// FileSet resolves diagnostic spans to line/column for formatting.
	FileSet *source.FileSet
}

// HasErrors reports whether any diagnostic is build-breaking.
func (r *Result) HasErrors() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Severity >= diag.SevError {
			return true
		}
	}
	return false
}
