// Package diagfmt renders diagnostics for humans and machines: the fixed
// four-line text format build logs rely on, display-width-aware code frames,
// and a JSON form for editor tooling.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"lyra/internal/diag"
	"lyra/internal/source"
)

// FormatDiagnostic renders one diagnostic in the stable text form:
//
//	<severity-word> <code>: <message>
//	  --> <file>[:<line>:<column>]
//	  hint: <hint>
//	  docs: <docUrl>
//
// The position is appended only when the span carries a byte offset and the
// file's source text is available; hint and docs lines appear when set.
func FormatDiagnostic(d diag.Diagnostic, fs *source.FileSet) string {
	return formatDiagnostic(d, fs, true)
}

func formatDiagnostic(d diag.Diagnostic, fs *source.FileSet, includeHints bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s: %s\n", d.Severity, d.Code, d.Message)

	loc := "<unknown>"
	if fs != nil {
		if f := fs.Get(d.Primary.File); f != nil {
			loc = f.Path
			if !d.Primary.Empty() {
				start, _ := fs.Resolve(d.Primary)
				loc = fmt.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col)
			}
		}
	}
	fmt.Fprintf(&sb, "  --> %s\n", loc)

	if includeHints && d.Hint != "" {
		fmt.Fprintf(&sb, "  hint: %s\n", d.Hint)
	}
	if includeHints && d.DocURL != "" {
		fmt.Fprintf(&sb, "  docs: %s\n", d.DocURL)
	}
	return sb.String()
}

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	infoColor  = color.New(color.FgCyan, color.Bold)
)

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarn:
		return warnColor
	}
	return infoColor
}

// Pretty writes every diagnostic to w, optionally colored and followed by a
// code frame when the span resolves into loaded source.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	for i := range diags {
		d := diags[i]
		text := formatDiagnostic(d, fs, opts.ShowHints)
		if opts.Color {
			word := d.Severity.String()
			if rest, ok := strings.CutPrefix(text, word); ok {
				text = severityColor(d.Severity).Sprint(word) + rest
			}
		}
		fmt.Fprint(w, text)

		if opts.ShowFrames && fs != nil && !d.Primary.Empty() {
			if f := fs.Get(d.Primary.File); f != nil {
				ctx := opts.Context
				if ctx < 0 {
					ctx = 0
				}
				frame := FormatCodeFrame(string(f.Content), int(d.Primary.Start), int(d.Primary.Len()), ctx)
				if frame != "" {
					fmt.Fprint(w, frame)
				}
			}
		}
		fmt.Fprintln(w)
	}
}
