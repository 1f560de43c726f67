package diagfmt

import (
	"encoding/json"
	"io"

	"lyra/internal/diag"
	"lyra/internal/source"
)

// DiagnosticJSON is the machine-readable form of one diagnostic.
type DiagnosticJSON struct {
	Severity  string `json:"severity"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line,omitempty"`
	Col       uint32 `json:"col,omitempty"`
	Hint      string `json:"hint,omitempty"`
	DocURL    string `json:"doc_url,omitempty"`
}

// DiagnosticsOutput is the root of the JSON report.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// ToJSON converts diagnostics to their wire shape.
func ToJSON(diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(diags)),
		Count:       len(diags),
	}
	for i := range diags {
		if opts.Max > 0 && i >= opts.Max {
			break
		}
		d := diags[i]

		j := DiagnosticJSON{
			Severity:  d.Severity.String(),
			Code:      d.Code.String(),
			Message:   d.Message,
			StartByte: d.Primary.Start,
			EndByte:   d.Primary.End,
			Hint:      d.Hint,
			DocURL:    d.DocURL,
		}
		if fs != nil {
			if f := fs.Get(d.Primary.File); f != nil {
				switch opts.PathMode {
				case PathModeAbsolute:
					j.File = f.FormatPath("absolute", "")
				case PathModeRelative:
					j.File = f.FormatPath("relative", fs.BaseDir())
				case PathModeBasename:
					j.File = f.FormatPath("basename", "")
				default:
					j.File = f.Path
				}
				if opts.IncludePositions && !d.Primary.Empty() {
					start, _ := fs.Resolve(d.Primary)
					j.Line = start.Line
					j.Col = start.Col
				}
			}
		}
		out.Diagnostics = append(out.Diagnostics, j)
	}
	return out
}

// WriteJSON renders the report to w with indentation.
func WriteJSON(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(diags, fs, opts))
}
