// Package driver sequences the compile pipeline: parse, accessibility
// analysis, directive transform, print, and optional source-map generation.
// It aggregates diagnostics and decides the shape of success and failure;
// escalating error-severity diagnostics to a hard build failure is the
// caller's job, never the driver's.
package driver

import (
	"fmt"

	"lyra/internal/a11y"
	"lyra/internal/ast"
	"lyra/internal/diag"
	"lyra/internal/parser"
	"lyra/internal/printer"
	"lyra/internal/source"
	"lyra/internal/sourcemap"
	"lyra/internal/transform"
)

const parseFallbackMessage = "unrecoverable parse failure"

// Compile runs the whole pipeline over one module. It never returns an
// error and never prints: every problem, including a parser panic, comes
// back as a diagnostic inside the Result.
func Compile(opts Options) Result {
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiagnostics
	}

	fs := source.NewFileSet()
	fileID := fs.AddVirtual(opts.Filename, []byte(opts.Source))

	b := ast.NewBuilder(64)
	synBag := diag.NewBag(maxDiags)

	parsed, err := parseGuarded(fs, fileID, b, synBag)

	// Catastrophic parse failure: one LYRA_PARSE_ERROR, source passed
	// through unchanged.
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = parseFallbackMessage
		}
		// An empty span keeps the rendered diagnostic positionless.
		return Result{
			Code:        opts.Source,
			Diagnostics: []diag.Diagnostic{diag.NewError(diag.ParseError, source.Span{File: fileID}, msg)},
			Meta:        Meta{Symbols: []string{}},
			FileSet:     fs,
		}
	}

	// Gracefully-reported structural syntax errors: distinct codes from the
	// exception path, original spans, still no transform.
	if synBag.Len() > 0 {
		return Result{
			Code:        opts.Source,
			Diagnostics: synBag.Items(),
			Meta:        Meta{Symbols: []string{}},
			FileSet:     fs,
		}
	}

	diagnostics := a11y.Check(b, parsed, opts.A11y)

	var transformDiags []diag.Diagnostic
	transform.Apply(b, parsed, sliceReporter{&transformDiags})
	diagnostics = append(diagnostics, transformDiags...)

	code := printer.Print(b, parsed)

	var m *sourcemap.Map
	if opts.SourceMap {
		m = sourcemap.Generate(opts.Filename, opts.Source, code)
	}

	a11yErrors := 0
	for i := range diagnostics {
		if diagnostics[i].Severity >= diag.SevError {
			a11yErrors++
		}
	}

	return Result{
		Code:        code,
		Map:         m,
		Diagnostics: diagnostics,
		Meta: Meta{
			A11yErrors:  a11yErrors,
			Transformed: true,
			Symbols:     []string{},
		},
		FileSet: fs,
	}
}

// parseGuarded wraps the parser so an internal panic surfaces as the
// parse-exception path instead of ending the process.
func parseGuarded(fs *source.FileSet, fileID source.FileID, b *ast.Builder, bag *diag.Bag) (parsed ast.FileID, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return parser.ParseFile(fs, fileID, b, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: uint(bag.Cap()),
	})
}

// sliceReporter collects diagnostics into a slice, preserving order.
type sliceReporter struct{ out *[]diag.Diagnostic }

func (r sliceReporter) Report(d diag.Diagnostic) {
	*r.out = append(*r.out, d)
}
