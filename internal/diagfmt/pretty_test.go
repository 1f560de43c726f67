package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"lyra/internal/diag"
	"lyra/internal/source"
)

func testFileSet(t *testing.T, content string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	return fs, fs.AddVirtual("app.jsx", []byte(content))
}

func TestFormatDiagnostic(t *testing.T) {
	fs, fid := testFileSet(t, "<form>\n  <img src=\"/x.png\" />\n</form>\n")
	d := diag.NewWarn(diag.A11yImageAlt, source.Span{File: fid, Start: 9, End: 13},
		"<img> is missing alternative text").
		WithHint(`add alt="..." describing the image`).
		WithDocURL("https://lyra.dev/docs/a11y/image-alt")

	got := FormatDiagnostic(d, fs)
	want := "warn LYRA_A11Y_002: <img> is missing alternative text\n" +
		"  --> app.jsx:2:3\n" +
		"  hint: add alt=\"...\" describing the image\n" +
		"  docs: https://lyra.dev/docs/a11y/image-alt\n"
	if got != want {
		t.Errorf("FormatDiagnostic:\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatDiagnosticEmptySpanOmitsPosition(t *testing.T) {
	fs, fid := testFileSet(t, "whatever")
	d := diag.NewError(diag.ParseError, source.Span{File: fid}, "unrecoverable parse failure")

	got := FormatDiagnostic(d, fs)
	want := "error LYRA_PARSE_ERROR: unrecoverable parse failure\n  --> app.jsx\n"
	if got != want {
		t.Errorf("FormatDiagnostic:\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatDiagnosticNoFileSet(t *testing.T) {
	d := diag.NewError(diag.ParseError, source.Span{}, "boom")
	got := FormatDiagnostic(d, nil)
	if !strings.Contains(got, "--> <unknown>") {
		t.Errorf("got %q, want an <unknown> location", got)
	}
}

func TestFormatCodeFrame(t *testing.T) {
	src := "line one\nline two\nline three\nline four\nline five"
	// Point at "two" on line 2.
	got := FormatCodeFrame(src, 14, 3, 1)
	want := "  1 | line one\n" +
		"> 2 | line two\n" +
		"    |      ^^^\n" +
		"  3 | line three\n"
	if got != want {
		t.Errorf("frame:\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatCodeFrameClampsToLine(t *testing.T) {
	src := "short\nlonger line"
	// A span length running past the end of line 1 must not leak carets
	// onto the next line.
	got := FormatCodeFrame(src, 0, 50, 0)
	want := "> 1 | short\n" +
		"    | ^^^^^\n"
	if got != want {
		t.Errorf("frame:\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatCodeFrameOutOfRange(t *testing.T) {
	if got := FormatCodeFrame("abc", 99, 1, 2); got != "" {
		t.Errorf("out-of-range frame = %q, want empty", got)
	}
}

func TestPrettyRespectsShowHints(t *testing.T) {
	fs, fid := testFileSet(t, "<a>x</a>")
	d := diag.NewWarn(diag.A11yAnchorHref, source.Span{File: fid, Start: 0, End: 3}, "no href").
		WithHint("add an href")

	var with, without bytes.Buffer
	Pretty(&with, []diag.Diagnostic{d}, fs, PrettyOpts{ShowHints: true})
	Pretty(&without, []diag.Diagnostic{d}, fs, PrettyOpts{ShowHints: false})

	if !strings.Contains(with.String(), "hint: add an href") {
		t.Errorf("hints missing: %q", with.String())
	}
	if strings.Contains(without.String(), "hint:") {
		t.Errorf("hints present despite ShowHints=false: %q", without.String())
	}
}

func TestPrettyIncludesFrame(t *testing.T) {
	fs, fid := testFileSet(t, "<img />\n")
	d := diag.NewWarn(diag.A11yImageAlt, source.Span{File: fid, Start: 0, End: 7}, "missing alt")

	var buf bytes.Buffer
	Pretty(&buf, []diag.Diagnostic{d}, fs, PrettyOpts{ShowFrames: true, Context: 1})
	if !strings.Contains(buf.String(), "> 1 | <img />") {
		t.Errorf("code frame missing: %q", buf.String())
	}
}

func TestToJSON(t *testing.T) {
	fs, fid := testFileSet(t, "<a>x</a>\n")
	diags := []diag.Diagnostic{
		diag.NewWarn(diag.A11yAnchorHref, source.Span{File: fid, Start: 0, End: 3}, "no href").
			WithHint("add an href").
			WithDocURL("https://lyra.dev/docs/a11y/anchor-href"),
		diag.NewError(diag.SynUnclosedTag, source.Span{File: fid, Start: 4, End: 5}, "unclosed"),
	}

	out := ToJSON(diags, fs, JSONOpts{IncludePositions: true})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d, entries = %d", out.Count, len(out.Diagnostics))
	}
	first := out.Diagnostics[0]
	if first.Severity != "warn" || first.Code != "LYRA_A11Y_005" || first.File != "app.jsx" {
		t.Errorf("first = %+v", first)
	}
	if first.Line != 1 || first.Col != 1 {
		t.Errorf("position = %d:%d, want 1:1", first.Line, first.Col)
	}
	if out.Diagnostics[1].Code != "LYRA_SYN_2002" {
		t.Errorf("second code = %q", out.Diagnostics[1].Code)
	}

	capped := ToJSON(diags, fs, JSONOpts{Max: 1})
	if len(capped.Diagnostics) != 1 || capped.Count != 2 {
		t.Errorf("capped output = %d entries, count %d", len(capped.Diagnostics), capped.Count)
	}
}
