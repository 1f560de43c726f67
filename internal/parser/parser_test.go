package parser

import (
	"errors"
	"testing"

	"lyra/internal/ast"
	"lyra/internal/diag"
	"lyra/internal/printer"
	"lyra/internal/source"
)

func parseModule(t *testing.T, src string) (*ast.Builder, ast.FileID, []diag.Diagnostic) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("mod.jsx", []byte(src))
	b := ast.NewBuilder(16)
	bag := diag.NewBag(32)
	id, err := ParseFile(fs, fid, b, Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("ParseFile(%q) error: %v", src, err)
	}
	return b, id, bag.Items()
}

func TestRoundTrip(t *testing.T) {
	// Canonical sources must survive parse+print byte for byte.
	cases := []string{
		`const a = 1;`,
		`const x = <div on:click={save} />;`,
		`const y = <>hello</>;`,
		`const z = <div id="a">text</div>;`,
		`<div {...rest}>x</div>`,
		`<div>{count}</div>`,
		`<div>{ok && <img alt="x" />}</div>`,
		`<input disabled />`,
		`<img src="/x.png" alt='hi' />`,
		`function f() { return <ul><li>a</li><li>b</li></ul>; }`,
		`const tpl = ` + "`<div>not jsx</div>`" + `;`,
		`if (a < b) { f(); }`,
		"// a comment with <div>\nconst n = 2;",
		`/* <span> in a block comment */ let q = 0;`,
		`const s = "<div>";`,
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			b, id, diags := parseModule(t, src)
			if len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", diags)
			}
			if got := printer.Print(b, id); got != src {
				t.Errorf("round trip mismatch:\n got: %q\nwant: %q", got, src)
			}
		})
	}
}

func TestRawOnlyModule(t *testing.T) {
	src := "const a = 1;\nconst b = a < 2 && a > 0;\n"
	b, id, _ := parseModule(t, src)
	f := b.File(id)
	if len(f.Roots) != 1 {
		t.Fatalf("roots = %d, want 1", len(f.Roots))
	}
	n := b.Node(f.Roots[0])
	if n.Kind != ast.NodeRaw || n.Text != src {
		t.Errorf("root = %v %q, want raw run of whole module", n.Kind, n.Text)
	}
}

func TestElementStructure(t *testing.T) {
	src := `const v = <div id="a" on:click={save} {...rest}>hi {name}</div>;`
	b, id, diags := parseModule(t, src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	var el *ast.Node
	b.WalkElements(id, func(_ ast.NodeID, n *ast.Node) bool {
		el = n
		return false
	})
	if el == nil {
		t.Fatal("no element parsed")
	}
	if el.Tag != "div" || el.SelfClosing {
		t.Fatalf("tag = %q selfClosing = %v", el.Tag, el.SelfClosing)
	}
	if len(el.Attrs) != 3 {
		t.Fatalf("attrs = %d, want 3", len(el.Attrs))
	}

	a := b.Attr(el.Attrs[0])
	if a.Name != "id" || a.ValueKind != ast.AttrValueString || a.Raw != `"a"` {
		t.Errorf("attr 0 = %+v, want string id", a)
	}
	a = b.Attr(el.Attrs[1])
	if a.Name != "on:click" || a.ValueKind != ast.AttrValueExpr {
		t.Errorf("attr 1 = %+v, want expr on:click", a)
	}
	if expr := b.Node(a.Expr); expr == nil || expr.Text != "save" {
		t.Errorf("on:click container = %+v, want text \"save\"", b.Node(a.Expr))
	}
	a = b.Attr(el.Attrs[2])
	if !a.Spread || a.Raw != "{...rest}" {
		t.Errorf("attr 2 = %+v, want spread", a)
	}

	if len(el.Children) != 2 {
		t.Fatalf("children = %d, want text + expr", len(el.Children))
	}
	if c := b.Node(el.Children[0]); c.Kind != ast.NodeText || c.Text != "hi " {
		t.Errorf("child 0 = %v %q", c.Kind, c.Text)
	}
	if c := b.Node(el.Children[1]); c.Kind != ast.NodeExpr || c.Text != "name" {
		t.Errorf("child 1 = %v %q", c.Kind, c.Text)
	}
}

func TestAttrSpacingCanonicalized(t *testing.T) {
	b, id, diags := parseModule(t, `<div  a="1"   b = "2"></div>`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := `<div a="1" b="2"></div>`
	if got := printer.Print(b, id); got != want {
		t.Errorf("Print = %q, want %q", got, want)
	}
}

func TestSyntaxDiagnostics(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"mismatched close", `<div>text</span>`, diag.SynMismatchedClose},
		{"unclosed element", `<div>text`, diag.SynUnclosedTag},
		{"unclosed fragment", `<>abc`, diag.SynUnclosedFragment},
		{"unterminated string", `<img alt="oops`, diag.SynUnterminatedString},
		{"unterminated expr", `<div id={name`, diag.SynUnterminatedExpr},
		{"bad attribute value", `<div id=42></div>`, diag.SynBadAttribute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, diags := parseModule(t, tc.src)
			if len(diags) == 0 {
				t.Fatalf("no diagnostics for %q", tc.src)
			}
			found := false
			for _, d := range diags {
				if d.Code == tc.code {
					found = true
					if d.Severity != diag.SevError {
						t.Errorf("severity = %v, want error", d.Severity)
					}
				}
			}
			if !found {
				t.Errorf("diagnostics %v missing code %v", diags, tc.code)
			}
		})
	}
}

func TestClosingTagAtEOF(t *testing.T) {
	// A module whose last byte is the closing tag must parse cleanly;
	// finding the closer and then running out of input is not an error.
	cases := []string{
		`<div>text</div>`,
		`<>text</>`,
		`<button on:click={save} class:busy={isBusy} aria-label="Save"></button>`,
		`<ul><li>a</li></ul>`,
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			_, _, diags := parseModule(t, src)
			if len(diags) != 0 {
				t.Errorf("diagnostics = %v, want none", diags)
			}
		})
	}
}

func TestMaxErrorsCapsReports(t *testing.T) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("mod.jsx", []byte(`<div>a</x><div>b</y><div>c</z>`))
	b := ast.NewBuilder(16)
	bag := diag.NewBag(32)
	if _, err := ParseFile(fs, fid, b, Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: 2,
	}); err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if bag.Len() != 2 {
		t.Errorf("reported %d diagnostics, want 2", bag.Len())
	}
}

func TestNotUTF8(t *testing.T) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("mod.jsx", []byte{0xff, 0xfe, '<'})
	b := ast.NewBuilder(4)
	_, err := ParseFile(fs, fid, b, Options{})
	if !errors.Is(err, ErrNotUTF8) {
		t.Fatalf("err = %v, want ErrNotUTF8", err)
	}
}

func TestComparisonIsNotJSX(t *testing.T) {
	src := `const ok = a <div && b> c;`
	b, id, _ := parseModule(t, src)
	f := b.File(id)
	for _, rid := range f.Roots {
		if n := b.Node(rid); n.Kind != ast.NodeRaw {
			t.Fatalf("node kind %v, want all raw for %q", n.Kind, src)
		}
	}
}

func TestKeywordExpressionPosition(t *testing.T) {
	src := "function f() {\n  return <span>ok</span>;\n}\n"
	b, id, diags := parseModule(t, src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	count := 0
	b.WalkElements(id, func(_ ast.NodeID, n *ast.Node) bool {
		count++
		if n.Tag != "span" {
			t.Errorf("tag = %q, want span", n.Tag)
		}
		return true
	})
	if count != 1 {
		t.Errorf("elements = %d, want 1", count)
	}
}

func TestNestedElementInsideAttrExpr(t *testing.T) {
	src := `<div data-icon={ok ? <img alt="i" /> : null}></div>`
	b, id, diags := parseModule(t, src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	var tags []string
	b.WalkElements(id, func(_ ast.NodeID, n *ast.Node) bool {
		tags = append(tags, n.Tag)
		return true
	})
	if len(tags) != 2 || tags[0] != "div" || tags[1] != "img" {
		t.Errorf("walked tags = %v, want [div img]", tags)
	}
}
