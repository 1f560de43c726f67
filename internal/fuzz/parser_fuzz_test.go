// Package fuzztests houses the fuzz harness for the module parser: arbitrary
// bytes must never panic it, and anything it parses cleanly must survive a
// print/reparse cycle.
package fuzztests

import (
	"testing"
	"unicode/utf8"

	"lyra/internal/ast"
	"lyra/internal/diag"
	"lyra/internal/parser"
	"lyra/internal/printer"
	"lyra/internal/source"
)

const maxFuzzInput = 64 << 10

var seeds = []string{
	"",
	"const a = 1;\n",
	`const v = <div on:click={save}>hi</div>;`,
	`<button class:active={ok} {...rest} />`,
	`<>text {expr} <img alt="x" /></>`,
	`<div id={a ? <b>1</b> : null}></div>`,
	"const s = \"<div>\"; // <span>\n/* <p> */ const t = `<a>`;",
	`<div><a on:click="go()">x</a></div>`,
	`<div>unterminated`,
	`<img alt="oops`,
	`<div id={name`,
	"if (a < b) { return a; }",
}

func FuzzParse(f *testing.F) {
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		input = append([]byte(nil), input...)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.jsx", input)

		bag := diag.NewBag(128)
		b := ast.NewBuilder(64)
		id, err := parser.ParseFile(fs, fileID, b, parser.Options{
			Reporter:  diag.BagReporter{Bag: bag},
			MaxErrors: 128,
		})
		if err != nil {
			if utf8.Valid(input) && len(input) <= parser.MaxSourceLen {
				t.Fatalf("hard parse error on acceptable input: %v", err)
			}
			return
		}

		// Clean parses must print to something the parser accepts again.
		if bag.Len() == 0 {
			out := printer.Print(b, id)
			fs2 := source.NewFileSet()
			fid2 := fs2.AddVirtual("fuzz2.jsx", []byte(out))
			bag2 := diag.NewBag(128)
			if _, err := parser.ParseFile(fs2, fid2, ast.NewBuilder(64), parser.Options{
				Reporter:  diag.BagReporter{Bag: bag2},
				MaxErrors: 128,
			}); err != nil {
				t.Fatalf("reparse of printed output failed: %v\ninput: %q\noutput: %q", err, input, out)
			}
			if bag2.Len() != 0 {
				t.Fatalf("printed output no longer parses cleanly\ninput: %q\noutput: %q\ndiags: %v",
					input, out, bag2.Items())
			}
		}
	})
}
