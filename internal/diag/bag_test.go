package diag

import (
	"testing"

	"lyra/internal/source"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{ParseError, "LYRA_PARSE_ERROR"},
		{A11yAccessibleName, "LYRA_A11Y_001"},
		{A11yImageAlt, "LYRA_A11Y_002"},
		{A11yIframeTitle, "LYRA_A11Y_008"},
		{DirectiveString, "LYRA_DIRECTIVE_STRING"},
		{SynUnexpectedToken, "LYRA_SYN_2001"},
		{SynUnclosedFragment, "LYRA_SYN_2007"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestBagCapAndCounts(t *testing.T) {
	b := NewBag(2)
	sp := source.Span{File: 0, Start: 0, End: 1}

	if !b.Add(NewError(ParseError, sp, "boom")) {
		t.Fatal("first add rejected")
	}
	if !b.Add(NewWarn(DirectiveString, sp, "string literal")) {
		t.Fatal("second add rejected")
	}
	if b.Add(New(SevInfo, UnknownCode, sp, "dropped")) {
		t.Error("add past cap should return false")
	}

	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
	if !b.HasErrors() {
		t.Error("HasErrors = false, want true")
	}
	if got := b.ErrorCount(); got != 1 {
		t.Errorf("ErrorCount = %d, want 1", got)
	}
}

func TestBagLargeCap(t *testing.T) {
	b := NewBag(100000)
	if got := b.Cap(); got != 100000 {
		t.Fatalf("Cap = %d, want 100000", got)
	}
	sp := source.Span{File: 0, Start: 0, End: 1}
	for i := 0; i < 70000; i++ {
		if !b.Add(NewWarn(DirectiveString, sp, "w")) {
			t.Fatalf("add %d rejected below cap", i)
		}
	}
	if b.Len() != 70000 {
		t.Errorf("Len = %d, want 70000", b.Len())
	}
}

func TestBagNegativeCap(t *testing.T) {
	b := NewBag(-1)
	if b.Cap() != 0 {
		t.Errorf("Cap = %d, want 0", b.Cap())
	}
	if b.Add(NewWarn(DirectiveString, source.Span{}, "w")) {
		t.Error("add to zero-cap bag should return false")
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(ParseError, source.Span{}, "a"))

	other := NewBag(2)
	other.Add(NewWarn(DirectiveString, source.Span{}, "b"))
	other.Add(NewWarn(A11yImageAlt, source.Span{}, "c"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Fatalf("Len after merge = %d, want 3", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("Cap after merge = %d, want >= 3", a.Cap())
	}
}

func TestBagReporterNilSafe(t *testing.T) {
	var r Reporter = BagReporter{}
	r.Report(NewError(ParseError, source.Span{}, "x")) // must not panic

	bag := NewBag(4)
	r = BagReporter{Bag: bag}
	r.Report(NewWarn(A11yAnchorHref, source.Span{}, "y"))
	if bag.Len() != 1 {
		t.Errorf("Len = %d, want 1", bag.Len())
	}
}
