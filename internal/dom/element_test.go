package dom

import "testing"

func TestSetAttrPreservesOrder(t *testing.T) {
	el := NewElement("div", Attr{Name: "a", Value: "1"}, Attr{Name: "b", Value: "2"})
	el.SetAttr("a", "9")
	el.SetAttr("c", "3")

	attrs := el.Attrs()
	want := []Attr{{"a", "9"}, {"b", "2"}, {"c", "3"}}
	if len(attrs) != len(want) {
		t.Fatalf("attrs = %v, want %v", attrs, want)
	}
	for i := range want {
		if attrs[i] != want[i] {
			t.Errorf("attr %d = %v, want %v", i, attrs[i], want[i])
		}
	}
}

func TestListenerRemovalIsIdentityBased(t *testing.T) {
	el := NewElement("button")
	calls := []string{}
	fn := func(label string) Handler {
		return func(Event) { calls = append(calls, label) }
	}

	remove1 := el.AddEventListener("click", fn("first"))
	el.AddEventListener("click", fn("second"))

	remove1()
	remove1() // harmless
	el.Dispatch("click")

	if len(calls) != 1 || calls[0] != "second" {
		t.Errorf("calls = %v, want only the second listener", calls)
	}
}

func TestDispatchSnapshotsListeners(t *testing.T) {
	el := NewElement("button")
	calls := 0
	el.AddEventListener("click", func(Event) {
		calls++
		el.AddEventListener("click", func(Event) { calls += 100 })
	})

	el.Dispatch("click")
	if calls != 1 {
		t.Errorf("calls = %d, listener added mid-dispatch must not run this round", calls)
	}
}

func TestDispatchFiltersByType(t *testing.T) {
	el := NewElement("input")
	var got []string
	el.AddEventListener("focus", func(e Event) { got = append(got, e.Type) })
	el.AddEventListener("blur", func(e Event) { got = append(got, e.Type) })

	el.Dispatch("focus")
	if len(got) != 1 || got[0] != "focus" {
		t.Errorf("got = %v, want [focus]", got)
	}
}

func TestClassList(t *testing.T) {
	el := NewElement("div")
	el.AddClass("a")
	el.AddClass("a")
	el.AddClass("b")
	el.RemoveClass("a")

	if el.HasClass("a") || !el.HasClass("b") {
		t.Errorf("classes wrong: a=%v b=%v", el.HasClass("a"), el.HasClass("b"))
	}
}

func TestValueBearing(t *testing.T) {
	for _, tag := range []string{"input", "textarea", "select"} {
		if !NewElement(tag).IsValueBearing() {
			t.Errorf("%s should be value-bearing", tag)
		}
	}
	if NewElement("div").IsValueBearing() {
		t.Error("div should not be value-bearing")
	}
}
