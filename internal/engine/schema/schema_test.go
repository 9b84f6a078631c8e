package schema

import (
	"errors"
	"testing"

	"github.com/dshills/blockedit/internal/engine/tree"
)

func testSchema(t *testing.T) *Schema {
	t.Helper()
	s := New()
	defs := map[string]Definition{
		"paragraph": {IsBlock: true, AllowText: true},
		"widget":    {IsObject: true, IsBlock: true},
		"nested":    {IsLimit: true, AllowText: true},
	}
	for name, def := range defs {
		if err := s.Register(name, def); err != nil {
			t.Fatalf("Register(%s) error = %v", name, err)
		}
	}
	return s
}

func TestRegisterTwice(t *testing.T) {
	s := testSchema(t)
	err := s.Register("paragraph", Definition{})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("Register() error = %v, want ErrAlreadyRegistered", err)
	}
}

func TestPredicates(t *testing.T) {
	s := testSchema(t)
	root := tree.NewElement(RootName)
	w := tree.NewElement("widget")
	p := tree.NewElement("paragraph", tree.NewText("x"))
	root.AppendChild(w, p)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"widget is object", s.IsObject(w), true},
		{"paragraph is not object", s.IsObject(p), false},
		{"root is limit", s.IsLimit(root), true},
		{"detached nested is limit", s.IsLimit(tree.NewElement("nested")), true},
		{"paragraph allows text", s.AllowsText(p), true},
		{"widget rejects text", s.AllowsText(w), false},
		{"text node is not object", s.IsObject(p.Child(0)), false},
		{"unknown is nothing", s.IsBlock(tree.NewElement("unknown")), false},
		{"caret in paragraph", s.CheckText(tree.PositionAtStart(p)), true},
		{"caret in root", s.CheckText(tree.PositionAtStart(root)), false},
		{"zero position", s.CheckText(tree.Position{}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLimitElement(t *testing.T) {
	s := testSchema(t)
	text := tree.NewText("foo bar")
	nested := tree.NewElement("nested", text)
	w := tree.NewElement("widget", nested)
	root := tree.NewElement(RootName, tree.NewElement("paragraph"), w)

	sel := tree.NewSelection(nil, false)
	sel.SetCollapsed(tree.NewPosition(text, 2))
	if got := s.LimitElement(sel); got != nested {
		t.Errorf("LimitElement() = %v, want nested", got)
	}

	sel.SetOn(w)
	if got := s.LimitElement(sel); got != root {
		t.Errorf("LimitElement() = %v, want root", got)
	}

	sel.SetRanges([]tree.Range{
		tree.CollapsedRange(tree.NewPosition(text, 1)),
		tree.CollapsedRange(tree.PositionAtStart(root.Child(0))),
	}, false)
	if got := s.LimitElement(sel); got != root {
		t.Errorf("LimitElement() for spread ranges = %v, want root", got)
	}

	if got := s.LimitElement(tree.NewSelection(nil, false)); got != nil {
		t.Errorf("LimitElement() of empty selection = %v, want nil", got)
	}

	s.Extend("widget", func(d *Definition) { d.IsLimit = true })
	sel.SetOn(nested)
	if got := s.LimitElement(sel); got != w {
		t.Errorf("LimitElement() after Extend = %v, want widget", got)
	}
}
