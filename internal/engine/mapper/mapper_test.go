package mapper

import (
	"testing"

	"github.com/dshills/blockedit/internal/engine/tree"
)

// fixture builds:
//
//	model: $root > [paragraph > "foo", widget > nested > "bar"]
//	view:  div > [p > "foo", div(widget) > [figcaption > "bar", ui]]
type fixture struct {
	m                             *Mapper
	mRoot, mP, mFoo, mW, mN, mBar *tree.Node
	vRoot, vP, vFoo, vW, vN, vBar *tree.Node
	vUI                           *tree.Node
}

func newFixture() *fixture {
	f := &fixture{m: New()}
	f.mFoo = tree.NewText("foo")
	f.mP = tree.NewElement("paragraph", f.mFoo)
	f.mBar = tree.NewText("bar")
	f.mN = tree.NewElement("nested", f.mBar)
	f.mW = tree.NewElement("widget", f.mN)
	f.mRoot = tree.NewElement("$root", f.mP, f.mW)

	f.vFoo = tree.NewText("foo")
	f.vP = tree.NewElement("p", f.vFoo)
	f.vBar = tree.NewText("bar")
	f.vN = tree.NewElement("figcaption", f.vBar)
	f.vUI = tree.NewElement("span")
	f.vUI.SetFlag(tree.FlagUI)
	f.vW = tree.NewElement("div", f.vN, f.vUI)
	f.vRoot = tree.NewElement("div", f.vP, f.vW)

	pairs := [][2]*tree.Node{
		{f.mRoot, f.vRoot}, {f.mP, f.vP}, {f.mFoo, f.vFoo},
		{f.mW, f.vW}, {f.mN, f.vN}, {f.mBar, f.vBar},
	}
	for _, p := range pairs {
		f.m.Bind(p[0], p[1])
	}
	return f
}

func TestBindAndUnbind(t *testing.T) {
	f := newFixture()
	if f.m.ToView(f.mW) != f.vW || f.m.ToModel(f.vW) != f.mW {
		t.Fatal("Bind() mismatch")
	}
	f.m.UnbindView(f.vW)
	if f.m.ToModel(f.vW) != nil || f.m.ToView(f.mBar) != nil {
		t.Error("UnbindView() should unbind descendants")
	}
	if f.m.ToView(f.mP) != f.vP {
		t.Error("UnbindView() removed unrelated binding")
	}
	f.m.Clear()
	if f.m.ToView(f.mP) != nil {
		t.Error("Clear() left bindings")
	}
}

func TestToViewPosition(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		in   tree.Position
		want tree.Position
	}{
		{"inside text", tree.NewPosition(f.mFoo, 1), tree.NewPosition(f.vFoo, 1)},
		{"before widget", tree.PositionBefore(f.mW), tree.PositionBefore(f.vW)},
		{"after widget", tree.PositionAfter(f.mW), tree.PositionAfter(f.vW)},
		{"end of widget skips ui", tree.PositionAtEnd(f.mW), tree.PositionAfter(f.vN)},
		{"zero", tree.Position{}, tree.Position{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.m.ToViewPosition(tt.in); got != tt.want {
				t.Errorf("ToViewPosition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToModelPosition(t *testing.T) {
	f := newFixture()
	uiText := tree.NewText("x")
	f.vUI.AppendChild(uiText)

	tests := []struct {
		name string
		in   tree.Position
		want tree.Position
	}{
		{"inside text", tree.NewPosition(f.vBar, 2), tree.NewPosition(f.mBar, 2)},
		{"after widget", tree.PositionAfter(f.vW), tree.PositionAfter(f.mW)},
		{"inside ui element", tree.PositionAtStart(f.vUI), tree.PositionAtEnd(f.mW)},
		{"after ui element", tree.PositionAtEnd(f.vW), tree.PositionAtEnd(f.mW)},
		{"ui text", tree.PositionAtStart(uiText), tree.PositionAtEnd(f.mW)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.m.ToModelPosition(tt.in); got != tt.want {
				t.Errorf("ToModelPosition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRanges(t *testing.T) {
	f := newFixture()
	sel := tree.NewSelection([]tree.Range{tree.RangeOn(f.mW)}, false)

	vr := f.m.ToViewRanges(sel)
	if len(vr) != 1 || !vr[0].IsEqual(tree.RangeOn(f.vW)) {
		t.Fatalf("ToViewRanges() = %v", vr)
	}

	mr := f.m.ToModelRanges(tree.NewSelection(vr, false))
	if len(mr) != 1 || !mr[0].IsEqual(tree.RangeOn(f.mW)) {
		t.Errorf("ToModelRanges() = %v", mr)
	}

	detached := tree.NewElement("paragraph")
	tree.NewElement("$root", detached)
	sel.SetIn(detached)
	if got := f.m.ToViewRanges(sel); len(got) != 0 {
		t.Errorf("unbound range should be dropped, got %v", got)
	}
}
