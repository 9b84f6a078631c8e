package widget

import (
	"testing"

	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/engine/view"
)

func TestCorrectorMovesSelectionOntoWidget(t *testing.T) {
	e := newTestEditor(t, `<paragraph>[]foo</paragraph><widget>foo bar</widget>`)
	text := e.ViewNode(1, 0)

	e.SetViewSelection(view.NewSelection([]tree.Range{
		tree.NewRange(tree.NewPosition(text, 1), tree.NewPosition(text, 3)),
	}, false))

	if got, want := modelData(t, e), `<paragraph>foo</paragraph>[<widget>foo bar</widget>]`; got != want {
		t.Errorf("model = %s, want %s", got, want)
	}
	if !e.View().Selection().IsFake() {
		t.Error("view selection is not fake")
	}
}

func TestCorrectorKeepsOrientation(t *testing.T) {
	e := newTestEditor(t, `<paragraph>[]foo</paragraph><widget>foo bar</widget>`)
	text := e.ViewNode(1, 0)

	e.SetViewSelection(view.NewSelection([]tree.Range{
		tree.NewRange(tree.NewPosition(text, 1), tree.NewPosition(text, 2)),
	}, true))

	sel := e.Model().Selection()
	if !sel.IsBackward() {
		t.Error("IsBackward() = false, want true")
	}
	if sel.SelectedElement() != e.ModelNode(1) {
		t.Errorf("selected element = %v, want widget", sel.SelectedElement())
	}
}

func TestCorrectorLeavesOtherRanges(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		start func(e viewNodes) tree.Position
		end   func(e viewNodes) tree.Position
		want  string
	}{
		{
			name:  "nested editable",
			data:  `<widget><nested>foo bar</nested></widget>`,
			start: func(e viewNodes) tree.Position { return tree.NewPosition(e.ViewNode(0, 0, 0), 1) },
			end:   func(e viewNodes) tree.Position { return tree.NewPosition(e.ViewNode(0, 0, 0), 3) },
			want:  `<widget><nested>f[oo] bar</nested></widget>`,
		},
		{
			name:  "crossing widget boundary",
			data:  `<paragraph>foo</paragraph><widget>foo bar</widget>`,
			start: func(e viewNodes) tree.Position { return tree.NewPosition(e.ViewNode(0, 0), 1) },
			end:   func(e viewNodes) tree.Position { return tree.NewPosition(e.ViewNode(1, 0), 3) },
			want:  `<paragraph>f[oo</paragraph><widget>foo] bar</widget>`,
		},
		{
			name:  "plain paragraph",
			data:  `<paragraph>foo</paragraph>`,
			start: func(e viewNodes) tree.Position { return tree.NewPosition(e.ViewNode(0, 0), 2) },
			end:   func(e viewNodes) tree.Position { return tree.NewPosition(e.ViewNode(0, 0), 2) },
			want:  `<paragraph>fo[]o</paragraph>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t, tt.data)
			e.SetViewSelection(view.NewSelection([]tree.Range{tree.NewRange(tt.start(e), tt.end(e))}, false))

			if got := modelData(t, e); got != tt.want {
				t.Errorf("model = %s, want %s", got, tt.want)
			}
		})
	}
}

type viewNodes interface {
	ViewNode(path ...int) *tree.Node
}

func TestCorrectorDirect(t *testing.T) {
	inner := tree.NewText("foo")
	w := ToWidget(tree.NewElement("div", tree.NewElement("b", inner)))
	plain := tree.NewText("bar")
	root := tree.NewElement("div", tree.NewElement("p", plain), w)
	root.SetFlag(tree.FlagEditable | tree.FlagRootEditable)

	sel := view.NewSelection([]tree.Range{
		tree.NewRange(tree.NewPosition(plain, 1), tree.NewPosition(plain, 2)),
		tree.NewRange(tree.NewPosition(inner, 1), tree.NewPosition(inner, 2)),
	}, false)
	data := &view.SelectionChangeData{NewSelection: sel}

	NewCorrector(nil).OnSelectionChange(nil, data)

	ranges := sel.Ranges()
	if len(ranges) != 2 {
		t.Fatalf("got %d ranges, want 2", len(ranges))
	}
	if !ranges[0].IsEqual(tree.NewRange(tree.NewPosition(plain, 1), tree.NewPosition(plain, 2))) {
		t.Errorf("first range = %v, want unchanged", ranges[0])
	}
	if !ranges[1].IsEqual(tree.RangeOn(w)) {
		t.Errorf("second range = %v, want range on widget", ranges[1])
	}
}
