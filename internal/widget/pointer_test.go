package widget

import (
	"testing"

	"github.com/dshills/blockedit/internal/engine/model"
	"github.com/dshills/blockedit/internal/event"
)

func TestMouseDownSelectsWidget(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		target []int
		want   string
		prev   bool
	}{
		{
			name:   "widget",
			data:   `[]<widget></widget>`,
			target: []int{0},
			want:   `[<widget></widget>]`,
			prev:   true,
		},
		{
			name:   "element inside widget",
			data:   `[]<widget></widget>`,
			target: []int{0, 0},
			want:   `[<widget></widget>]`,
			prev:   true,
		},
		{
			name:   "nested editable",
			data:   `<widget><nested>foo bar</nested></widget>`,
			target: []int{0, 0},
			want:   `<widget><nested>foo bar</nested></widget>`,
		},
		{
			name:   "non-widget element",
			data:   `<paragraph>[]foo bar</paragraph><widget></widget>`,
			target: []int{0},
			want:   `<paragraph>[]foo bar</paragraph><widget></widget>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t, tt.data)
			target := e.ViewNode(tt.target...)
			if target == nil {
				t.Fatalf("no view node at %v", tt.target)
			}

			if got := e.MouseDown(target, 10, 10); got != tt.prev {
				t.Errorf("MouseDown() prevented = %v, want %v", got, tt.prev)
			}
			if got := modelData(t, e); got != tt.want {
				t.Errorf("model = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMouseDownFocus(t *testing.T) {
	e := newTestEditor(t, `<widget></widget>`)
	focusEvents := 0
	e.View().FocusChange().On(func(*event.Info, bool) { focusEvents++ })

	e.MouseDown(e.ViewNode(0), 0, 0)
	if !e.View().IsFocused() || focusEvents != 1 {
		t.Fatalf("focused = %v after %d focus events, want focused once", e.View().IsFocused(), focusEvents)
	}

	e.MouseDown(e.ViewNode(0), 0, 0)
	if focusEvents != 1 {
		t.Errorf("focus events = %d, want no refocus", focusEvents)
	}
	if got := modelData(t, e); got != `[<widget></widget>]` {
		t.Errorf("model = %s", got)
	}
}

func TestMouseDownUnmappedWidget(t *testing.T) {
	e := newTestEditor(t, `<paragraph>[]foo</paragraph>`)
	stray := ToWidget(e.ViewNode(0))
	e.Mapper().UnbindView(stray)

	if e.MouseDown(stray, 0, 0) {
		t.Error("MouseDown() prevented on unmapped widget")
	}
}

func TestMouseDownIsOneChange(t *testing.T) {
	e := newTestEditor(t, `<paragraph>[]foo</paragraph><widget></widget>`)
	var changes []*model.Change
	e.Model().Changes().On(func(_ *event.Info, ch *model.Change) { changes = append(changes, ch) })

	e.MouseDown(e.ViewNode(1), 0, 0)
	if len(changes) != 1 {
		t.Fatalf("got %d change notifications, want 1", len(changes))
	}
	if !changes[0].SelectionChanged || len(changes[0].Operations) != 0 {
		t.Errorf("change = %+v, want a selection-only change", changes[0])
	}
	if got := modelData(t, e); got != `<paragraph>foo</paragraph>[<widget></widget>]` {
		t.Errorf("model = %s", got)
	}
}
