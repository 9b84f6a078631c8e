package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(w *Walker) []string {
	var got []string
	for {
		step, ok := w.Next()
		if !ok {
			return got
		}
		name := step.Item.Name()
		if step.Item.IsText() {
			name = step.Item.Data()
		}
		got = append(got, step.Type.String()+":"+name)
	}
}

func TestWalkerForward(t *testing.T) {
	root, _, _, _ := sample()
	root.AppendChild(NewElement("widget"))

	got := collect(NewWalker(WalkerOptions{Start: PositionAtStart(root)}))
	want := []string{
		"elementStart:paragraph",
		"text:foo",
		"elementStart:image",
		"elementEnd:image",
		"elementEnd:paragraph",
		"elementStart:widget",
		"elementEnd:widget",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("forward walk mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkerBackwardShallow(t *testing.T) {
	root, _, _, _ := sample()
	root.AppendChild(NewElement("widget"))

	got := collect(NewWalker(WalkerOptions{
		Direction: Backward,
		Start:     PositionAtEnd(root),
		Shallow:   true,
	}))
	want := []string{"elementEnd:widget", "elementEnd:paragraph"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("backward walk mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkerSingleCharactersWithinBoundaries(t *testing.T) {
	_, _, text, _ := sample()
	r := NewRange(NewPosition(text, 1), PositionAfter(text))

	w := NewWalker(WalkerOptions{Boundaries: &r, SingleCharacters: true})
	var steps []Step
	for {
		s, ok := w.Next()
		if !ok {
			break
		}
		steps = append(steps, s)
	}
	if len(steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(steps))
	}
	if steps[0].Next != NewPosition(text, 2) {
		t.Errorf("first step ends at %v", steps[0].Next)
	}
	if steps[1].Next != r.End {
		t.Errorf("last step ends at %v, want %v", steps[1].Next, r.End)
	}
}

func TestWalkerBackwardLeavesElement(t *testing.T) {
	_, p, _, _ := sample()

	w := NewWalker(WalkerOptions{Direction: Backward, Start: PositionAtStart(p)})
	step, ok := w.Next()
	if !ok {
		t.Fatal("expected a step")
	}
	if step.Type != StepElementStart || step.Item != p {
		t.Errorf("step = %v %v, want elementStart paragraph", step.Type, step.Item)
	}
	if _, ok := w.Next(); ok {
		t.Error("walk should end at the root boundary")
	}
}

func TestWalkerSkip(t *testing.T) {
	root, _, _, _ := sample()
	w := NewWalker(WalkerOptions{Start: PositionAtStart(root)})
	w.Skip(func(Step) bool { return true })
	if w.Position() != PositionAtEnd(root) {
		t.Errorf("Skip() left walker at %v", w.Position())
	}
}
