package view

import "github.com/dshills/blockedit/internal/engine/tree"

// Selection is a view selection.
type Selection struct {
	tree.Selection
	fake      bool
	fakeLabel string
}

// NewSelection creates a non-fake selection from ranges.
func NewSelection(ranges []tree.Range, backward bool) *Selection {
	s := &Selection{}
	s.SetRanges(ranges, backward)
	return s
}

// SetFake marks the selection as fake with an accessible label. A non-fake
// selection has no label.
func (s *Selection) SetFake(fake bool, label string) {
	s.fake = fake
	if !fake {
		label = ""
	}
	s.fakeLabel = label
}

// IsFake returns true for fake selections.
func (s *Selection) IsFake() bool {
	return s.fake
}

// FakeLabel returns the accessible label of a fake selection.
func (s *Selection) FakeLabel() string {
	return s.fakeLabel
}

// SetFrom copies ranges, direction and fake state from other.
func (s *Selection) SetFrom(other *Selection) {
	s.SetTo(&other.Selection)
	s.fake = other.fake
	s.fakeLabel = other.fakeLabel
}

// Clone returns an independent copy.
func (s *Selection) Clone() *Selection {
	c := &Selection{}
	c.SetFrom(s)
	return c
}

// IsEqual compares ranges, direction and fake state.
func (s *Selection) IsEqual(other *Selection) bool {
	return s.Selection.IsEqual(&other.Selection) &&
		s.fake == other.fake &&
		s.fakeLabel == other.fakeLabel
}
