package tree

// Selection is an ordered set of ranges with a direction flag. The anchor
// and focus are taken from the last range.
type Selection struct {
	ranges   []Range
	backward bool
}

// NewSelection creates a selection from ranges.
func NewSelection(ranges []Range, backward bool) *Selection {
	s := &Selection{}
	s.SetRanges(ranges, backward)
	return s
}

// SetRanges replaces the ranges and direction.
func (s *Selection) SetRanges(ranges []Range, backward bool) {
	s.ranges = append([]Range(nil), ranges...)
	s.backward = backward && len(ranges) > 0
}

// SetTo copies ranges and direction from another selection.
func (s *Selection) SetTo(other *Selection) {
	s.SetRanges(other.ranges, other.backward)
}

// SetOn selects exactly the node n.
func (s *Selection) SetOn(n *Node) {
	s.SetRanges([]Range{RangeOn(n)}, false)
}

// SetIn selects all of el's content.
func (s *Selection) SetIn(el *Node) {
	s.SetRanges([]Range{RangeIn(el)}, false)
}

// SetCollapsed places a caret at p.
func (s *Selection) SetCollapsed(p Position) {
	s.SetRanges([]Range{CollapsedRange(p)}, false)
}

// Clear removes all ranges.
func (s *Selection) Clear() {
	s.SetRanges(nil, false)
}

// Ranges returns a copy of the ranges.
func (s *Selection) Ranges() []Range {
	return append([]Range(nil), s.ranges...)
}

// RangeCount returns the number of ranges.
func (s *Selection) RangeCount() int {
	return len(s.ranges)
}

// IsBackward returns true if the focus precedes the anchor.
func (s *Selection) IsBackward() bool {
	return s.backward
}

// Anchor returns the fixed end of the selection.
func (s *Selection) Anchor() Position {
	r, ok := s.LastRange()
	if !ok {
		return Position{}
	}
	if s.backward {
		return r.End
	}
	return r.Start
}

// Focus returns the moving end of the selection.
func (s *Selection) Focus() Position {
	r, ok := s.LastRange()
	if !ok {
		return Position{}
	}
	if s.backward {
		return r.Start
	}
	return r.End
}

// IsCollapsed returns true for a single collapsed range.
func (s *Selection) IsCollapsed() bool {
	return len(s.ranges) == 1 && s.ranges[0].IsCollapsed()
}

// LastRange returns the most recently added range.
func (s *Selection) LastRange() (Range, bool) {
	if len(s.ranges) == 0 {
		return Range{}, false
	}
	return s.ranges[len(s.ranges)-1], true
}

// FirstRange returns the range that starts earliest.
func (s *Selection) FirstRange() (Range, bool) {
	if len(s.ranges) == 0 {
		return Range{}, false
	}
	first := s.ranges[0]
	for _, r := range s.ranges[1:] {
		if r.Start.IsBefore(first.Start) {
			first = r
		}
	}
	return first, true
}

// FirstPosition returns the earliest position of the selection.
func (s *Selection) FirstPosition() Position {
	r, _ := s.FirstRange()
	return r.Start
}

// LastPosition returns the latest position of the selection.
func (s *Selection) LastPosition() Position {
	if len(s.ranges) == 0 {
		return Position{}
	}
	last := s.ranges[0].End
	for _, r := range s.ranges[1:] {
		if r.End.IsAfter(last) {
			last = r.End
		}
	}
	return last
}

// SelectedElement returns the element when the selection is a single range
// containing exactly one element.
func (s *Selection) SelectedElement() *Node {
	if len(s.ranges) != 1 {
		return nil
	}
	r := s.ranges[0]
	if !r.IsFlat() || r.Start.InText() || r.End.Offset != r.Start.Offset+1 {
		return nil
	}
	n := r.Start.NodeAfter()
	if !n.IsElement() {
		return nil
	}
	return n
}

// IsEqual returns true if both selections have the same ranges and
// direction.
func (s *Selection) IsEqual(other *Selection) bool {
	if len(s.ranges) != len(other.ranges) || s.backward != other.backward {
		return false
	}
	for i := range s.ranges {
		if !s.ranges[i].IsEqual(other.ranges[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s *Selection) Clone() *Selection {
	return NewSelection(s.ranges, s.backward)
}
