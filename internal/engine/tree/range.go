package tree

// Range is the span between two positions. Start never follows End.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range, swapping the ends if needed.
func NewRange(start, end Position) Range {
	if end.IsBefore(start) {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// CollapsedRange creates an empty range at p.
func CollapsedRange(p Position) Range {
	return Range{Start: p, End: p}
}

// RangeOn returns the range that contains exactly n.
func RangeOn(n *Node) Range {
	return Range{Start: PositionBefore(n), End: PositionAfter(n)}
}

// RangeIn returns the range covering all of el's content.
func RangeIn(el *Node) Range {
	return Range{Start: PositionAtStart(el), End: PositionAtEnd(el)}
}

// IsCollapsed returns true if the range is empty.
func (r Range) IsCollapsed() bool {
	return r.Start == r.End
}

// IsFlat returns true if both ends share the same parent.
func (r Range) IsFlat() bool {
	return r.Start.Parent == r.End.Parent
}

// Root returns the root of the range's tree.
func (r Range) Root() *Node {
	return r.Start.Root()
}

// IsEqual returns true if both ranges have equal ends.
func (r Range) IsEqual(other Range) bool {
	return r.Start == other.Start && r.End == other.End
}

// ContainsPosition returns true if p lies strictly inside the range.
func (r Range) ContainsPosition(p Position) bool {
	return p.IsAfter(r.Start) && p.IsBefore(r.End)
}

// ContainsRange returns true if other lies inside the range. Shared ends
// are allowed.
func (r Range) ContainsRange(other Range) bool {
	return !other.Start.IsBefore(r.Start) && !other.End.IsAfter(r.End)
}

// CommonAncestor returns the nearest element containing both ends.
func (r Range) CommonAncestor() *Node {
	return CommonAncestor(r.Start.Container(), r.End.Container())
}

// Items returns every node the range passes over or into, in document
// order and without duplicates.
func (r Range) Items() []*Node {
	var items []*Node
	seen := make(map[*Node]bool)
	w := NewWalker(WalkerOptions{Boundaries: &r})
	for {
		step, ok := w.Next()
		if !ok {
			break
		}
		if !seen[step.Item] {
			seen[step.Item] = true
			items = append(items, step.Item)
		}
	}
	return items
}

// String renders the range for logs.
func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}
