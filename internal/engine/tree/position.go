package tree

import (
	"fmt"
	"strings"
)

// Relation is the result of comparing two positions.
type Relation int

const (
	// RelationBefore means the first position precedes the second.
	RelationBefore Relation = iota - 1
	// RelationSame means the positions are equal.
	RelationSame
	// RelationAfter means the first position follows the second.
	RelationAfter
	// RelationDifferent means the positions are in different trees.
	RelationDifferent
)

// Position is a location between nodes or inside a text node.
//
// The zero value is an invalid position (see IsZero).
type Position struct {
	Parent *Node
	Offset int
}

// NewPosition creates a normalized position. A text offset on a boundary
// of its text node is moved to the element level.
func NewPosition(parent *Node, offset int) Position {
	if parent == nil {
		return Position{}
	}
	if parent.IsText() && parent.parent != nil {
		if offset <= 0 {
			return PositionBefore(parent)
		}
		if offset >= parent.Len() {
			return PositionAfter(parent)
		}
	}
	if offset < 0 {
		offset = 0
	}
	if offset > parent.Len() {
		offset = parent.Len()
	}
	return Position{Parent: parent, Offset: offset}
}

// PositionBefore returns the position just before n.
func PositionBefore(n *Node) Position {
	if n == nil || n.parent == nil {
		return Position{}
	}
	return Position{Parent: n.parent, Offset: n.Index()}
}

// PositionAfter returns the position just after n.
func PositionAfter(n *Node) Position {
	if n == nil || n.parent == nil {
		return Position{}
	}
	return Position{Parent: n.parent, Offset: n.Index() + 1}
}

// PositionAtStart returns the first position inside el.
func PositionAtStart(el *Node) Position {
	return NewPosition(el, 0)
}

// PositionAtEnd returns the last position inside el.
func PositionAtEnd(el *Node) Position {
	return NewPosition(el, el.Len())
}

// IsZero returns true for the zero position.
func (p Position) IsZero() bool {
	return p.Parent == nil
}

// InText returns true if the position lies strictly inside a text node.
func (p Position) InText() bool {
	return p.Parent.IsText()
}

// TextNode returns the text node containing the position, or nil.
func (p Position) TextNode() *Node {
	if p.InText() {
		return p.Parent
	}
	return nil
}

// Container returns the element containing the position. For positions
// inside text this is the text node's parent.
func (p Position) Container() *Node {
	if p.InText() {
		return p.Parent.parent
	}
	return p.Parent
}

// NodeBefore returns the node directly before the position. Positions
// inside text have no node before.
func (p Position) NodeBefore() *Node {
	if p.Parent == nil || p.InText() {
		return nil
	}
	return p.Parent.Child(p.Offset - 1)
}

// NodeAfter returns the node directly after the position. Positions
// inside text have no node after.
func (p Position) NodeAfter() *Node {
	if p.Parent == nil || p.InText() {
		return nil
	}
	return p.Parent.Child(p.Offset)
}

// Root returns the root of the position's tree.
func (p Position) Root() *Node {
	if p.Parent == nil {
		return nil
	}
	return p.Parent.Root()
}

// Path returns the child index path of the position from its root.
func (p Position) Path() []int {
	return append(p.Parent.Path(), p.Offset)
}

// IsAtStart returns true if nothing precedes the position in its container.
func (p Position) IsAtStart() bool {
	return !p.InText() && p.Offset == 0
}

// IsAtEnd returns true if nothing follows the position in its container.
func (p Position) IsAtEnd() bool {
	return !p.InText() && p.Parent != nil && p.Offset == p.Parent.Len()
}

// Compare returns the relation of p to other.
func (p Position) Compare(other Position) Relation {
	if p == other {
		return RelationSame
	}
	if p.Parent == nil || other.Parent == nil || p.Root() != other.Root() {
		return RelationDifferent
	}
	a, b := p.Path(), other.Path()
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return RelationBefore
		}
		if a[i] > b[i] {
			return RelationAfter
		}
	}
	switch {
	case len(a) < len(b):
		return RelationBefore
	case len(a) > len(b):
		return RelationAfter
	}
	return RelationSame
}

// IsEqual returns true if both positions denote the same location.
func (p Position) IsEqual(other Position) bool {
	return p.Compare(other) == RelationSame
}

// IsBefore returns true if p precedes other.
func (p Position) IsBefore(other Position) bool {
	return p.Compare(other) == RelationBefore
}

// IsAfter returns true if p follows other.
func (p Position) IsAfter(other Position) bool {
	return p.Compare(other) == RelationAfter
}

// String renders the position as "path:offset" for logs.
func (p Position) String() string {
	if p.Parent == nil {
		return "<none>"
	}
	parts := make([]string, 0, 4)
	for _, i := range p.Path() {
		parts = append(parts, fmt.Sprint(i))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
