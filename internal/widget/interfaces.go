package widget

import (
	"github.com/dshills/blockedit/internal/engine/tree"
)

// Mapper resolves view elements to model elements.
type Mapper interface {
	ToModel(viewNode *tree.Node) *tree.Node
}

// Schema answers structural questions about model elements.
type Schema interface {
	IsObject(n *tree.Node) bool
	IsLimit(n *tree.Node) bool
	LimitElement(sel *tree.Selection) *tree.Node
}

// SelectionModifier moves model selections by one unit.
type SelectionModifier interface {
	Probe(sel *tree.Selection, dir tree.Direction) *tree.Node
	NearestSelectionRange(pos tree.Position, dir tree.Direction) (tree.Range, bool)
}
