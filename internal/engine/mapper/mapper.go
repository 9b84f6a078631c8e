// Package mapper keeps the bidirectional binding between model and view
// nodes and translates positions, ranges and selections between the trees.
package mapper

import (
	"github.com/dshills/blockedit/internal/engine/tree"
)

// Mapper binds model nodes to view nodes.
type Mapper struct {
	modelToView map[*tree.Node]*tree.Node
	viewToModel map[*tree.Node]*tree.Node
}

// New creates an empty mapper.
func New() *Mapper {
	return &Mapper{
		modelToView: make(map[*tree.Node]*tree.Node),
		viewToModel: make(map[*tree.Node]*tree.Node),
	}
}

// Bind associates a model node with a view node.
func (m *Mapper) Bind(modelNode, viewNode *tree.Node) {
	m.modelToView[modelNode] = viewNode
	m.viewToModel[viewNode] = modelNode
}

// UnbindView removes the bindings of a view node and its descendants.
func (m *Mapper) UnbindView(viewNode *tree.Node) {
	if modelNode, ok := m.viewToModel[viewNode]; ok {
		delete(m.modelToView, modelNode)
		delete(m.viewToModel, viewNode)
	}
	for _, c := range viewNode.Children() {
		m.UnbindView(c)
	}
}

// Clear removes every binding.
func (m *Mapper) Clear() {
	m.modelToView = make(map[*tree.Node]*tree.Node)
	m.viewToModel = make(map[*tree.Node]*tree.Node)
}

// ToView returns the view node bound to a model node, or nil.
func (m *Mapper) ToView(modelNode *tree.Node) *tree.Node {
	return m.modelToView[modelNode]
}

// ToModel returns the model node bound to a view node, or nil.
func (m *Mapper) ToModel(viewNode *tree.Node) *tree.Node {
	return m.viewToModel[viewNode]
}

// ToViewPosition maps a model position to the view. It returns the zero
// position when the containing element is not bound.
func (m *Mapper) ToViewPosition(p tree.Position) tree.Position {
	if p.IsZero() {
		return p
	}
	if text := p.TextNode(); text != nil {
		if vt := m.ToView(text); vt != nil {
			return tree.NewPosition(vt, p.Offset)
		}
		p = tree.PositionBefore(text)
	}

	container := m.ToView(p.Parent)
	if container == nil {
		return tree.Position{}
	}
	// Anchor on the nearest bound sibling so view-only children stay put.
	if next := m.ToView(p.Parent.Child(p.Offset)); next != nil && next.Parent() == container {
		return tree.PositionBefore(next)
	}
	for i := p.Offset - 1; i >= 0; i-- {
		if prev := m.ToView(p.Parent.Child(i)); prev != nil && prev.Parent() == container {
			return tree.PositionAfter(prev)
		}
	}
	for i := p.Offset + 1; i < p.Parent.ChildCount(); i++ {
		if next := m.ToView(p.Parent.Child(i)); next != nil && next.Parent() == container {
			return tree.PositionBefore(next)
		}
	}
	return tree.Position{Parent: container, Offset: 0}
}

// ToModelPosition maps a view position to the model. Positions inside
// unbound view elements are mapped to the nearest bound ancestor.
func (m *Mapper) ToModelPosition(p tree.Position) tree.Position {
	if p.IsZero() {
		return p
	}
	if text := p.TextNode(); text != nil {
		if mt := m.ToModel(text); mt != nil {
			return tree.NewPosition(mt, p.Offset)
		}
		p = tree.PositionBefore(text)
	}

	for p.Parent != nil && m.ToModel(p.Parent) == nil {
		if p.Parent.Parent() == nil {
			return tree.Position{}
		}
		p = tree.PositionBefore(p.Parent)
	}
	container := p.Parent
	offset := 0
	for i := 0; i < p.Offset; i++ {
		if m.ToModel(container.Child(i)) != nil {
			offset++
		}
	}
	return tree.NewPosition(m.ToModel(container), offset)
}

// ToViewRange maps a model range to the view.
func (m *Mapper) ToViewRange(r tree.Range) tree.Range {
	return tree.Range{Start: m.ToViewPosition(r.Start), End: m.ToViewPosition(r.End)}
}

// ToModelRange maps a view range to the model.
func (m *Mapper) ToModelRange(r tree.Range) tree.Range {
	return tree.NewRange(m.ToModelPosition(r.Start), m.ToModelPosition(r.End))
}

// ToViewRanges maps every range of a model selection, dropping ranges that
// cannot be mapped.
func (m *Mapper) ToViewRanges(sel *tree.Selection) []tree.Range {
	var ranges []tree.Range
	for _, r := range sel.Ranges() {
		vr := m.ToViewRange(r)
		if vr.Start.IsZero() || vr.End.IsZero() {
			continue
		}
		ranges = append(ranges, vr)
	}
	return ranges
}

// ToModelRanges maps every range of a view selection, dropping ranges that
// cannot be mapped.
func (m *Mapper) ToModelRanges(sel *tree.Selection) []tree.Range {
	var ranges []tree.Range
	for _, r := range sel.Ranges() {
		mr := m.ToModelRange(r)
		if mr.Start.IsZero() || mr.End.IsZero() {
			continue
		}
		ranges = append(ranges, mr)
	}
	return ranges
}
