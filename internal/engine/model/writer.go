package model

import (
	"github.com/dshills/blockedit/internal/engine/tree"
)

// Writer performs mutations inside a change block.
type Writer struct {
	doc *Document
}

// Selection returns the document selection.
func (w *Writer) Selection() *tree.Selection {
	return w.doc.selection
}

// Insert inserts n at pos. A position inside text splits the text node.
func (w *Writer) Insert(n *tree.Node, pos tree.Position) {
	if pos.IsZero() {
		return
	}
	if pos.InText() {
		pos = w.splitText(pos)
	}
	w.doc.apply(Operation{Type: OpInsert, Node: n, Parent: pos.Parent, Index: pos.Offset})
}

// splitText breaks the text node at pos and returns the element-level
// position between the halves.
func (w *Writer) splitText(pos tree.Position) tree.Position {
	text := pos.Parent
	data := []rune(text.Data())
	tail := string(data[pos.Offset:])
	parent, index := text.Parent(), text.Index()

	w.doc.apply(Operation{Type: OpRemoveText, Node: text, Offset: pos.Offset, Text: tail})
	w.doc.apply(Operation{Type: OpInsert, Node: tree.NewText(tail), Parent: parent, Index: index + 1})
	return tree.Position{Parent: parent, Offset: index + 1}
}

// InsertText inserts characters at pos, extending an adjacent text node
// when there is one. It returns the position right after the inserted
// characters.
func (w *Writer) InsertText(s string, pos tree.Position) tree.Position {
	if s == "" || pos.IsZero() {
		return pos
	}
	n := len([]rune(s))
	if text := pos.TextNode(); text != nil {
		w.doc.apply(Operation{Type: OpInsertText, Node: text, Offset: pos.Offset, Text: s})
		return tree.NewPosition(text, pos.Offset+n)
	}
	if prev := pos.NodeBefore(); prev.IsText() {
		w.doc.apply(Operation{Type: OpInsertText, Node: prev, Offset: prev.Len(), Text: s})
		return tree.PositionAfter(prev)
	}
	if next := pos.NodeAfter(); next.IsText() {
		w.doc.apply(Operation{Type: OpInsertText, Node: next, Offset: 0, Text: s})
		return tree.NewPosition(next, n)
	}
	text := tree.NewText(s)
	w.Insert(text, pos)
	return tree.PositionAfter(text)
}

// Remove detaches n from the tree.
func (w *Writer) Remove(n *tree.Node) {
	parent := n.Parent()
	if parent == nil {
		return
	}
	w.doc.apply(Operation{Type: OpRemove, Node: n, Parent: parent, Index: n.Index()})
}

// Move relocates n to pos.
func (w *Writer) Move(n *tree.Node, pos tree.Position) {
	if pos.InText() {
		pos = w.splitText(pos)
	}
	// Removing n may shift the target offset.
	target := tree.Position{Parent: pos.Parent, Offset: pos.Offset}
	if n.Parent() == target.Parent && n.Index() < target.Offset {
		target.Offset--
	}
	w.Remove(n)
	w.doc.apply(Operation{Type: OpInsert, Node: n, Parent: target.Parent, Index: target.Offset})
}

// RemoveRange removes the content of a flat range. Ranges spanning
// sibling containers have the containers joined afterwards. It returns
// the position where the removed content was.
func (w *Writer) RemoveRange(r tree.Range) tree.Position {
	if r.IsCollapsed() {
		return r.Start
	}
	if r.Start.Container() == r.End.Container() {
		return w.removeFlat(r.Start, r.End)
	}

	startEl, endEl := r.Start.Container(), r.End.Container()
	pos := w.removeFlat(r.Start, tree.PositionAtEnd(startEl))
	w.removeFlat(tree.PositionAtStart(endEl), r.End)

	if startEl.Parent() != nil && startEl.Parent() == endEl.Parent() {
		for startEl.Index()+1 < endEl.Index() {
			w.Remove(startEl.Parent().Child(startEl.Index() + 1))
		}
		if join := w.Merge(endEl); !join.IsZero() {
			return join
		}
	}
	return pos
}

// removeFlat removes everything between two positions in one container
// and returns the normalized start.
func (w *Writer) removeFlat(start, end tree.Position) tree.Position {
	if !start.IsBefore(end) {
		return start
	}
	if start.InText() && start.Parent == end.Parent {
		text := start.Parent
		data := []rune(text.Data())
		w.doc.apply(Operation{Type: OpRemoveText, Node: text, Offset: start.Offset, Text: string(data[start.Offset:end.Offset])})
		return tree.NewPosition(text, start.Offset)
	}

	container := start.Container()
	result := start
	if start.InText() {
		text := start.Parent
		data := []rune(text.Data())
		w.doc.apply(Operation{Type: OpRemoveText, Node: text, Offset: start.Offset, Text: string(data[start.Offset:])})
		start = tree.PositionAfter(text)
		result = start
	}
	if end.InText() {
		text := end.Parent
		data := []rune(text.Data())
		w.doc.apply(Operation{Type: OpRemoveText, Node: text, Offset: 0, Text: string(data[:end.Offset])})
		end = tree.PositionBefore(text)
	}
	for i := end.Offset - 1; i >= start.Offset; i-- {
		w.Remove(container.Child(i))
	}
	return result
}

// Merge joins el into its previous sibling and returns the position where
// the two met.
func (w *Writer) Merge(el *tree.Node) tree.Position {
	parent := el.Parent()
	if parent == nil || el.Index() == 0 {
		return tree.Position{}
	}
	prev := parent.Child(el.Index() - 1)
	join := tree.Position{Parent: prev, Offset: prev.ChildCount()}
	for el.ChildCount() > 0 {
		w.Move(el.Child(0), tree.PositionAtEnd(prev))
	}
	w.Remove(el)

	before, after := join.NodeBefore(), join.NodeAfter()
	if before.IsText() && after.IsText() {
		offset := before.Len()
		w.doc.apply(Operation{Type: OpInsertText, Node: before, Offset: offset, Text: after.Data()})
		w.Remove(after)
		join = tree.NewPosition(before, offset)
	}
	return join
}

// SetAttribute sets an attribute on el.
func (w *Writer) SetAttribute(el *tree.Node, key, value string) {
	old, _ := el.Attr(key)
	w.doc.apply(Operation{Type: OpSetAttribute, Node: el, Key: key, OldValue: old, NewValue: value})
}

// RemoveAttribute removes an attribute from el.
func (w *Writer) RemoveAttribute(el *tree.Node, key string) {
	old, ok := el.Attr(key)
	if !ok {
		return
	}
	w.doc.apply(Operation{Type: OpRemoveAttribute, Node: el, Key: key, OldValue: old})
}

// SetSelection replaces the selection ranges.
func (w *Writer) SetSelection(ranges []tree.Range, backward bool) {
	w.doc.selection.SetRanges(ranges, backward)
}

// SetSelectionOn selects exactly n.
func (w *Writer) SetSelectionOn(n *tree.Node) {
	w.doc.selection.SetOn(n)
}

// SetSelectionIn selects all of el's content.
func (w *Writer) SetSelectionIn(el *tree.Node) {
	w.doc.selection.SetIn(el)
}

// SetSelectionAt collapses the selection at pos.
func (w *Writer) SetSelectionAt(pos tree.Position) {
	w.doc.selection.SetCollapsed(pos)
}
