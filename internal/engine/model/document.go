package model

import (
	"github.com/dshills/blockedit/internal/engine/schema"
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/event"
)

// MainRoot is the name of the default root.
const MainRoot = "main"

// Change describes everything one outermost change block did.
type Change struct {
	Operations       []Operation
	SelectionChanged bool
	// Reset is set when a root's content was replaced wholesale.
	Reset   bool
	Version int
}

// Document is the model document.
type Document struct {
	roots     map[string]*tree.Node
	rootNames []string
	selection *tree.Selection
	changes   *event.Emitter[*Change]
	version   int

	depth   int
	pending *Change
	before  *tree.Selection
}

// NewDocument creates a document with the main root.
func NewDocument() *Document {
	d := &Document{
		roots:     make(map[string]*tree.Node),
		selection: tree.NewSelection(nil, false),
		changes:   event.NewEmitter[*Change]("model:change"),
	}
	d.CreateRoot(MainRoot)
	return d
}

// CreateRoot creates a root, or returns the existing one.
func (d *Document) CreateRoot(name string) *tree.Node {
	if root, ok := d.roots[name]; ok {
		return root
	}
	root := tree.NewElement(schema.RootName)
	root.SetProp("rootName", name)
	d.roots[name] = root
	d.rootNames = append(d.rootNames, name)
	return root
}

// Root returns a root by name.
func (d *Document) Root(name string) *tree.Node {
	return d.roots[name]
}

// RootNames returns root names in creation order.
func (d *Document) RootNames() []string {
	return append([]string(nil), d.rootNames...)
}

// Selection returns the document selection. Modify it only through a
// Writer.
func (d *Document) Selection() *tree.Selection {
	return d.selection
}

// Changes returns the emitter notified after each outermost change block.
func (d *Document) Changes() *event.Emitter[*Change] {
	return d.changes
}

// Version returns the number of notified change blocks.
func (d *Document) Version() int {
	return d.version
}

// InChange returns true while a change block is running.
func (d *Document) InChange() bool {
	return d.depth > 0
}

// Change runs fn inside a change block. Nested calls join the outer block.
func (d *Document) Change(fn func(w *Writer)) {
	d.depth++
	if d.depth == 1 {
		d.pending = &Change{}
		d.before = d.selection.Clone()
	}
	func() {
		defer func() { d.depth-- }()
		fn(&Writer{doc: d})
	}()
	if d.depth > 0 {
		return
	}

	ch := d.pending
	d.pending = nil
	ch.SelectionChanged = ch.SelectionChanged || !d.before.IsEqual(d.selection)
	if len(ch.Operations) == 0 && !ch.SelectionChanged && !ch.Reset {
		return
	}
	d.version++
	ch.Version = d.version
	d.changes.Fire(ch)
}

// Reset replaces the content of a root and the selection in a single change.
func (d *Document) Reset(rootName string, children []*tree.Node, ranges []tree.Range, backward bool) {
	root := d.CreateRoot(rootName)
	d.Change(func(w *Writer) {
		for root.ChildCount() > 0 {
			root.RemoveChild(0)
		}
		root.AppendChild(children...)
		d.selection.SetRanges(ranges, backward)
		d.pending.Reset = true
		d.pending.SelectionChanged = true
	})
}

func (d *Document) apply(op Operation) {
	switch op.Type {
	case OpInsert:
		op.Parent.InsertChild(op.Index, op.Node)
	case OpRemove:
		op.Parent.RemoveChild(op.Index)
	case OpInsertText:
		data := []rune(op.Node.Data())
		ins := []rune(op.Text)
		out := make([]rune, 0, len(data)+len(ins))
		out = append(append(append(out, data[:op.Offset]...), ins...), data[op.Offset:]...)
		op.Node.SetData(string(out))
	case OpRemoveText:
		data := []rune(op.Node.Data())
		end := op.Offset + len([]rune(op.Text))
		op.Node.SetData(string(append(data[:op.Offset:op.Offset], data[end:]...)))
	case OpSetAttribute:
		op.Node.SetAttr(op.Key, op.NewValue)
	case OpRemoveAttribute:
		op.Node.RemoveAttr(op.Key)
	}

	ranges := d.selection.Ranges()
	for i, r := range ranges {
		ranges[i] = tree.NewRange(transform(r.Start, op, true), transform(r.End, op, r.IsCollapsed()))
	}
	d.selection.SetRanges(ranges, d.selection.IsBackward())

	d.pending.Operations = append(d.pending.Operations, op)
}
