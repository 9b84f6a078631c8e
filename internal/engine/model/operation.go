package model

import (
	"fmt"

	"github.com/dshills/blockedit/internal/engine/tree"
)

// OperationType identifies a tree mutation.
type OperationType uint8

const (
	// OpInsert inserts a node into a parent.
	OpInsert OperationType = iota
	// OpRemove removes a node from its parent.
	OpRemove
	// OpInsertText inserts characters into a text node.
	OpInsertText
	// OpRemoveText removes characters from a text node.
	OpRemoveText
	// OpSetAttribute sets an element attribute.
	OpSetAttribute
	// OpRemoveAttribute removes an element attribute.
	OpRemoveAttribute
)

var opNames = map[OperationType]string{
	OpInsert:          "insert",
	OpRemove:          "remove",
	OpInsertText:      "insertText",
	OpRemoveText:      "removeText",
	OpSetAttribute:    "setAttribute",
	OpRemoveAttribute: "removeAttribute",
}

// String returns the operation name.
func (t OperationType) String() string {
	if name, ok := opNames[t]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", t)
}

// Operation records one applied mutation.
type Operation struct {
	Type OperationType
	// Node is the inserted or removed node, the text node for text
	// operations, or the element for attribute operations.
	Node *tree.Node
	// Parent and Index locate inserted and removed nodes.
	Parent *tree.Node
	Index  int
	// Offset and Text describe text operations.
	Offset int
	Text   string
	// Key, OldValue and NewValue describe attribute operations.
	Key      string
	OldValue string
	NewValue string
}

// String returns a compact description used in logs.
func (op Operation) String() string {
	switch op.Type {
	case OpInsert, OpRemove:
		return fmt.Sprintf("%s %s at %d in %s", op.Type, op.Node, op.Index, op.Parent)
	case OpInsertText, OpRemoveText:
		return fmt.Sprintf("%s %q at %d", op.Type, op.Text, op.Offset)
	default:
		return fmt.Sprintf("%s %s=%q on %s", op.Type, op.Key, op.NewValue, op.Node)
	}
}

// transform maps a position through an applied operation. A sticky
// position at an insertion point moves after the inserted content.
func transform(p tree.Position, op Operation, sticky bool) tree.Position {
	if p.IsZero() {
		return p
	}
	switch op.Type {
	case OpInsert:
		if p.Parent == op.Parent && (p.Offset > op.Index || sticky && p.Offset == op.Index) {
			p.Offset++
		}
	case OpRemove:
		if p.Parent == op.Node || op.Node.IsAncestorOf(p.Parent) {
			return tree.Position{Parent: op.Parent, Offset: op.Index}
		}
		if p.Parent == op.Parent && p.Offset > op.Index {
			p.Offset--
		}
	case OpInsertText:
		if p.Parent == op.Node && (p.Offset > op.Offset || sticky && p.Offset == op.Offset) {
			p.Offset += len([]rune(op.Text))
		}
	case OpRemoveText:
		if p.Parent == op.Node {
			n := len([]rune(op.Text))
			switch {
			case p.Offset >= op.Offset+n:
				p.Offset -= n
			case p.Offset > op.Offset:
				p.Offset = op.Offset
			}
		}
	}
	return tree.NewPosition(p.Parent, p.Offset)
}
