package view

import (
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/input/key"
	"github.com/dshills/blockedit/internal/input/pointer"
)

// DomEventData is the common payload of observed input events.
type DomEventData struct {
	Document *Document
	Target   *tree.Node

	prevented bool
}

// PreventDefault suppresses the default action of the input.
func (d *DomEventData) PreventDefault() {
	d.prevented = true
}

// IsDefaultPrevented returns true if PreventDefault was called.
func (d *DomEventData) IsDefaultPrevented() bool {
	return d.prevented
}

// KeyEventData is the payload of key events.
type KeyEventData struct {
	DomEventData
	key.Event
}

// PointerEventData is the payload of pointer events.
type PointerEventData struct {
	DomEventData
	pointer.Event
}

// SelectionChangeData is the payload of selection change events.
// Listeners may modify NewSelection before it is applied.
type SelectionChangeData struct {
	Document     *Document
	OldSelection *Selection
	NewSelection *Selection
}
