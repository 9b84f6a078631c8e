package widget

import (
	"github.com/dshills/blockedit/internal/app"
	"github.com/dshills/blockedit/internal/engine/model"
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/engine/view"
	"github.com/dshills/blockedit/internal/event"
	"github.com/dshills/blockedit/internal/input/key"
)

// Keyboard handles keys whose native behavior is wrong around objects.
type Keyboard struct {
	model     *model.Document
	schema    Schema
	modifier  SelectionModifier
	selectAll key.Event
	readOnly  func() bool
	logger    *app.Logger
}

// KeyboardConfig configures a Keyboard.
type KeyboardConfig struct {
	Model    *model.Document
	Schema   Schema
	Modifier SelectionModifier
	// SelectAll is the keystroke selecting the content of a nested
	// editable.
	SelectAll key.Event
	// ReadOnly reports whether deletion is disabled. Nil means never.
	ReadOnly func() bool
	Logger   *app.Logger
}

// NewKeyboard creates a keyboard handler.
func NewKeyboard(cfg KeyboardConfig) *Keyboard {
	k := &Keyboard{
		model:     cfg.Model,
		schema:    cfg.Schema,
		modifier:  cfg.Modifier,
		selectAll: cfg.SelectAll,
		readOnly:  cfg.ReadOnly,
		logger:    cfg.Logger,
	}
	if k.readOnly == nil {
		k.readOnly = func() bool { return false }
	}
	if k.logger == nil {
		k.logger = app.NopLogger()
	}
	return k
}

// OnKeyDown is the keydown listener. Handled keys are prevented and
// stopped so lower-priority listeners never see them.
func (k *Keyboard) OnKeyDown(info *event.Info, data *view.KeyEventData) {
	forward := data.Key.IsForward()

	var handled bool
	switch {
	case data.Key.IsDeleteKey():
		handled = k.handleDelete(forward)
	case data.Key.IsArrowKey():
		handled = k.handleArrow(forward)
	case data.Event.Equals(k.selectAll):
		handled = k.selectNestedContent()
	}

	if handled {
		data.PreventDefault()
		info.Stop()
	}
}

func direction(forward bool) tree.Direction {
	if forward {
		return tree.Forward
	}
	return tree.Backward
}

// handleDelete selects the object next to a collapsed selection instead of
// deleting into it. Empty containers left behind are removed.
func (k *Keyboard) handleDelete(forward bool) bool {
	if k.readOnly() {
		return false
	}
	sel := k.model.Selection()
	if !sel.IsCollapsed() {
		return false
	}
	obj := k.objectNextToSelection(forward)
	if obj == nil {
		return false
	}

	k.model.Change(func(w *model.Writer) {
		node := w.Selection().Anchor().Container()
		for node != nil && !node.IsRoot() && node.IsEmpty() {
			parent := node.Parent()
			w.Remove(node)
			node = parent
		}
		w.SetSelectionOn(obj)
	})
	k.logger.Debug("object selected by delete", "object", obj.Name(), "forward", forward)
	return true
}

// handleArrow moves off a selected object, or onto an adjacent one.
func (k *Keyboard) handleArrow(forward bool) bool {
	sel := k.model.Selection()
	dir := direction(forward)

	if obj := sel.SelectedElement(); obj != nil && k.schema.IsObject(obj) {
		pos := sel.FirstPosition()
		if forward {
			pos = sel.LastPosition()
		}
		if r, ok := k.modifier.NearestSelectionRange(pos, dir); ok {
			k.model.Change(func(w *model.Writer) {
				w.SetSelection([]tree.Range{r}, false)
			})
		}
		// Without a place to go the selection stays on the object.
		return true
	}

	if !sel.IsCollapsed() {
		return false
	}
	obj := k.objectNextToSelection(forward)
	if obj == nil {
		return false
	}
	k.model.Change(func(w *model.Writer) {
		w.SetSelectionOn(obj)
	})
	return true
}

// selectNestedContent selects the content of the limit element holding
// the selection when that is not the whole root.
func (k *Keyboard) selectNestedContent() bool {
	sel := k.model.Selection()
	first, ok := sel.FirstRange()
	if !ok {
		return false
	}
	limit := k.schema.LimitElement(sel)
	if limit == nil || limit == first.Root() {
		return false
	}
	content := tree.RangeIn(limit)
	if sel.RangeCount() == 1 && first.IsEqual(content) {
		return false
	}

	k.model.Change(func(w *model.Writer) {
		w.SetSelectionIn(limit)
	})
	return true
}

// objectNextToSelection returns the object a one-unit move in the
// direction would pass over, or nil.
func (k *Keyboard) objectNextToSelection(forward bool) *tree.Node {
	n := k.modifier.Probe(k.model.Selection(), direction(forward))
	if n.IsElement() && k.schema.IsObject(n) {
		return n
	}
	return nil
}
