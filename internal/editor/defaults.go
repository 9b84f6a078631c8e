package editor

import (
	"github.com/dshills/blockedit/internal/engine/model"
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/engine/view"
	"github.com/dshills/blockedit/internal/event"
	"github.com/dshills/blockedit/internal/input/key"
)

// installDefaults subscribes the built-in keyboard behaviors. They run at
// normal priority so features listening at high priority can stop them.
func (e *Editor) installDefaults() error {
	selectAll, err := e.config.SelectAllKeystroke()
	if err != nil {
		return err
	}
	e.subs = append(e.subs, e.view.KeyDown().On(func(info *event.Info, data *view.KeyEventData) {
		if data.IsDefaultPrevented() {
			return
		}
		var handled bool
		switch {
		case data.Key.IsDeleteKey():
			handled = e.deleteContent(data.Key.IsForward())
		case data.Key.IsArrowKey():
			handled = e.moveCaret(data.Key.IsForward(), data.Modifiers.HasShift())
		case data.Event.Equals(selectAll):
			handled = e.selectRoot()
		case data.IsRune() && !data.IsModified():
			handled = e.typeRune(data.Rune)
		}
		if handled {
			data.PreventDefault()
		}
	}, event.WithPriority(event.PriorityNormal)))
	return nil
}

func direction(forward bool) tree.Direction {
	if forward {
		return tree.Forward
	}
	return tree.Backward
}

// moveCaret moves the selection the way a native caret would and reports
// the result through the view selection observer.
func (e *Editor) moveCaret(forward, extend bool) bool {
	sel := e.model.Selection().Clone()
	if sel.RangeCount() == 0 {
		return false
	}
	dir := direction(forward)

	switch {
	case extend:
		if !e.modifier.Modify(sel, dir) {
			return true
		}
	case !sel.IsCollapsed():
		if forward {
			sel.SetCollapsed(sel.LastPosition())
		} else {
			sel.SetCollapsed(sel.FirstPosition())
		}
	default:
		if !e.modifier.Modify(sel, dir) {
			return true
		}
		sel.SetCollapsed(sel.Focus())
	}

	e.SetViewSelection(view.NewSelection(e.mapper.ToViewRanges(sel), sel.IsBackward()))
	return true
}

// deleteContent removes the selected content, or one unit next to the
// caret.
func (e *Editor) deleteContent(forward bool) bool {
	if e.readOnly {
		return false
	}
	sel := e.model.Selection()
	if sel.RangeCount() == 0 {
		return false
	}

	if obj := sel.SelectedElement(); obj != nil && e.schema.IsObject(obj) {
		e.model.Change(func(w *model.Writer) {
			e.removeObject(w, obj)
		})
		return true
	}

	if !sel.IsCollapsed() {
		e.model.Change(func(w *model.Writer) {
			ranges := w.Selection().Ranges()
			var pos tree.Position
			for i := len(ranges) - 1; i >= 0; i-- {
				pos = w.RemoveRange(ranges[i])
			}
			w.SetSelectionAt(pos)
		})
		return true
	}

	probe := sel.Clone()
	if !e.modifier.Modify(probe, direction(forward)) {
		return true
	}
	r, _ := probe.FirstRange()
	if r.Start.Container() != r.End.Container() && r.Start.Container().Parent() != r.End.Container().Parent() {
		return true
	}
	e.model.Change(func(w *model.Writer) {
		w.SetSelectionAt(w.RemoveRange(r))
	})
	return true
}

// removeObject deletes a selected object. A block object leaves an empty
// default block in its place.
func (e *Editor) removeObject(w *model.Writer, obj *tree.Node) {
	pos := tree.PositionBefore(obj)
	w.Remove(obj)
	if !e.schema.IsBlock(obj) || e.schema.CheckText(pos) {
		w.SetSelectionAt(pos)
		return
	}
	block := tree.NewElement(e.config.Editor.DefaultBlock)
	w.Insert(block, pos)
	w.SetSelectionAt(tree.PositionAtStart(block))
}

// selectRoot selects the whole content of the root holding the selection.
func (e *Editor) selectRoot() bool {
	focus := e.model.Selection().Focus()
	if focus.IsZero() {
		return false
	}
	root := focus.Root()
	e.model.Change(func(w *model.Writer) {
		w.SetSelectionIn(root)
	})
	return true
}

// typeRune inserts a character, replacing selected content first.
func (e *Editor) typeRune(r rune) bool {
	if e.readOnly {
		return false
	}
	sel := e.model.Selection()
	if sel.RangeCount() == 0 {
		return false
	}
	if obj := sel.SelectedElement(); obj != nil && e.schema.IsObject(obj) {
		return true
	}
	e.model.Change(func(w *model.Writer) {
		pos := sel.FirstPosition()
		if !sel.IsCollapsed() {
			ranges := sel.Ranges()
			for i := len(ranges) - 1; i >= 0; i-- {
				pos = w.RemoveRange(ranges[i])
			}
		}
		if !e.schema.CheckText(pos) {
			return
		}
		w.SetSelectionAt(w.InsertText(string(r), pos))
	})
	return true
}

// Keystroke returns a key event for spec, honoring the configured
// platform.
func (e *Editor) Keystroke(spec string) (key.Event, error) {
	return key.ParseKeystroke(spec, e.config.Platform())
}
