package editor

import (
	"fmt"

	"github.com/dshills/blockedit/internal/engine/model"
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/engine/view"
	"github.com/dshills/blockedit/internal/input/pointer"
)

// PressKey delivers a keystroke to the element holding the view
// selection. It returns true if a listener handled the key.
func (e *Editor) PressKey(spec string) (bool, error) {
	ev, err := e.Keystroke(spec)
	if err != nil {
		return false, fmt.Errorf("press key: %w", err)
	}
	data := e.view.FireKeyDown(e.keyTarget(), ev)
	return data.IsDefaultPrevented(), nil
}

func (e *Editor) keyTarget() *tree.Node {
	focus := e.view.Selection().Focus()
	if focus.IsZero() {
		return e.view.Root(model.MainRoot)
	}
	return focus.Container()
}

// MouseDown delivers a left-button press on target at page (x, y).
func (e *Editor) MouseDown(target *tree.Node, x, y int) bool {
	data := e.view.FireMouseDown(target, pointer.NewEvent(pointer.ActionPress, x, y))
	return data.IsDefaultPrevented()
}

// MouseMove delivers pointer movement over target.
func (e *Editor) MouseMove(target *tree.Node, x, y int) bool {
	data := e.view.FireMouseMove(target, pointer.NewEvent(pointer.ActionMove, x, y))
	return data.IsDefaultPrevented()
}

// MouseUp delivers a left-button release on target.
func (e *Editor) MouseUp(target *tree.Node, x, y int) bool {
	data := e.view.FireMouseUp(target, pointer.NewEvent(pointer.ActionRelease, x, y))
	return data.IsDefaultPrevented()
}

// Click presses and releases the left button on target.
func (e *Editor) Click(target *tree.Node) bool {
	handled := e.MouseDown(target, 0, 0)
	e.MouseUp(target, 0, 0)
	return handled
}

// SetViewSelection reports a user-made view selection. Listeners may
// correct it before it reaches the model.
func (e *Editor) SetViewSelection(sel *view.Selection) {
	e.view.FireSelectionChange(sel)
}

// ViewNode returns the view node at path below the main view root.
func (e *Editor) ViewNode(path ...int) *tree.Node {
	return tree.NodeAtPath(e.view.Root(model.MainRoot), path)
}

// ModelNode returns the model node at path below the main root.
func (e *Editor) ModelNode(path ...int) *tree.Node {
	return tree.NodeAtPath(e.model.Root(model.MainRoot), path)
}
