package resize

import (
	"fmt"

	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/input/pointer"
)

// Context is the state of one drag.
type Context struct {
	// Widget is the resizable view element.
	Widget *tree.Node
	// Shadow is the preview element, nil if the widget has none.
	Shadow *tree.Node
	// Reference is the page position the offset is measured from.
	Reference pointer.Position
	// InitialHeight is the widget height when the drag started.
	InitialHeight int

	drag   *pointer.DragTracker
	offset pointer.Position
}

func newContext(widget, shadow *tree.Node, reference pointer.Position, height int) *Context {
	c := &Context{
		Widget:        widget,
		Shadow:        shadow,
		Reference:     reference,
		InitialHeight: height,
		drag:          pointer.NewDragTracker(),
	}
	c.drag.Start(reference, pointer.ButtonLeft)
	return c
}

// Offset returns the reference minus the current pointer position.
// Positive values grow the widget from its top-left corner.
func (c *Context) Offset() pointer.Position {
	return c.offset
}

// Height returns the previewed height.
func (c *Context) Height() int {
	return c.InitialHeight + c.offset.Y
}

func (c *Context) update(pos pointer.Position) {
	c.drag.Update(pos)
	delta := c.drag.Delta()
	c.offset = pointer.Position{X: -delta.X, Y: -delta.Y}
	// Only the vertical offset is previewed.
	if c.Shadow != nil {
		c.Shadow.SetStyle("top", fmt.Sprintf("%dpx", -c.offset.Y))
	}
}

func (c *Context) destroy(activeClass string) {
	c.drag.End()
	if c.Shadow != nil {
		c.Shadow.RemoveClass(activeClass)
		c.Shadow.RemoveStyle("")
	}
}
