package conversion

import (
	"github.com/dshills/blockedit/internal/app"
	"github.com/dshills/blockedit/internal/engine/mapper"
	"github.com/dshills/blockedit/internal/engine/model"
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/engine/view"
	"github.com/dshills/blockedit/internal/event"
)

// ElementConverter creates the view element for a model element. Children
// are converted separately and placed by the mapper.
type ElementConverter func(modelElement *tree.Node) *tree.Node

// AttributeConverter reflects a model attribute onto the view element
// bound to its owner. removed is set when the attribute was deleted.
type AttributeConverter func(viewElement *tree.Node, key, value string, removed bool)

// SelectionData is the payload of the selection hook.
type SelectionData struct {
	Selection *tree.Selection
	View      *view.Document
	Mapper    *mapper.Mapper
}

// Controller converts the model to the view.
type Controller struct {
	model  *model.Document
	view   *view.Document
	mapper *mapper.Mapper
	logger *app.Logger

	elements   map[string]ElementConverter
	attributes map[string]AttributeConverter
	selection  *event.Emitter[*SelectionData]
	subs       []event.Subscription
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(l *app.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// New creates a controller and subscribes it to both documents.
func New(m *model.Document, v *view.Document, mp *mapper.Mapper, opts ...Option) *Controller {
	c := &Controller{
		model:      m,
		view:       v,
		mapper:     mp,
		logger:     app.NopLogger(),
		elements:   make(map[string]ElementConverter),
		attributes: make(map[string]AttributeConverter),
		selection:  event.NewEmitter[*SelectionData]("conversion:selection"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("editing")

	c.selection.On(convertSelection, event.WithPriority(event.PriorityNormal))
	c.subs = append(c.subs,
		m.Changes().On(c.onChange, event.WithPriority(event.PriorityHighest)),
		v.SelectionChange().On(c.onViewSelectionChange, event.WithPriority(event.PriorityNormal)),
	)
	return c
}

// Model returns the model document.
func (c *Controller) Model() *model.Document { return c.model }

// View returns the view document.
func (c *Controller) View() *view.Document { return c.view }

// Mapper returns the mapper.
func (c *Controller) Mapper() *mapper.Mapper { return c.mapper }

// SelectionHook returns the emitter fired for every selection conversion.
func (c *Controller) SelectionHook() *event.Emitter[*SelectionData] {
	return c.selection
}

// RegisterElement sets the converter for model elements named name.
func (c *Controller) RegisterElement(name string, conv ElementConverter) {
	c.elements[name] = conv
}

// RegisterAttribute sets the converter for a model attribute key.
func (c *Controller) RegisterAttribute(key string, conv AttributeConverter) {
	c.attributes[key] = conv
}

// Destroy unsubscribes the controller from both documents.
func (c *Controller) Destroy() {
	for _, sub := range c.subs {
		sub.Cancel()
	}
	c.subs = nil
	c.selection.Clear()
}

// Render rebuilds every view root from the model and converts the
// selection.
func (c *Controller) Render() {
	c.mapper.Clear()
	for _, name := range c.model.RootNames() {
		mRoot := c.model.Root(name)
		vRoot := c.view.CreateRoot(name)
		for vRoot.ChildCount() > 0 {
			vRoot.RemoveChild(0)
		}
		c.mapper.Bind(mRoot, vRoot)
		for _, child := range mRoot.Children() {
			vRoot.AppendChild(c.build(child))
		}
	}
	c.logger.Debug("rendered", "version", c.model.Version())
	c.ConvertSelection()
}

// ConvertSelection fires the selection hook for the current model
// selection.
func (c *Controller) ConvertSelection() {
	c.selection.Fire(&SelectionData{
		Selection: c.model.Selection(),
		View:      c.view,
		Mapper:    c.mapper,
	})
}

func convertSelection(_ *event.Info, data *SelectionData) {
	vs := data.View.Selection()
	vs.SetFake(false, "")
	vs.SetRanges(data.Mapper.ToViewRanges(data.Selection), data.Selection.IsBackward())
}

// build converts a model subtree. Children that are already bound are
// left to their own operations.
func (c *Controller) build(m *tree.Node) *tree.Node {
	if m.IsText() {
		v := tree.NewText(m.Data())
		c.mapper.Bind(m, v)
		return v
	}

	var v *tree.Node
	if conv, ok := c.elements[m.Name()]; ok {
		v = conv(m)
	} else {
		v = tree.NewElement(m.Name())
	}
	c.mapper.Bind(m, v)
	for _, k := range m.AttrKeys() {
		value, _ := m.Attr(k)
		c.convertAttribute(v, k, value, false)
	}

	for _, child := range m.Children() {
		if c.mapper.ToView(child) != nil {
			continue
		}
		vc := c.build(child)
		pos := c.mapper.ToViewPosition(tree.PositionBefore(child))
		pos.Parent.InsertChild(pos.Offset, vc)
	}
	return v
}

func (c *Controller) convertAttribute(v *tree.Node, key, value string, removed bool) {
	if conv, ok := c.attributes[key]; ok {
		conv(v, key, value, removed)
		return
	}
	if removed {
		v.RemoveAttr(key)
		return
	}
	v.SetAttr(key, value)
}

func (c *Controller) onChange(_ *event.Info, ch *model.Change) {
	if ch.Reset {
		c.Render()
		return
	}
	for _, op := range ch.Operations {
		c.apply(op)
	}
	c.ConvertSelection()
}

func (c *Controller) apply(op model.Operation) {
	switch op.Type {
	case model.OpInsert:
		vParent := c.mapper.ToView(op.Parent)
		if vParent == nil || c.mapper.ToView(op.Node) != nil {
			return
		}
		pos := boundInsertPosition(c.mapper, vParent, op.Index)
		pos.Parent.InsertChild(pos.Offset, c.build(op.Node))
	case model.OpRemove:
		if v := c.mapper.ToView(op.Node); v != nil {
			v.Remove()
			c.mapper.UnbindView(v)
		}
	case model.OpInsertText, model.OpRemoveText:
		if v := c.mapper.ToView(op.Node); v != nil {
			v.SetData(op.Node.Data())
		}
	case model.OpSetAttribute, model.OpRemoveAttribute:
		if v := c.mapper.ToView(op.Node); v != nil {
			c.convertAttribute(v, op.Key, op.NewValue, op.Type == model.OpRemoveAttribute)
		}
	}
}

// boundInsertPosition returns the view position for the model child index
// i, counting only bound view children.
func boundInsertPosition(mp *mapper.Mapper, vParent *tree.Node, i int) tree.Position {
	count := 0
	var last *tree.Node
	for _, child := range vParent.Children() {
		if mp.ToModel(child) == nil {
			continue
		}
		if count == i {
			return tree.PositionBefore(child)
		}
		count++
		last = child
	}
	if last != nil {
		return tree.PositionAfter(last)
	}
	return tree.Position{Parent: vParent, Offset: 0}
}

func (c *Controller) onViewSelectionChange(_ *event.Info, data *view.SelectionChangeData) {
	ranges := c.mapper.ToModelRanges(&data.NewSelection.Selection)
	if len(ranges) == 0 {
		return
	}
	next := tree.NewSelection(ranges, data.NewSelection.IsBackward())
	if next.IsEqual(c.model.Selection()) {
		c.ConvertSelection()
		return
	}
	c.model.Change(func(w *model.Writer) {
		w.SetSelection(ranges, next.IsBackward())
	})
}
