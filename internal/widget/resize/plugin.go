package resize

import (
	"strconv"

	"github.com/dshills/blockedit/internal/app"
	"github.com/dshills/blockedit/internal/config"
	"github.com/dshills/blockedit/internal/editor"
	"github.com/dshills/blockedit/internal/engine/model"
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/engine/view"
	"github.com/dshills/blockedit/internal/event"
	"github.com/dshills/blockedit/internal/input/pointer"
)

// PluginName is the registered name of the resize plugin.
const PluginName = "WidgetResizer"

// State is the state of the drag machine.
type State uint8

const (
	// StateIdle means no drag is active.
	StateIdle State = iota
	// StateDragging means a handle was pressed and not yet released.
	StateDragging
)

// String returns the state name.
func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Mapper resolves view elements to model elements.
type Mapper interface {
	ToModel(viewNode *tree.Node) *tree.Node
}

// Plugin drives widget resizing.
type Plugin struct {
	geometry Geometry
	cfg      config.ResizeConfig
	model    *model.Document
	view     *view.Document
	mapper   Mapper
	logger   *app.Logger

	ctx  *Context
	subs []event.Subscription
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithGeometry sets the geometry provider. The default reads attributes.
func WithGeometry(g Geometry) Option {
	return func(p *Plugin) {
		p.geometry = g
	}
}

// NewPlugin creates a resize plugin.
func NewPlugin(opts ...Option) *Plugin {
	p := &Plugin{geometry: AttributeGeometry{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements editor.Plugin.
func (p *Plugin) Name() string { return PluginName }

// Init implements editor.Plugin.
func (p *Plugin) Init(e *editor.Editor) error {
	p.cfg = e.Config().Resize
	p.model = e.Model()
	p.view = e.View()
	p.mapper = e.Mapper()
	p.logger = e.Logger().WithComponent("resize")
	if !p.cfg.Enabled {
		return nil
	}

	p.view.Observer(view.ObserverMouseMove).Disable()
	p.subs = append(p.subs,
		p.view.MouseDown().On(p.onMouseDown),
		p.view.MouseMove().On(p.onMouseMove),
		p.view.MouseUp().On(p.onMouseUp),
	)
	return nil
}

// Destroy implements editor.Destroyer.
func (p *Plugin) Destroy() {
	if p.ctx != nil {
		p.teardown()
	}
	for _, sub := range p.subs {
		sub.Cancel()
	}
	p.subs = nil
}

// State returns the drag state.
func (p *Plugin) State() State {
	if p.ctx != nil {
		return StateDragging
	}
	return StateIdle
}

// Context returns the active drag context, or nil when idle.
func (p *Plugin) Context() *Context {
	return p.ctx
}

func (p *Plugin) onMouseDown(_ *event.Info, data *view.PointerEventData) {
	if p.ctx != nil || data.Button != pointer.ButtonLeft || data.Target == nil {
		return
	}
	handle := data.Target.FindAncestor(isHandle)
	if handle == nil {
		return
	}
	widget := handle.FindAncestor(isResizable)
	if widget == nil {
		return
	}

	reference := data.Position
	if r, ok := p.geometry.Rect(handle); ok {
		reference = pointer.Position{X: r.Left, Y: r.Top}
	}
	var height int
	if r, ok := p.geometry.Rect(widget); ok {
		height = r.Height
	}

	p.ctx = newContext(widget, Shadow(widget, p.cfg), reference, height)
	if p.ctx.Shadow != nil {
		p.ctx.Shadow.AddClass(p.cfg.ShadowActiveClass)
	}
	p.view.Observer(view.ObserverMouseMove).Enable()
	data.PreventDefault()
	p.logger.Debug("resize started", "widget", widget.ID(), "height", height, "x", reference.X, "y", reference.Y)
}

func (p *Plugin) onMouseMove(_ *event.Info, data *view.PointerEventData) {
	if p.ctx == nil {
		return
	}
	p.ctx.update(data.Position)
	data.PreventDefault()
}

func (p *Plugin) onMouseUp(_ *event.Info, data *view.PointerEventData) {
	if p.ctx == nil {
		return
	}
	defer p.teardown()

	p.commit()
	data.PreventDefault()
}

// commit writes the height shown by the last move to the model element.
// The release position is not applied.
func (p *Plugin) commit() {
	el := p.mapper.ToModel(p.ctx.Widget)
	if el == nil {
		p.logger.Debug("resized widget has no model element", "widget", p.ctx.Widget.ID())
		return
	}
	height := p.ctx.Height()
	p.model.Change(func(w *model.Writer) {
		w.SetAttribute(el, p.cfg.SizeAttribute, strconv.Itoa(height))
	})
	p.logger.Debug("resize committed", "widget", p.ctx.Widget.ID(), "element", el.Name(), p.cfg.SizeAttribute, height)
}

func (p *Plugin) teardown() {
	p.ctx.destroy(p.cfg.ShadowActiveClass)
	p.ctx = nil
	p.view.Observer(view.ObserverMouseMove).Disable()
}
