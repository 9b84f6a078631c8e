package editor

import (
	"fmt"

	"github.com/dshills/blockedit/internal/app"
	"github.com/dshills/blockedit/internal/config"
	"github.com/dshills/blockedit/internal/engine/conversion"
	"github.com/dshills/blockedit/internal/engine/mapper"
	"github.com/dshills/blockedit/internal/engine/markup"
	"github.com/dshills/blockedit/internal/engine/model"
	"github.com/dshills/blockedit/internal/engine/modify"
	"github.com/dshills/blockedit/internal/engine/schema"
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/engine/view"
	"github.com/dshills/blockedit/internal/event"
)

// Editor is a configured editor instance.
type Editor struct {
	config   config.Config
	logger   *app.Logger
	schema   *schema.Schema
	model    *model.Document
	view     *view.Document
	mapper   *mapper.Mapper
	editing  *conversion.Controller
	modifier *modify.Service

	readOnly   bool
	noDefaults bool
	destroyed  bool
	plugins    map[string]Plugin
	order      []string
	pending    []Plugin
	subs       []event.Subscription
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the editor logger.
func WithLogger(l *app.Logger) Option {
	return func(e *Editor) {
		e.logger = l
	}
}

// WithPlugins adds plugins initialized by New, in order.
func WithPlugins(plugins ...Plugin) Option {
	return func(e *Editor) {
		e.pending = append(e.pending, plugins...)
	}
}

// WithoutDefaults disables the built-in keyboard behaviors, leaving key
// handling to plugins.
func WithoutDefaults() Option {
	return func(e *Editor) {
		e.noDefaults = true
	}
}

// WithSchema registers element definitions before plugins initialize.
func WithSchema(defs map[string]schema.Definition) Option {
	return func(e *Editor) {
		for name, def := range defs {
			e.schema.Extend(name, func(d *schema.Definition) { *d = def })
		}
	}
}

// New creates an editor from a validated configuration.
func New(cfg config.Config, opts ...Option) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Editor{
		config:   cfg,
		logger:   app.NopLogger(),
		schema:   schema.New(),
		model:    model.NewDocument(),
		view:     view.NewDocument(),
		mapper:   mapper.New(),
		readOnly: cfg.Editor.ReadOnly,
		plugins:  make(map[string]Plugin),
	}
	e.modifier = modify.New(e.schema)
	for _, opt := range opts {
		opt(e)
	}

	for _, name := range []string{"paragraph", cfg.Editor.DefaultBlock} {
		e.schema.Extend(name, func(d *schema.Definition) {
			d.IsBlock = true
			d.AllowText = true
		})
	}
	e.editing = conversion.New(e.model, e.view, e.mapper, conversion.WithLogger(e.logger))
	e.editing.RegisterElement("paragraph", func(*tree.Node) *tree.Node {
		return tree.NewElement("p")
	})

	if !e.noDefaults {
		if err := e.installDefaults(); err != nil {
			return nil, err
		}
	}
	for _, p := range e.pending {
		if err := e.Use(p); err != nil {
			return nil, err
		}
	}
	e.pending = nil

	e.editing.Render()
	return e, nil
}

// Config returns the editor configuration.
func (e *Editor) Config() config.Config { return e.config }

// Logger returns the editor logger.
func (e *Editor) Logger() *app.Logger { return e.logger }

// Schema returns the model schema.
func (e *Editor) Schema() *schema.Schema { return e.schema }

// Model returns the model document.
func (e *Editor) Model() *model.Document { return e.model }

// View returns the view document.
func (e *Editor) View() *view.Document { return e.view }

// Mapper returns the model-view mapper.
func (e *Editor) Mapper() *mapper.Mapper { return e.mapper }

// Editing returns the editing controller.
func (e *Editor) Editing() *conversion.Controller { return e.editing }

// Modifier returns the selection-modification service.
func (e *Editor) Modifier() *modify.Service { return e.modifier }

// IsReadOnly returns true if the editor rejects content changes.
func (e *Editor) IsReadOnly() bool {
	return e.readOnly
}

// SetReadOnly switches read-only mode.
func (e *Editor) SetReadOnly(readOnly bool) {
	e.readOnly = readOnly
}

// SetData replaces the main root content with parsed markup, including
// the selection markers.
func (e *Editor) SetData(data string) error {
	frag, err := markup.Parse(data)
	if err != nil {
		return fmt.Errorf("set data: %w", err)
	}
	root := e.model.Root(model.MainRoot)
	ranges := frag.RangesIn(root)
	e.model.Reset(model.MainRoot, frag.Root.Children(), ranges, frag.Backward)
	return nil
}

// Data returns the main root content as model markup with the selection.
func (e *Editor) Data() (string, error) {
	return markup.Stringify(e.model.Root(model.MainRoot), e.model.Selection(), markup.StyleModel)
}

// ViewData returns the main view root as markup with the view selection.
func (e *Editor) ViewData() (string, error) {
	return markup.Stringify(e.view.Root(model.MainRoot), &e.view.Selection().Selection, markup.StyleView)
}

// Destroy tears down plugins in reverse order and detaches the controller.
func (e *Editor) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	for i := len(e.order) - 1; i >= 0; i-- {
		if d, ok := e.plugins[e.order[i]].(Destroyer); ok {
			d.Destroy()
		}
	}
	for _, sub := range e.subs {
		sub.Cancel()
	}
	e.subs = nil
	e.editing.Destroy()
}
