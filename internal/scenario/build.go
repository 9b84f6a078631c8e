package scenario

import (
	"github.com/dshills/blockedit/internal/config"
	"github.com/dshills/blockedit/internal/editor"
	"github.com/dshills/blockedit/internal/engine/conversion"
	"github.com/dshills/blockedit/internal/engine/schema"
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/widget"
	"github.com/dshills/blockedit/internal/widget/resize"
)

// Build creates an editor with the widget and resize plugins installed,
// the element types of specs registered in the schema and a view
// converter for each of them.
func Build(cfg config.Config, specs []ElementSpec, opts ...editor.Option) (*editor.Editor, error) {
	defs := make(map[string]schema.Definition, len(specs))
	for _, s := range specs {
		defs[s.Name] = schema.Definition{
			IsObject:  s.Object,
			IsLimit:   s.Limit,
			IsBlock:   s.Block,
			AllowText: s.AllowText,
		}
	}

	base := []editor.Option{
		editor.WithSchema(defs),
		editor.WithPlugins(widget.NewPlugin(), resize.NewPlugin()),
	}
	e, err := editor.New(cfg, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	for _, s := range specs {
		e.Editing().RegisterElement(s.Name, converter(s, cfg))
	}
	return e, nil
}

func converter(s ElementSpec, cfg config.Config) conversion.ElementConverter {
	name := s.View
	if name == "" {
		name = s.Name
	}
	return func(*tree.Node) *tree.Node {
		el := tree.NewElement(name)
		switch {
		case s.Widget:
			widget.ToWidget(el, widget.WithClass(cfg.Widget.Class), widget.WithLabel(s.Label))
		case s.Editable:
			widget.ToWidgetEditable(el, widget.WithClass(cfg.Widget.EditableClass))
		}
		if s.Resizable {
			resize.Attach(el, cfg.Resize)
		}
		return el
	}
}
