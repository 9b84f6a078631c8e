package widget

import (
	"github.com/dshills/blockedit/internal/engine/tree"
)

// DefaultClass is the class added to widget elements.
const DefaultClass = "ck-widget"

const labelProp = "widgetLabel"

type options struct {
	class string
	label func() string
}

// Option configures ToWidget and ToWidgetEditable.
type Option func(*options)

// WithClass overrides the class added to the element. An empty class adds
// none.
func WithClass(class string) Option {
	return func(o *options) {
		o.class = class
	}
}

// WithLabel sets a static accessible label.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = func() string { return label }
	}
}

// WithLabelFunc sets a label computed each time it is read.
func WithLabelFunc(fn func() string) Option {
	return func(o *options) {
		o.label = fn
	}
}

// ToWidget marks el as a widget and returns it.
func ToWidget(el *tree.Node, opts ...Option) *tree.Node {
	o := options{class: DefaultClass}
	for _, opt := range opts {
		opt(&o)
	}
	el.SetFlag(tree.FlagWidget)
	el.SetAttr("contenteditable", "false")
	if o.class != "" {
		el.AddClass(o.class)
	}
	if o.label != nil {
		el.SetProp(labelProp, o.label)
	}
	return el
}

// ToWidgetEditable marks el as a nested editable and returns it. Only
// WithClass applies.
func ToWidgetEditable(el *tree.Node, opts ...Option) *tree.Node {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	el.SetFlag(tree.FlagEditable)
	el.SetAttr("contenteditable", "true")
	if o.class != "" {
		el.AddClass(o.class)
	}
	return el
}

// IsWidget returns true if n is a widget element.
func IsWidget(n *tree.Node) bool {
	return n.IsElement() && n.Has(tree.FlagWidget)
}

// SetLabel replaces the label of a widget.
func SetLabel(el *tree.Node, label string) {
	el.SetProp(labelProp, func() string { return label })
}

// Label returns the widget label, or "" if it has none.
func Label(el *tree.Node) string {
	if fn, ok := el.Prop(labelProp).(func() string); ok {
		return fn()
	}
	return ""
}

// isNestedEditable returns true for editables other than the root.
func isNestedEditable(n *tree.Node) bool {
	return n.Has(tree.FlagEditable) && !n.Has(tree.FlagRootEditable)
}

// insideNestedEditable returns true if n is, or is inside, a nested
// editable.
func insideNestedEditable(n *tree.Node) bool {
	return n.FindAncestor(isNestedEditable) != nil
}

// widgetAncestor returns the widget containing n. Reaching an editable
// first, root included, means there is none.
func widgetAncestor(n *tree.Node) *tree.Node {
	if n.IsText() {
		n = n.Parent()
	}
	for ; n != nil; n = n.Parent() {
		if n.Has(tree.FlagEditable) {
			return nil
		}
		if IsWidget(n) {
			return n
		}
	}
	return nil
}
