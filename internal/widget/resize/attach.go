package resize

import (
	"github.com/dshills/blockedit/internal/config"
	"github.com/dshills/blockedit/internal/engine/tree"
)

// Attach makes a widget view element resizable and returns it. The shadow
// and handle are view-only elements without model counterparts.
func Attach(el *tree.Node, cfg config.ResizeConfig) *tree.Node {
	el.SetFlag(tree.FlagResizable)
	el.AddClass(cfg.WrapperClass)

	shadow := tree.NewElement("div")
	shadow.SetFlag(tree.FlagUI)
	shadow.AddClass(cfg.ShadowClass)

	handle := tree.NewElement("div")
	handle.SetFlag(tree.FlagUI | tree.FlagResizeHandle)
	handle.AddClass(cfg.HandleClass, cfg.HandleClass+"-top-left")

	el.AppendChild(shadow, handle)
	return el
}

// Handle returns the resize handle of an attached element.
func Handle(el *tree.Node) *tree.Node {
	return findChild(el, func(n *tree.Node) bool { return n.Has(tree.FlagResizeHandle) })
}

// Shadow returns the preview shadow of an attached element.
func Shadow(el *tree.Node, cfg config.ResizeConfig) *tree.Node {
	return findChild(el, func(n *tree.Node) bool {
		return n.Has(tree.FlagUI) && n.HasClass(cfg.ShadowClass)
	})
}

func findChild(el *tree.Node, fn func(*tree.Node) bool) *tree.Node {
	for _, child := range el.Children() {
		if fn(child) {
			return child
		}
	}
	return nil
}

func isResizable(n *tree.Node) bool {
	return n.Has(tree.FlagResizable)
}

func isHandle(n *tree.Node) bool {
	return n.Has(tree.FlagResizeHandle)
}
