package resize

import (
	"strconv"

	"github.com/dshills/blockedit/internal/engine/tree"
)

// Rect is a page-space rectangle.
type Rect struct {
	Left, Top     int
	Width, Height int
}

// Geometry reports the rendered rectangle of view nodes.
type Geometry interface {
	// Rect returns the rectangle of n, or false if it is unknown.
	Rect(n *tree.Node) (Rect, bool)
}

// AttributeGeometry reads geometry from element attributes: data-left and
// data-top for the origin, width and height for the size. Sizes missing
// on the node are taken from its first descendant that has them.
type AttributeGeometry struct{}

// Rect implements Geometry.
func (AttributeGeometry) Rect(n *tree.Node) (Rect, bool) {
	if !n.IsElement() {
		return Rect{}, false
	}
	var r Rect
	var found bool
	if v, ok := intAttr(n, "data-left"); ok {
		r.Left, found = v, true
	}
	if v, ok := intAttr(n, "data-top"); ok {
		r.Top, found = v, true
	}
	if el := sizedElement(n, "width"); el != nil {
		r.Width, _ = intAttr(el, "width")
		found = true
	}
	if el := sizedElement(n, "height"); el != nil {
		r.Height, _ = intAttr(el, "height")
		found = true
	}
	return r, found
}

func intAttr(n *tree.Node, key string) (int, bool) {
	v, ok := n.Attr(key)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return i, true
}

// sizedElement returns n or its first descendant carrying a numeric key
// attribute.
func sizedElement(n *tree.Node, key string) *tree.Node {
	if _, ok := intAttr(n, key); ok {
		return n
	}
	for _, child := range n.Children() {
		if !child.IsElement() {
			continue
		}
		if el := sizedElement(child, key); el != nil {
			return el
		}
	}
	return nil
}
