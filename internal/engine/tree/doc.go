// Package tree provides the node tree shared by the model and the view
// documents, together with positions, ranges, selections and a tree walker.
//
// A Position is a (container, offset) pair. When the container is an
// element the offset is a child index; when it is a text node the offset
// is a rune offset strictly inside the text. Positions that fall on a text
// boundary are always normalized to the element level, so every location in
// the tree has exactly one representation and positions can be compared
// with ==.
//
// Nodes carry explicit capability flags (widget, editable, resizable, ...)
// instead of being distinguished by Go type. Whether a node belongs to the
// model or the view is decided by the document that owns its root.
package tree
