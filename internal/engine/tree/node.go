package tree

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the type of a node.
type Kind uint8

const (
	// KindElement is a named node that may have children.
	KindElement Kind = iota
	// KindText is a leaf holding character data.
	KindText
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	if k == KindText {
		return "text"
	}
	return "element"
}

// Flag is a capability carried by a node.
type Flag uint16

const (
	// FlagWidget marks a view element rendered as an atomic widget.
	FlagWidget Flag = 1 << iota
	// FlagEditable marks a view element whose content is text-editable.
	FlagEditable
	// FlagRootEditable marks the editable root of a view document.
	FlagRootEditable
	// FlagResizable marks a widget that can be resized with a handle.
	FlagResizable
	// FlagResizeHandle marks the handle that starts a resize drag.
	FlagResizeHandle
	// FlagUI marks view-only user interface elements that have no model
	// counterpart.
	FlagUI
)

// Node is an element or a text node.
type Node struct {
	id       string
	kind     Kind
	name     string
	data     []rune
	attrs    map[string]string
	classes  []string
	styles   map[string]string
	props    map[string]any
	flags    Flag
	parent   *Node
	children []*Node
}

// NewElement creates an element with the given name and children.
func NewElement(name string, children ...*Node) *Node {
	n := &Node{kind: KindElement, name: name}
	n.AppendChild(children...)
	return n
}

// NewText creates a text node.
func NewText(data string) *Node {
	return &Node{kind: KindText, data: []rune(data)}
}

// ID returns a unique identifier for the node, allocated on first use.
func (n *Node) ID() string {
	if n.id == "" {
		n.id = uuid.NewString()
	}
	return n.id
}

// Kind returns the node kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsElement returns true for element nodes.
func (n *Node) IsElement() bool {
	return n != nil && n.kind == KindElement
}

// IsText returns true for text nodes.
func (n *Node) IsText() bool {
	return n != nil && n.kind == KindText
}

// Name returns the element name. Text nodes have no name.
func (n *Node) Name() string {
	return n.name
}

// Data returns the character data of a text node.
func (n *Node) Data() string {
	return string(n.data)
}

// SetData replaces the character data of a text node.
func (n *Node) SetData(s string) {
	n.data = []rune(s)
}

// Len returns the number of runes in a text node, or the number of
// children of an element.
func (n *Node) Len() int {
	if n.kind == KindText {
		return len(n.data)
	}
	return len(n.children)
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot returns true if the node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Root returns the topmost ancestor of the node (or the node itself).
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Index returns the position of the node among its siblings, or -1.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	result := make([]*Node, len(n.children))
	copy(result, n.children)
	return result
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at index i, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// IsEmpty returns true for an element without children or an empty text.
func (n *Node) IsEmpty() bool {
	return n.Len() == 0
}

// InsertChild inserts nodes at index i, detaching them from previous parents.
func (n *Node) InsertChild(i int, nodes ...*Node) {
	if i < 0 {
		i = 0
	}
	if i > len(n.children) {
		i = len(n.children)
	}
	for _, c := range nodes {
		c.Remove()
		c.parent = n
	}
	// Detaching may have shifted our own children.
	if i > len(n.children) {
		i = len(n.children)
	}
	tail := append([]*Node(nil), n.children[i:]...)
	n.children = append(append(n.children[:i], nodes...), tail...)
}

// AppendChild appends nodes as the last children.
func (n *Node) AppendChild(nodes ...*Node) {
	for _, c := range nodes {
		c.Remove()
		c.parent = n
		n.children = append(n.children, c)
	}
}

// RemoveChild detaches and returns the child at index i.
func (n *Node) RemoveChild(i int) *Node {
	c := n.Child(i)
	if c == nil {
		return nil
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	c.parent = nil
	return c
}

// Remove detaches the node from its parent.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	n.parent.RemoveChild(n.Index())
}

// Ancestors returns the ancestors of the node, nearest first.
func (n *Node) Ancestors(includeSelf bool) []*Node {
	var result []*Node
	cur := n.parent
	if includeSelf {
		cur = n
	}
	for ; cur != nil; cur = cur.parent {
		result = append(result, cur)
	}
	return result
}

// FindAncestor returns the nearest ancestor-or-self matching fn.
func (n *Node) FindAncestor(fn func(*Node) bool) *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if fn(cur) {
			return cur
		}
	}
	return nil
}

// IsAncestorOf returns true if n is a strict ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	for cur := other.parent; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Path returns the child indices leading from the root to the node.
func (n *Node) Path() []int {
	var path []int
	for cur := n; cur.parent != nil; cur = cur.parent {
		path = append(path, cur.Index())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// NodeAtPath resolves a path produced by Path starting at root.
func NodeAtPath(root *Node, path []int) *Node {
	cur := root
	for _, i := range path {
		cur = cur.Child(i)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// CommonAncestor returns the nearest node that is an ancestor-or-self of
// both a and b, or nil when they are in different trees.
func CommonAncestor(a, b *Node) *Node {
	seen := make(map[*Node]bool)
	for cur := a; cur != nil; cur = cur.parent {
		seen[cur] = true
	}
	for cur := b; cur != nil; cur = cur.parent {
		if seen[cur] {
			return cur
		}
	}
	return nil
}

// Attr returns an attribute value.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// SetAttr sets an attribute value.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// RemoveAttr removes an attribute.
func (n *Node) RemoveAttr(key string) {
	delete(n.attrs, key)
}

// AttrKeys returns the attribute names in sorted order.
func (n *Node) AttrKeys() []string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasClass returns true if the element carries the class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds classes that are not present yet.
func (n *Node) AddClass(classes ...string) {
	for _, c := range classes {
		if c != "" && !n.HasClass(c) {
			n.classes = append(n.classes, c)
		}
	}
}

// RemoveClass removes classes.
func (n *Node) RemoveClass(classes ...string) {
	for _, c := range classes {
		for i, existing := range n.classes {
			if existing == c {
				n.classes = append(n.classes[:i], n.classes[i+1:]...)
				break
			}
		}
	}
}

// Classes returns the classes in sorted order.
func (n *Node) Classes() []string {
	result := append([]string(nil), n.classes...)
	sort.Strings(result)
	return result
}

// Style returns an inline style value.
func (n *Node) Style(prop string) (string, bool) {
	v, ok := n.styles[prop]
	return v, ok
}

// SetStyle sets an inline style value.
func (n *Node) SetStyle(prop, value string) {
	if n.styles == nil {
		n.styles = make(map[string]string)
	}
	n.styles[prop] = value
}

// RemoveStyle removes one inline style, or all of them when prop is empty.
func (n *Node) RemoveStyle(prop string) {
	if prop == "" {
		n.styles = nil
		return
	}
	delete(n.styles, prop)
}

// StyleString renders the inline styles as "a:b;c:d" in sorted order.
func (n *Node) StyleString() string {
	keys := make([]string, 0, len(n.styles))
	for k := range n.styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(n.styles[k])
		b.WriteByte(';')
	}
	return b.String()
}

// Prop returns a custom property.
func (n *Node) Prop(key string) any {
	return n.props[key]
}

// SetProp sets a custom property.
func (n *Node) SetProp(key string, value any) {
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[key] = value
}

// Has returns true if the node carries the flag.
func (n *Node) Has(f Flag) bool {
	return n != nil && n.flags&f != 0
}

// SetFlag adds flags to the node.
func (n *Node) SetFlag(f Flag) {
	n.flags |= f
}

// ClearFlag removes flags from the node.
func (n *Node) ClearFlag(f Flag) {
	n.flags &^= f
}

// Clone returns a deep copy of the node without parent.
func (n *Node) Clone() *Node {
	c := &Node{
		kind:    n.kind,
		name:    n.name,
		data:    append([]rune(nil), n.data...),
		classes: append([]string(nil), n.classes...),
		flags:   n.flags,
	}
	for k, v := range n.attrs {
		c.SetAttr(k, v)
	}
	for k, v := range n.styles {
		c.SetStyle(k, v)
	}
	for k, v := range n.props {
		c.SetProp(k, v)
	}
	for _, child := range n.children {
		c.AppendChild(child.Clone())
	}
	return c
}

// String returns a short description used in logs.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.kind == KindText {
		return "#text(" + string(n.data) + ")"
	}
	return "<" + n.name + ">"
}
