package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() (root, p, text, img *Node) {
	text = NewText("foo")
	img = NewElement("image")
	p = NewElement("paragraph", text, img)
	root = NewElement("$root", p)
	return
}

func TestNodeStructure(t *testing.T) {
	root, p, text, img := sample()

	if p.Parent() != root || text.Parent() != p {
		t.Fatal("parents not linked")
	}
	if got := img.Index(); got != 1 {
		t.Errorf("Index() = %d, want 1", got)
	}
	if got := text.Len(); got != 3 {
		t.Errorf("text Len() = %d, want 3", got)
	}
	if img.Root() != root {
		t.Error("Root() should return topmost ancestor")
	}
	if !img.IsEmpty() || p.IsEmpty() {
		t.Error("IsEmpty() mismatch")
	}
	if diff := cmp.Diff([]int{0, 1}, img.Path()); diff != "" {
		t.Errorf("Path() mismatch (-want +got):\n%s", diff)
	}
	if NodeAtPath(root, []int{0, 1}) != img {
		t.Error("NodeAtPath() did not resolve image")
	}
	if got := CommonAncestor(text, img); got != p {
		t.Errorf("CommonAncestor() = %v, want paragraph", got)
	}
	if !root.IsAncestorOf(img) || img.IsAncestorOf(root) {
		t.Error("IsAncestorOf() mismatch")
	}
}

func TestNodeInsertRemove(t *testing.T) {
	root, p, _, img := sample()
	other := NewElement("paragraph")

	root.InsertChild(0, other)
	if root.Child(0) != other || root.Child(1) != p {
		t.Fatal("InsertChild() at 0 failed")
	}

	other.AppendChild(img)
	if img.Parent() != other || p.ChildCount() != 1 {
		t.Error("AppendChild() should move the node")
	}

	img.Remove()
	if img.Parent() != nil || other.ChildCount() != 0 {
		t.Error("Remove() did not detach")
	}

	if got := root.RemoveChild(5); got != nil {
		t.Errorf("RemoveChild(5) = %v, want nil", got)
	}
}

func TestNodeClassesAndStyles(t *testing.T) {
	n := NewElement("div")
	n.AddClass("b", "a", "b")
	if diff := cmp.Diff([]string{"a", "b"}, n.Classes()); diff != "" {
		t.Errorf("Classes() mismatch (-want +got):\n%s", diff)
	}
	n.RemoveClass("b")
	if n.HasClass("b") || !n.HasClass("a") {
		t.Error("RemoveClass() mismatch")
	}

	n.SetStyle("top", "-10px")
	n.SetStyle("height", "5px")
	if got := n.StyleString(); got != "height:5px;top:-10px;" {
		t.Errorf("StyleString() = %q", got)
	}
	n.RemoveStyle("")
	if got := n.StyleString(); got != "" {
		t.Errorf("StyleString() after clear = %q", got)
	}
}

func TestNodeFlagsAndProps(t *testing.T) {
	n := NewElement("div")
	n.SetFlag(FlagWidget | FlagResizable)
	if !n.Has(FlagWidget) || !n.Has(FlagResizable) || n.Has(FlagEditable) {
		t.Error("Has() mismatch after SetFlag")
	}
	n.ClearFlag(FlagWidget)
	if n.Has(FlagWidget) {
		t.Error("ClearFlag() did not clear")
	}

	var nilNode *Node
	if nilNode.Has(FlagWidget) {
		t.Error("nil node should have no flags")
	}

	n.SetProp("label", "x")
	if n.Prop("label") != "x" || n.Prop("missing") != nil {
		t.Error("Prop() mismatch")
	}
}

func TestNodeClone(t *testing.T) {
	root, _, _, _ := sample()
	root.Child(0).SetAttr("alignment", "left")

	c := root.Clone()
	if c.Parent() != nil || c.ChildCount() != 1 {
		t.Fatal("Clone() structure mismatch")
	}
	if v, _ := c.Child(0).Attr("alignment"); v != "left" {
		t.Errorf("cloned attr = %q", v)
	}
	c.Child(0).Child(0).SetData("bar")
	if root.Child(0).Child(0).Data() != "foo" {
		t.Error("Clone() shares text data")
	}
}

func TestNodeIDStable(t *testing.T) {
	n := NewElement("div")
	id := n.ID()
	if id == "" || n.ID() != id {
		t.Error("ID() should be stable and non-empty")
	}
	if NewElement("div").ID() == id {
		t.Error("IDs should be unique")
	}
}
