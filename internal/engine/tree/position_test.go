package tree

import "testing"

func TestNewPositionNormalizes(t *testing.T) {
	_, p, text, _ := sample()

	tests := []struct {
		name   string
		offset int
		want   Position
	}{
		{"start of text", 0, Position{Parent: p, Offset: 0}},
		{"inside text", 2, Position{Parent: text, Offset: 2}},
		{"end of text", 3, Position{Parent: p, Offset: 1}},
		{"past end", 9, Position{Parent: p, Offset: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPosition(text, tt.offset); got != tt.want {
				t.Errorf("NewPosition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositionNeighbours(t *testing.T) {
	_, p, text, img := sample()

	pos := PositionBefore(img)
	if pos.NodeBefore() != text || pos.NodeAfter() != img {
		t.Error("PositionBefore(img) neighbours mismatch")
	}
	if PositionAfter(img).NodeAfter() != nil {
		t.Error("nothing should follow the image")
	}
	inText := NewPosition(text, 1)
	if inText.NodeBefore() != nil || inText.NodeAfter() != nil {
		t.Error("text positions have no neighbours")
	}
	if inText.Container() != p || PositionAtEnd(p).Container() != p {
		t.Error("Container() mismatch")
	}
	if !PositionAtStart(p).IsAtStart() || !PositionAtEnd(p).IsAtEnd() {
		t.Error("IsAtStart()/IsAtEnd() mismatch")
	}
}

func TestPositionCompare(t *testing.T) {
	root, p, text, img := sample()
	other := NewElement("paragraph")
	root.AppendChild(other)

	tests := []struct {
		name string
		a, b Position
		want Relation
	}{
		{"same", PositionBefore(img), PositionBefore(img), RelationSame},
		{"before text inside", PositionBefore(p), NewPosition(text, 1), RelationBefore},
		{"text before image", NewPosition(text, 1), PositionBefore(img), RelationBefore},
		{"after", PositionAtStart(other), PositionAfter(img), RelationAfter},
		{"different trees", PositionAtStart(p), PositionAtStart(NewElement("x")), RelationDifferent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRangeBasics(t *testing.T) {
	_, p, text, img := sample()

	on := RangeOn(img)
	if on.IsCollapsed() || !on.IsFlat() {
		t.Error("RangeOn() should be flat and non-collapsed")
	}
	in := RangeIn(p)
	if !in.ContainsRange(on) || on.ContainsRange(in) {
		t.Error("ContainsRange() mismatch")
	}
	if !in.ContainsPosition(NewPosition(text, 1)) {
		t.Error("ContainsPosition() should accept inner text position")
	}
	if in.CommonAncestor() != p {
		t.Error("CommonAncestor() mismatch")
	}
	swapped := NewRange(PositionAfter(img), PositionBefore(img))
	if !swapped.IsEqual(on) {
		t.Error("NewRange() should order ends")
	}

	items := in.Items()
	if len(items) != 2 || items[0] != text || items[1] != img {
		t.Errorf("Items() = %v", items)
	}
}
