// Package modify moves model selections by one unit, honoring objects and
// limits defined by the schema.
package modify

import (
	"github.com/dshills/blockedit/internal/engine/schema"
	"github.com/dshills/blockedit/internal/engine/tree"
)

// Service moves selections within a schema-aware model tree.
type Service struct {
	schema *schema.Schema
}

// New creates a service.
func New(s *schema.Schema) *Service {
	return &Service{schema: s}
}

// Modify moves the focus of sel by one character in dir. Objects are
// crossed as a whole and limits are never left. It returns false when
// there was nowhere to move.
func (s *Service) Modify(sel *tree.Selection, dir tree.Direction) bool {
	focus := sel.Focus()
	if focus.IsZero() {
		return false
	}
	pos, ok := s.next(focus, dir)
	if !ok {
		return false
	}
	anchor := sel.Anchor()
	r := tree.NewRange(anchor, pos)
	sel.SetRanges([]tree.Range{r}, pos.IsBefore(anchor))
	return true
}

// Probe moves a copy of sel one unit in dir and returns the node the focus
// passed over, or nil.
func (s *Service) Probe(sel *tree.Selection, dir tree.Direction) *tree.Node {
	probe := sel.Clone()
	if !s.Modify(probe, dir) {
		return nil
	}
	if dir == tree.Forward {
		return probe.Focus().NodeBefore()
	}
	return probe.Focus().NodeAfter()
}

func (s *Service) next(focus tree.Position, dir tree.Direction) (tree.Position, bool) {
	root := focus.Root()
	var search tree.Range
	if dir == tree.Forward {
		search = tree.Range{Start: focus, End: tree.PositionAtEnd(root)}
	} else {
		search = tree.Range{Start: tree.PositionAtStart(root), End: focus}
	}
	w := tree.NewWalker(tree.WalkerOptions{
		Direction:        dir,
		Boundaries:       &search,
		Start:            focus,
		SingleCharacters: true,
	})

	entering := tree.StepElementStart
	if dir == tree.Backward {
		entering = tree.StepElementEnd
	}
	for {
		step, ok := w.Next()
		if !ok {
			return tree.Position{}, false
		}
		switch {
		case step.Type == tree.StepText:
			return step.Next, true
		case step.Type == entering:
			if s.schema.IsObject(step.Item) {
				if dir == tree.Forward {
					return tree.PositionAfter(step.Item), true
				}
				return tree.PositionBefore(step.Item), true
			}
			if s.schema.CheckText(step.Next) {
				return step.Next, true
			}
		default:
			if s.schema.IsLimit(step.Item) {
				return tree.Position{}, false
			}
			if s.schema.CheckText(step.Next) {
				return step.Next, true
			}
		}
	}
}

// NearestSelectionRange returns the closest range at or after pos in dir
// that can hold the selection: a caret where text is allowed, or a range
// on an object element.
func (s *Service) NearestSelectionRange(pos tree.Position, dir tree.Direction) (tree.Range, bool) {
	if pos.IsZero() {
		return tree.Range{}, false
	}
	if s.schema.CheckText(pos) {
		return tree.CollapsedRange(pos), true
	}

	entering := tree.StepElementStart
	if dir == tree.Backward {
		entering = tree.StepElementEnd
	}
	w := tree.NewWalker(tree.WalkerOptions{Direction: dir, Start: pos})
	for {
		step, ok := w.Next()
		if !ok {
			return tree.Range{}, false
		}
		if step.Type == entering && s.schema.IsObject(step.Item) {
			return tree.RangeOn(step.Item), true
		}
		if s.schema.CheckText(step.Next) {
			return tree.CollapsedRange(step.Next), true
		}
	}
}
