package widget

import (
	"github.com/dshills/blockedit/internal/app"
	"github.com/dshills/blockedit/internal/engine/conversion"
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/event"
)

// Synchronizer reflects the converted selection onto widgets. It runs on
// the selection hook after the default conversion.
type Synchronizer struct {
	selectedClass string
	logger        *app.Logger

	selected []*tree.Node
}

// NewSynchronizer creates a synchronizer adding selectedClass to widgets
// covered by the selection.
func NewSynchronizer(selectedClass string, logger *app.Logger) *Synchronizer {
	return &Synchronizer{selectedClass: selectedClass, logger: logger}
}

// Convert is the selection hook listener.
func (s *Synchronizer) Convert(_ *event.Info, data *conversion.SelectionData) {
	s.clear()

	vs := data.View.Selection()
	first, ok := vs.FirstRange()
	if !ok {
		return
	}
	selected := vs.SelectedElement()
	for _, n := range first.Items() {
		if !IsWidget(n) {
			continue
		}
		n.AddClass(s.selectedClass)
		s.selected = append(s.selected, n)

		if n == selected {
			label := Label(n)
			vs.SetFake(true, label)
			s.logger.Debug("widget selected", "widget", n.ID(), "label", label)
		}
	}
}

// Selected returns the widgets marked by the last conversion.
func (s *Synchronizer) Selected() []*tree.Node {
	return append([]*tree.Node(nil), s.selected...)
}

func (s *Synchronizer) clear() {
	for _, n := range s.selected {
		n.RemoveClass(s.selectedClass)
	}
	s.selected = s.selected[:0]
}
