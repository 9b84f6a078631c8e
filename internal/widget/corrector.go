package widget

import (
	"github.com/dshills/blockedit/internal/app"
	"github.com/dshills/blockedit/internal/engine/tree"
	"github.com/dshills/blockedit/internal/engine/view"
	"github.com/dshills/blockedit/internal/event"
)

// Corrector keeps view selections out of widget internals.
type Corrector struct {
	logger *app.Logger
}

// NewCorrector creates a corrector.
func NewCorrector(logger *app.Logger) *Corrector {
	return &Corrector{logger: logger}
}

// OnSelectionChange is the selectionChange listener. A range with both
// ends inside the same widget is replaced with a range on that widget.
func (c *Corrector) OnSelectionChange(_ *event.Info, data *view.SelectionChangeData) {
	sel := data.NewSelection
	ranges := sel.Ranges()
	if len(ranges) == 0 {
		return
	}

	corrected := false
	for i, r := range ranges {
		start := widgetAncestor(r.Start.Container())
		if start == nil || start != widgetAncestor(r.End.Container()) {
			continue
		}
		ranges[i] = tree.RangeOn(start)
		corrected = true
	}
	if !corrected {
		return
	}
	sel.SetRanges(ranges, sel.IsBackward())
	c.logger.Debug("selection moved onto widget", "ranges", len(ranges))
}
