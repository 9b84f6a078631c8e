package widget

import (
	"github.com/dshills/blockedit/internal/app"
	"github.com/dshills/blockedit/internal/engine/model"
	"github.com/dshills/blockedit/internal/engine/view"
	"github.com/dshills/blockedit/internal/event"
)

// PointerHandler selects widgets on pointer press.
type PointerHandler struct {
	model  *model.Document
	mapper Mapper
	logger *app.Logger
}

// NewPointerHandler creates a pointer handler.
func NewPointerHandler(m *model.Document, mp Mapper, logger *app.Logger) *PointerHandler {
	return &PointerHandler{model: m, mapper: mp, logger: logger}
}

// OnMouseDown is the mousedown listener.
func (h *PointerHandler) OnMouseDown(_ *event.Info, data *view.PointerEventData) {
	target := data.Target
	if target == nil || insideNestedEditable(target) {
		return
	}
	el := target.FindAncestor(IsWidget)
	if el == nil {
		return
	}
	modelEl := h.mapper.ToModel(el)
	if modelEl == nil {
		h.logger.Debug("pressed widget has no model element", "widget", el.ID())
		return
	}

	data.PreventDefault()
	if !data.Document.IsFocused() {
		data.Document.Focus()
	}
	h.model.Change(func(w *model.Writer) {
		w.SetSelectionOn(modelEl)
	})
}
