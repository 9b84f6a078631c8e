package widget

import (
	"fmt"

	"github.com/dshills/blockedit/internal/editor"
	"github.com/dshills/blockedit/internal/event"
)

// PluginName is the registered name of the widget plugin.
const PluginName = "Widget"

// Plugin installs the widget handlers into an editor.
type Plugin struct {
	synchronizer *Synchronizer
	pointer      *PointerHandler
	keyboard     *Keyboard
	corrector    *Corrector

	subs []event.Subscription
}

// NewPlugin creates a widget plugin.
func NewPlugin() *Plugin {
	return &Plugin{}
}

// Name implements editor.Plugin.
func (p *Plugin) Name() string { return PluginName }

// Init implements editor.Plugin.
func (p *Plugin) Init(e *editor.Editor) error {
	cfg := e.Config()
	selectAll, err := e.Keystroke(cfg.Keystrokes.SelectAll)
	if err != nil {
		return fmt.Errorf("select-all keystroke: %w", err)
	}
	logger := e.Logger().WithComponent("widget")

	p.synchronizer = NewSynchronizer(cfg.Widget.SelectedClass, logger)
	p.pointer = NewPointerHandler(e.Model(), e.Mapper(), logger)
	p.keyboard = NewKeyboard(KeyboardConfig{
		Model:     e.Model(),
		Schema:    e.Schema(),
		Modifier:  e.Modifier(),
		SelectAll: selectAll,
		ReadOnly:  e.IsReadOnly,
		Logger:    logger,
	})
	p.corrector = NewCorrector(logger)

	v := e.View()
	p.subs = append(p.subs,
		e.Editing().SelectionHook().On(p.synchronizer.Convert, event.WithPriority(event.PriorityLow)),
		v.MouseDown().On(p.pointer.OnMouseDown, event.WithPriority(event.PriorityNormal)),
		v.KeyDown().On(p.keyboard.OnKeyDown, event.WithPriority(event.PriorityHigh)),
		v.SelectionChange().On(p.corrector.OnSelectionChange, event.WithPriority(event.PriorityHigh)),
	)
	return nil
}

// Synchronizer returns the selection synchronizer.
func (p *Plugin) Synchronizer() *Synchronizer { return p.synchronizer }

// Destroy implements editor.Destroyer.
func (p *Plugin) Destroy() {
	for _, sub := range p.subs {
		sub.Cancel()
	}
	p.subs = nil
}
