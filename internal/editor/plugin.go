package editor

import "fmt"

// Plugin is an editor feature.
type Plugin interface {
	// Name returns a unique plugin name.
	Name() string
	// Init wires the plugin into the editor.
	Init(e *Editor) error
}

// Destroyer is implemented by plugins holding subscriptions.
type Destroyer interface {
	Destroy()
}

// Use initializes a plugin and registers it under its name.
func (e *Editor) Use(p Plugin) error {
	if e.destroyed {
		return ErrDestroyed
	}
	name := p.Name()
	if _, exists := e.plugins[name]; exists {
		return fmt.Errorf("%w: %s", ErrPluginExists, name)
	}
	if err := p.Init(e); err != nil {
		return fmt.Errorf("init plugin %s: %w", name, err)
	}
	e.plugins[name] = p
	e.order = append(e.order, name)
	e.logger.Debug("plugin initialized", "plugin", name)
	return nil
}

// Plugin returns a registered plugin by name.
func (e *Editor) Plugin(name string) (Plugin, bool) {
	p, ok := e.plugins[name]
	return p, ok
}

// PluginNames returns plugin names in initialization order.
func (e *Editor) PluginNames() []string {
	return append([]string(nil), e.order...)
}
