package view

// ObserverKind identifies a class of observed input.
type ObserverKind uint8

const (
	// ObserverMouse observes pointer presses and releases.
	ObserverMouse ObserverKind = iota
	// ObserverMouseMove observes pointer movement.
	ObserverMouseMove
	// ObserverKey observes key presses.
	ObserverKey
	// ObserverSelection observes selection changes.
	ObserverSelection
	// ObserverFocus observes focus changes.
	ObserverFocus
)

var observerNames = map[ObserverKind]string{
	ObserverMouse:     "mouse",
	ObserverMouseMove: "mousemove",
	ObserverKey:       "key",
	ObserverSelection: "selection",
	ObserverFocus:     "focus",
}

// String returns the observer name.
func (k ObserverKind) String() string {
	return observerNames[k]
}

// Observer gates delivery of one kind of input.
type Observer struct {
	kind    ObserverKind
	enabled bool
}

// Kind returns the observed input kind.
func (o *Observer) Kind() ObserverKind {
	return o.kind
}

// Enable starts delivering input.
func (o *Observer) Enable() {
	o.enabled = true
}

// Disable stops delivering input.
func (o *Observer) Disable() {
	o.enabled = false
}

// IsEnabled returns true if input is delivered.
func (o *Observer) IsEnabled() bool {
	return o.enabled
}
