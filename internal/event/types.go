package event

// Priority determines listener execution order.
// Lower values execute first.
type Priority int

const (
	// PriorityHighest is for engine internals that must observe events first.
	PriorityHighest Priority = 0

	// PriorityHigh is for features that intercept before default handling.
	PriorityHigh Priority = 100

	// PriorityNormal is the default priority.
	PriorityNormal Priority = 200

	// PriorityLow is for post-processing that runs after default handling.
	PriorityLow Priority = 300

	// PriorityLowest is for diagnostics that run last.
	PriorityLowest Priority = 400
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch {
	case p <= PriorityHighest:
		return "highest"
	case p <= PriorityHigh:
		return "high"
	case p <= PriorityNormal:
		return "normal"
	case p <= PriorityLow:
		return "low"
	default:
		return "lowest"
	}
}

// ParsePriority parses a priority name. Unknown names map to PriorityNormal.
func ParsePriority(s string) Priority {
	switch s {
	case "highest":
		return PriorityHighest
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	case "lowest":
		return PriorityLowest
	default:
		return PriorityNormal
	}
}

// Info describes a single delivery of an event through an emitter.
type Info struct {
	// Name is the name of the emitter that fired the event.
	Name string

	stopped bool
	calls   int
}

// Stop prevents listeners that have not run yet from receiving the event.
func (i *Info) Stop() {
	i.stopped = true
}

// IsStopped returns true if a listener stopped propagation.
func (i *Info) IsStopped() bool {
	return i.stopped
}

// Calls returns the number of listeners that received the event.
func (i *Info) Calls() int {
	return i.calls
}

// Listener handles a fired event.
type Listener[T any] func(info *Info, data T)
