package pointer

import (
	"time"

	"github.com/dshills/blockedit/internal/input/key"
)

// Button represents a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) button.
	ButtonLeft
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonRight is the secondary (right) button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Action represents the type of pointer action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates pointer movement.
	ActionMove
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	default:
		return "none"
	}
}

// Position represents a page coordinate.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Sub returns the vector from other to p.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Add returns p translated by other.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Event represents a pointer input event.
type Event struct {
	// Position is the page coordinate of the pointer.
	Position Position

	// Button is the button involved.
	Button Button

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Action is the type of pointer action.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a left-button pointer event at (x, y) with the current
// timestamp.
func NewEvent(action Action, x, y int) Event {
	return Event{
		Position:  Position{X: x, Y: y},
		Button:    ButtonLeft,
		Action:    action,
		Timestamp: time.Now(),
	}
}
