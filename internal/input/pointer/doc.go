// Package pointer provides pointer (mouse) input types for the view
// document's mousedown, mousemove and mouseup events.
//
// # Core Types
//
// Event represents a raw pointer event with page position, button,
// modifiers and action type:
//
//	ev := pointer.Event{
//	    Position:  pointer.Position{X: 100, Y: 50},
//	    Button:    pointer.ButtonLeft,
//	    Action:    pointer.ActionPress,
//	    Timestamp: time.Now(),
//	}
//
// Positions are page coordinates: relative to the top-left corner of the
// document, independent of scrolling.
//
// # Drag Tracking
//
// DragTracker records where a drag started and where the pointer is now.
// It holds no reference to the nodes being dragged; owners keep that state
// next to the tracker.
package pointer
