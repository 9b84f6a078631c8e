package pointer

// DragTracker tracks pointer drag state.
type DragTracker struct {
	active     bool
	button     Button
	startPos   Position
	currentPos Position
}

// NewDragTracker creates an idle drag tracker.
func NewDragTracker() *DragTracker {
	return &DragTracker{}
}

// Start begins a new drag operation.
func (t *DragTracker) Start(pos Position, button Button) {
	t.active = true
	t.button = button
	t.startPos = pos
	t.currentPos = pos
}

// Update records the current pointer position of an active drag.
func (t *DragTracker) Update(pos Position) {
	if t.active {
		t.currentPos = pos
	}
}

// End ends the current drag operation.
func (t *DragTracker) End() {
	t.active = false
	t.button = ButtonNone
	t.startPos = Position{}
	t.currentPos = Position{}
}

// IsActive returns true if a drag is in progress.
func (t *DragTracker) IsActive() bool {
	return t.active
}

// Delta returns the distance dragged from the start.
func (t *DragTracker) Delta() Position {
	return t.currentPos.Sub(t.startPos)
}

// DragState represents the current state of a drag operation.
type DragState struct {
	// Active indicates a drag is in progress.
	Active bool

	// Button is the button being held.
	Button Button

	// StartPos is where the drag started.
	StartPos Position

	// CurrentPos is the current drag position.
	CurrentPos Position
}

// State returns the current drag state.
func (t *DragTracker) State() DragState {
	return DragState{
		Active:     t.active,
		Button:     t.button,
		StartPos:   t.startPos,
		CurrentPos: t.currentPos,
	}
}
