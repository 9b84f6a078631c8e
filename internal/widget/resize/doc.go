// Package resize implements drag-to-resize for widgets.
//
// Attach decorates a widget view element with a preview shadow and a
// top-left handle. The Plugin runs a two-state machine over pointer
// events: pressing a handle starts a drag, pointer movement updates the
// shadow preview and releasing the pointer commits the new height to the
// model element in one change block.
//
// Pointer movement is only observed while a drag is active.
package resize
