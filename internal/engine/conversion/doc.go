// Package conversion implements the editing controller, which keeps the
// view document in step with the model document.
//
// Model changes are replayed onto the view after every outermost change
// block. Elements are converted by per-name ElementConverters and
// attributes by AttributeConverters. After the tree is updated the model
// selection is converted by firing the "selection" hook: the default
// converter maps the ranges at normal priority, and features may adjust
// the result at lower priorities.
//
// The controller also applies user selection changes reported by the view
// to the model, at normal priority, so that high-priority listeners can
// correct them first.
package conversion
