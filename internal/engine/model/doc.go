// Package model holds the authoritative document tree and its selection.
//
// All mutations go through a Writer obtained from Document.Change. Nested
// Change calls join the outermost block, and change listeners are notified
// exactly once, after the outermost block returns, with every operation the
// block performed.
package model
