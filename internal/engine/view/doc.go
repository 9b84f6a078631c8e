// Package view holds the presentation tree, its selection and the input
// events observed on it.
//
// The view selection extends the tree selection with a fake flag and an
// accessible label. A fake selection marks an element as selected without
// placing a native caret inside it, which is how widgets are presented.
//
// Input reaches the document through Fire* methods. Each kind of input is
// gated by an Observer that can be disabled; disabled observers drop the
// input without notifying listeners.
package view
