// Package markup reads and writes tree fixtures in an HTML-like notation
// with selection markers.
//
// In model markup "[" and "]" delimit a selection range and "[]" marks a
// caret. A range written "]...[" is backward. View output additionally
// uses "{" and "}" for range ends that lie inside text.
//
// Element and attribute names are lowercased by the tokenizer, and
// whitespace-only text between tags is dropped. The notation exists for
// tests, scenarios and command line output; it is not a storage format.
package markup
