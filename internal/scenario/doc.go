// Package scenario runs scripted editing sessions described in YAML.
//
// A scenario declares the element types of its document, the initial data
// in selection markup, and a list of steps. Each step is one user action
// (a keystroke, a click, a resize drag, a read-only toggle) followed by
// optional expectations on the model markup, the view markup and the fake
// selection state:
//
//	name: arrow selects widget
//	elements:
//	  - name: widget
//	    view: div
//	    object: true
//	    block: true
//	    widget: true
//	    label: element label
//	data: <paragraph>foo[]</paragraph><widget></widget>
//	steps:
//	  - key: Right
//	    expect:
//	      model: <paragraph>foo</paragraph>[<widget></widget>]
//	      fake: true
//
// Files may hold several scenarios as separate YAML documents.
package scenario
