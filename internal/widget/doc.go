// Package widget makes atomic content blocks behave as single units.
//
// A widget is a view element marked with ToWidget. The package provides
// four cooperating handlers, installed together by the Widget plugin:
//
//   - Synchronizer marks selected widgets and turns a selection of exactly
//     one widget into a fake selection.
//   - PointerHandler selects a widget when it is pressed.
//   - Keyboard handles deletion next to objects, arrow navigation around
//     objects and select-all scoped to a nested editable.
//   - Corrector moves view selections that fall inside a widget onto the
//     whole widget.
//
// Nested editables created with ToWidgetEditable are regions inside a
// widget where ordinary text editing applies.
package widget
