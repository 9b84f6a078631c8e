// Package script drives an editor from Lua scripts.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries opened. The global "editor" table exposes the
// session:
//
//	editor.define{name = "widget", view = "div", object = true, widget = true}
//	editor.set_data("<paragraph>foo[]</paragraph><widget></widget>")
//	editor.key("Right")
//	editor.expect_eq(editor.get_data(), "<paragraph>foo</paragraph>[<widget></widget>]")
//
// Element types must be defined before the first call that needs the
// editor. Failed expectations are collected and do not stop the script.
package script
