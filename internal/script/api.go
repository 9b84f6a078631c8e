package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/blockedit/internal/editor"
	"github.com/dshills/blockedit/internal/scenario"
)

func (s *Session) functions() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"define":     s.luaDefine,
		"set_data":   s.withEditor(luaSetData),
		"get_data":   s.withEditor(luaGetData),
		"get_view":   s.withEditor(luaGetView),
		"key":        s.withEditor(luaKey),
		"click":      s.withEditor(luaClick),
		"drag":       s.withEditor(luaDrag),
		"read_only":  s.withEditor(luaReadOnly),
		"is_fake":    s.withEditor(luaIsFake),
		"fake_label": s.withEditor(luaFakeLabel),
		"expect_eq":  s.luaExpectEq,
		"log":        s.luaLog,
	}
}

type editorFunc func(L *lua.LState, e *editor.Editor) int

// withEditor starts the editor on first use.
func (s *Session) withEditor(fn editorFunc) lua.LGFunction {
	return func(L *lua.LState) int {
		e, err := s.start()
		if err != nil {
			L.RaiseError("start editor: %v", err)
			return 0
		}
		return fn(L, e)
	}
}

// luaDefine registers an element type: editor.define{name = "widget", ...}.
func (s *Session) luaDefine(L *lua.LState) int {
	if s.editor != nil {
		L.RaiseError("define: %v", ErrEditorStarted)
		return 0
	}
	t := L.CheckTable(1)
	spec := scenario.ElementSpec{
		Name:      fieldString(t, "name"),
		View:      fieldString(t, "view"),
		Object:    fieldBool(t, "object"),
		Limit:     fieldBool(t, "limit"),
		Block:     fieldBool(t, "block"),
		AllowText: fieldBool(t, "allow_text"),
		Widget:    fieldBool(t, "widget"),
		Label:     fieldString(t, "label"),
		Editable:  fieldBool(t, "editable"),
		Resizable: fieldBool(t, "resizable"),
	}
	if spec.Name == "" {
		L.ArgError(1, "name is required")
		return 0
	}
	s.specs = append(s.specs, spec)
	return 0
}

func luaSetData(L *lua.LState, e *editor.Editor) int {
	if err := e.SetData(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func luaGetData(L *lua.LState, e *editor.Editor) int {
	data, err := e.Data()
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LString(data))
	return 1
}

func luaGetView(L *lua.LState, e *editor.Editor) int {
	data, err := e.ViewData()
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LString(data))
	return 1
}

func luaKey(L *lua.LState, e *editor.Editor) int {
	handled, err := e.PressKey(L.CheckString(1))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LBool(handled))
	return 1
}

// luaClick clicks the view node at a path table: editor.click({1}).
// Lua paths are zero-based like Go paths.
func luaClick(L *lua.LState, e *editor.Editor) int {
	n := e.ViewNode(checkPath(L, 1)...)
	if n == nil {
		L.RaiseError("click: %v", ErrNoNode)
		return 0
	}
	L.Push(lua.LBool(e.Click(n)))
	return 1
}

// luaDrag drags on a view node: editor.drag({0, 1}, x1, y1, x2, y2).
func luaDrag(L *lua.LState, e *editor.Editor) int {
	n := e.ViewNode(checkPath(L, 1)...)
	if n == nil {
		L.RaiseError("drag: %v", ErrNoNode)
		return 0
	}
	x1, y1 := L.CheckInt(2), L.CheckInt(3)
	x2, y2 := L.CheckInt(4), L.CheckInt(5)
	handled := e.MouseDown(n, x1, y1)
	e.MouseMove(n, x2, y2)
	e.MouseUp(n, x2, y2)
	L.Push(lua.LBool(handled))
	return 1
}

func luaReadOnly(L *lua.LState, e *editor.Editor) int {
	if L.GetTop() > 0 {
		e.SetReadOnly(L.CheckBool(1))
	}
	L.Push(lua.LBool(e.IsReadOnly()))
	return 1
}

func luaIsFake(L *lua.LState, e *editor.Editor) int {
	L.Push(lua.LBool(e.View().Selection().IsFake()))
	return 1
}

func luaFakeLabel(L *lua.LState, e *editor.Editor) int {
	L.Push(lua.LString(e.View().Selection().FakeLabel()))
	return 1
}

// luaExpectEq records a failure when the two values differ and returns
// whether they matched.
func (s *Session) luaExpectEq(L *lua.LState) int {
	got, want := L.CheckAny(1), L.CheckAny(2)
	if got.Type() == want.Type() && got.String() == want.String() {
		L.Push(lua.LTrue)
		return 1
	}
	msg := fmt.Sprintf("got %s, want %s", got.String(), want.String())
	if note := L.OptString(3, ""); note != "" {
		msg = note + ": " + msg
	}
	failure := L.Where(1) + " " + msg
	s.failures = append(s.failures, failure)
	s.logger.Warn("expectation failed", "failure", failure)
	L.Push(lua.LFalse)
	return 1
}

func (s *Session) luaLog(L *lua.LState) int {
	s.logger.Info(L.CheckString(1))
	return 0
}

func fieldString(t *lua.LTable, key string) string {
	if v, ok := t.RawGetString(key).(lua.LString); ok {
		return string(v)
	}
	return ""
}

func fieldBool(t *lua.LTable, key string) bool {
	return lua.LVAsBool(t.RawGetString(key))
}

func checkPath(L *lua.LState, n int) []int {
	t := L.CheckTable(n)
	path := make([]int, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		v, ok := t.RawGetInt(i).(lua.LNumber)
		if !ok {
			L.ArgError(n, "path must hold numbers")
			return nil
		}
		path = append(path, int(v))
	}
	return path
}
