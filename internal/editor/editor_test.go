package editor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/blockedit/internal/config"
	"github.com/dshills/blockedit/internal/engine/schema"
)

func newTestEditor(t *testing.T, data string, opts ...Option) *Editor {
	t.Helper()
	cfg := config.Default()
	cfg.Keystrokes.Platform = "other"
	opts = append([]Option{WithSchema(map[string]schema.Definition{
		"image": {IsObject: true, IsBlock: true},
	})}, opts...)
	e, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(e.Destroy)
	if err := e.SetData(data); err != nil {
		t.Fatalf("SetData() error = %v", err)
	}
	return e
}

func assertData(t *testing.T, e *Editor, want string) {
	t.Helper()
	got, err := e.Data()
	if err != nil {
		t.Fatalf("Data() error = %v", err)
	}
	if got != want {
		t.Errorf("Data() = %s, want %s", got, want)
	}
}

func press(t *testing.T, e *Editor, spec string) bool {
	t.Helper()
	handled, err := e.PressKey(spec)
	if err != nil {
		t.Fatalf("PressKey(%q) error = %v", spec, err)
	}
	return handled
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Keystrokes.SelectAll = "Hyper+A"
	if _, err := New(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestSetDataRendersView(t *testing.T) {
	e := newTestEditor(t, `<paragraph>fo[]o</paragraph><image src="a.png"></image>`)

	assertData(t, e, `<paragraph>fo[]o</paragraph><image src="a.png"></image>`)
	got, err := e.ViewData()
	if err != nil {
		t.Fatal(err)
	}
	if want := `<p>fo{}o</p><image src="a.png"></image>`; got != want {
		t.Errorf("ViewData() = %s, want %s", got, want)
	}
}

func TestSetDataInvalid(t *testing.T) {
	e := newTestEditor(t, `<paragraph>foo</paragraph>`)
	if err := e.SetData(`<paragraph>[foo</paragraph>`); err == nil {
		t.Error("SetData() error = nil, want error")
	}
}

func TestDefaultKeys(t *testing.T) {
	tests := []struct {
		name string
		data string
		key  string
		want string
	}{
		{"type", `<paragraph>fo[]o</paragraph>`, "x", `<paragraph>fox[]o</paragraph>`},
		{"type replaces", `<paragraph>f[oo]</paragraph>`, "x", `<paragraph>fx[]</paragraph>`},
		{"backspace", `<paragraph>fo[]o</paragraph>`, "Backspace", `<paragraph>f[]o</paragraph>`},
		{"delete", `<paragraph>f[]oo</paragraph>`, "Delete", `<paragraph>f[]o</paragraph>`},
		{"delete range", `<paragraph>f[oo]</paragraph>`, "Delete", `<paragraph>f[]</paragraph>`},
		{"backspace merges", `<paragraph>foo</paragraph><paragraph>[]bar</paragraph>`, "Backspace", `<paragraph>foo[]bar</paragraph>`},
		{"delete merges", `<paragraph>foo[]</paragraph><paragraph>bar</paragraph>`, "Delete", `<paragraph>foo[]bar</paragraph>`},
		{"delete object", `[<image></image>]`, "Delete", `<paragraph>[]</paragraph>`},
		{"right", `<paragraph>fo[]o</paragraph>`, "Right", `<paragraph>foo[]</paragraph>`},
		{"left collapses", `<paragraph>f[oo]</paragraph>`, "Left", `<paragraph>f[]oo</paragraph>`},
		{"shift right", `<paragraph>f[]oo</paragraph>`, "Shift+Right", `<paragraph>f[o]o</paragraph>`},
		{"select all", `<paragraph>f[]oo</paragraph><paragraph>bar</paragraph>`, "Ctrl+A", `[<paragraph>foo</paragraph><paragraph>bar</paragraph>]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t, tt.data)
			if !press(t, e, tt.key) {
				t.Errorf("PressKey(%q) not handled", tt.key)
			}
			assertData(t, e, tt.want)
		})
	}
}

func TestDeleteMergeUpdatesView(t *testing.T) {
	e := newTestEditor(t, `<paragraph>foo</paragraph><paragraph>[]bar</paragraph>`)
	press(t, e, "Backspace")

	got, err := e.ViewData()
	if err != nil {
		t.Fatal(err)
	}
	if want := `<p>foo{}bar</p>`; got != want {
		t.Errorf("ViewData() = %s, want %s", got, want)
	}
}

func TestReadOnlyIgnoresEdits(t *testing.T) {
	e := newTestEditor(t, `<paragraph>fo[]o</paragraph>`)
	e.SetReadOnly(true)

	for _, spec := range []string{"Backspace", "Delete", "x"} {
		if press(t, e, spec) {
			t.Errorf("PressKey(%q) handled in read-only mode", spec)
		}
	}
	assertData(t, e, `<paragraph>fo[]o</paragraph>`)
}

type recordingPlugin struct {
	name   string
	events *[]string
	err    error
}

func (p *recordingPlugin) Name() string { return p.name }

func (p *recordingPlugin) Init(*Editor) error {
	*p.events = append(*p.events, "init "+p.name)
	return p.err
}

func (p *recordingPlugin) Destroy() {
	*p.events = append(*p.events, "destroy "+p.name)
}

func TestPlugins(t *testing.T) {
	var events []string
	a := &recordingPlugin{name: "a", events: &events}
	b := &recordingPlugin{name: "b", events: &events}

	e, err := New(config.Default(), WithPlugins(a, b))
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := e.Plugin("b"); !ok || p != b {
		t.Errorf("Plugin(b) = %v, %v", p, ok)
	}
	if err := e.Use(&recordingPlugin{name: "a", events: &events}); !errors.Is(err, ErrPluginExists) {
		t.Errorf("Use() duplicate error = %v, want ErrPluginExists", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, e.PluginNames()); diff != "" {
		t.Errorf("PluginNames() mismatch (-want +got):\n%s", diff)
	}

	e.Destroy()
	e.Destroy()
	want := []string{"init a", "init b", "destroy b", "destroy a"}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if err := e.Use(&recordingPlugin{name: "c", events: &events}); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Use() after Destroy error = %v, want ErrDestroyed", err)
	}
}

func TestPluginInitError(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	_, err := New(config.Default(), WithPlugins(&recordingPlugin{name: "a", events: &events, err: boom}))
	if !errors.Is(err, boom) {
		t.Errorf("New() error = %v, want boom", err)
	}
}
