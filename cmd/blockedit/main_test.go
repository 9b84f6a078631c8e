package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const passingScenario = `name: arrow
elements:
  - name: widget
    view: div
    object: true
    block: true
    widget: true
data: <paragraph>foo[]</paragraph><widget></widget>
steps:
  - key: Right
    expect:
      model: <paragraph>foo</paragraph>[<widget></widget>]
`

const failingScenario = `name: wrong
data: <paragraph>foo[]</paragraph>
steps:
  - key: x
    expect:
      model: <paragraph>foo[]</paragraph>
`

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     func(t *testing.T) []string
		wantCode int
		wantOut  string
	}{
		{
			name: "passing scenario",
			args: func(t *testing.T) []string {
				return []string{"-platform", "other", "run", writeTemp(t, "a.yaml", passingScenario)}
			},
			wantCode: 0,
			wantOut:  "PASS arrow\n1 passed, 0 failed\n",
		},
		{
			name: "failing scenario",
			args: func(t *testing.T) []string {
				return []string{"run", writeTemp(t, "b.yaml", failingScenario)}
			},
			wantCode: 1,
			wantOut:  "FAIL wrong\n",
		},
		{
			name: "passing script",
			args: func(t *testing.T) []string {
				return []string{"script", writeTemp(t, "c.lua", `editor.expect_eq(1, 1)`)}
			},
			wantCode: 0,
			wantOut:  "PASS ",
		},
		{
			name: "failing script",
			args: func(t *testing.T) []string {
				return []string{"script", writeTemp(t, "d.lua", `editor.expect_eq(1, 2)`)}
			},
			wantCode: 1,
			wantOut:  "got 1, want 2",
		},
		{
			name:     "missing file",
			args:     func(t *testing.T) []string { return []string{"run", filepath.Join(t.TempDir(), "none.yaml")} },
			wantCode: 1,
		},
		{
			name:     "unknown command",
			args:     func(*testing.T) []string { return []string{"lint", "x.yaml"} },
			wantCode: 2,
		},
		{
			name:     "no files",
			args:     func(*testing.T) []string { return []string{"run"} },
			wantCode: 2,
		},
		{
			name:     "bad platform",
			args:     func(*testing.T) []string { return []string{"-platform", "amiga", "run", "x.yaml"} },
			wantCode: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args(t), &stdout, &stderr)
			if code != tt.wantCode {
				t.Fatalf("run() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.wantOut) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantOut)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(-version) = %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "blockedit dev") {
		t.Errorf("stdout = %q", stdout.String())
	}
}
