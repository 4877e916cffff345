package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/toxml/format"
	"github.com/signadot/toxml/transform"
)

func testRenderConfig() *RenderConfig {
	return &RenderConfig{
		MainConfig: &MainConfig{},
		Pipeline:   &transform.Pipeline{},
	}
}

func TestRenderReader(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		setup func(cfg *RenderConfig) error
		want  string
	}{
		{
			name: "json",
			in:   `{"a": {"@b": "B", "c": [1, 2]}}`,
			want: "<a b=\"B\"><c>1</c><c>2</c></a>\n",
		},
		{
			name: "yaml-documents",
			in:   "a: 1\n---\nb: 2\n",
			want: "<a>1</a>\n<b>2</b>\n",
		},
		{
			name: "indent",
			in:   `{"a": {"b": "B"}}`,
			setup: func(cfg *RenderConfig) error {
				cfg.Indent = 2
				return nil
			},
			want: "<a>\n  <b>B</b>\n</a>\n",
		},
		{
			name: "tab",
			in:   `{"a": {"b": "B"}}`,
			setup: func(cfg *RenderConfig) error {
				cfg.Tab = true
				return nil
			},
			want: "<a>\n\t<b>B</b>\n</a>\n",
		},
		{
			name: "expand-empty",
			in:   `{"a": {}}`,
			setup: func(cfg *RenderConfig) error {
				cfg.ExpandEmpty = true
				return nil
			},
			want: "<a></a>\n",
		},
		{
			name: "empty-fragment",
			in:   `{"a": {"": "x"}}`,
			setup: func(cfg *RenderConfig) error {
				cfg.EmptyFragment = true
				return nil
			},
			want: "<a>x</a>\n",
		},
		{
			name: "drop",
			in:   `{"a": {"b": "B", "c": "C"}}`,
			setup: func(cfg *RenderConfig) error {
				return cfg.Pipeline.Drop(`name == "b"`)
			},
			want: "<a><c>C</c></a>\n",
		},
		{
			name: "flow-yaml-detected",
			in:   "{a: b}\n---\n{c: d}\n",
			want: "<a>b</a>\n<c>d</c>\n",
		},
		{
			name: "forced-yaml",
			in:   `{a: b}`,
			setup: func(cfg *RenderConfig) error {
				f := format.YAMLFormat
				cfg.InFormat = &f
				return nil
			},
			want: "<a>b</a>\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testRenderConfig()
			if tc.setup != nil {
				if err := tc.setup(cfg); err != nil {
					t.Fatal(err)
				}
			}
			if err := cfg.validate(); err != nil {
				t.Fatal(err)
			}
			buf := &bytes.Buffer{}
			if err := renderReader(cfg, buf, strings.NewReader(tc.in), cfg.encOpts(buf)); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestRenderReaderErrors(t *testing.T) {
	cfg := testRenderConfig()
	cfg.J = true
	if err := renderReader(cfg, &bytes.Buffer{}, strings.NewReader(`{"a":`), cfg.xmlOpts()); err == nil {
		t.Errorf("expected a parse error")
	}

	cfg = testRenderConfig()
	if err := cfg.Pipeline.Map(`upper(value)`); err != nil {
		t.Fatal(err)
	}
	if err := renderReader(cfg, &bytes.Buffer{}, strings.NewReader(`{"a": 1}`), cfg.xmlOpts()); err == nil {
		t.Errorf("expected an evaluation error")
	}

	cfg = testRenderConfig()
	cfg.Tab = true
	cfg.Indent = 2
	if err := cfg.validate(); err == nil {
		t.Errorf("expected -tab with -indent to be rejected")
	}
}

func TestCheckDiff(t *testing.T) {
	buf := &bytes.Buffer{}
	differs, err := checkDiff(buf, "<a>1</a>\n", "<a>1</a>\n", false)
	if err != nil || differs || buf.Len() != 0 {
		t.Fatalf("equal: differs=%v err=%v out=%q", differs, err, buf.String())
	}
	differs, err = checkDiff(buf, "<a>1</a>\n<b/>\n", "<a>2</a>\n<b/>\n", false)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatal("difference not reported")
	}
	want := "- <a>1</a>\n+ <a>2</a>\n  <b/>\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRenderFiles(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "a.yml")
	if err := os.WriteFile(yml, []byte("{x: 1}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	js := filepath.Join(dir, "b.json")
	if err := os.WriteFile(js, []byte(`{"y": [true, null]}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := testRenderConfig()
	buf := &bytes.Buffer{}
	if err := renderFiles(cfg, buf, []string{yml, js}, cfg.xmlOpts()); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "<x>1</x>\n<y>true</y><y/>\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if err := renderFiles(cfg, buf, []string{filepath.Join(dir, "missing.json")}, nil); err == nil {
		t.Error("expected an error for a missing file")
	}
}
