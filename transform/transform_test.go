package transform

import (
	"errors"
	"testing"

	"github.com/signadot/toxml/encode"
	"github.com/signadot/toxml/ir"
)

func doc() ir.Ordered {
	return ir.Ordered{}.Set("user", ir.Ordered{}.
		Set("@id", "U1").
		Set("@Role", "ADMIN").
		Set("name", "Alice").
		Set("password", "secret").
		Set("tags", []any{"A", "B"}).
		Set("age", 30))
}

func TestPipeline(t *testing.T) {
	tests := []struct {
		name  string
		drops []string
		maps  []string
		want  string
	}{
		{
			name: "none",
			want: `<user id="U1" Role="ADMIN"><name>Alice</name><password>secret</password><tags>A</tags><tags>B</tags><age>30</age></user>`,
		},
		{
			name:  "drop-by-name",
			drops: []string{`name == "password"`},
			want:  `<user id="U1" Role="ADMIN"><name>Alice</name><tags>A</tags><tags>B</tags><age>30</age></user>`,
		},
		{
			name:  "drop-attributes",
			drops: []string{`attr`},
			want:  `<user><name>Alice</name><password>secret</password><tags>A</tags><tags>B</tags><age>30</age></user>`,
		},
		{
			name:  "drop-one-item",
			drops: []string{`key == "tags" && value == "A"`},
			want:  `<user id="U1" Role="ADMIN"><name>Alice</name><password>secret</password><tags>B</tags><age>30</age></user>`,
		},
		{
			name:  "drop-truthy",
			drops: []string{`name == "tags" ? value : ""`},
			want:  `<user id="U1" Role="ADMIN"><name>Alice</name><password>secret</password><age>30</age></user>`,
		},
		{
			name: "map-attributes",
			maps: []string{`attr ? lower(value) : value`},
			want: `<user id="u1" Role="admin"><name>Alice</name><password>secret</password><tags>A</tags><tags>B</tags><age>30</age></user>`,
		},
		{
			name: "map-absent",
			maps: []string{`name == "password" ? absent() : value`},
			want: `<user id="U1" Role="ADMIN"><name>Alice</name><tags>A</tags><tags>B</tags><age>30</age></user>`,
		},
		{
			name: "map-kind",
			maps: []string{`kind == "scalar" && name == "age" ? value + 1 : value`},
			want: `<user id="U1" Role="ADMIN"><name>Alice</name><password>secret</password><tags>A</tags><tags>B</tags><age>31</age></user>`,
		},
		{
			name:  "drop-then-map",
			drops: []string{`name == "tags"`},
			maps:  []string{`name == "name" ? upper(value) : value`},
			want:  `<user id="U1" Role="ADMIN"><name>ALICE</name><password>secret</password><age>30</age></user>`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &Pipeline{}
			for _, d := range tc.drops {
				if err := p.Drop(d); err != nil {
					t.Fatal(err)
				}
			}
			for _, m := range tc.maps {
				if err := p.Map(m); err != nil {
					t.Fatal(err)
				}
			}
			got := encode.MustString(doc(), encode.WithTransform(p.Transform()))
			if err := p.Err(); err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	p := &Pipeline{}
	if err := p.Drop(`name ==`); !errors.Is(err, ErrCompile) {
		t.Errorf("got %v want ErrCompile", err)
	}
	if err := p.Map(`(`); !errors.Is(err, ErrCompile) {
		t.Errorf("got %v want ErrCompile", err)
	}
	if p.Len() != 0 {
		t.Errorf("failed expressions were added")
	}
	if p.Transform() != nil {
		t.Errorf("empty pipeline should give a nil transform")
	}
}

func TestEvalError(t *testing.T) {
	p := &Pipeline{}
	if err := p.Map(`lower(value)`); err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(ir.Ordered{}.Set("a", "X").Set("n", 1), encode.WithTransform(p.Transform()))
	if want := "<a>x</a><n>1</n>"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if !errors.Is(p.Err(), ErrEval) {
		t.Errorf("got %v want ErrEval", p.Err())
	}
}

func TestEnv(t *testing.T) {
	tests := []struct {
		key  string
		name string
		attr bool
	}{
		{"a", "a", false},
		{"@a", "a", true},
		{"@", "", true},
		{"#", "", false},
		{"!", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		env := envOf(tc.key, ir.FromString("v"))
		if env["name"] != tc.name || env["attr"] != tc.attr || env["key"] != tc.key {
			t.Errorf("key %q: got %v", tc.key, env)
		}
		if env["value"] != "v" || env["kind"] != "scalar" {
			t.Errorf("key %q: got %v", tc.key, env)
		}
	}
}

func TestChain(t *testing.T) {
	suffix := func(s string) encode.Transform {
		return func(key string, node *ir.Node) *ir.Node {
			if node.Type != ir.StringType {
				return node
			}
			return ir.FromString(node.String + s)
		}
	}
	drop := func(key string, node *ir.Node) *ir.Node {
		if key == "b" {
			return nil
		}
		return node
	}
	tr := Chain(suffix("1"), nil, drop, suffix("2"))
	got := encode.MustString(ir.Ordered{}.Set("a", "x").Set("b", "y"), encode.WithTransform(tr))
	if want := "<a>x12</a>"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if Chain() != nil || Chain(nil) != nil {
		t.Errorf("empty chain should be nil")
	}
}
