package ir

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func keysOf(n *Node) []string {
	var res []string
	for _, e := range n.Entries() {
		res = append(res, e.Key)
	}
	return res
}

func TestFromAnyScalars(t *testing.T) {
	type myString string
	tests := []struct {
		name string
		in   any
		want Kind
		text string
	}{
		{"string", "s", KindScalar, "s"},
		{"named string", myString("m"), KindScalar, "m"},
		{"bytes", []byte("b"), KindScalar, "b"},
		{"int", 3, KindScalar, "3"},
		{"int8", int8(-3), KindScalar, "-3"},
		{"uint32", uint32(7), KindScalar, "7"},
		{"huge uint", uint64(18446744073709551615), KindScalar, "18446744073709551615"},
		{"float32", float32(0.5), KindScalar, "0.5"},
		{"json number", json.Number("10"), KindScalar, "10"},
		{"bool", true, KindScalar, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := FromAny(tt.in)
			if got := Classify(n); got != tt.want {
				t.Fatalf("kind = %s, want %s", got, tt.want)
			}
			if got, _ := Text(n); got != tt.text {
				t.Errorf("text = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestFromAnyKinds(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *int
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, KindNull},
		{"nil map", nilMap, KindNull},
		{"nil pointer", nilPtr, KindNull},
		{"undefined", Undefined, KindAbsent},
		{"nil node", (*Node)(nil), KindAbsent},
		{"func", func() {}, KindAbsent},
		{"chan", make(chan int), KindAbsent},
		{"struct", struct{ A int }{1}, KindAbsent},
		{"int keyed map", map[int]string{1: "a"}, KindAbsent},
		{"slice", []any{1, "a"}, KindSequence},
		{"typed slice", []string{"a"}, KindSequence},
		{"array", [2]int{1, 2}, KindSequence},
		{"map", map[string]any{"a": 1}, KindRecord},
		{"typed map", map[string]int{"a": 1}, KindRecord},
		{"ordered", Ordered{}.Set("a", 1), KindRecord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(FromAny(tt.in)); got != tt.want {
				t.Errorf("kind = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFromAnyKeyOrder(t *testing.T) {
	ordered := FromAny(Ordered{}.Set("z", 1).Set("a", 2).Set("m", 3))
	if diff := cmp.Diff([]string{"z", "a", "m"}, keysOf(ordered)); diff != "" {
		t.Errorf("Ordered keys (-want +got):\n%s", diff)
	}
	mapSlice := FromAny(yaml.MapSlice{{Key: "z", Value: 1}, {Key: 2, Value: "two"}})
	if diff := cmp.Diff([]string{"z", "2"}, keysOf(mapSlice)); diff != "" {
		t.Errorf("MapSlice keys (-want +got):\n%s", diff)
	}
	plain := FromAny(map[string]any{"z": 1, "a": 2, "m": 3})
	if diff := cmp.Diff([]string{"a", "m", "z"}, keysOf(plain)); diff != "" {
		t.Errorf("map keys should be sorted (-want +got):\n%s", diff)
	}
}

func TestFromAnyNested(t *testing.T) {
	n := FromAny(Ordered{}.Set("ul", Ordered{}.Set("li", []any{"a", Undefined, nil})))
	li := Get(Get(n, "ul"), "li")
	if Classify(li) != KindSequence || len(li.Values) != 3 {
		t.Fatalf("unexpected li: %+v", li)
	}
	want := []Kind{KindScalar, KindAbsent, KindNull}
	for i, v := range li.Values {
		if Classify(v) != want[i] {
			t.Errorf("item %d: kind %s, want %s", i, Classify(v), want[i])
		}
	}
}

func TestToAny(t *testing.T) {
	n := FromAny(Ordered{}.Set("b", 1).Set("a", []any{"x", true, nil, 1.5}))
	got := ToAny(n)
	want := Ordered{{"b", 1}, {"a", []any{"x", true, nil, 1.5}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
	if ToAny(Absent()) != Undefined {
		t.Error("absent should convert to Undefined")
	}
}

func TestToPlain(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		KV("a", FromInt(1)),
		KV("a", FromInt(2)),
		KV("b", FromSlice([]*Node{FromString("x")})),
	})
	want := map[string]any{"a": 1, "b": []any{"x"}}
	if diff := cmp.Diff(want, ToPlain(n)); diff != "" {
		t.Errorf("ToPlain (-want +got):\n%s", diff)
	}
}
