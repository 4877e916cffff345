package ir

import (
	"math"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"string", FromString(" a b "), " a b "},
		{"zero", FromInt(0), "0"},
		{"negative", FromInt(-1), "-1"},
		{"true", FromBool(true), "true"},
		{"false", FromBool(false), "false"},
		{"float", FromFloat(1.5), "1.5"},
		{"integral float", FromFloat(2), "2"},
		{"negative zero", FromFloat(math.Copysign(0, -1)), "0"},
		{"big", FromFloat(1e21), "1e+21"},
		{"below big", FromFloat(1e20), "100000000000000000000"},
		{"small", FromFloat(1.5e-7), "1.5e-7"},
		{"not so small", FromFloat(0.000001), "0.000001"},
		{"nan", FromFloat(math.NaN()), "NaN"},
		{"inf", FromFloat(math.Inf(1)), "Infinity"},
		{"-inf", FromFloat(math.Inf(-1)), "-Infinity"},
		{"number text", FromNumber("12345678901234567890123"), "1.2345678901234568e+22"},
		{"int text", FromNumber("42"), "42"},
		{"float text", FromNumber("1.0"), "1"},
		{"raw number", &Node{Type: NumberType, Number: "0x1F"}, "0x1F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Text(tt.node)
			if !ok {
				t.Fatal("expected scalar")
			}
			if got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextNonScalar(t *testing.T) {
	for _, n := range []*Node{nil, Null(), Absent(), FromSlice(nil), FromKeyVals(nil)} {
		if _, ok := Text(n); ok {
			t.Errorf("Text(%v) reported a scalar", n)
		}
	}
}
