package encode

import (
	"reflect"
	"strings"

	"github.com/signadot/toxml/ir"
)

type EncodeOption func(*EncState)

// Transform may replace the value of any entry before it is rendered, or
// drop it by returning nil or an Absent node. key is the record key,
// "@"-prefixed for attributes. Fragment content, both the root value and
// "#" entries, is passed with key "".
type Transform func(key string, node *ir.Node) *ir.Node

func WithTransform(f Transform) EncodeOption {
	return func(es *EncState) { es.transform = f }
}

// Indent uses n spaces per level. n <= 0 gives compact output.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n <= 0 {
			es.unit = ""
			return
		}
		es.unit = strings.Repeat(" ", n)
	}
}

// IndentString uses s verbatim as one level of indentation.
func IndentString(s string) EncodeOption {
	return func(es *EncState) { es.unit = s }
}

// IndentAny accepts either a count of spaces (any integer or float kind) or
// an indentation string. Anything else, zero and "" give compact output.
func IndentAny(v any) EncodeOption {
	switch x := v.(type) {
	case string:
		return IndentString(x)
	case nil:
		return Indent(0)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Indent(int(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Indent(int(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Indent(int(rv.Float()))
	}
	return Indent(0)
}

// ExpandEmpty writes records with no entries at all as <x></x> rather than
// <x/>. Records holding only attributes still self-close, as do nulls.
func ExpandEmpty(v bool) EncodeOption {
	return func(es *EncState) { es.expandEmpty = v }
}

// EmptyKeyFragment treats the empty key "" as a synonym of the fragment
// key "#", as earlier versions of the format did. Otherwise entries with
// an empty key are dropped.
func EmptyKeyFragment(v bool) EncodeOption {
	return func(es *EncState) { es.emptyKeyFragment = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
