package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
)

// UndefinedType is the type of Undefined.
type UndefinedType struct{}

// Undefined marks a value as absent when passed to FromAny, the native
// counterpart of an entry which does not exist.
var Undefined UndefinedType

// Item is one entry of an Ordered record.
type Item struct {
	Key   string
	Value any
}

// Ordered is a record built from native values which keeps its key order.
type Ordered []Item

// Set appends an entry and returns the extended record.
func (o Ordered) Set(key string, v any) Ordered {
	return append(o, Item{Key: key, Value: v})
}

// FromAny classifies a native Go value into a node. Maps without an order
// get their keys sorted. Values with no markup meaning (functions, channels,
// structs, ...) become Absent.
func FromAny(v any) *Node {
	switch x := v.(type) {
	case nil:
		return Null()
	case UndefinedType, *UndefinedType:
		return Absent()
	case *Node:
		if x == nil {
			return Absent()
		}
		return x
	case Node:
		return &x
	case string:
		return FromString(x)
	case []byte:
		return FromString(string(x))
	case bool:
		return FromBool(x)
	case int:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case uint64:
		if x > math.MaxInt64 {
			return &Node{Type: NumberType, Number: strconv.FormatUint(x, 10)}
		}
		return FromInt(int64(x))
	case float64:
		return FromFloat(x)
	case json.Number:
		return FromNumber(string(x))
	case []any:
		if x == nil {
			return Null()
		}
		return fromSlice(len(x), func(i int) any { return x[i] })
	case []*Node:
		return FromSlice(x)
	case Ordered:
		kvs := make([]KeyVal, len(x))
		for i, it := range x {
			kvs[i] = KV(it.Key, FromAny(it.Value))
		}
		return FromKeyVals(kvs)
	case []KeyVal:
		return FromKeyVals(x)
	case yaml.MapSlice:
		kvs := make([]KeyVal, len(x))
		for i, it := range x {
			kvs[i] = KV(keyString(it.Key), FromAny(it.Value))
		}
		return FromKeyVals(kvs)
	case map[string]any:
		if x == nil {
			return Null()
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		kvs := make([]KeyVal, len(keys))
		for i, k := range keys {
			kvs[i] = KV(k, FromAny(x[k]))
		}
		return FromKeyVals(kvs)
	case map[string]*Node:
		return FromMap(x)
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) *Node {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return FromAny(rv.Elem().Interface())
	case reflect.String:
		return FromString(rv.String())
	case reflect.Bool:
		return FromBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromAny(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null()
		}
		return fromSlice(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Absent()
		}
		if rv.IsNil() {
			return Null()
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			switch {
			case a.String() < b.String():
				return -1
			case a.String() > b.String():
				return 1
			}
			return 0
		})
		kvs := make([]KeyVal, len(keys))
		for i, k := range keys {
			kvs[i] = KV(k.String(), FromAny(rv.MapIndex(k).Interface()))
		}
		return FromKeyVals(kvs)
	default:
		return Absent()
	}
}

func fromSlice(n int, at func(int) any) *Node {
	vals := make([]*Node, n)
	for i := range n {
		vals[i] = FromAny(at(i))
	}
	return FromSlice(vals)
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// ToAny converts a node back to native values. Records become Ordered so
// that key order survives; Absent becomes Undefined.
func ToAny(y *Node) any {
	switch Classify(y) {
	case KindAbsent:
		return Undefined
	case KindNull:
		return nil
	case KindRecord:
		res := make(Ordered, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = Item{Key: f.String, Value: ToAny(y.Values[i])}
		}
		return res
	case KindSequence:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	}
	switch y.Type {
	case StringType:
		return y.String
	case BoolType:
		return y.Bool
	}
	if y.Int64 != nil {
		return int(*y.Int64)
	}
	if y.Float64 != nil {
		return *y.Float64
	}
	return json.Number(y.Number)
}

// ToPlain is like ToAny but gives records as map[string]any, the form
// expression engines and template libraries can index. Key order is lost.
func ToPlain(y *Node) any {
	switch Classify(y) {
	case KindRecord:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			if _, dup := res[f.String]; dup {
				continue
			}
			res[f.String] = ToPlain(y.Values[i])
		}
		return res
	case KindSequence:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToPlain(v)
		}
		return res
	case KindAbsent:
		return nil
	}
	return ToAny(y)
}
