package panda

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
)

// Kind identifies which JSON type a [Value] holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a parsed JSON document of arbitrary shape. The zero Value is JSON
// null.
//
// Numbers keep their literal text, so integers wider than float64 survive a
// load unchanged.
type Value struct {
	kind Kind
	b    bool
	s    string // string content or number literal
	arr  []Value
	obj  map[string]Value
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// NewBool returns a boolean Value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewNumber returns a numeric Value holding n's literal text.
func NewNumber(n json.Number) Value { return Value{kind: KindNumber, s: n.String()} }

// NewString returns a string Value.
func NewString(s string) Value { return Value{kind: KindString, s: s} }

// NewArray returns an array Value with the given elements.
func NewArray(elems ...Value) Value {
	return Value{kind: KindArray, arr: slices.Clone(elems)}
}

// NewObject returns an object Value with a copy of fields.
func NewObject(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	maps.Copy(obj, fields)
	return Value{kind: KindObject, obj: obj}
}

// ParseValue parses exactly one JSON document from data. Trailing
// non-whitespace content is an error.
func ParseValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errors.New("unexpected data after top-level value")
	}

	return fromInterface(raw)
}

func fromInterface(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return NewBool(v), nil
	case json.Number:
		return NewNumber(v), nil
	case string:
		return NewString(v), nil
	case []any:
		arr := make([]Value, 0, len(v))
		for _, elem := range v {
			converted, err := fromInterface(elem)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, converted)
		}
		return Value{kind: KindArray, arr: arr}, nil
	case map[string]any:
		obj := make(map[string]Value, len(v))
		for key, elem := range v {
			converted, err := fromInterface(elem)
			if err != nil {
				return Value{}, err
			}
			obj[key] = converted
		}
		return Value{kind: KindObject, obj: obj}, nil
	default:
		return Value{}, fmt.Errorf("unsupported json type %T", raw)
	}
}

// Kind returns the JSON type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsNumber() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return json.Number(v.s), true
}

// Int64 returns v as an integer. It fails for non-numbers and for numbers
// with a fractional part or out of int64 range.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := json.Number(v.s).Int64()
	return n, err == nil
}

func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := json.Number(v.s).Float64()
	return f, err == nil
}

func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsArray returns a copy of the elements of an array Value.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return slices.Clone(v.arr), true
}

// AsObject returns a copy of the fields of an object Value.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return maps.Clone(v.obj), true
}

// Len returns the number of elements of an array or fields of an object,
// and 0 for any other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Keys returns the sorted field names of an object Value.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return slices.Sorted(maps.Keys(v.obj))
}

// Field returns the named field of an object Value.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	field, ok := v.obj[key]
	return field, ok
}

// Index returns the i-th element of an array Value.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Lookup walks path from v. Each segment is an object key, or a decimal
// index when the current value is an array. An empty path returns v.
func (v Value) Lookup(path ...string) (Value, bool) {
	current := v
	for _, segment := range path {
		var ok bool
		switch current.kind {
		case KindObject:
			current, ok = current.Field(segment)
		case KindArray:
			i, err := strconv.Atoi(segment)
			if err != nil {
				return Value{}, false
			}
			current, ok = current.Index(i)
		}
		if !ok {
			return Value{}, false
		}
	}
	return current, true
}

// Interface returns v in the form encoding/json produces when decoding into
// an any with UseNumber: nil, bool, json.Number, string, []any or
// map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.s)
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, elem := range v.arr {
			out[i] = elem.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for key, elem := range v.obj {
			out[key] = elem.Interface()
		}
		return out
	default:
		return nil
	}
}

// Decode stores v into target, which must be a pointer, using the usual
// encoding/json rules.
func (v Value) Decode(target any) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

// Equal reports whether v and other hold the same JSON document. Numbers
// are equal when their literals match or they parse to the same float64.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindNumber:
		if v.s == other.s {
			return true
		}
		a, errA := strconv.ParseFloat(v.s, 64)
		b, errB := strconv.ParseFloat(other.s, 64)
		return errA == nil && errB == nil && a == b
	case KindArray:
		return slices.EqualFunc(v.arr, other.arr, Value.Equal)
	case KindObject:
		return maps.EqualFunc(v.obj, other.obj, Value.Equal)
	default:
		return false
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns v as compact JSON text.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return "<invalid: " + err.Error() + ">"
	}
	return string(data)
}
