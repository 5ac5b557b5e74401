package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the shape of a JSON value.
type Kind int

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
		return "unknown"
	}
}

// Value is a JSON value as a closed tagged variant. The zero Value is null.
// Object member order is insertion order and survives parse/serialize
// round trips. Values are treated as immutable: mutation happens only by
// building replacements (see Write), never in place.
type Value struct {
	kind    Kind
	boolean bool
	number  json.Number
	text    string
	items   []Value
	fields  *orderedmap.OrderedMap[string, Value]
}

// Member is a single key/value entry of an object.
type Member struct {
	Key   string
	Value Value
}

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// Bool returns a JSON boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Number returns a JSON number value.
func Number(n json.Number) Value {
	return Value{kind: KindNumber, number: n}
}

// Int returns a JSON number value for an integer.
func Int(i int) Value {
	return Number(json.Number(strconv.Itoa(i)))
}

// String returns a JSON string value.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Array returns a JSON array value holding the given items.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: items}
}

// Object returns an empty JSON object value.
func Object() Value {
	return Value{kind: KindObject, fields: orderedmap.New[string, Value]()}
}

// ObjectOf returns a JSON object value holding the given members in order.
func ObjectOf(members ...Member) Value {
	v := Object()
	for _, m := range members {
		v.fields.Set(m.Key, m.Value)
	}
	return v
}

// Kind returns the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool {
	return v.boolean
}

// Number returns the numeric payload. Valid only for KindNumber.
func (v Value) Number() json.Number {
	return v.number
}

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string {
	return v.text
}

// Len returns the number of items (array) or members (object), 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return v.fields.Len()
	default:
		return 0
	}
}

// Index returns the array item at i. The second result is false when the
// value is not an array or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Field returns the object member named key. The second result is false
// when the value is not an object or the key is absent.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	return v.fields.Get(key)
}

// Members returns the object's members in insertion order. Empty for
// non-objects.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	members := make([]Member, 0, v.fields.Len())
	for pair := v.fields.Oldest(); pair != nil; pair = pair.Next() {
		members = append(members, Member{Key: pair.Key, Value: pair.Value})
	}
	return members
}

// Items returns a copy of the array's items. Empty for non-arrays.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	items := make([]Value, len(v.items))
	copy(items, v.items)
	return items
}

// Equal reports deep structural equality. Object member order is
// significant, matching the order guarantees of the rest of the package.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == o.boolean
	case KindNumber:
		return v.number == o.number
	case KindString:
		return v.text == o.text
	case KindArray:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.fields.Len() != o.fields.Len() {
			return false
		}
		op := o.fields.Oldest()
		for vp := v.fields.Oldest(); vp != nil; vp = vp.Next() {
			if op == nil || vp.Key != op.Key || !vp.Value.Equal(op.Value) {
				return false
			}
			op = op.Next()
		}
		return true
	default:
		return false
	}
}

// Parse decodes a JSON document, preserving object member order and
// keeping numbers exact via json.Number. Trailing data after the first
// value is rejected.
func Parse(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, fmt.Errorf("trailing data after JSON document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := Object()
	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key token %v", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj.fields.Set(key, val)
	}
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for {
		if !dec.More() {
			// Consume the closing bracket.
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindArray, items: items}, nil
		}
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}

// MarshalJSON renders the value as compact JSON, members in insertion
// order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		if v.boolean {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case KindNumber:
		if v.number == "" {
			return []byte("0"), nil
		}
		return []byte(v.number), nil
	case KindString:
		return json.Marshal(v.text)
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := json.Marshal(item)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindObject:
		var buf bytes.Buffer
		buf.WriteByte('{')
		first := true
		for pair := v.fields.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			kb, err := json.Marshal(pair.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			vb, err := json.Marshal(pair.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(vb)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("cannot marshal value of kind %d", v.kind)
	}
}

// Serialize renders the value as JSON text with 2-space indentation, the
// only format the document store persists.
func Serialize(v Value) (string, error) {
	compact, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}
