package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment addresses one step into a document: an array index or an
// object key.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Key returns an object-key segment.
func Key(k string) Segment {
	return Segment{Key: k}
}

// Index returns an array-index segment. Indexes are non-negative.
func Index(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	// Embedded quotes in keys are not escaped. A key containing a literal
	// quote therefore renders ambiguously; known limitation.
	return `["` + s.Key + `"]`
}

// Path locates a subtree within a document, root first. The empty path is
// the document root.
type Path []Segment

// String renders the canonical display form: $ for the root, then one
// bracketed segment per step, string keys quoted and indexes bare.
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	b.WriteByte('$')
	for _, seg := range p {
		b.WriteString(seg.String())
	}
	return b.String()
}

// ParsePath is the inverse of Path.String. It shares the formatting
// limitation: keys containing quote or bracket characters cannot be
// represented.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] != '$' {
		return nil, fmt.Errorf("path must start with $: %q", s)
	}
	rest := s[1:]
	var p Path
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("expected segment at %q", rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("unterminated segment in %q", s)
		}
		seg := rest[1:end]
		rest = rest[end+1:]

		if len(seg) >= 2 && seg[0] == '"' && seg[len(seg)-1] == '"' {
			p = append(p, Key(seg[1:len(seg)-1]))
			continue
		}
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("invalid path segment %q", seg)
		}
		p = append(p, Index(i))
	}
	return p, nil
}

// Resolve walks root following each segment. The second result is false
// when any step lands on a value the segment cannot index: a missing key,
// an out-of-range index, or a non-container. It never panics.
//
// An index segment applied to an object resolves through the decimal
// string key; a key segment applied to an array finds nothing.
func Resolve(root Value, p Path) (Value, bool) {
	cur := root
	for _, seg := range p {
		child, ok := cur.child(seg)
		if !ok {
			return Value{}, false
		}
		cur = child
	}
	return cur, true
}

// Write returns a new root with val placed at p, copying only the
// containers on the path. Siblings keep referential identity and no input
// container is mutated. An empty path replaces the whole document.
//
// Missing intermediates are created as an array when the following
// segment is an index and an object otherwise. Writing past an array's
// end grows the copy with nulls.
func Write(root Value, p Path, val Value) Value {
	if len(p) == 0 {
		return val
	}

	newRoot := copyForSegment(root, p[0])
	cur := newRoot
	for i, seg := range p {
		if i == len(p)-1 {
			cur.set(seg, val)
			break
		}
		child, _ := cur.child(seg)
		child = copyForSegment(child, p[i+1])
		cur.set(seg, child)
		cur = child
	}
	return newRoot
}

// child reads the value one segment below v, without ever panicking.
func (v Value) child(seg Segment) (Value, bool) {
	if seg.IsIndex {
		switch v.kind {
		case KindArray:
			return v.Index(seg.Index)
		case KindObject:
			return v.Field(strconv.Itoa(seg.Index))
		default:
			return Value{}, false
		}
	}
	if v.kind == KindObject {
		return v.Field(seg.Key)
	}
	return Value{}, false
}

// set places val one segment below v. Only called on containers produced
// by copyForSegment, so the segment always fits.
func (v Value) set(seg Segment, val Value) {
	if v.kind == KindObject {
		key := seg.Key
		if seg.IsIndex {
			key = strconv.Itoa(seg.Index)
		}
		v.fields.Set(key, val)
		return
	}
	if v.kind == KindArray && seg.IsIndex && seg.Index < len(v.items) {
		v.items[seg.Index] = val
	}
}

// copyForSegment shallow-copies v into a container that can hold seg,
// replacing anything that is not such a container with a fresh empty one.
// Array copies are pre-sized so set never reallocates the backing slice.
func copyForSegment(v Value, seg Segment) Value {
	if seg.IsIndex {
		switch v.kind {
		case KindArray:
			n := len(v.items)
			if seg.Index+1 > n {
				n = seg.Index + 1
			}
			items := make([]Value, n)
			copy(items, v.items)
			return Value{kind: KindArray, items: items}
		case KindObject:
			return copyObject(v)
		default:
			return Value{kind: KindArray, items: make([]Value, seg.Index+1)}
		}
	}
	if v.kind == KindObject {
		return copyObject(v)
	}
	return Object()
}

func copyObject(v Value) Value {
	out := Object()
	for pair := v.fields.Oldest(); pair != nil; pair = pair.Next() {
		out.fields.Set(pair.Key, pair.Value)
	}
	return out
}
