package domain

// RowKind tags how a node field is displayed: an editable primitive or a
// collapsed nested container.
type RowKind int

const (
	RowPrimitive RowKind = iota
	RowObject
	RowArray
)

func (k RowKind) String() string {
	switch k {
	case RowPrimitive:
		return "primitive"
	case RowObject:
		return "object"
	case RowArray:
		return "array"
	default:
		return "unknown"
	}
}

// Row is one direct field of a node's subtree in the flattened view.
// Key is empty for unkeyed rows (array elements). Container rows carry no
// usable value; their data lives only in the canonical document.
type Row struct {
	Key   string
	Kind  RowKind
	Value Value
}

// Rows flattens one level of a value into its row view: object members
// become keyed rows, array elements unkeyed rows, and a bare primitive a
// single unkeyed row. Nested containers are shown collapsed.
func Rows(v Value) []Row {
	switch v.Kind() {
	case KindObject:
		members := v.Members()
		rows := make([]Row, 0, len(members))
		for _, m := range members {
			rows = append(rows, rowFor(m.Key, m.Value))
		}
		return rows
	case KindArray:
		items := v.Items()
		rows := make([]Row, 0, len(items))
		for _, item := range items {
			rows = append(rows, rowFor("", item))
		}
		return rows
	default:
		return []Row{rowFor("", v)}
	}
}

func rowFor(key string, v Value) Row {
	switch v.Kind() {
	case KindObject:
		return Row{Key: key, Kind: RowObject}
	case KindArray:
		return Row{Key: key, Kind: RowArray}
	default:
		return Row{Key: key, Kind: RowPrimitive, Value: v}
	}
}

// RowsToObject folds the row view back into an object, keeping only keyed
// primitive rows in their display order. Container and unkeyed rows are
// skipped: their data is not reconstructable from the flattened view and
// must come from the canonical document instead.
func RowsToObject(rows []Row) Value {
	obj := Object()
	for _, r := range rows {
		if r.Kind != RowPrimitive || r.Key == "" {
			continue
		}
		obj.fields.Set(r.Key, r.Value)
	}
	return obj
}

// Edit is a single field change keyed by row key.
type Edit struct {
	Key   string
	Value Value
}

// EditSet is an ordered collection of field changes. Order decides where
// keys new to the target object are appended.
type EditSet []Edit

// Get returns the edit value for key, if present.
func (es EditSet) Get(key string) (Value, bool) {
	for _, e := range es {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// ApplyEdits produces a fresh row slice with edited primitive values.
// Container rows pass through unchanged even when their key appears in
// the edit set (structural fields are not editable this way), as do rows
// without a key. The input is never mutated.
func ApplyEdits(rows []Row, edits EditSet) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		if r.Kind == RowPrimitive && r.Key != "" {
			if v, ok := edits.Get(r.Key); ok {
				r.Value = v
			}
		}
		out[i] = r
	}
	return out
}
