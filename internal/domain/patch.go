package domain

// Patch is the outcome of applying an edit set to a node: the replacement
// value for the node's path and the refreshed row view.
type Patch struct {
	Replacement Value
	Rows        []Row
}

// BuildPatch computes the replacement for node's path in doc. When the
// path resolves to an object, the edits merge into it: edited keys keep
// their position, untouched members survive, and keys new to the object
// append in edit order. When it resolves to anything else (array,
// primitive, or nothing), merging in place would destroy data the edit
// never meant to touch, so the replacement is rebuilt from the node's row
// view plus the edits — at least the previously displayed fields survive.
//
// Neither doc nor node is mutated; the refreshed rows come back in
// Patch.Rows for the caller to install.
func BuildPatch(doc Value, node Node, edits EditSet) Patch {
	current, ok := Resolve(doc, node.Path)

	var replacement Value
	if ok && current.Kind() == KindObject {
		replacement = mergeObject(current, edits)
	} else {
		replacement = mergeObject(RowsToObject(node.Rows), edits)
	}

	return Patch{
		Replacement: replacement,
		Rows:        ApplyEdits(node.Rows, edits),
	}
}

func mergeObject(base Value, edits EditSet) Value {
	out := copyObject(base)
	for _, e := range edits {
		out.fields.Set(e.Key, e.Value)
	}
	return out
}
