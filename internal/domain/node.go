package domain

// Node is the graph representation of one document subtree: the path
// locating it within the root document and the flattened row view of its
// direct fields. A node's path is fixed for its lifetime; only its rows
// are refreshed after an edit.
type Node struct {
	Path Path
	Rows []Row
}

// NodeAt builds the node for the subtree at p. The second result is false
// when the path does not resolve.
func NodeAt(doc Value, p Path) (Node, bool) {
	v, ok := Resolve(doc, p)
	if !ok {
		return Node{}, false
	}
	return Node{Path: p, Rows: Rows(v)}, true
}
