package views

import (
	"testing"

	"jsoncanvas/internal/domain"
)

func mustParse(t *testing.T, text string) domain.Value {
	t.Helper()
	v, err := domain.Parse(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return v
}

func TestExplorerDrillIntoObjectAndArray(t *testing.T) {
	m := NewExplorerModel(nil)
	m.SetDocument(mustParse(t, `{"user":{"name":"Bob","tags":["x","y"]}}`))

	// Root shows a single container row for "user"
	if len(m.rows) != 1 || m.rows[0].Key != "user" {
		t.Fatalf("unexpected root rows: %+v", m.rows)
	}

	m.drill()
	if got := m.path.String(); got != `$["user"]` {
		t.Errorf("expected path $[\"user\"], got %s", got)
	}
	if len(m.rows) != 2 {
		t.Fatalf("expected 2 rows under user, got %d", len(m.rows))
	}

	// Move to the tags row and drill into the array
	m.cursor = 1
	m.drill()
	if got := m.path.String(); got != `$["user"]["tags"]` {
		t.Errorf("expected path $[\"user\"][\"tags\"], got %s", got)
	}
	if len(m.rows) != 2 || m.rows[0].Key != "" {
		t.Fatalf("expected 2 unkeyed rows, got %+v", m.rows)
	}
}

func TestExplorerDrillIgnoresPrimitives(t *testing.T) {
	m := NewExplorerModel(nil)
	m.SetDocument(mustParse(t, `{"name":"Bob"}`))

	m.drill()
	if got := m.path.String(); got != "$" {
		t.Errorf("drill on primitive row should not move, got %s", got)
	}
}

func TestExplorerRefreshPopsVanishedPath(t *testing.T) {
	m := NewExplorerModel(nil)
	m.SetDocument(mustParse(t, `{"user":{"name":"Bob"}}`))
	m.drill()

	// Replace the document with one where "user" is gone
	m.SetDocument(mustParse(t, `{"other":1}`))
	if got := m.path.String(); got != "$" {
		t.Errorf("expected pop to root, got %s", got)
	}
	if len(m.rows) != 1 || m.rows[0].Key != "other" {
		t.Errorf("expected root rows of new document, got %+v", m.rows)
	}
}

func TestSelectedNodeIsACopy(t *testing.T) {
	m := NewExplorerModel(nil)
	m.SetDocument(mustParse(t, `{"name":"Bob","color":"blue"}`))

	node := m.SelectedNode()
	if node == nil {
		t.Fatal("expected a node")
	}
	node.Rows[0].Value = domain.String("mutated")

	if m.rows[0].Value.Str() != "Bob" {
		t.Error("mutating the selected node leaked into the explorer")
	}
}

func TestSelectedNodeNilBeforeLoad(t *testing.T) {
	m := NewExplorerModel(nil)
	if m.SelectedNode() != nil {
		t.Error("expected nil node before the document is loaded")
	}
}
