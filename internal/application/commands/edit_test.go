package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"jsoncanvas/internal/application"
	"jsoncanvas/internal/domain"
)

// fakeStore implements ports.DocumentStore in memory
type fakeStore struct {
	contents string
	getErr   error
	setErr   error
	getCalls int
	setCalls int
}

func (s *fakeStore) GetContents() (string, error) {
	s.getCalls++
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.contents, nil
}

func (s *fakeStore) SetContents(_ context.Context, contents string) error {
	s.setCalls++
	if s.setErr != nil {
		return s.setErr
	}
	s.contents = contents
	return nil
}

func userNode(t *testing.T) *domain.Node {
	t.Helper()
	return &domain.Node{
		Path: domain.Path{domain.Key("user")},
		Rows: []domain.Row{
			{Key: "name", Kind: domain.RowPrimitive, Value: domain.String("Bob")},
			{Key: "tags", Kind: domain.RowArray},
		},
	}
}

func nameColorEdits() domain.EditSet {
	return domain.EditSet{
		{Key: "name", Value: domain.String("Alice")},
		{Key: "color", Value: domain.String("red")},
	}
}

func TestEditCommand_Execute(t *testing.T) {
	store := &fakeStore{contents: `{"user":{"name":"Bob","tags":["x"]}}`}
	node := userNode(t)

	cmd := NewEditCommand(store, node, nameColorEdits())
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Skipped {
		t.Fatal("edit was skipped with a selected node")
	}

	got, err := domain.Parse(store.contents)
	if err != nil {
		t.Fatalf("persisted contents are not valid JSON: %v", err)
	}
	want, _ := domain.Parse(`{"user":{"name":"Alice","tags":["x"],"color":"red"}}`)
	if !got.Equal(want) {
		t.Errorf("persisted document:\n%s", store.contents)
	}

	// Persisted with 2-space indentation.
	if !strings.Contains(store.contents, "\n  \"user\"") {
		t.Errorf("contents not indented with two spaces:\n%s", store.contents)
	}

	// Node rows refreshed for the view.
	if node.Rows[0].Value.Str() != "Alice" {
		t.Errorf("node row not refreshed: %q", node.Rows[0].Value.Str())
	}
	if node.Rows[1].Kind != domain.RowArray {
		t.Error("container row changed kind")
	}
}

func TestEditCommand_NoSelection(t *testing.T) {
	store := &fakeStore{contents: `{"a":1}`}

	cmd := NewEditCommand(store, nil, nameColorEdits())
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("no-selection save must be a silent no-op, got %v", err)
	}
	if !result.Skipped {
		t.Error("expected Skipped result")
	}
	if store.getCalls != 0 || store.setCalls != 0 {
		t.Error("store was touched without a selection")
	}
}

func TestEditCommand_ParseError(t *testing.T) {
	store := &fakeStore{contents: `{not json`}
	node := userNode(t)

	cmd := NewEditCommand(store, node, nameColorEdits())
	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}

	// Save aborted before any mutation.
	if store.setCalls != 0 {
		t.Error("store written despite parse failure")
	}
	if node.Rows[0].Value.Str() != "Bob" {
		t.Error("node rows changed despite parse failure")
	}
}

func TestEditCommand_LoadError(t *testing.T) {
	store := &fakeStore{getErr: fmt.Errorf("disk gone")}

	cmd := NewEditCommand(store, userNode(t), nameColorEdits())
	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrPersist) {
		t.Fatalf("expected persist error, got %v", err)
	}
}

func TestEditCommand_PersistError(t *testing.T) {
	store := &fakeStore{
		contents: `{"user":{"name":"Bob","tags":["x"]}}`,
		setErr:   fmt.Errorf("disk full"),
	}
	node := userNode(t)

	cmd := NewEditCommand(store, node, nameColorEdits())
	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrPersist) {
		t.Fatalf("expected persist error, got %v", err)
	}

	var perr *application.PersistError
	if !errors.As(err, &perr) || perr.Op != "save" {
		t.Errorf("expected save persist error, got %v", err)
	}

	// The row refresh is optimistic: it stays applied on a failed save.
	if node.Rows[0].Value.Str() != "Alice" {
		t.Error("optimistic row refresh missing after failed save")
	}
	// The stored text itself is untouched.
	if store.contents != `{"user":{"name":"Bob","tags":["x"]}}` {
		t.Error("stored contents changed despite failed save")
	}
}

func TestEditCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		edits   domain.EditSet
		wantErr bool
	}{
		{name: "valid edits", edits: nameColorEdits(), wantErr: false},
		{name: "empty edit set", edits: nil, wantErr: false},
		{name: "empty key", edits: domain.EditSet{{Key: "", Value: domain.String("x")}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewEditCommand(&fakeStore{}, nil, tt.edits)
			err := cmd.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
