package commands

import (
	"context"
	"fmt"

	"jsoncanvas/internal/application"
	"jsoncanvas/internal/domain"
	"jsoncanvas/internal/ports"
)

// EditResult contains the result of an edit session
type EditResult struct {
	// Skipped is true when no node was selected; the save is a silent
	// no-op and nothing below is populated.
	Skipped bool

	Node     *domain.Node
	Document domain.Value
	Contents string
	Message  string
}

// EditCommand applies a set of field edits to the selected node and
// persists the resulting document. It carries its own document store and
// selection instead of reading ambient globals, so one command is one
// editing session.
type EditCommand struct {
	store ports.DocumentStore
	Node  *domain.Node
	Edits domain.EditSet
}

// NewEditCommand creates a new EditCommand
func NewEditCommand(store ports.DocumentStore, node *domain.Node, edits domain.EditSet) *EditCommand {
	return &EditCommand{
		store: store,
		Node:  node,
		Edits: edits,
	}
}

// Validate checks if the edit operation is valid
func (c *EditCommand) Validate() error {
	for _, e := range c.Edits {
		if e.Key == "" {
			return &application.ValidationError{
				Field:   "edits",
				Message: "edit keys must be non-empty",
			}
		}
	}
	return nil
}

// Execute runs the edit session: load the current document, build the
// patch for the node's path, refresh the node's rows, write the new
// document copy-on-write, and persist it.
//
// The row refresh happens before persistence and is not rolled back on a
// failed save; the caller is told via PersistError and may retry.
func (c *EditCommand) Execute(ctx context.Context) (*EditResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Saving with nothing selected is a no-op, not an error.
	if c.Node == nil {
		return &EditResult{Skipped: true, Message: "no node selected"}, nil
	}

	text, err := c.store.GetContents()
	if err != nil {
		return nil, &application.PersistError{Op: "load", Err: err}
	}

	doc, err := domain.Parse(text)
	if err != nil {
		return nil, &application.ParseError{Err: err}
	}

	patch := domain.BuildPatch(doc, *c.Node, c.Edits)
	c.Node.Rows = patch.Rows

	newDoc := domain.Write(doc, c.Node.Path, patch.Replacement)
	contents, err := domain.Serialize(newDoc)
	if err != nil {
		return nil, &application.ParseError{Err: err}
	}

	if err := c.store.SetContents(ctx, contents); err != nil {
		return nil, &application.PersistError{Op: "save", Err: err}
	}

	return &EditResult{
		Node:     c.Node,
		Document: newDoc,
		Contents: contents,
		Message:  fmt.Sprintf("Saved %d field(s) at %s", len(c.Edits), c.Node.Path),
	}, nil
}
