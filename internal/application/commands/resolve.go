package commands

import (
	"jsoncanvas/internal/application"
	"jsoncanvas/internal/domain"
	"jsoncanvas/internal/ports"
)

// ResolveResult contains the result of resolving a path
type ResolveResult struct {
	Path  domain.Path
	Value domain.Value
	Node  domain.Node
}

// ResolveCommand loads the document and resolves a path to its subtree.
// Shared by the CLI get command and the MCP resolve tool.
type ResolveCommand struct {
	store ports.DocumentStore
	Path  domain.Path
}

// NewResolveCommand creates a new ResolveCommand
func NewResolveCommand(store ports.DocumentStore, path domain.Path) *ResolveCommand {
	return &ResolveCommand{store: store, Path: path}
}

// Execute loads, parses, and resolves. A path that does not resolve
// yields application.ErrNotFound.
func (c *ResolveCommand) Execute() (*ResolveResult, error) {
	text, err := c.store.GetContents()
	if err != nil {
		return nil, &application.PersistError{Op: "load", Err: err}
	}

	doc, err := domain.Parse(text)
	if err != nil {
		return nil, &application.ParseError{Err: err}
	}

	value, ok := domain.Resolve(doc, c.Path)
	if !ok {
		return nil, application.ErrNotFound
	}

	return &ResolveResult{
		Path:  c.Path,
		Value: value,
		Node:  domain.Node{Path: c.Path, Rows: domain.Rows(value)},
	}, nil
}
