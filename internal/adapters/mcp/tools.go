package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jsoncanvas/internal/application"
	"jsoncanvas/internal/application/commands"
	"jsoncanvas/internal/domain"
	"jsoncanvas/internal/ports"
)

// RegisterDocumentTools adds the document tools to the MCP server.
func RegisterDocumentTools(s *server.MCPServer, store ports.DocumentStore) {
	s.AddTool(readTool(), readHandler(store))
	s.AddTool(resolveTool(), resolveHandler(store))
	s.AddTool(editTool(), editHandler(store))
}

// --- read ---

func readTool() mcp.Tool {
	return mcp.NewTool("read_document",
		mcp.WithDescription("Return the full document as JSON text."),
	)
}

func readHandler(store ports.DocumentStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		contents, err := store.GetContents()
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(contents), nil
	}
}

// --- resolve ---

func resolveTool() mcp.Tool {
	return mcp.NewTool("resolve",
		mcp.WithDescription("Resolve a path into the document and return the subtree at that path."),
		mcp.WithString("path",
			mcp.Description(`Canonical path, e.g. $["user"][0]["name"]. $ is the document root.`),
			mcp.Required(),
		),
	)
}

func resolveHandler(store ports.DocumentStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := domain.ParsePath(req.GetString("path", "$"))
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewResolveCommand(store, path).Execute()
		if err != nil {
			return toolError(err)
		}

		text, err := domain.Serialize(result.Value)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- edit ---

func editTool() mcp.Tool {
	return mcp.NewTool("edit_node",
		mcp.WithDescription("Apply field edits to the node at a path and persist the document. Existing fields are updated in place, new fields appended; nested containers at the path's node are never overwritten."),
		mcp.WithString("path",
			mcp.Description("Canonical path of the node to edit."),
			mcp.Required(),
		),
		mcp.WithString("fields",
			mcp.Description(`JSON object of field edits, e.g. {"name":"Alice","color":"red"}. Values must be primitives.`),
			mcp.Required(),
		),
	)
}

func editHandler(store ports.DocumentStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := domain.ParsePath(req.GetString("path", ""))
		if err != nil {
			return toolError(err)
		}

		edits, err := parseEdits(req.GetString("fields", ""))
		if err != nil {
			return toolError(err)
		}

		node := &domain.Node{Path: path}
		resolved, err := commands.NewResolveCommand(store, path).Execute()
		switch {
		case err == nil:
			node.Rows = resolved.Node.Rows
		case errors.Is(err, application.ErrNotFound):
			// Editing an unresolvable path still works; the replacement
			// is rebuilt from the (empty) row view plus the edits.
		default:
			return toolError(err)
		}

		result, err := commands.NewEditCommand(store, node, edits).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func parseEdits(text string) (domain.EditSet, error) {
	obj, err := domain.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("fields must be a JSON object: %w", err)
	}
	if obj.Kind() != domain.KindObject {
		return nil, fmt.Errorf("fields must be a JSON object, got %s", obj.Kind())
	}

	var edits domain.EditSet
	for _, m := range obj.Members() {
		switch m.Value.Kind() {
		case domain.KindObject, domain.KindArray:
			return nil, fmt.Errorf("field %q: container values are not editable", m.Key)
		}
		edits = append(edits, domain.Edit{Key: m.Key, Value: m.Value})
	}
	return edits, nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
