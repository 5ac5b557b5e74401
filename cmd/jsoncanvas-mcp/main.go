package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jsoncanvas/internal/adapters/filesystem"
	mcpadapter "jsoncanvas/internal/adapters/mcp"
	"jsoncanvas/internal/config"
)

func main() {
	fileFlag := flag.String("file", config.DocumentPath(), "path to the JSON document")
	flag.Parse()

	store := filesystem.NewStore(*fileFlag)

	mcpServer := server.NewMCPServer(
		"jsoncanvas-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterDocumentTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("jsoncanvas-mcp: %v", err)
	}
}
