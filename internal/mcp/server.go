// Package mcp implements the Model Context Protocol server, exposing ftag
// operations to LLMs. This enables AI assistants to tag, sort and locate
// files through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP
// clients. The tools operate directly on the filesystem the server runs in,
// so paths resolve against the server's working directory.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := server.NewMCPServer(
		"ftag",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	slog.Info("ftag MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// registerTools exposes ftag operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer) {
	// Parse - pure decode, no filesystem access
	s.AddTool(
		mcp.NewTool("ftag_parse",
			mcp.WithDescription("Decode a file name into stem, tags and extension without touching the filesystem"),
			mcp.WithString("name", mcp.Required(), mcp.Description("File base name to decode, e.g. \"report{draft}.txt\"")),
		),
		parseName,
	)

	// Add tags
	s.AddTool(
		mcp.NewTool("ftag_add",
			mcp.WithDescription("Add tags to a file by renaming it; existing tags keep their order and duplicates are skipped"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path of the file to tag")),
			mcp.WithString("tags", mcp.Required(), mcp.Description("Comma-separated tags to add, e.g. \"draft,v2\"")),
			mcp.WithBoolean("dry_run", mcp.Description("Report the planned rename without performing it")),
		),
		addTags,
	)

	// Sort tags
	s.AddTool(
		mcp.NewTool("ftag_sort",
			mcp.WithDescription("Sort a file's tags into lexicographic order by renaming it"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path of the file to sort")),
			mcp.WithBoolean("dry_run", mcp.Description("Report the planned rename without performing it")),
		),
		sortTags,
	)

	// Find by tag
	s.AddTool(
		mcp.NewTool("ftag_find",
			mcp.WithDescription("List files under a directory that carry a tag (exact, case-sensitive match)"),
			mcp.WithString("tag", mcp.Required(), mcp.Description("Tag to search for")),
			mcp.WithString("path", mcp.Description("Directory to search (default: current directory)")),
			mcp.WithBoolean("recursive", mcp.Description("Descend into subdirectories")),
			mcp.WithBoolean("hidden", mcp.Description("Include hidden files and directories")),
		),
		findTag,
	)
}
