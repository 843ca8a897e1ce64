// tools.go implements the MCP tool handlers for ftag operations.
//
// Design: Handlers are stateless - every tool resolves paths against the
// server's working directory on each call, so there is no store to
// initialise and no session to manage. Results are returned as JSON for
// easy LLM parsing, and failures are communicated via MCP error results
// rather than Go errors so the LLM receives actionable feedback.

package mcp

import (
	"context"
	"io"

	"github.com/jpl-au/ftag/internal/find"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/jpl-au/ftag/internal/name"
	"github.com/jpl-au/ftag/internal/rename"
	"github.com/jpl-au/ftag/internal/tag"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseResult is the JSON shape returned by ftag_parse.
type parseResult struct {
	Name string   `json:"name"`
	Stem string   `json:"stem"`
	Tags []string `json:"tags"`
	Ext  string   `json:"ext"`
}

// parseName handles ftag_parse tool calls.
func parseName(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil //nolint:nilerr
	}

	parsed := name.Parse(n)

	log.Event("mcp:ftag_parse", "parse").Path(n).Write(nil)

	return jsonResult(parseResult{
		Name: n,
		Stem: parsed.Stem,
		Tags: tag.Strings(parsed.Tags),
		Ext:  parsed.Ext,
	})
}

// addTags handles ftag_add tool calls.
func addTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	rawTags, err := req.RequireString("tags")
	if err != nil {
		return mcp.NewToolResultError("tags is required"), nil //nolint:nilerr
	}
	dryRun := getBool(req, "dry_run", false)

	l := log.Event("mcp:ftag_add", "rename").Path(path).Detail("tags", rawTags)

	tags, err := tag.ParseList(rawTags)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return runRename(ctx, l, path, rename.AddTags(tags), dryRun)
}

// sortTags handles ftag_sort tool calls.
func sortTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	dryRun := getBool(req, "dry_run", false)

	l := log.Event("mcp:ftag_sort", "rename").Path(path)

	return runRename(ctx, l, path, rename.SortTags, dryRun)
}

// runRename executes a single-file rename for the add and sort tools.
func runRename(ctx context.Context, l *log.Builder, path string, rw rename.Rewrite, dryRun bool) (*mcp.CallToolResult, error) {
	if dryRun {
		l.Detail("dry_run", true)
	}
	results := rename.Run(ctx, io.Discard, []string{path}, rw, rename.Options{DryRun: dryRun})
	if len(results) == 0 {
		l.Write(ctx.Err())
		return mcp.NewToolResultError("cancelled"), nil
	}

	res := results[0]
	l.NewPath(res.NewPath).Write(res.Err)
	if res.Err != nil {
		return mcp.NewToolResultError(res.Error), nil
	}
	return jsonResult(res)
}

// findTag handles ftag_find tool calls.
func findTag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawTag, err := req.RequireString("tag")
	if err != nil {
		return mcp.NewToolResultError("tag is required"), nil //nolint:nilerr
	}
	root := getString(req, "path", ".")

	opts := find.Options{
		Recursive: getBool(req, "recursive", false),
		Hidden:    getBool(req, "hidden", false),
	}

	l := log.Event("mcp:ftag_find", "search").Path(root).Detail("tag", rawTag)

	t, err := tag.Parse(rawTag)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := find.Run(ctx, io.Discard, t, root, opts)
	l.Detail("count", len(result.Paths)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(result)
}
