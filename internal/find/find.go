// Package find locates files carrying a tag.
//
// Matching is exact and case-sensitive against the decoded tag sequence, so
// "draft" never matches a file that merely contains the text "draft" in its
// stem. Output is sorted for stable results regardless of walk order.
package find

import (
	"context"
	"io"
	"slices"

	"github.com/jpl-au/ftag/internal/format"
	"github.com/jpl-au/ftag/internal/scan"
	"github.com/jpl-au/ftag/internal/tag"
)

// Options configures a find run.
type Options struct {
	Recursive bool // descend into subdirectories
	Hidden    bool // include hidden files and directories
	Tree      bool // render matches as a directory tree
	Null      bool // separate paths with NUL for xargs -0
}

// Result contains the outcome of a find run.
type Result struct {
	Tag   string   `json:"tag"`
	Root  string   `json:"root"`
	Paths []string `json:"paths"`
}

// Run walks root, collects the files tagged t and writes them to w sorted.
func Run(ctx context.Context, w io.Writer, t tag.Tag, root string, opts Options) (Result, error) {
	result := Result{Tag: t.String(), Root: root, Paths: []string{}}

	walkOpts := scan.Options{Recursive: opts.Recursive, Hidden: opts.Hidden}
	err := scan.Walk(ctx, root, walkOpts, func(f scan.File) error {
		if f.Parsed.HasTag(t) {
			result.Paths = append(result.Paths, f.Path)
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	slices.Sort(result.Paths)

	if opts.Tree {
		format.Tree(w, root, result.Paths)
		return result, nil
	}
	format.Paths(w, result.Paths, opts.Null)
	return result, nil
}
