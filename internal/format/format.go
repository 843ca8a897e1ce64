// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation so that command implementations focus on what
// changed while this package decides how it reads: rename arrows with the
// changed span highlighted, path lists with configurable terminators, and
// tree rendering for find results.
package format

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Sprint functions for the colour scheme. fatih/color downgrades these to
// plain text when colours are disabled, so callers that already hold
// colour=false can still call them safely.
var (
	added = color.New(color.FgGreen).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

// Rename writes a "src -> dst" line for a planned or performed rename.
// With colour enabled the source renders faint and the portions of dst not
// present in src render green, which in practice lights up the tag groups
// an operation added or moved.
func Rename(w io.Writer, src, dst string, colour bool) {
	if !colour {
		fmt.Fprintf(w, "%s -> %s\n", src, dst)
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(src, dst, false))

	// Equal plus Insert spans reassemble dst exactly; Delete spans belong
	// to src and are dropped.
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffInsert:
			b.WriteString(added(d.Text))
		}
	}
	fmt.Fprintf(w, "%s -> %s\n", dim(src), b.String())
}

// NoChange writes the verbose line for a file whose name already encodes
// the requested state.
func NoChange(w io.Writer, path string) {
	fmt.Fprintf(w, "%s (no change)\n", path)
}

// Paths writes paths separated by newlines, or by NUL bytes when null is
// set for consumption by xargs -0 and friends. Newline mode terminates the
// final path; NUL mode writes no trailing terminator.
func Paths(w io.Writer, paths []string, null bool) {
	if len(paths) == 0 {
		return
	}
	sep := "\n"
	if null {
		sep = "\x00"
	}
	io.WriteString(w, strings.Join(paths, sep))
	if !null {
		io.WriteString(w, "\n")
	}
}

// Tree prints paths as a directory tree beneath root.
func Tree(w io.Writer, root string, paths []string) {
	if len(paths) == 0 {
		return
	}

	// Build tree structure
	type node struct {
		name     string
		children map[string]*node
	}
	top := &node{children: make(map[string]*node)}

	sep := string(filepath.Separator)
	for _, p := range paths {
		rel := strings.TrimPrefix(p, root)
		rel = strings.TrimPrefix(rel, sep)
		current := top
		for _, part := range strings.Split(rel, sep) {
			if current.children[part] == nil {
				current.children[part] = &node{name: part, children: make(map[string]*node)}
			}
			current = current.children[part]
		}
	}

	fmt.Fprintln(w, root)

	// Print tree
	var printNode func(n *node, prefix string)
	printNode = func(n *node, prefix string) {
		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)

		for i, name := range names {
			child := n.children[name]
			last := i == len(names)-1

			connector := "├── "
			if last {
				connector = "└── "
			}

			suffix := ""
			if len(child.children) > 0 {
				suffix = "/"
			}

			fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, name, suffix)

			pfx := prefix
			if last {
				pfx += "    "
			} else {
				pfx += "│   "
			}

			if len(child.children) > 0 {
				printNode(child, pfx)
			}
		}
	}

	printNode(top, "")
}
