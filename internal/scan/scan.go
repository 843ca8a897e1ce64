// Package scan walks directories and hands each file to the caller with its
// name already decoded. It owns the two visibility rules shared by find and
// index: hidden entries are skipped unless asked for, and subdirectories are
// only entered in recursive mode.
package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jpl-au/ftag/internal/name"
)

// File is a file met during a walk.
type File struct {
	Path   string          // path as walked, rooted at the walk root
	Dir    string          // directory portion of Path
	Name   string          // base name
	Parsed name.ParsedName // decoded base name
}

// Options control which entries a walk visits.
type Options struct {
	Recursive bool // descend into subdirectories
	Hidden    bool // include dot-prefixed files and directories
}

// Walk visits the files under root in lexical order and calls fn for each.
// An error from fn stops the walk and is returned. The root itself is
// visited even when hidden; hidden filtering applies to its contents.
func Walk(ctx context.Context, root string, opts Options, fn func(File) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == root {
			return nil
		}

		hidden := strings.HasPrefix(d.Name(), ".")
		if d.IsDir() {
			if !opts.Recursive || (hidden && !opts.Hidden) {
				return fs.SkipDir
			}
			return nil
		}
		if hidden && !opts.Hidden {
			return nil
		}
		// Symlinks count as files and are not followed
		if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}

		base := d.Name()
		return fn(File{
			Path:   path,
			Dir:    filepath.Dir(path),
			Name:   base,
			Parsed: name.Parse(base),
		})
	})
}
