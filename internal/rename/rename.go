// Package rename implements the tag rename engine: computing the new name a
// tag operation gives a file, and carrying it out on disk.
//
// Planning is pure - decode the base name, rewrite the tag sequence, encode -
// so a dry run can preview every rename without touching the filesystem.
// Apply is the only function here that mutates anything, and it refuses to
// overwrite: a rename whose destination already exists fails with
// ErrDestExists and leaves both files alone.
package rename

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/jpl-au/ftag/internal/format"
	"github.com/jpl-au/ftag/internal/name"
	"github.com/jpl-au/ftag/internal/tag"
)

// ErrDestExists is returned when a computed destination already names an
// existing file. Renames never overwrite.
var ErrDestExists = errors.New("destination already exists")

// Rewrite transforms a file's decoded tag sequence into the sequence its
// new name should carry. Implementations must not modify the input slice.
type Rewrite func([]tag.Tag) []tag.Tag

// AddTags returns a Rewrite that merges additions onto the existing
// sequence: existing order kept, missing tags appended in request order.
func AddTags(additions []tag.Tag) Rewrite {
	return func(existing []tag.Tag) []tag.Tag {
		return tag.Merge(existing, additions)
	}
}

// SortTags rewrites the sequence into lexicographic order.
func SortTags(existing []tag.Tag) []tag.Tag {
	return tag.Sorted(existing)
}

// Plan pairs a source path with the destination a rewrite gives it. Only
// the base name ever changes; the directory part is carried over verbatim.
type Plan struct {
	Source string
	Dest   string
}

// New computes the rename plan for applying rewrite to the file named by
// path. Pure: no filesystem access, so planning never fails.
func New(path string, rewrite Rewrite) Plan {
	dir, base := filepath.Split(path)
	parsed := name.Parse(base)
	rewritten := rewrite(parsed.Tags)
	if slices.Equal(parsed.Tags, rewritten) {
		return Plan{Source: path, Dest: path}
	}
	return Plan{Source: path, Dest: dir + parsed.WithTags(rewritten).String()}
}

// NoOp reports whether the plan requires no filesystem action. A file whose
// name already encodes the requested state plans to itself.
func (p Plan) NoOp() bool { return p.Source == p.Dest }

// Apply performs the planned rename. No-op plans succeed without touching
// the filesystem; for the rest, the source must exist and the destination
// must not.
func (p Plan) Apply() error {
	if p.NoOp() {
		return nil
	}
	if _, err := os.Lstat(p.Source); err != nil {
		return fmt.Errorf("source %s: %w", p.Source, err)
	}
	if _, err := os.Lstat(p.Dest); err == nil {
		return fmt.Errorf("%w: %s", ErrDestExists, p.Dest)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("destination %s: %w", p.Dest, err)
	}
	// os.Rename errors carry both paths already; no extra context needed
	return os.Rename(p.Source, p.Dest)
}

// Options configures a batch run.
type Options struct {
	DryRun  bool // plan and report, never rename
	Verbose bool // report performed renames and skipped no-ops
	Abort   bool // stop at the first failed file
	Colour  bool // highlight the changed span in rename reports
}

// Result is the outcome for a single file in a batch.
type Result struct {
	Path    string `json:"path"`
	NewPath string `json:"new_path"`
	Renamed bool   `json:"renamed"`
	Error   string `json:"error,omitempty"`

	// Err carries the underlying error for errors.Is checks; Error mirrors
	// it as text for JSON output.
	Err error `json:"-"`
}

// Run applies rewrite to each file in order, one Result per file. Failures
// are written to w and do not stop the batch unless Abort is set; a file's
// failure never affects the others. Cancelling ctx stops the batch between
// files.
func Run(ctx context.Context, w io.Writer, files []string, rewrite Rewrite, opts Options) []Result {
	results := make([]Result, 0, len(files))
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		res := runOne(w, path, rewrite, opts)
		results = append(results, res)
		if res.Err != nil && opts.Abort {
			break
		}
	}
	return results
}

// Failed counts the results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func runOne(w io.Writer, path string, rewrite Rewrite, opts Options) Result {
	plan := New(path, rewrite)
	res := Result{Path: path, NewPath: plan.Dest}

	if plan.NoOp() {
		if opts.Verbose {
			format.NoChange(w, path)
		}
		return res
	}

	if opts.DryRun {
		format.Rename(w, plan.Source, plan.Dest, opts.Colour)
		return res
	}

	if err := plan.Apply(); err != nil {
		res.Err = err
		res.Error = err.Error()
		fmt.Fprintf(w, "error: %v\n", err)
		return res
	}

	res.Renamed = true
	if opts.Verbose {
		format.Rename(w, plan.Source, plan.Dest, opts.Colour)
	}
	return res
}
