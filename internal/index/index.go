// Package index mirrors tagged files into a browsable symlink tree. Where
// find answers "which files carry this tag" on demand, index materialises
// the answer as directories: one per tag, each holding symlinks back to the
// tagged files under their untagged names.
//
// The output directory must be empty or absent; refusing to build into a
// populated directory keeps a mistyped path from spraying symlinks through
// real data. Symlink targets are absolute so the index works from anywhere.
package index

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jpl-au/ftag/internal/scan"
	"github.com/jpl-au/ftag/internal/tag"
)

// ErrOutputNotEmpty is returned when the output directory exists and
// already has content.
var ErrOutputNotEmpty = errors.New("index directory already has content")

// Options configures an index build.
type Options struct {
	Recursive bool // descend into subdirectories of root
	Hidden    bool // include hidden files and directories
	Nested    bool // directory per tag combination instead of per tag
	DryRun    bool // plan and count, create nothing
	Verbose   bool // report each link as it is planned
}

// Result contains the outcome of an index build.
type Result struct {
	Root   string `json:"root"`
	Output string `json:"output"`
	Files  int    `json:"files"` // tagged files found under root
	Links  int    `json:"links"` // symlinks created (or planned in dry-run)
}

// Build walks root and mirrors every tagged file into output.
//
// In flat mode each tag becomes one directory. In nested mode every
// ordering of every combination of a file's tags becomes a directory
// chain, so browsing can narrow by any tag sequence: photos tagged
// {holiday,family} appear under holiday/, holiday/family/, family/ and
// family/holiday/.
func Build(ctx context.Context, w io.Writer, root, output string, opts Options) (Result, error) {
	result := Result{Root: root, Output: output}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return result, err
	}
	if err := checkOutput(output); err != nil {
		return result, err
	}

	var files []scan.File
	walkOpts := scan.Options{Recursive: opts.Recursive, Hidden: opts.Hidden}
	err = scan.Walk(ctx, absRoot, walkOpts, func(f scan.File) error {
		if len(f.Parsed.Tags) > 0 {
			files = append(files, f)
		}
		return nil
	})
	if err != nil {
		return result, err
	}
	result.Files = len(files)

	// Group claimants per link path. Files tagged alike and named alike
	// claim the same link and need disambiguation below.
	claims := make(map[string][]scan.File)
	for _, f := range files {
		for _, perm := range permutations(indexTags(f.Parsed.Tags), opts.Nested) {
			dir := filepath.Join(append([]string{output}, perm...)...)
			link := filepath.Join(dir, f.Parsed.Untagged())
			claims[link] = append(claims[link], f)
		}
	}

	links := make([]string, 0, len(claims))
	for link := range claims {
		links = append(links, link)
	}
	sort.Strings(links)

	used := make(map[string]bool, len(claims))
	for _, link := range links {
		claimants := claims[link]
		for _, f := range claimants {
			final := link
			if len(claimants) > 1 {
				final = disambiguate(link, absRoot, f)
			}
			final = reserve(used, final)
			if err := place(w, final, f.Path, opts); err != nil {
				return result, err
			}
			result.Links++
		}
	}

	if opts.DryRun {
		fmt.Fprintf(w, "Would index %d files (%d links).\n", result.Files, result.Links)
	} else {
		fmt.Fprintf(w, "Indexed %d files (%d links).\n", result.Files, result.Links)
	}
	return result, nil
}

// indexTags returns the tags a file claims index directories for:
// deduplicated and sorted, so encode order never changes where a file lands.
func indexTags(tags []tag.Tag) []string {
	return tag.Strings(tag.Sorted(tag.Merge(nil, tags)))
}

// checkOutput guards against building into a directory that already has
// content. Missing or empty directories are fine.
func checkOutput(output string) error {
	entries, err := os.ReadDir(output)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", ErrOutputNotEmpty, output)
	}
	return nil
}

// disambiguate qualifies a colliding link name with the claimant's location
// under root: "a.txt" from sub/deep becomes "a-sub-deep.txt". Files at the
// root itself keep their plain name.
func disambiguate(link, absRoot string, f scan.File) string {
	rel, err := filepath.Rel(absRoot, f.Dir)
	if err != nil || rel == "." {
		return link
	}
	id := strings.ReplaceAll(rel, string(filepath.Separator), "-")
	return filepath.Join(filepath.Dir(link), f.Parsed.Stem+"-"+id+f.Parsed.Ext)
}

// reserve returns link if unclaimed, otherwise the first free " - dupN"
// variant. Catches claimants that disambiguate to the same name, such as
// same-directory files that differ only in tags.
func reserve(used map[string]bool, link string) string {
	if !used[link] {
		used[link] = true
		return link
	}
	ext := filepath.Ext(link)
	base := strings.TrimSuffix(link, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s - dup%d%s", base, n, ext)
		if !used[candidate] {
			used[candidate] = true
			return candidate
		}
	}
}

// place creates one symlink, or just reports it in dry-run mode.
func place(w io.Writer, link, target string, opts Options) error {
	if opts.Verbose {
		fmt.Fprintf(w, "%s -> %s\n", link, target)
	}
	if opts.DryRun {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		return err
	}
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("linking %s: %w", link, err)
	}
	return nil
}
