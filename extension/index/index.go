// Package index provides the index extension for ftag.
// It registers commands: index.
package index

import (
	"fmt"
	"io"

	"github.com/jpl-au/ftag/cmd"
	"github.com/jpl-au/ftag/extension"
	"github.com/jpl-au/ftag/internal/config"
	"github.com/jpl-au/ftag/internal/index"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the index extension.
type Extension struct {
	cfg *config.Config
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "index" - this extension builds symlink indexes.
func (e *Extension) Name() string { return "index" }

// Init receives the shared configuration from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the index command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newIndexCmd(),
	}
}

func (e *Extension) newIndexCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "index <path> <output>",
		Short: "Build a symlink index of tagged files",
		Long: `Scan a directory for tagged files and build a browsable directory of
symlinks under <output>, one folder per tag. The output directory must
be empty or missing; an index is never built over existing files.

  ftag index photos/ photo-index/
  ftag index -t photos/ photo-index/   # nested: narrow by several tags

With --tree, every ordering of every combination of a file's tags gets
a directory, so beach/2024/ and 2024/beach/ both hold the file. Link
counts grow factorially with tag count in this mode.`,
		Args: cobra.ExactArgs(2),
		RunE: e.runIndex,
	}
	c.Flags().BoolP(extension.FlagAll, "a", false, "Include hidden files and directories")
	c.Flags().BoolP(extension.FlagRecursive, "r", false, "Recurse into subdirectories")
	c.Flags().BoolP(extension.FlagTree, "t", false, "Nested index: permute tag combinations")
	return c
}

func (e *Extension) runIndex(c *cobra.Command, args []string) error {
	root, output := args[0], args[1]

	all, _ := c.Flags().GetBool(extension.FlagAll)
	recursive, _ := c.Flags().GetBool(extension.FlagRecursive)
	nested, _ := c.Flags().GetBool(extension.FlagTree)

	opts := index.Options{
		Recursive: recursive,
		Hidden:    all || e.cfg.ScanHidden(),
		Nested:    nested,
		DryRun:    cmd.Debug(),
		Verbose:   cmd.Verbose(),
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := index.Build(c.Context(), w, root, output, opts)

	l := log.Event("index:index", "index").
		Path(root).
		Detail("output", output).
		Detail("files", result.Files).
		Detail("links", result.Links)
	if nested {
		l.Detail("nested", true)
	}
	if opts.DryRun {
		l.Detail("dry_run", true)
	}
	l.Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("index %s: %w", root, err))
	}

	return cmd.PrintJSON(result)
}
