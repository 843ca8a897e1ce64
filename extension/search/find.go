// find.go implements the "ftag find" command for tag search.
//
// Separated from search.go to isolate flag handling and output formatting.
// Matching is exact and case-sensitive: the requested tag must appear in the
// file's decoded tag sequence, so stems that merely contain the text never
// match.

package search

import (
	"fmt"
	"io"

	"github.com/jpl-au/ftag/cmd"
	"github.com/jpl-au/ftag/extension"
	"github.com/jpl-au/ftag/internal/find"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/jpl-au/ftag/internal/tag"
	"github.com/spf13/cobra"
)

func (e *Extension) newFindCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "find <tag> [path]",
		Short: "Find files carrying a tag",
		Long: `Find files carrying a tag. Searches the current directory unless a
path is given.

  ftag find draft              # tagged files here
  ftag find draft -r photos/   # search a tree
  ftag find draft -0 | xargs -0 rm`,
		Args: cobra.RangeArgs(1, 2),
		RunE: e.runFind,
	}
	c.Flags().BoolP(extension.FlagAll, "a", false, "Include hidden files and directories")
	c.Flags().BoolP(extension.FlagRecursive, "r", false, "Recurse into subdirectories")
	c.Flags().BoolP(extension.FlagTree, "t", false, "Render matches as a tree")
	c.Flags().BoolP(extension.FlagNull, "0", false, "NUL-separated output for xargs -0")
	return c
}

func (e *Extension) runFind(c *cobra.Command, args []string) error {
	t, err := tag.Parse(args[0])
	if err != nil {
		log.Event("search:find", "search").Detail("tag", args[0]).Write(err)
		return cmd.PrintJSONError(fmt.Errorf("find: %w", err))
	}

	root := "."
	if len(args) > 1 {
		root = args[1]
	}

	all, _ := c.Flags().GetBool(extension.FlagAll)
	recursive, _ := c.Flags().GetBool(extension.FlagRecursive)
	tree, _ := c.Flags().GetBool(extension.FlagTree)
	null, _ := c.Flags().GetBool(extension.FlagNull)

	opts := find.Options{
		Recursive: recursive,
		Hidden:    all || e.cfg.ScanHidden(),
		Tree:      tree,
		Null:      null,
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := find.Run(c.Context(), w, t, root, opts)

	log.Event("search:find", "search").
		Path(root).
		Detail("tag", string(t)).
		Detail("count", len(result.Paths)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("find %q: %w", t, err))
	}

	return cmd.PrintJSON(result)
}
