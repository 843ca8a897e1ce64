// sort.go implements the "ftag sort" command.

package tag

import (
	"github.com/jpl-au/ftag/internal/rename"
	"github.com/spf13/cobra"
)

func (e *Extension) newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <files...>",
		Short: "Sort file tags alphabetically",
		Long: `Rewrite each file's tags into alphabetical order.

  ftag sort report{b}{a}.txt    # -> report{a}{b}.txt

Files whose tags are already in order are left alone. This is the only
command that reorders tags; add always preserves existing order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runSort,
	}
}

func (e *Extension) runSort(c *cobra.Command, args []string) error {
	return e.runBatch(c, "tag:sort", "", rename.SortTags, args)
}
