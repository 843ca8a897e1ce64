// add.go implements the "ftag add" command for tagging files.
//
// Separated from tag.go to isolate tag-list parsing. The tag list is shared
// by every file in the batch, so it is validated once up front - a typo in
// the list fails the whole invocation before any file is touched.

package tag

import (
	"fmt"

	"github.com/jpl-au/ftag/cmd"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/jpl-au/ftag/internal/rename"
	"github.com/jpl-au/ftag/internal/tag"
	"github.com/spf13/cobra"
)

func (e *Extension) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <tags> <files...>",
		Short: "Add tags to files",
		Long: `Add tags to files by renaming them.

Tags are comma-separated and consist of letters, digits and hyphens.
Existing tags keep their order; missing tags are appended. Files that
already carry every requested tag are left alone, so add is safe to
re-run.

  ftag add draft report.txt    # report.txt -> report{draft}.txt
  ftag add draft,2024 *.txt    # several tags, several files`,
		Args: cobra.MinimumNArgs(2),
		RunE: e.runAdd,
	}
}

func (e *Extension) runAdd(c *cobra.Command, args []string) error {
	tags, err := tag.ParseList(args[0])
	if err != nil {
		log.Event("tag:add", "rename").Detail("tags", args[0]).Write(err)
		return cmd.PrintJSONError(fmt.Errorf("add: %w", err))
	}

	return e.runBatch(c, "tag:add", args[0], rename.AddTags(tags), args[1:])
}
