// Package tag provides the filename tagging extension for ftag.
// It registers commands: add, sort.
package tag

import (
	"fmt"
	"io"

	"github.com/jpl-au/ftag/cmd"
	"github.com/jpl-au/ftag/extension"
	"github.com/jpl-au/ftag/internal/config"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/jpl-au/ftag/internal/rename"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the tag extension.
type Extension struct {
	cfg *config.Config
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "tag" - this extension renames files to change their tags.
func (e *Extension) Name() string { return "tag" }

// Init receives the shared configuration from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the add and sort commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newAddCmd(),
		e.newSortCmd(),
	}
}

// runBatch runs a rewrite over the given files and reports the outcome.
// Shared by add and sort, which differ only in the rewrite they apply.
// rawTags, when non-empty, is recorded on each audit event.
func (e *Extension) runBatch(c *cobra.Command, source, rawTags string, rw rename.Rewrite, files []string) error {
	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	opts := rename.Options{
		DryRun:  cmd.Debug(),
		Verbose: cmd.Verbose(),
		Abort:   e.cfg.BatchAbort(),
		Colour:  cmd.Colour(),
	}

	results := rename.Run(c.Context(), w, files, rw, opts)

	for _, r := range results {
		l := log.Event(source, "rename").Path(r.Path).NewPath(r.NewPath)
		if rawTags != "" {
			l.Detail("tags", rawTags)
		}
		if opts.DryRun {
			l.Detail("dry_run", true)
		}
		l.Write(r.Err)
	}

	if err := cmd.PrintJSON(results); err != nil {
		return err
	}

	if failed := rename.Failed(results); failed > 0 {
		// Per-file errors are already reported; suppress the usage dump,
		// and in JSON mode the duplicate error line too.
		c.SilenceUsage = true
		if cmd.JSON() {
			c.SilenceErrors = true
		}
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
