/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE runs before every command. It validates the
// output format, initialises extensions with the loaded configuration,
// resolves the colour mode and scopes audit log entries to the working
// directory. Commands themselves never load config directly; they receive
// it through the extension Context.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/jpl-au/ftag/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ftag",
	Short: "Tag files through their names",
	Long: `ftag manages tags stored directly in file names.

Tags sit immediately before the extension, wrapped in braces, and consist
of letters, numbers and the - character:

  holiday-photo{beach}{summer}.jpg
  report{draft}{2024}.txt

Because the name is the database, tags survive copies, backups, and moves
to machines that have never heard of ftag. Run "ftag guide" for an
introduction.`,
	Version: version.Short(),
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if err := initExtensions(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return fmt.Errorf("initialise extensions: %w", err)
		}

		// Resolve colour mode: an explicit output.colour setting wins;
		// otherwise fatih/color auto-detects (terminal, NO_COLOR).
		if c := extConfig.Colour(); c != nil {
			color.NoColor = !*c
		}

		// Scope audit log entries to this working directory
		if wd, err := os.Getwd(); err == nil {
			log.SetProject(wd)
		}

		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions, and executes the command.
// Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	registerExtensions()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
