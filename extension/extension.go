// Package extension provides the plugin architecture for ftag. Extensions
// encapsulate related commands and register at init time, enabling modular
// feature development without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for ftag extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}

// Initializable extensions receive shared resources (configuration) before
// their first command runs.
type Initializable interface {
	Extension
	Init(ctx Context) error
}
