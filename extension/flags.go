// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "recursive" -> FlagRecursive).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	FlagAll       = "all"       // Include hidden files and directories
	FlagLocal     = "local"     // Use local config scope
	FlagNull      = "null"      // NUL-separated output
	FlagRecursive = "recursive" // Recurse into subdirectories
	FlagTree      = "tree"      // Tree output (find) / nested index (index)
)
