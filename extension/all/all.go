// Package all imports all core ftag extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/ftag/extension/core"
	_ "github.com/jpl-au/ftag/extension/index"
	_ "github.com/jpl-au/ftag/extension/search"
	_ "github.com/jpl-au/ftag/extension/tag"
)
