// Package log provides centralised audit logging for ftag operations.
// Logs are stored in ~/.ftag/log/ftag-log.db and track all CLI commands
// and MCP tool invocations across directories.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("tag:add", "rename").
//		Path(src).
//		NewPath(dst).
//		Write(err)
//
//	log.Event("search:find", "search").
//		Detail("tag", tag).
//		Detail("count", len(paths)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "tag:add",
// "search:find", "mcp:ftag_sort".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "tag:add", "mcp:ftag_sort"
	Action string // verb: rename, search, index, parse, etc.
	Path   string // input: file path the operation targets

	// Output fields - populated after operation succeeds
	NewPath string // output: destination path of a rename (if any)

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "tag:add", "search:find")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:ftag_add", "mcp:ftag_find")
//
// The action describes what operation was performed:
//   - "rename", "search", "index", "parse", etc.
//
// Example:
//
//	log.Event("tag:add", "rename").
//		Path(src).
//		Write(err)
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Path sets the file path this operation affects.
//
// Use for operations that target a specific file or directory root.
// Leave unset for operations that don't target paths (e.g., config).
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// NewPath sets the destination path produced by a rename (output).
//
// Set after a rename plan is computed; for no-op plans it can stay unset.
//
// Example:
//
//	l.NewPath(res.NewPath)  // After the plan is known
func (b *Builder) NewPath(path string) *Builder {
	b.entry.NewPath = path
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// requested tags, match counts, link totals, etc.
// Can be called multiple times to add multiple details.
//
// Example:
//
//	log.Event("search:find", "search").
//		Detail("tag", tag).
//		Detail("count", len(paths))
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// This is the standard way to complete a log entry after an operation.
//
// Example:
//
//	err := plan.Apply()
//	log.Event("tag:add", "rename").Path(plan.Source).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path of the working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
