// Package config provides reading and writing of ftag configuration.
// Supports both global (~/.ftag/config.yaml) and local (.ftag/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.ftag/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .ftag/config.yaml
	ScopeLocal
)

// Output holds display configuration options.
type Output struct {
	Colour *bool `yaml:"colour,omitempty"`
}

// Scan holds directory walking configuration options.
type Scan struct {
	Hidden *bool `yaml:"hidden,omitempty"`
}

// Batch holds multi-file operation configuration options.
type Batch struct {
	Abort *bool `yaml:"abort,omitempty"`
}

// Config contains configuration for ftag.
type Config struct {
	Output Output `yaml:"output,omitempty"`
	Scan   Scan   `yaml:"scan,omitempty"`
	Batch  Batch  `yaml:"batch,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Colour returns the configured colour preference, or nil when unset and
// the caller should detect the terminal instead.
func (c *Config) Colour() *bool {
	return c.Output.Colour
}

// ScanHidden returns whether walks include hidden files by default
// (defaults to false). The --all flag overrides this per invocation.
func (c *Config) ScanHidden() bool {
	if c.Scan.Hidden == nil {
		return false
	}
	return *c.Scan.Hidden
}

// BatchAbort returns whether a multi-file operation stops at the first
// failure (defaults to false: remaining files are still attempted).
func (c *Config) BatchAbort() bool {
	if c.Batch.Abort == nil {
		return false
	}
	return *c.Batch.Abort
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".ftag", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.ftag/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ftag", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	// Check if local config exists
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	// Fall back to global
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
