// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "output.colour").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to false". This matters most for
// output.colour, where nil means "detect from the terminal" rather than
// either fixed answer.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"output.colour",
		"scan.hidden",
		"batch.abort",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "output.colour":
		if c.Output.Colour == nil {
			return "auto", nil
		}
		return strconv.FormatBool(*c.Output.Colour), nil
	case "scan.hidden":
		return strconv.FormatBool(c.ScanHidden()), nil
	case "batch.abort":
		return strconv.FormatBool(c.BatchAbort()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "output.colour":
		v := strings.ToLower(value)
		switch v {
		case "auto":
			c.Output.Colour = nil
		case "true", "false":
			b := v == "true"
			c.Output.Colour = &b
		default:
			return fmt.Errorf("%w: output.colour must be true, false or auto", ErrInvalidValue)
		}
	case "scan.hidden":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w: scan.hidden must be true or false", ErrInvalidValue)
		}
		c.Scan.Hidden = &b
	case "batch.abort":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w: batch.abort must be true or false", ErrInvalidValue)
		}
		c.Batch.Abort = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// parseBool accepts exactly "true" or "false", case-insensitively. Stricter
// than strconv.ParseBool, which also takes "1", "t" and friends; config
// files should read unambiguously.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, ErrInvalidValue
	}
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	colour := "auto"
	if c.Output.Colour != nil {
		colour = strconv.FormatBool(*c.Output.Colour)
	}
	return map[string]string{
		"output.colour": colour,
		"scan.hidden":   strconv.FormatBool(c.ScanHidden()),
		"batch.abort":   strconv.FormatBool(c.BatchAbort()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "output.colour":
		return c.Output.Colour != nil
	case "scan.hidden":
		return c.Scan.Hidden != nil
	case "batch.abort":
		return c.Batch.Abort != nil
	default:
		return false
	}
}
