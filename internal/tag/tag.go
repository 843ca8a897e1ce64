// Package tag defines the tag value type and the rules every tag in a file
// name obeys: one or more ASCII letters, digits or hyphens, compared
// case-sensitively. All validation funnels through Parse so the character
// class lives in exactly one place.
package tag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned when a requested tag fails validation. Wrapped
// errors carry the offending input; check with errors.Is.
var ErrInvalid = errors.New("invalid tag")

// Tag is a validated file name tag. Construct via Parse; the zero value is
// not a valid tag.
type Tag string

// String returns the bare tag text.
func (t Tag) String() string { return string(t) }

// Group returns the tag as it appears embedded in a file name: "{build}".
func (t Tag) Group() string { return "{" + string(t) + "}" }

// IsByte reports whether b belongs to the tag character class. The file
// name codec shares this to decide where a tag group ends.
func IsByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-'
}

// Parse validates raw and returns it as a Tag.
//
// Validation rules:
//   - Empty tags rejected (meaningless label, and "{}" never decodes as a group)
//   - Bytes outside [A-Za-z0-9-] rejected (braces, dots, spaces and path
//     separators would corrupt the encoded file name)
//
// Note: No max length enforced. File systems cap name length anyway, and the
// rename fails there with a clear OS error if a tag pushes past it.
func Parse(raw string) (Tag, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: empty tag", ErrInvalid)
	}
	for i := 0; i < len(raw); i++ {
		if !IsByte(raw[i]) {
			return "", fmt.Errorf("%w: %q contains %q (tags use letters, digits and hyphens)", ErrInvalid, raw, raw[i])
		}
	}
	return Tag(raw), nil
}

// ParseList validates a comma-separated tag request, preserving order.
// Any invalid element fails the whole list; nothing is partially accepted.
func ParseList(raw string) ([]Tag, error) {
	parts := strings.Split(raw, ",")
	tags := make([]Tag, 0, len(parts))
	for _, p := range parts {
		t, err := Parse(p)
		if err != nil {
			return nil, fmt.Errorf("in list %q: %w", raw, err)
		}
		tags = append(tags, t)
	}
	return tags, nil
}
