// Package name implements the file name tag codec: decoding a base name
// into stem, embedded tag groups and extension, and encoding the three back
// into a name. Tags ride in the name itself as trailing "{tag}" groups
// before the extension, so they survive any file transfer that preserves
// names.
//
// Design: The decoder is an explicit backward scanner, not a regex. Scanning
// runs right to left from the extension boundary and peels off well-formed
// groups one at a time; the first byte that breaks the pattern ends the scan
// and everything left of it is stem, verbatim. Malformed or unterminated
// braces are therefore never an error - they are simply stem - and
// encode(decode(x)) == x holds for every string, which is what makes blind
// rewriting of arbitrary user files safe.
package name

import (
	"strings"

	"github.com/jpl-au/ftag/internal/tag"
)

// ParsedName is the structured form of a file base name. Zero or more of
// the three parts may be empty; String reassembles them byte-identically.
type ParsedName struct {
	Stem string    // everything before the first decoded tag group
	Tags []tag.Tag // decoded groups, left-to-right name order
	Ext  string    // extension including the dot, or ""
}

// Parse decodes a file base name. It never fails: names with no tags, odd
// bracket runs or no extension decode to a ParsedName that reassembles to
// the input.
func Parse(s string) ParsedName {
	rest, ext := splitExt(s)
	stem, tags := splitTags(rest)
	return ParsedName{Stem: stem, Tags: tags, Ext: ext}
}

// String encodes the name: stem, then each tag in braces, then extension.
func (p ParsedName) String() string {
	if len(p.Tags) == 0 {
		return p.Stem + p.Ext
	}
	var b strings.Builder
	n := len(p.Stem) + len(p.Ext)
	for _, t := range p.Tags {
		n += len(t) + 2
	}
	b.Grow(n)
	b.WriteString(p.Stem)
	for _, t := range p.Tags {
		b.WriteString(t.Group())
	}
	b.WriteString(p.Ext)
	return b.String()
}

// HasTag reports whether the name carries t. Comparison is exact;
// "Draft" does not match "draft".
func (p ParsedName) HasTag(t tag.Tag) bool {
	for _, have := range p.Tags {
		if have == t {
			return true
		}
	}
	return false
}

// WithTags returns a copy of p carrying the given tag sequence in place of
// its own.
func (p ParsedName) WithTags(tags []tag.Tag) ParsedName {
	p.Tags = tags
	return p
}

// Untagged returns the name with all tag groups removed: stem plus
// extension. This is what a file would be called had it never been tagged.
func (p ParsedName) Untagged() string {
	return p.Stem + p.Ext
}

// splitExt splits off the extension: the final dot and everything after it.
// A dot at position zero marks a dotfile, not an extension, so ".bashrc"
// has no extension while "a.tar.gz" has extension ".gz".
func splitExt(s string) (rest, ext string) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// splitTags peels the maximal run of well-formed tag groups off the end of
// rest. Groups are collected right to left, then reversed into name order.
//
// Each iteration requires, in order: a closing brace at the end, a non-empty
// run of tag bytes, and an opening brace. Anything else stops the scan, so
// "v{2" (unterminated), "x{}" (empty group) and "{a} copy" (trailing text)
// all fold into the stem untouched. Greediness means a stem cannot end in a
// well-formed group: "a{b}" is stem "a" tagged "b", never a literal "a{b}".
func splitTags(rest string) (string, []tag.Tag) {
	var groups []tag.Tag
	end := len(rest)
	for end > 0 && rest[end-1] == '}' {
		j := end - 2
		for j >= 0 && tag.IsByte(rest[j]) {
			j--
		}
		if j < 0 || rest[j] != '{' || j == end-2 {
			break
		}
		groups = append(groups, tag.Tag(rest[j+1:end-1]))
		end = j
	}
	if len(groups) == 0 {
		return rest, nil
	}
	for a, b := 0, len(groups)-1; a < b; a, b = a+1, b-1 {
		groups[a], groups[b] = groups[b], groups[a]
	}
	return rest[:end], groups
}
