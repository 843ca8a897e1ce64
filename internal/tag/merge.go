// merge.go implements the merge and sort rules for tag sequences.
//
// Separated from tag.go because these operate on sequences, not single
// values. The merge rule is the heart of the add command: existing order is
// sacred, additions append.
//
// Design: Merge never reorders what a file already carries. A user who
// deliberately named a file "a{zebra}{apple}.txt" keeps that order across
// every subsequent add; only the sort command rewrites order, and only when
// asked. This keeps add idempotent: merging the same additions twice yields
// the same sequence.

package tag

import "slices"

// Merge returns existing followed by each addition not already present.
// Duplicate additions collapse to their first occurrence. Neither input
// slice is modified.
func Merge(existing, additions []Tag) []Tag {
	merged := make([]Tag, len(existing), len(existing)+len(additions))
	copy(merged, existing)
	seen := make(map[Tag]struct{}, len(merged))
	for _, t := range existing {
		seen[t] = struct{}{}
	}
	for _, t := range additions {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}
	return merged
}

// Sorted returns a copy of tags in lexicographic byte order. Case-sensitive,
// so uppercase sorts before lowercase ("Z" < "a").
func Sorted(tags []Tag) []Tag {
	out := make([]Tag, len(tags))
	copy(out, tags)
	slices.Sort(out)
	return out
}

// Strings converts a tag sequence for display and JSON output.
func Strings(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
