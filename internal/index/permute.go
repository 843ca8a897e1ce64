// permute.go generates the directory paths a tag set claims in the index.
//
// Separated from index.go to keep the combinatorial helper testable on its
// own. Nested mode claims every ordering of every non-empty subset; for k
// tags that is sum over i of k!/(k-i)! paths, which stays small for the
// handful of tags real files carry.

package index

// permutations returns the relative directory paths, as component slices,
// that a tag set claims. Flat mode: one single-tag path per tag. Nested
// mode: every ordering of every non-empty subset, so {a,b} yields a, a/b,
// b and b/a.
func permutations(tags []string, nested bool) [][]string {
	if !nested {
		out := make([][]string, len(tags))
		for i, t := range tags {
			out[i] = []string{t}
		}
		return out
	}

	var out [][]string
	var build func(prefix, remaining []string)
	build = func(prefix, remaining []string) {
		for i, t := range remaining {
			next := make([]string, len(prefix), len(prefix)+1)
			copy(next, prefix)
			next = append(next, t)
			out = append(out, next)

			rest := make([]string, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)
			build(next, rest)
		}
	}
	build(nil, tags)
	return out
}
