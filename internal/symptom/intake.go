package symptom

import "sort"

// Combine merges per-category form selections and free selections into one
// list. Known categories are read in the given order, unknown ones after them
// in key order; duplicates are resolved later by ParseAll.
func Combine(order []string, categories map[string][]string, extra ...string) []string {
	var out []string
	for _, key := range order {
		out = append(out, categories[key]...)
	}

	var rest []string
	for key := range categories {
		if !contains(order, key) {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		out = append(out, categories[key]...)
	}

	return append(out, extra...)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
