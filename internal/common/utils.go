package common

import "strings"

// AppendUnique appends each item not already present in list, keeping first-seen
// order. Existing entries are never moved. It returns the new list and the number
// of items added.
func AppendUnique(list []string, items ...string) ([]string, int) {
	seen := make(map[string]struct{}, len(list)+len(items))
	out := make([]string, 0, len(list)+len(items))
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	added := 0
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		added++
	}
	return out, added
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Head returns at most the first n items of list.
func Head(list []string, n int) []string {
	if n < 0 || len(list) <= n {
		return list
	}
	return list[:n]
}
