package listing

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxFilterDistance is the edit distance tolerated between the query and a word.
const maxFilterDistance = 2

// Filter keeps the items matching query without reordering them. An empty
// query keeps everything.
func Filter(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if Matches(it, q) {
			out = append(out, it)
		}
	}
	return out
}

// Matches reports whether it matches the lower-cased query q.
func Matches(it Item, q string) bool {
	for _, field := range []string{it.Name, it.Title} {
		f := strings.ToLower(field)
		if f == "" {
			continue
		}
		if strings.Contains(f, q) {
			return true
		}
		// short queries would fuzzy-match nearly everything
		if len([]rune(q)) <= maxFilterDistance {
			continue
		}
		for _, w := range strings.Fields(f) {
			if levenshtein.ComputeDistance(w, q) <= maxFilterDistance {
				return true
			}
		}
	}
	return false
}
