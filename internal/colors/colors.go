package colors

import "strings"

// synonyms broadens a color search term to related color words. Keys and
// values are lowercase; lookup is on the normalized query.
var synonyms = map[string][]string{
	"brown":  {"brown", "tan", "chocolate"},
	"black":  {"black", "dark"},
	"white":  {"white", "light"},
	"gray":   {"gray", "grey", "silver"},
	"golden": {"golden", "yellow", "blonde"},
	"red":    {"red", "orange", "rust"},
}

// Expand returns the set of color terms a search query should match,
// lowercased. Terms without a synonym entry expand to themselves; an empty
// query expands to nothing.
func Expand(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if terms, ok := synonyms[q]; ok {
		out := make([]string, len(terms))
		copy(out, terms)
		return out
	}
	return []string{q}
}
