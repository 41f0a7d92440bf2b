package roadmap

import "strings"

// Classify returns the curriculum for a free-text goal.
//
// The goal is lowercased and tested against the first word of every key in
// registration order; the first key whose first word appears anywhere in the
// goal wins, even if a later key would match more of it. Goals that match
// nothing get the fallback curriculum, so classification never fails.
func (c *Catalog) Classify(goal string) []CatalogEntry {
	if k, ok := c.match(goal); ok {
		return copyEntries(k.Entries)
	}
	return copyEntries(c.fallback)
}

// ClassifyKey applies the same first-match-wins policy as Classify and reports
// which key was chosen. It returns DefaultKey and false when nothing matched.
func (c *Catalog) ClassifyKey(goal string) (string, bool) {
	if k, ok := c.match(goal); ok {
		return k.Key, true
	}
	return DefaultKey, false
}

func (c *Catalog) match(goal string) (CatalogKey, bool) {
	lower := strings.ToLower(goal)
	for _, k := range c.keys {
		token := firstToken(k.Key)
		if token == "" {
			continue
		}
		if strings.Contains(lower, token) {
			return k, true
		}
	}
	return CatalogKey{}, false
}

func firstToken(key string) string {
	fields := strings.Fields(key)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// FlatTopic is a single topic tagged with the category it came from.
type FlatTopic struct {
	Category string
	Topic    string
}

// Flatten expands entries into one topic sequence, keeping category order and
// the order of topics within each category.
func Flatten(entries []CatalogEntry) []FlatTopic {
	n := 0
	for _, e := range entries {
		n += len(e.Topics)
	}
	out := make([]FlatTopic, 0, n)
	for _, e := range entries {
		for _, t := range e.Topics {
			out = append(out, FlatTopic{Category: e.Category, Topic: t})
		}
	}
	return out
}
