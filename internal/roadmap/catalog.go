package roadmap

import "strings"

// DefaultKey names the fallback curriculum used when no catalog key matches a goal.
const DefaultKey = "default"

// CatalogEntry is one category of a curriculum and its topics in teaching order.
type CatalogEntry struct {
	Category string
	Topics   []string
}

// CatalogKey binds a lowercase goal phrase (e.g. "frontend developer") to its curriculum.
type CatalogKey struct {
	Key     string
	Entries []CatalogEntry
}

// Catalog is an immutable lookup table from goal phrases to curricula.
// Keys are matched in registration order; see Classify.
type Catalog struct {
	keys     []CatalogKey
	fallback []CatalogEntry
}

// NewCatalog builds a Catalog from keys in registration order and a fallback
// curriculum. Inputs are deep-copied so later changes by the caller are not
// observed. Blank keys can never match a goal and are skipped.
func NewCatalog(keys []CatalogKey, fallback []CatalogEntry) *Catalog {
	c := &Catalog{
		keys:     make([]CatalogKey, 0, len(keys)),
		fallback: copyEntries(fallback),
	}
	for _, k := range keys {
		key := strings.ToLower(strings.TrimSpace(k.Key))
		if key == "" {
			continue
		}
		c.keys = append(c.keys, CatalogKey{Key: key, Entries: copyEntries(k.Entries)})
	}
	return c
}

// Keys returns the registered keys in registration order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	for i, k := range c.keys {
		out[i] = k.Key
	}
	return out
}

// Curriculum returns a copy of the entries registered for key. DefaultKey
// returns the fallback curriculum unless a curriculum was registered under
// that name; catalog files reject such a key, see catalog.ValidateSchema.
func (c *Catalog) Curriculum(key string) ([]CatalogEntry, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, k := range c.keys {
		if k.Key == key {
			return copyEntries(k.Entries), true
		}
	}
	if key == DefaultKey {
		return copyEntries(c.fallback), true
	}
	return nil, false
}

// Fallback returns a copy of the default curriculum.
func (c *Catalog) Fallback() []CatalogEntry {
	return copyEntries(c.fallback)
}

// TopicCount returns the number of topics in the curriculum registered for key.
func (c *Catalog) TopicCount(key string) int {
	entries, ok := c.Curriculum(key)
	if !ok {
		return 0
	}
	n := 0
	for _, e := range entries {
		n += len(e.Topics)
	}
	return n
}

func copyEntries(entries []CatalogEntry) []CatalogEntry {
	if entries == nil {
		return nil
	}
	out := make([]CatalogEntry, len(entries))
	for i, e := range entries {
		out[i] = CatalogEntry{
			Category: e.Category,
			Topics:   append([]string(nil), e.Topics...),
		}
	}
	return out
}
