// Package catalog reads and writes curriculum catalogs as JSON, YAML or TOML
// so the roadmap generator can run against a catalog other than the built-in
// one.
package catalog

import (
	"fmt"

	"github.com/alexanderramin/skillpilot/internal/roadmap"
)

// CatalogSchema is the top-level catalog document.
type CatalogSchema struct {
	ID          string            `json:"id" yaml:"id" toml:"id"`
	Name        string            `json:"name" yaml:"name" toml:"name"`
	Version     string            `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Curricula   []CurriculumEntry `json:"curricula" yaml:"curricula" toml:"curricula"`
	Default     []EntryConfig     `json:"default" yaml:"default" toml:"default"`
}

// CurriculumEntry is a goal phrase and the categories taught for it.
// Curricula are matched in the order they appear in the file.
type CurriculumEntry struct {
	Key     string        `json:"key" yaml:"key" toml:"key"`
	Entries []EntryConfig `json:"entries" yaml:"entries" toml:"entries"`
}

type EntryConfig struct {
	Category string   `json:"category" yaml:"category" toml:"category"`
	Topics   []string `json:"topics" yaml:"topics" toml:"topics"`
}

// ToCatalog converts a schema into an immutable roadmap catalog. It does not
// validate; call ValidateSchema first.
func (s *CatalogSchema) ToCatalog() *roadmap.Catalog {
	keys := make([]roadmap.CatalogKey, 0, len(s.Curricula))
	for _, c := range s.Curricula {
		keys = append(keys, roadmap.CatalogKey{Key: c.Key, Entries: toEntries(c.Entries)})
	}
	return roadmap.NewCatalog(keys, toEntries(s.Default))
}

// FromCatalog builds a schema describing c.
func FromCatalog(id, name string, c *roadmap.Catalog) *CatalogSchema {
	s := &CatalogSchema{ID: id, Name: name, Version: "1.0.0"}
	for _, key := range c.Keys() {
		entries, _ := c.Curriculum(key)
		s.Curricula = append(s.Curricula, CurriculumEntry{Key: key, Entries: fromEntries(entries)})
	}
	s.Default = fromEntries(c.Fallback())
	return s
}

// Export renders c as indented JSON.
func Export(id, name string, c *roadmap.Catalog) ([]byte, error) {
	return ExportAs(FormatJSON, id, name, c)
}

// ExportAs renders c in format f.
func ExportAs(f Format, id, name string, c *roadmap.Catalog) ([]byte, error) {
	data, err := f.encode(FromCatalog(id, name, c))
	if err != nil {
		return nil, fmt.Errorf("encoding catalog as %s: %w", f, err)
	}
	return data, nil
}

func toEntries(cfgs []EntryConfig) []roadmap.CatalogEntry {
	out := make([]roadmap.CatalogEntry, len(cfgs))
	for i, e := range cfgs {
		out[i] = roadmap.CatalogEntry{Category: e.Category, Topics: e.Topics}
	}
	return out
}

func fromEntries(entries []roadmap.CatalogEntry) []EntryConfig {
	out := make([]EntryConfig, len(entries))
	for i, e := range entries {
		out[i] = EntryConfig{Category: e.Category, Topics: e.Topics}
	}
	return out
}
