package catalog

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpilot/internal/roadmap"
)

// ValidateSchema checks a CatalogSchema for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateSchema(schema *CatalogSchema) []error {
	var errs []error

	if schema.ID == "" {
		errs = append(errs, fmt.Errorf("catalog id is required"))
	}
	if schema.Name == "" {
		errs = append(errs, fmt.Errorf("catalog name is required"))
	}
	if len(schema.Curricula) == 0 {
		errs = append(errs, fmt.Errorf("at least one curriculum is required"))
	}
	if len(schema.Default) == 0 {
		errs = append(errs, fmt.Errorf("default curriculum is required"))
	}

	keys := map[string]bool{}
	for i, c := range schema.Curricula {
		key := strings.TrimSpace(c.Key)
		if key == "" {
			errs = append(errs, fmt.Errorf("curricula[%d]: key is required", i))
		} else {
			if strings.EqualFold(key, roadmap.DefaultKey) {
				errs = append(errs, fmt.Errorf("curricula[%d]: key %q is reserved for the default curriculum", i, c.Key))
			}
			if key != strings.ToLower(key) {
				errs = append(errs, fmt.Errorf("curricula[%d]: key %q must be lowercase", i, c.Key))
			}
			if keys[key] {
				errs = append(errs, fmt.Errorf("curricula[%d]: duplicate key %q", i, c.Key))
			}
			keys[key] = true
		}
		if len(c.Entries) == 0 {
			errs = append(errs, fmt.Errorf("curricula[%d]: at least one entry is required", i))
		}
		errs = append(errs, validateEntries(fmt.Sprintf("curricula[%d]", i), c.Entries)...)
	}
	errs = append(errs, validateEntries("default", schema.Default)...)

	return errs
}

func validateEntries(prefix string, entries []EntryConfig) []error {
	var errs []error
	for j, e := range entries {
		if strings.TrimSpace(e.Category) == "" {
			errs = append(errs, fmt.Errorf("%s.entries[%d]: category is required", prefix, j))
		}
		if len(e.Topics) == 0 {
			errs = append(errs, fmt.Errorf("%s.entries[%d]: at least one topic is required", prefix, j))
		}
		for k, topic := range e.Topics {
			if strings.TrimSpace(topic) == "" {
				errs = append(errs, fmt.Errorf("%s.entries[%d].topics[%d]: topic is blank", prefix, j, k))
			}
		}
	}
	return errs
}
