package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alexanderramin/skillpilot/internal/roadmap"
)

// LoadSchema reads a catalog schema from a file, decoding it by extension,
// and checks its document shape. Content rules are not validated.
func LoadSchema(path string) (*CatalogSchema, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return ParseSchemaAs(f, data)
}

// ParseSchemaAs checks data against the document schema and decodes it.
func ParseSchemaAs(f Format, data []byte) (*CatalogSchema, error) {
	if err := CheckDocument(f, data); err != nil {
		return nil, err
	}
	var schema CatalogSchema
	if err := f.decode(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &schema, nil
}

// LoadBytes parses and validates a JSON catalog.
func LoadBytes(data []byte) (*roadmap.Catalog, error) {
	return LoadBytesAs(FormatJSON, data)
}

// LoadBytesAs parses and validates a catalog encoded as f.
func LoadBytesAs(f Format, data []byte) (*roadmap.Catalog, error) {
	schema, err := ParseSchemaAs(f, data)
	if err != nil {
		return nil, err
	}
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog %q: %w", schema.ID, errors.Join(errs...))
	}
	return schema.ToCatalog(), nil
}

// LoadFile reads, parses and validates a catalog file.
func LoadFile(path string) (*roadmap.Catalog, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := LoadBytesAs(f, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return c, nil
}

// LoadDir loads the first catalog file in dir by name. A directory with no
// catalog files yields the built-in catalog.
func LoadDir(dir string) (*roadmap.Catalog, error) {
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml", "*.toml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return roadmap.DefaultCatalog(), nil
	}
	sort.Strings(files)
	return LoadFile(files[0])
}

// Load resolves path as a file or a directory. An empty path yields the
// built-in catalog.
func Load(path string) (*roadmap.Catalog, error) {
	if path == "" {
		return roadmap.DefaultCatalog(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("locating catalog: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}
