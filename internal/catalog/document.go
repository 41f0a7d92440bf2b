package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema constrains the shape of a catalog file: field names and
// types. Content rules (required fields, key casing, duplicates) are left to
// ValidateSchema, which reports them all at once.
//
//go:embed catalog.schema.json
var documentSchema []byte

const documentSchemaURL = "schema://skillpilot/catalog.json"

var compileDocumentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(documentSchema))
	if err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(documentSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add catalog schema: %w", err)
	}
	return c.Compile(documentSchemaURL)
})

// CheckDocument decodes data as f and checks it against the catalog document
// schema. Unknown fields and wrongly typed values are rejected here, before
// decoding into CatalogSchema would silently drop them.
func CheckDocument(f Format, data []byte) error {
	var doc any
	if err := f.decode(data, &doc); err != nil {
		return fmt.Errorf("parsing catalog: %w", err)
	}

	// YAML and TOML decode to Go maps with native numbers; a JSON round trip
	// gives the validator the same value model for every format.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("parsing catalog: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parsing catalog: %w", err)
	}

	schema, err := compileDocumentSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("catalog does not match the document schema: %w", err)
	}
	return nil
}
