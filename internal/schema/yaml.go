package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlDoc mirrors the on-disk schema-file format `cmd/schemagen` emits:
// a flat map of table name to ordered column names.
type yamlDoc struct {
	Tables map[string][]string `yaml:"tables"`
}

// FromYAML loads an Oracle from a YAML file of the form:
//
//	tables:
//	  orders:
//	    - id
//	    - customer_id
//	    - total
func FromYAML(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: reading %s: %w", path, err)
	}
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: parsing %s: %w", path, err)
	}
	return NewStatic(doc.Tables), nil
}

// WriteYAML serializes tables to path in the format FromYAML reads,
// preserving the column ordering the caller supplies (used by
// cmd/schemagen, the counterpart to FromYAML).
func WriteYAML(path string, tables map[string][]string) error {
	doc := yamlDoc{Tables: tables}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("schema: encoding %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}
