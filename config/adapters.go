package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// adaptersDoc is the on-disk shape of the per-prefix adapter configuration.
type adaptersDoc struct {
	OntologyAdapters map[string]string `yaml:"ontology_adapters"`
}

// LoadAdapters reads the prefix-to-adapter-string map from a YAML document
// with a top-level ontology_adapters key:
//
//	ontology_adapters:
//	  GO: sqlite:obo:go
//	  CHEBI: sqlite:obo:chebi
//	  LOCAL: ""          # explicitly disabled
//
// A missing file yields a nil map without error; once the returned map is
// non-empty it acts as an allow-list for adapter resolution.
func LoadAdapters(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read adapter config: %w", err)
	}

	var doc adaptersDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse adapter config: %w", err)
	}

	return doc.OntologyAdapters, nil
}
