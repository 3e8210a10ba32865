package enums

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// definitionsDoc is the on-disk shape: a top-level "enums" mapping from
// enum name to definition, mirroring how schemas declare enums.
type definitionsDoc struct {
	Enums map[string]*Definition `yaml:"enums"`
}

// LoadDefinitions reads enum definitions from a YAML document with a
// top-level "enums" mapping. Each definition's Name is filled from its map
// key when not set explicitly.
func LoadDefinitions(path string) (map[string]*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read enum definitions: %w", err)
	}
	return ParseDefinitions(data)
}

// ParseDefinitions parses enum definitions from YAML bytes.
func ParseDefinitions(data []byte) (map[string]*Definition, error) {
	var doc definitionsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse enum definitions: %w", err)
	}
	for name, def := range doc.Enums {
		if def == nil {
			doc.Enums[name] = &Definition{Name: name}
			continue
		}
		if def.Name == "" {
			def.Name = name
		}
	}
	if doc.Enums == nil {
		doc.Enums = make(map[string]*Definition)
	}
	return doc.Enums, nil
}

// LookupFrom adapts a definitions map into a Lookup for inheritance
// resolution.
func LookupFrom(defs map[string]*Definition) Lookup {
	return func(name string) (*Definition, bool) {
		def, ok := defs[name]
		if !ok || def == nil {
			return nil, false
		}
		return def, true
	}
}
