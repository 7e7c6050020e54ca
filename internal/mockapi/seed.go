package mockapi

import (
	"context"
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/google/uuid"
)

// SeedFile loads a fixture of collections into backing storage. The file
// maps collection names to record lists and may be YAML or JSON (YAML is a
// superset here). Records without an id get one assigned.
func SeedFile(ctx context.Context, store RecordStore, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("mockapi: seed: %w", err)
	}
	return Seed(ctx, store, data)
}

func Seed(ctx context.Context, store RecordStore, data []byte) error {
	var collections map[string][]Record
	if err := yaml.Unmarshal(data, &collections); err != nil {
		return fmt.Errorf("mockapi: seed: %w", err)
	}

	for name, docs := range collections {
		for i, doc := range docs {
			id := stringify(doc["id"])
			if id == "" {
				id = uuid.NewString()
			}
			if _, err := store.Insert(ctx, name, id, doc); err != nil {
				return fmt.Errorf("mockapi: seed %s[%d]: %w", name, i, err)
			}
		}
	}
	return nil
}
