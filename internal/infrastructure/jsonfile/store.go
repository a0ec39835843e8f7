package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Store reads and writes inventory snapshots as a single flat JSON object
// mapping item identifiers to quantities. No metadata, no versioning.
type Store struct{}

func New() *Store { return &Store{} }

// Load reads the snapshot at path. The file must hold a JSON object with
// integer values; anything else is surfaced as an error.
func (s *Store) Load(ctx context.Context, path string) (map[string]int, error) {
	_ = ctx

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read %s: %w", path, err)
	}

	var data map[string]int
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("jsonfile: decode %s: %w", path, err)
	}
	if data == nil {
		// json "null" unmarshals into a nil map without error.
		return nil, fmt.Errorf("jsonfile: decode %s: not a JSON object", path)
	}
	return data, nil
}

// Save writes the whole mapping to path, replacing any previous file.
// The write is not atomic.
func (s *Store) Save(ctx context.Context, path string, data map[string]int) error {
	_ = ctx

	if data == nil {
		// a nil map would serialize to "null", which Load rejects
		data = map[string]int{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("jsonfile: encode: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("jsonfile: write %s: %w", path, err)
	}
	return nil
}
