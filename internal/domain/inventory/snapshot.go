package inventory

import (
	"context"
)

// DefaultSnapshotPath is where snapshots land when the caller does not
// pick a path.
const DefaultSnapshotPath = "inventory.json"

// SnapshotStore persists and restores the whole mapping at once. Load
// never merges; the returned map replaces the store's state wholesale.
type SnapshotStore interface {
	Load(ctx context.Context, path string) (map[string]int, error)
	Save(ctx context.Context, path string, data map[string]int) error
}
