package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data map[string]int
	}{
		{name: "empty mapping", data: map[string]int{}},
		{name: "single item", data: map[string]int{"apple": 7}},
		{
			name: "mixed signs",
			data: map[string]int{"apple": 7, "banana": -2, "pear": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "inventory.json")
			store := New()

			require.NoError(t, store.Save(ctx, path, tt.data))

			got, err := store.Load(ctx, path)
			require.NoError(t, err)
			require.Equal(t, tt.data, got)
		})
	}
}

func TestStore_SaveNilMapLoadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inventory.json")
	store := New()

	require.NoError(t, store.Save(ctx, path, nil))

	got, err := store.Load(ctx, path)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inventory.json")
	store := New()

	require.NoError(t, store.Save(ctx, path, map[string]int{"apple": 1, "pear": 2}))
	require.NoError(t, store.Save(ctx, path, map[string]int{"banana": 3}))

	got, err := store.Load(ctx, path)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"banana": 3}, got)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := New()

	_, err := store.Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_LoadRejectsBadContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: `{"apple": `},
		{name: "json null", content: `null`},
		{name: "json array", content: `["apple"]`},
		{name: "non-integer quantity", content: `{"apple": 1.5}`},
		{name: "string quantity", content: `{"apple": "ten"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "inventory.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := New().Load(context.Background(), path)
			require.Error(t, err)
		})
	}
}

func TestStore_SaveUnwritablePath(t *testing.T) {
	store := New()
	path := filepath.Join(t.TempDir(), "missing-dir", "inventory.json")

	err := store.Save(context.Background(), path, map[string]int{"apple": 1})

	require.Error(t, err)
}
