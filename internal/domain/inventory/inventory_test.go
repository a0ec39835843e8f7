package inventory

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInventory_AddAccumulates(t *testing.T) {
	inv := New()

	inv.Add("apple", 3, nil)
	inv.Add("apple", 4, nil)

	qty, err := inv.Quantity("apple")
	require.NoError(t, err)
	require.Equal(t, 7, qty)
}

func TestInventory_AddEmptyIdentifierIgnored(t *testing.T) {
	inv := New()

	inv.Add("", 10, nil)

	require.Equal(t, 0, inv.Len())
}

func TestInventory_AddDeletesNonPositiveEntries(t *testing.T) {
	tests := []struct {
		name string
		ops  func(inv *Inventory)
	}{
		{
			name: "negative quantity on first add",
			ops: func(inv *Inventory) {
				inv.Add("banana", -2, nil)
			},
		},
		{
			name: "accumulated down to zero",
			ops: func(inv *Inventory) {
				inv.Add("banana", 5, nil)
				inv.Add("banana", -5, nil)
			},
		},
		{
			name: "accumulated below zero",
			ops: func(inv *Inventory) {
				inv.Add("banana", 5, nil)
				inv.Add("banana", -9, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := New()
			tt.ops(inv)

			_, err := inv.Quantity("banana")
			require.ErrorIs(t, err, ErrNotFound)
			require.Equal(t, 0, inv.Len())
		})
	}
}

func TestInventory_Remove(t *testing.T) {
	tests := []struct {
		name      string
		initial   int
		remove    int
		wantQty   int
		wantFound bool
	}{
		{name: "partial removal keeps entry", initial: 10, remove: 3, wantQty: 7, wantFound: true},
		{name: "removal to zero deletes entry", initial: 4, remove: 4, wantFound: false},
		{name: "removal below zero deletes entry", initial: 4, remove: 9, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := New()
			inv.Add("apple", tt.initial, nil)

			inv.Remove("apple", tt.remove)

			qty, err := inv.Quantity("apple")
			if tt.wantFound {
				require.NoError(t, err)
				require.Equal(t, tt.wantQty, qty)
			} else {
				require.ErrorIs(t, err, ErrNotFound)
			}
		})
	}
}

func TestInventory_RemoveUnknownItemIsNoOp(t *testing.T) {
	inv := New()
	inv.Add("apple", 10, nil)

	inv.Remove("orange", 1)

	qty, err := inv.Quantity("apple")
	require.NoError(t, err)
	require.Equal(t, 10, qty)
	require.Equal(t, 1, inv.Len())
}

func TestInventory_QuantityUnknownItem(t *testing.T) {
	inv := New()

	_, err := inv.Quantity("ghost")

	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))
	require.Contains(t, err.Error(), "ghost")
}

func TestInventory_LowStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     map[string]int
		threshold int
		want      []string
	}{
		{
			name:      "strictly below threshold only",
			stock:     map[string]int{"apple": 2, "banana": 10},
			threshold: 5,
			want:      []string{"apple"},
		},
		{
			name:      "at threshold is not low",
			stock:     map[string]int{"apple": 5, "banana": 4},
			threshold: 5,
			want:      []string{"banana"},
		},
		{
			name:      "sorted output",
			stock:     map[string]int{"pear": 1, "apple": 1, "mango": 1},
			threshold: 5,
			want:      []string{"apple", "mango", "pear"},
		},
		{
			name:      "empty inventory",
			stock:     map[string]int{},
			threshold: 5,
			want:      []string{},
		},
		{
			name:      "zero threshold excludes everything positive",
			stock:     map[string]int{"apple": 1},
			threshold: 0,
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := New()
			inv.Replace(tt.stock)

			require.Equal(t, tt.want, inv.LowStock(tt.threshold))
		})
	}
}

func TestInventory_Report(t *testing.T) {
	inv := New()
	inv.Replace(map[string]int{"banana": 8, "apple": 7})

	var buf bytes.Buffer
	require.NoError(t, inv.Report(&buf))

	require.Equal(t, "Items Report\napple -> 7\nbanana -> 8\n", buf.String())
}

func TestInventory_ReportEmpty(t *testing.T) {
	inv := New()

	var buf bytes.Buffer
	require.NoError(t, inv.Report(&buf))

	require.Equal(t, "Items Report\n", buf.String())
}

func TestInventory_SnapshotIsACopy(t *testing.T) {
	inv := New()
	inv.Add("apple", 10, nil)

	snap := inv.Snapshot()
	snap["apple"] = 999

	qty, err := inv.Quantity("apple")
	require.NoError(t, err)
	require.Equal(t, 10, qty)
}

func TestInventory_ReplaceIsWholesale(t *testing.T) {
	inv := New()
	inv.Add("apple", 10, nil)
	inv.Add("pear", 3, nil)

	data := map[string]int{"banana": 2}
	inv.Replace(data)

	_, err := inv.Quantity("apple")
	require.ErrorIs(t, err, ErrNotFound)
	qty, err := inv.Quantity("banana")
	require.NoError(t, err)
	require.Equal(t, 2, qty)

	// the caller keeps ownership of its map
	data["banana"] = 999
	qty, err = inv.Quantity("banana")
	require.NoError(t, err)
	require.Equal(t, 2, qty)
}

func TestInventory_Scenario(t *testing.T) {
	inv := New()

	inv.Add("apple", 10, nil)
	inv.Add("banana", -2, nil)
	inv.Remove("apple", 3)
	inv.Remove("orange", 1)

	qty, err := inv.Quantity("apple")
	require.NoError(t, err)
	require.Equal(t, 7, qty)

	_, err = inv.Quantity("banana")
	require.ErrorIs(t, err, ErrNotFound)

	for _, item := range inv.LowStock(DefaultLowStockThreshold) {
		got, err := inv.Quantity(item)
		require.NoError(t, err)
		require.Less(t, got, DefaultLowStockThreshold)
	}
}
