package inventory

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// DefaultLowStockThreshold is the threshold callers use when they have no
// opinion of their own.
const DefaultLowStockThreshold = 5

var ErrNotFound = errors.New("inventory: item not found")

// Inventory owns the item-to-quantity mapping. It is not safe for
// concurrent use.
type Inventory struct {
	stock map[string]int
}

func New() *Inventory {
	return &Inventory{stock: make(map[string]int)}
}

// Add adjusts the stock of item by qty, creating the entry when absent.
// An empty identifier is ignored. qty may be negative; an entry left at
// zero or below is deleted. When journal is non-nil the operation is
// recorded on it.
func (inv *Inventory) Add(item string, qty int, journal *Journal) {
	if item == "" {
		return
	}
	inv.stock[item] += qty
	if inv.stock[item] <= 0 {
		delete(inv.stock, item)
	}
	journal.Record(fmt.Sprintf("Added %d of %s", qty, item))
}

// Remove deducts qty from item. Removing an unknown item is a no-op.
// An entry whose quantity drops to zero or below is deleted entirely.
func (inv *Inventory) Remove(item string, qty int) {
	if _, ok := inv.stock[item]; !ok {
		return
	}
	inv.stock[item] -= qty
	if inv.stock[item] <= 0 {
		delete(inv.stock, item)
	}
}

// Quantity reports the stock on hand for item.
func (inv *Inventory) Quantity(item string) (int, error) {
	qty, ok := inv.stock[item]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, item)
	}
	return qty, nil
}

// LowStock lists the items whose quantity is strictly below threshold,
// sorted by identifier.
func (inv *Inventory) LowStock(threshold int) []string {
	low := make([]string, 0)
	for item, qty := range inv.stock {
		if qty < threshold {
			low = append(low, item)
		}
	}
	sort.Strings(low)
	return low
}

// Report writes a human-readable listing of every item and its quantity,
// one line per item, sorted by identifier.
func (inv *Inventory) Report(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Items Report"); err != nil {
		return err
	}
	for _, item := range inv.items() {
		if _, err := fmt.Fprintf(w, "%s -> %d\n", item, inv.stock[item]); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns a copy of the mapping, suitable for persistence.
func (inv *Inventory) Snapshot() map[string]int {
	out := make(map[string]int, len(inv.stock))
	for item, qty := range inv.stock {
		out[item] = qty
	}
	return out
}

// Replace swaps the whole mapping for data. The map is copied, so the
// caller keeps ownership of its argument.
func (inv *Inventory) Replace(data map[string]int) {
	stock := make(map[string]int, len(data))
	for item, qty := range data {
		stock[item] = qty
	}
	inv.stock = stock
}

// Len reports the number of distinct items in stock.
func (inv *Inventory) Len() int {
	return len(inv.stock)
}

func (inv *Inventory) items() []string {
	items := make([]string, 0, len(inv.stock))
	for item := range inv.stock {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
