package inventory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJournal_RecordsAdds(t *testing.T) {
	inv := New()
	journal := &Journal{}

	inv.Add("apple", 10, journal)
	inv.Add("banana", -2, journal)

	entries := journal.Entries()
	require.Len(t, entries, 2)
	require.True(t, strings.HasSuffix(entries[0], "Added 10 of apple"), entries[0])
	require.True(t, strings.HasSuffix(entries[1], "Added -2 of banana"), entries[1])
	// each entry carries a timestamp prefix
	for _, e := range entries {
		require.Contains(t, e, ": ")
	}
}

func TestJournal_EmptyIdentifierNotRecorded(t *testing.T) {
	inv := New()
	journal := &Journal{}

	inv.Add("", 10, journal)

	require.Equal(t, 0, journal.Len())
}

func TestJournal_NilIsSafe(t *testing.T) {
	var journal *Journal

	journal.Record("ignored")

	require.Equal(t, 0, journal.Len())
	require.Nil(t, journal.Entries())
}

func TestJournal_EntriesReturnsCopy(t *testing.T) {
	journal := &Journal{}
	journal.Record("first")

	entries := journal.Entries()
	entries[0] = "mutated"

	require.NotEqual(t, "mutated", journal.Entries()[0])
}
