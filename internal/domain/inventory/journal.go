package inventory

import (
	"fmt"
	"time"
)

// Journal is a caller-owned ordered list of human-readable messages
// recording add operations. The zero value is ready to use; a nil
// Journal discards records.
type Journal struct {
	entries []string
}

// Record appends msg to the journal prefixed with the current time.
func (j *Journal) Record(msg string) {
	if j == nil {
		return
	}
	j.entries = append(j.entries, fmt.Sprintf("%s: %s", time.Now().Format(time.RFC3339), msg))
}

// Entries returns a copy of the recorded messages in order.
func (j *Journal) Entries() []string {
	if j == nil {
		return nil
	}
	return append([]string(nil), j.entries...)
}

func (j *Journal) Len() int {
	if j == nil {
		return 0
	}
	return len(j.entries)
}
