// Package ports defines the interfaces (contracts) that adapters must implement.
// The conversion core never touches disk; persistence and file watching
// live behind these boundaries.
package ports

import "time"

// History persists completed conversions so they can be listed later.
// Writes are transactional: a crash mid-write must not corrupt previously
// recorded entries.
type History interface {
	// Record appends an entry. The store may drop its oldest entries to
	// stay within its retention limit.
	Record(entry HistoryEntry) error

	// Recent returns up to limit entries, newest first. A limit <= 0
	// returns every stored entry.
	Recent(limit int) ([]HistoryEntry, error)

	// Clear removes every entry. Idempotent.
	Clear() error

	// Close releases the underlying store.
	Close() error
}

// HistoryEntry is one recorded conversion.
type HistoryEntry struct {
	ID      uint64    `json:"id"`
	At      time.Time `json:"at"`
	Args    []string  `json:"args"`
	Action  string    `json:"action"`  // "convert" or "sweep"
	Input   string    `json:"input"`   // rendered input, e.g. "100 celsius"
	Result  string    `json:"result"`  // first rendered result, e.g. "212 fahrenheit"
	Results int       `json:"results"` // number of converted units
}
