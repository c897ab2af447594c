package interfaces

import domaintypes "bigsum/internal/domain/types"

// HistoryStore persists past computations.
type HistoryStore interface {
	Append(record domaintypes.Record) error
	// List returns the newest limit records, oldest first. limit <= 0 returns all.
	List(limit int) ([]domaintypes.Record, error)
	Clear() error
}
