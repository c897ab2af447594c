package store

import (
	"path/filepath"
	"sync"

	"bigsum/internal/domain"
)

const (
	historyFilename = "history.json"

	// MaxHistory bounds the number of records kept on disk; older ones are dropped.
	MaxHistory = 1000
)

// HistoryFileStore persists computed sums to disk.
type HistoryFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewHistoryFileStore returns a HistoryFileStore rooted at dir.
func NewHistoryFileStore(dir string) *HistoryFileStore {
	return &HistoryFileStore{dir: dir}
}

// Append adds record to the end of the history.
func (s *HistoryFileStore) Append(record domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, historyFilename)
	var records []domain.Record
	if err := readJSON(path, &records); err != nil {
		return err
	}
	records = append(records, record)
	if len(records) > MaxHistory {
		records = records[len(records)-MaxHistory:]
	}
	return writeJSON(path, records, 0o600)
}

// List returns the newest limit records, oldest first.
func (s *HistoryFileStore) List(limit int) ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, historyFilename)
	var records []domain.Record
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(records) {
		records = records[len(records)-limit:]
	}
	return records, nil
}

// Clear removes all records.
func (s *HistoryFileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, historyFilename), []domain.Record{}, 0o600)
}

// Compile-time assertion that HistoryFileStore implements domain.HistoryStore.
var _ domain.HistoryStore = (*HistoryFileStore)(nil)
