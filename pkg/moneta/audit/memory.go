package audit

import (
	"sync"
)

// MemoryStore is an in-memory audit store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu      sync.RWMutex
	byOwner map[string][]Record
	closed  bool
}

// NewMemoryStore creates a new in-memory audit store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byOwner: make(map[string][]Record),
	}
}

// Append implements Store.
func (m *MemoryStore) Append(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.byOwner[rec.Owner] = append(m.byOwner[rec.Owner], rec)
	return nil
}

// List implements Store.
func (m *MemoryStore) List(owner string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	recs, ok := m.byOwner[owner]
	if !ok {
		return nil, nil
	}

	// Return a copy to prevent modification
	out := make([]Record, len(recs))
	copy(out, recs)
	return out, nil
}

// Purge implements Store.
func (m *MemoryStore) Purge(owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.byOwner, owner)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.byOwner = nil
	return nil
}

// Len returns the total number of records across all owners.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, recs := range m.byOwner {
		count += len(recs)
	}
	return count
}
