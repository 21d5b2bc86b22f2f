package clients

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Store abstracts client persistence. The daemon backs it with SQLite; the
// offline TUI and the tests use the in-memory implementation.
type Store interface {
	List(ctx context.Context, page, pageSize int) ([]Record, int, error)
	Get(ctx context.Context, id uuid.UUID) (Record, error)
	Create(ctx context.Context, rec Record) (Record, error)
	Update(ctx context.Context, rec Record) (Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryStore implements Store with an ordered in-memory slice.
// No database required; list order is insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns the requested page (1-based) plus the total record count.
func (s *MemoryStore) List(_ context.Context, page, pageSize int) ([]Record, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	total := len(s.records)
	start := (page - 1) * pageSize
	if start >= total {
		return []Record{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return append([]Record(nil), s.records[start:end]...), total, nil
}

// Get returns the record with the given id.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, NotFoundError{ID: id}
}

// Create appends a record, assigning an id when the caller left it nil.
func (s *MemoryStore) Create(_ context.Context, rec Record) (Record, error) {
	if rec.Name == "" {
		return Record{}, ValidationError{Reason: "name must not be empty"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	s.records = append(s.records, rec)
	return rec, nil
}

// Update replaces the stored record wholesale.
func (s *MemoryStore) Update(_ context.Context, rec Record) (Record, error) {
	if rec.Name == "" {
		return Record{}, ValidationError{Reason: "name must not be empty"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == rec.ID {
			s.records[i] = rec
			return rec, nil
		}
	}
	return Record{}, NotFoundError{ID: rec.ID}
}

// Delete removes the record with the given id.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return NotFoundError{ID: id}
}
