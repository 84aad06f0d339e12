package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sanjaykm/wellness-agent/internal/domain"
)

// HistoryStore is a simple in-memory implementation of domain.HistoryStore.
// It is NOT persistent and is only suitable for development / tests.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.HistoryRecord
	now     func() time.Time
}

// NewHistoryStore creates a new in-memory HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		now: time.Now,
	}
}

func (s *HistoryStore) LoadHistory(ctx context.Context) ([]domain.HistoryRecord, domain.LoadOutcome) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return []domain.HistoryRecord{}, domain.LoadAbsent
	}
	out := make([]domain.HistoryRecord, len(s.records))
	copy(out, s.records)
	return out, domain.LoadOK
}

func (s *HistoryStore) AppendRecord(ctx context.Context, state *domain.CheckInState) (domain.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := domain.NewHistoryRecord(state, s.now())
	s.records = append(s.records, record)
	return record, nil
}
