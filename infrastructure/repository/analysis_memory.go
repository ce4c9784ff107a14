package repository

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

// memoryAnalysisRepository mantém as últimas análises em memória quando não há banco
type memoryAnalysisRepository struct {
	mu       sync.RWMutex
	capacity int
	nextID   int64
	entries  []*domain.AnalysisEntry
}

func NewMemoryAnalysisRepository(capacity int) AnalysisRepository {
	if capacity <= 0 {
		capacity = maxAnalysisListing
	}

	return &memoryAnalysisRepository{
		capacity: capacity,
		entries:  make([]*domain.AnalysisEntry, 0, capacity),
	}
}

func (r *memoryAnalysisRepository) Save(_ context.Context, entry *domain.AnalysisEntry) (*domain.AnalysisEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	r.entries = append(r.entries, entry)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}

	return entry, nil
}

// ListRecent devolve as análises da mais recente para a mais antiga
func (r *memoryAnalysisRepository) ListRecent(_ context.Context, limit int) ([]*domain.AnalysisEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit = normalizeLimit(limit)
	if limit > len(r.entries) {
		limit = len(r.entries)
	}

	result := make([]*domain.AnalysisEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, r.entries[i])
	}

	return result, nil
}
