package documents

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no
// database is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Record // analysisID -> record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Record),
	}
}

// Create stores a record keyed by its analysis ID.
func (r *MemoryRepo) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.AnalysisID] = rec
	return nil
}

// GetByID returns a record by analysis ID.
func (r *MemoryRepo) GetByID(ctx context.Context, analysisID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[analysisID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// ListRecent returns record summaries, newest first, honoring limit.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	r.mu.RLock()
	out := make([]Summary, 0, len(r.data))
	for _, rec := range r.data {
		out = append(out, Summary{
			AnalysisID:   rec.AnalysisID,
			DocumentName: rec.DocumentName,
			AnalysisType: rec.AnalysisType,
			CreatedAt:    rec.CreatedAt,
		})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete removes a record and reports whether it existed.
func (r *MemoryRepo) Delete(ctx context.Context, analysisID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[analysisID]; !ok {
		return false, nil
	}
	delete(r.data, analysisID)
	return true, nil
}

var _ Repo = (*MemoryRepo)(nil)
