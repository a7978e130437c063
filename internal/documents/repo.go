package documents

import "context"

// Repo defines persistence operations for analysis records.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, analysisID string) (Record, error)
	ListRecent(ctx context.Context, limit int) ([]Summary, error)
	Delete(ctx context.Context, analysisID string) (bool, error)
}
