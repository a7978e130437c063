package documents

import (
	"time"

	"legilight-backend/internal/analysis"
)

// Record is a persisted document analysis.
type Record struct {
	AnalysisID   string
	DocumentName string
	DocumentText string // stored preview, truncated to storedTextLimit
	AnalysisType string
	FileType     string
	StorageKey   string // original upload in the object store, if archived
	Result       analysis.Result
	CreatedAt    time.Time
}

// Summary is the list-view projection of a Record.
type Summary struct {
	AnalysisID   string    `json:"analysis_id"`
	DocumentName string    `json:"document_name"`
	AnalysisType string    `json:"analysis_type"`
	CreatedAt    time.Time `json:"created_at"`
}
