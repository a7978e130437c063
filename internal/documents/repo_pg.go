package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"legilight-backend/internal/analysis"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis record. The structured result is stored as JSONB.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO document_analyses (
    analysis_id,
    document_name,
    document_text,
    analysis_type,
    file_type,
    storage_key,
    analysis_result,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal analysis result: %w", err)
	}

	var fileType sql.NullString
	if rec.FileType != "" {
		fileType = sql.NullString{String: rec.FileType, Valid: true}
	}
	var storageKey sql.NullString
	if rec.StorageKey != "" {
		storageKey = sql.NullString{String: rec.StorageKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.AnalysisID,
		rec.DocumentName,
		rec.DocumentText,
		rec.AnalysisType,
		fileType,
		storageKey,
		resultJSON,
		rec.CreatedAt,
	)
	return err
}

// GetByID fetches an analysis record by its identifier.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Record, error) {
	const query = `
SELECT analysis_id, document_name, document_text, analysis_type, file_type, storage_key, analysis_result, created_at
FROM document_analyses
WHERE analysis_id = $1
LIMIT 1`
	var rec Record
	var fileType sql.NullString
	var storageKey sql.NullString
	var resultJSON []byte
	err := r.DB.QueryRowContext(ctx, query, analysisID).Scan(
		&rec.AnalysisID,
		&rec.DocumentName,
		&rec.DocumentText,
		&rec.AnalysisType,
		&fileType,
		&storageKey,
		&resultJSON,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if fileType.Valid {
		rec.FileType = fileType.String
	}
	if storageKey.Valid {
		rec.StorageKey = storageKey.String
	}
	if len(resultJSON) > 0 {
		var result analysis.Result
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return Record{}, fmt.Errorf("unmarshal analysis result: %w", err)
		}
		result.Normalize()
		rec.Result = result
	}
	return rec, nil
}

// ListRecent lists record summaries ordered newest-first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	const query = `
SELECT analysis_id, document_name, analysis_type, created_at
FROM document_analyses
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.AnalysisID, &s.DocumentName, &s.AnalysisType, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a record and reports whether it existed.
func (r *PGRepo) Delete(ctx context.Context, analysisID string) (bool, error) {
	const query = `DELETE FROM document_analyses WHERE analysis_id = $1`
	res, err := r.DB.ExecContext(ctx, query, analysisID)
	if err != nil {
		return false, err
	}
	deleted, _ := res.RowsAffected()
	return deleted > 0, nil
}

var _ Repo = (*PGRepo)(nil)
