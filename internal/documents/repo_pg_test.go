package documents

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"legilight-backend/internal/analysis"
)

func testRecord() Record {
	result := analysis.Result{
		DocumentSummary: analysis.Summary{
			DocumentType: "Employment Agreement",
			KeyParties:   []string{"TechCorp Inc.", "Jane Smith"},
			MainPurpose:  "Employment terms",
		},
		AIConfidence: 0.85,
	}
	result.Normalize()
	return Record{
		AnalysisID:   "analysis_abc",
		DocumentName: "contract.pdf",
		DocumentText: "This Agreement is between TechCorp Inc. and Jane Smith.",
		AnalysisType: "comprehensive",
		FileType:     "pdf",
		StorageKey:   "uploads/xyz_contract.pdf",
		Result:       result,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := testRecord()

	mock.ExpectExec("INSERT INTO document_analyses").
		WithArgs(
			rec.AnalysisID,
			rec.DocumentName,
			rec.DocumentText,
			rec.AnalysisType,
			sqlmock.AnyArg(), // file_type
			sqlmock.AnyArg(), // storage_key
			sqlmock.AnyArg(), // analysis_result
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDRoundTripsResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := testRecord()
	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	rows := sqlmock.NewRows([]string{
		"analysis_id", "document_name", "document_text", "analysis_type",
		"file_type", "storage_key", "analysis_result", "created_at",
	}).AddRow(
		rec.AnalysisID, rec.DocumentName, rec.DocumentText, rec.AnalysisType,
		rec.FileType, rec.StorageKey, resultJSON, rec.CreatedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM document_analyses").
		WithArgs(rec.AnalysisID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), rec.AnalysisID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Result.DocumentSummary.DocumentType != "Employment Agreement" {
		t.Fatalf("unexpected document type: %q", got.Result.DocumentSummary.DocumentType)
	}
	if got.Result.AIConfidence != 0.85 {
		t.Fatalf("unexpected confidence: %v", got.Result.AIConfidence)
	}
	if got.Result.KeyClauses == nil {
		t.Fatalf("expected normalized key clauses")
	}
	if got.StorageKey != rec.StorageKey {
		t.Fatalf("unexpected storage key: %q", got.StorageKey)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM document_analyses").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"analysis_id", "document_name", "document_text", "analysis_type",
			"file_type", "storage_key", "analysis_result", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"analysis_id", "document_name", "analysis_type", "created_at"}).
		AddRow("analysis_2", "b.pdf", "comprehensive", now).
		AddRow("analysis_1", "a.txt", "comprehensive", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT analysis_id, document_name, analysis_type, created_at").
		WithArgs(50).
		WillReturnRows(rows)

	out, err := repo.ListRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(out) != 2 || out[0].AnalysisID != "analysis_2" {
		t.Fatalf("unexpected summaries: %+v", out)
	}
}

func TestPGRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM document_analyses").
		WithArgs("analysis_abc").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM document_analyses").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), "analysis_abc")
	if err != nil || !deleted {
		t.Fatalf("expected deleted=true, got %v err=%v", deleted, err)
	}
	deleted, err = repo.Delete(context.Background(), "missing")
	if err != nil || deleted {
		t.Fatalf("expected deleted=false, got %v err=%v", deleted, err)
	}
}
