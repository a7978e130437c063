package documents

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"legilight-backend/internal/analysis"
	"legilight-backend/internal/extract"
	"legilight-backend/internal/shared/storage/object"
	"legilight-backend/internal/shared/telemetry"
)

const (
	minTextChars = 10
	maxTextChars = 100000

	// Stored document text is truncated; the full original upload lives in
	// the object store when one is configured.
	storedTextLimit = 1000

	minQuestionChars = 5
	maxQuestionChars = 500
)

var analysisTypes = map[string]struct{}{
	"comprehensive":     {},
	"risk_assessment":   {},
	"clause_extraction": {},
}

// Service contains business logic for document analyses.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	Analyzer *analysis.Service
}

// Ready reports whether the underlying model client is configured.
func (s *Service) Ready() bool {
	return s.Analyzer != nil && s.Analyzer.Ready()
}

// AnalyzeText runs the analysis pipeline over already-extracted text and
// persists the outcome. Returns the stored record and the total wall-clock
// seconds for the operation.
func (s *Service) AnalyzeText(ctx context.Context, documentText, documentName, analysisType string) (Record, float64, error) {
	documentText = strings.TrimSpace(documentText)
	if err := validateTextBounds(documentText); err != nil {
		return Record{}, 0, err
	}
	analysisType, err := normalizeAnalysisType(analysisType)
	if err != nil {
		return Record{}, 0, err
	}
	if strings.TrimSpace(documentName) == "" {
		documentName = "Untitled Document"
	}

	result, totalSeconds := s.Analyzer.Analyze(ctx, documentText, documentName)

	rec := Record{
		AnalysisID:   newAnalysisID(),
		DocumentName: documentName,
		DocumentText: truncateStoredText(documentText),
		AnalysisType: analysisType,
		Result:       result,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, 0, fmt.Errorf("store analysis record: %w", err)
	}
	return rec, totalSeconds, nil
}

// AnalyzeUpload extracts text from an uploaded file, archives the original
// when an object store is configured, and runs the analysis pipeline.
func (s *Service) AnalyzeUpload(ctx context.Context, fileName string, data []byte, analysisType string) (Record, float64, error) {
	format, ok := extract.FormatFromFilename(fileName)
	if !ok {
		return Record{}, 0, fmt.Errorf("%w: %q (supported: .txt, .docx, .pdf)", extract.ErrUnsupportedFormat, fileName)
	}

	documentText, err := extract.ExtractText(data, format)
	if err != nil {
		return Record{}, 0, err
	}
	if err := validateTextBounds(documentText); err != nil {
		return Record{}, 0, err
	}
	analysisType, err = normalizeAnalysisType(analysisType)
	if err != nil {
		return Record{}, 0, err
	}

	storageKey := s.archiveOriginal(ctx, fileName, data)

	result, totalSeconds := s.Analyzer.Analyze(ctx, documentText, fileName)

	rec := Record{
		AnalysisID:   newAnalysisID(),
		DocumentName: fileName,
		DocumentText: truncateStoredText(documentText),
		AnalysisType: analysisType,
		FileType:     string(format),
		StorageKey:   storageKey,
		Result:       result,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, 0, fmt.Errorf("store analysis record: %w", err)
	}
	return rec, totalSeconds, nil
}

// Ask answers a follow-up question against a stored analysis, grounding the
// prompt on the prior summary. The stored record is read, never mutated.
func (s *Service) Ask(ctx context.Context, analysisID, question string) (analysis.QuestionAnswer, error) {
	question = strings.TrimSpace(question)
	if len(question) < minQuestionChars || len(question) > maxQuestionChars {
		return analysis.QuestionAnswer{}, fmt.Errorf("%w: question must be between %d and %d characters", ErrInvalidInput, minQuestionChars, maxQuestionChars)
	}

	rec, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return analysis.QuestionAnswer{}, err
	}

	prior := &analysis.SummaryContext{DocumentSummary: rec.Result.DocumentSummary}
	return s.Analyzer.AnswerQuestion(ctx, rec.DocumentText, question, prior), nil
}

// List returns recent record summaries, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]Summary, error) {
	return s.Repo.ListRecent(ctx, limit)
}

// Delete removes a stored record.
func (s *Service) Delete(ctx context.Context, analysisID string) error {
	deleted, err := s.Repo.Delete(ctx, analysisID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// archiveOriginal saves the raw upload best-effort; analysis proceeds even
// when archiving fails.
func (s *Service) archiveOriginal(ctx context.Context, fileName string, data []byte) string {
	if s.Store == nil {
		return ""
	}
	key, _, _, err := s.Store.Save(ctx, "uploads", fileName, bytes.NewReader(data))
	if err != nil {
		telemetry.Error("documents.archive_failed", map[string]any{
			"file_name": fileName,
			"err":       err.Error(),
		})
		return ""
	}
	return key
}

func validateTextBounds(text string) error {
	if len(text) < minTextChars {
		return fmt.Errorf("%w: document text too short (minimum %d characters)", ErrInvalidInput, minTextChars)
	}
	if len(text) > maxTextChars {
		return fmt.Errorf("%w: document text too long (maximum %d characters)", ErrInvalidInput, maxTextChars)
	}
	return nil
}

func normalizeAnalysisType(analysisType string) (string, error) {
	analysisType = strings.TrimSpace(analysisType)
	if analysisType == "" {
		return "comprehensive", nil
	}
	if _, ok := analysisTypes[analysisType]; !ok {
		return "", fmt.Errorf("%w: unknown analysis type %q", ErrInvalidInput, analysisType)
	}
	return analysisType, nil
}

func truncateStoredText(text string) string {
	if len(text) <= storedTextLimit {
		return text
	}
	return text[:storedTextLimit] + "..."
}

func newAnalysisID() string {
	return "analysis_" + uuid.NewString()
}
