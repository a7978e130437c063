package documents

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"legilight-backend/internal/analysis"
	"legilight-backend/internal/extract"
	"legilight-backend/internal/shared/storage/object"
)

type fakeLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeStore struct {
	savedName string
	saveErr   error
}

func (s *fakeStore) Save(ctx context.Context, prefix string, fileName string, r io.Reader) (string, int64, string, error) {
	if s.saveErr != nil {
		return "", 0, "", s.saveErr
	}
	s.savedName = fileName
	data, _ := io.ReadAll(r)
	return prefix + "/" + fileName, int64(len(data)), "text/plain", nil
}

func (s *fakeStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

var _ object.ObjectStore = (*fakeStore)(nil)

func newTestService(llmClient *fakeLLM) *Service {
	return &Service{
		Repo:  NewMemoryRepo(),
		Store: &fakeStore{},
		Analyzer: &analysis.Service{
			Gateway:  &analysis.Gateway{Client: llmClient},
			Provider: "gemini",
			Model:    "gemini-2.5-flash",
		},
	}
}

const modelReply = `{"document_summary":{"document_type":"Service Agreement","key_parties":["WebDesign LLC","StartupCo Inc."],"main_purpose":"Web development"},"ai_confidence":0.85}`

func TestAnalyzeTextStoresTruncatedRecord(t *testing.T) {
	svc := newTestService(&fakeLLM{reply: modelReply})
	longText := "This Agreement is between A and B. " + strings.Repeat("x", 2000)

	rec, totalSeconds, err := svc.AnalyzeText(context.Background(), longText, "big.txt", "")
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	if totalSeconds < 0 {
		t.Fatalf("negative total seconds")
	}
	if rec.AnalysisType != "comprehensive" {
		t.Fatalf("expected default analysis type, got %q", rec.AnalysisType)
	}
	if len(rec.DocumentText) != 1003 || !strings.HasSuffix(rec.DocumentText, "...") {
		t.Fatalf("expected 1000-char truncation with ellipsis, got len %d", len(rec.DocumentText))
	}

	stored, err := svc.Repo.GetByID(context.Background(), rec.AnalysisID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Result.DocumentSummary.DocumentType != "Service Agreement" {
		t.Fatalf("unexpected stored result: %+v", stored.Result.DocumentSummary)
	}
}

func TestAnalyzeTextValidation(t *testing.T) {
	svc := newTestService(&fakeLLM{reply: modelReply})
	ctx := context.Background()

	if _, _, err := svc.AnalyzeText(ctx, "short", "a.txt", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short text, got %v", err)
	}
	if _, _, err := svc.AnalyzeText(ctx, strings.Repeat("x", 100001), "a.txt", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for long text, got %v", err)
	}
	if _, _, err := svc.AnalyzeText(ctx, "a perfectly fine document", "a.txt", "astrology"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown analysis type, got %v", err)
	}
}

func TestAnalyzeTextDefaultsDocumentName(t *testing.T) {
	llmClient := &fakeLLM{reply: modelReply}
	svc := newTestService(llmClient)

	rec, _, err := svc.AnalyzeText(context.Background(), "a perfectly fine document", "  ", "risk_assessment")
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	if rec.DocumentName != "Untitled Document" {
		t.Fatalf("unexpected name: %q", rec.DocumentName)
	}
	if rec.AnalysisType != "risk_assessment" {
		t.Fatalf("unexpected type: %q", rec.AnalysisType)
	}
	if !strings.Contains(llmClient.lastPrompt, "Untitled Document") {
		t.Fatalf("expected default name in prompt")
	}
}

func TestAnalyzeUploadArchivesOriginal(t *testing.T) {
	svc := newTestService(&fakeLLM{reply: modelReply})
	store := svc.Store.(*fakeStore)

	data := []byte("This Service Agreement is between WebDesign LLC and StartupCo Inc.")
	rec, _, err := svc.AnalyzeUpload(context.Background(), "contract.txt", data, "")
	if err != nil {
		t.Fatalf("AnalyzeUpload: %v", err)
	}
	if rec.FileType != "txt" {
		t.Fatalf("unexpected file type: %q", rec.FileType)
	}
	if rec.StorageKey != "uploads/contract.txt" {
		t.Fatalf("unexpected storage key: %q", rec.StorageKey)
	}
	if store.savedName != "contract.txt" {
		t.Fatalf("expected original archived, got %q", store.savedName)
	}
}

func TestAnalyzeUploadProceedsWhenArchiveFails(t *testing.T) {
	svc := newTestService(&fakeLLM{reply: modelReply})
	svc.Store = &fakeStore{saveErr: errors.New("disk full")}

	data := []byte("This Service Agreement is between WebDesign LLC and StartupCo Inc.")
	rec, _, err := svc.AnalyzeUpload(context.Background(), "contract.txt", data, "")
	if err != nil {
		t.Fatalf("AnalyzeUpload: %v", err)
	}
	if rec.StorageKey != "" {
		t.Fatalf("expected empty storage key on archive failure, got %q", rec.StorageKey)
	}
}

func TestAnalyzeUploadRejectsUnsupportedExtension(t *testing.T) {
	svc := newTestService(&fakeLLM{reply: modelReply})

	if _, _, err := svc.AnalyzeUpload(context.Background(), "photo.png", []byte("data"), ""); !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, _, err := svc.AnalyzeUpload(context.Background(), "legacy.doc", []byte("data"), ""); !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat for .doc, got %v", err)
	}
}

func TestAskGroundsOnPriorSummary(t *testing.T) {
	llmClient := &fakeLLM{reply: modelReply}
	svc := newTestService(llmClient)

	rec, _, err := svc.AnalyzeText(context.Background(), "This Service Agreement is between WebDesign LLC and StartupCo Inc.", "svc.txt", "")
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	llmClient.reply = `{"answer":"WebDesign LLC and StartupCo Inc.","confidence":0.9,"relevant_clauses":[],"additional_context":""}`
	qa, err := svc.Ask(context.Background(), rec.AnalysisID, "Who are the parties?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if qa.Answer != "WebDesign LLC and StartupCo Inc." {
		t.Fatalf("unexpected answer: %q", qa.Answer)
	}
	if !strings.Contains(llmClient.lastPrompt, "Previous analysis context") {
		t.Fatalf("expected prior summary in question prompt")
	}

	// The stored record must be unchanged by the question.
	after, err := svc.Repo.GetByID(context.Background(), rec.AnalysisID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if after.Result.DocumentSummary.DocumentType != "Service Agreement" {
		t.Fatalf("stored record mutated: %+v", after.Result.DocumentSummary)
	}
}

func TestAskValidation(t *testing.T) {
	svc := newTestService(&fakeLLM{reply: modelReply})
	ctx := context.Background()

	if _, err := svc.Ask(ctx, "any", "hi"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short question, got %v", err)
	}
	if _, err := svc.Ask(ctx, "any", strings.Repeat("q", 501)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for long question, got %v", err)
	}
	if _, err := svc.Ask(ctx, "missing", "Who are the parties?"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMissingRecord(t *testing.T) {
	svc := newTestService(&fakeLLM{reply: modelReply})
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
