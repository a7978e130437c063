package analysis

import (
	"context"
	"time"

	"legilight-backend/internal/shared/metrics"
	"legilight-backend/internal/shared/telemetry"
)

// Service composes prompt building, model invocation, and response
// resolution. It never fails outward: both operations always return a
// complete, well-typed value.
type Service struct {
	Gateway  *Gateway
	Provider string
	Model    string
}

// Ready reports whether a real model client is configured. Callers should
// surface a service-unavailable condition when it is not.
func (s *Service) Ready() bool {
	return s.Gateway != nil && s.Gateway.Available()
}

// Analyze runs the full pipeline for one document. The returned Result
// carries the model-call latency measured by the gateway; totalSeconds is
// the wall-clock time for the whole sequence including prompt construction
// and parsing.
func (s *Service) Analyze(ctx context.Context, documentText, documentName string) (Result, float64) {
	start := time.Now()
	metrics.IncAnalysisStarted()

	prompt := BuildAnalysisPrompt(documentText, documentName)
	resp, err := s.Gateway.Invoke(ctx, prompt)
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.model_call_failed", map[string]any{
			"document_name": documentName,
			"provider":      s.Provider,
			"model":         s.Model,
			"err":           err.Error(),
		})
		return ErrorResult(err.Error()), time.Since(start).Seconds()
	}

	result, resolution := ResolveAnalysis(resp.Text, documentText, resp.Elapsed.Seconds())
	totalSeconds := time.Since(start).Seconds()

	if resolution == ResolutionDegraded {
		metrics.IncAnalysisFallback()
	} else {
		metrics.IncAnalysisCompleted()
	}
	metrics.ObserveAnalysisDurationMs(totalSeconds * 1000)
	telemetry.Info("analysis.complete", map[string]any{
		"document_name": documentName,
		"provider":      s.Provider,
		"model":         s.Model,
		"resolution":    string(resolution),
		"model_seconds": resp.Elapsed.Seconds(),
		"total_seconds": totalSeconds,
		"ai_confidence": result.AIConfidence,
	})
	return result, totalSeconds
}

// AnswerQuestion answers a follow-up question about a previously analyzed
// document, optionally grounded on the prior analysis summary. Gateway
// failures are converted into an error-carrying answer.
func (s *Service) AnswerQuestion(ctx context.Context, documentText, question string, prior *SummaryContext) QuestionAnswer {
	prompt := BuildQuestionPrompt(documentText, question, prior)
	resp, err := s.Gateway.Invoke(ctx, prompt)
	if err != nil {
		telemetry.Error("question.model_call_failed", map[string]any{
			"provider": s.Provider,
			"model":    s.Model,
			"err":      err.Error(),
		})
		return QuestionAnswer{
			Answer:            "Error processing question: " + err.Error(),
			Confidence:        0.0,
			RelevantClauses:   []string{},
			AdditionalContext: "Error occurred during processing",
		}
	}
	return ResolveAnswer(resp.Text)
}
