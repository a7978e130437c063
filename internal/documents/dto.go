package documents

import "legilight-backend/internal/analysis"

type analyzeDocumentRequest struct {
	DocumentText string `json:"document_text"`
	DocumentName string `json:"document_name"`
	AnalysisType string `json:"analysis_type"`
}

type questionRequest struct {
	DocumentID string `json:"document_id"`
	Question   string `json:"question"`
}

type analysisResponse struct {
	Success         bool                    `json:"success"`
	AnalysisID      string                  `json:"analysis_id"`
	DocumentSummary analysis.Summary        `json:"document_summary"`
	RiskAssessment  analysis.RiskAssessment `json:"risk_assessment"`
	FinancialTerms  analysis.FinancialTerms `json:"financial_terms"`
	Obligations     analysis.Obligations    `json:"obligations"`
	KeyClauses      []analysis.KeyClause    `json:"key_clauses"`
	ProcessingTime  float64                 `json:"processing_time"`
	AIConfidence    float64                 `json:"ai_confidence"`
}

type questionResponse struct {
	Success         bool     `json:"success"`
	Answer          string   `json:"answer"`
	Confidence      float64  `json:"confidence"`
	RelevantClauses []string `json:"relevant_clauses"`
}

func toAnalysisResponse(rec Record, totalSeconds float64) analysisResponse {
	return analysisResponse{
		Success:         true,
		AnalysisID:      rec.AnalysisID,
		DocumentSummary: rec.Result.DocumentSummary,
		RiskAssessment:  rec.Result.RiskAssessment,
		FinancialTerms:  rec.Result.FinancialTerms,
		Obligations:     rec.Result.Obligations,
		KeyClauses:      rec.Result.KeyClauses,
		ProcessingTime:  totalSeconds,
		AIConfidence:    rec.Result.AIConfidence,
	}
}

func toQuestionResponse(qa analysis.QuestionAnswer) questionResponse {
	return questionResponse{
		Success:         true,
		Answer:          qa.Answer,
		Confidence:      qa.Confidence,
		RelevantClauses: qa.RelevantClauses,
	}
}
