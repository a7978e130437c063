package analysis

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

var (
	//go:embed prompts/analyze.txt
	analyzeTemplate string
	//go:embed prompts/question.txt
	questionTemplate string
)

// SummaryContext carries prior-analysis data used to ground a follow-up
// question. It is read-only; the prior result is never mutated.
type SummaryContext struct {
	DocumentSummary Summary
}

// BuildAnalysisPrompt renders the comprehensive-analysis prompt. The template
// enumerates the exact output schema so the optimistic parse path can succeed.
func BuildAnalysisPrompt(documentText, documentName string) string {
	if strings.TrimSpace(documentName) == "" {
		documentName = "Untitled Document"
	}
	replacer := strings.NewReplacer(
		"{{DOCUMENT_NAME}}", documentName,
		"{{DOCUMENT_TEXT}}", documentText,
	)
	return replacer.Replace(analyzeTemplate)
}

// BuildQuestionPrompt renders the question-answering prompt, optionally
// including a serialized prior-analysis summary as grounding context.
func BuildQuestionPrompt(documentText, question string, context *SummaryContext) string {
	contextBlock := ""
	if context != nil {
		serialized, err := json.MarshalIndent(context.DocumentSummary, "", "  ")
		if err == nil {
			contextBlock = fmt.Sprintf("Previous analysis context: %s", serialized)
		}
	}
	replacer := strings.NewReplacer(
		"{{DOCUMENT_TEXT}}", documentText,
		"{{CONTEXT}}", contextBlock,
		"{{QUESTION}}", question,
	)
	return replacer.Replace(questionTemplate)
}
