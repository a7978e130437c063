package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Fallback confidence levels. The optimistic parse path keeps whatever the
// model reported; every degraded path pins a fixed value.
const (
	confidencePatternFallback = 0.4
	confidenceNoJSONAnswer    = 0.7
	confidenceBadJSONAnswer   = 0.6
)

// Resolution tags which path produced a Result.
type Resolution string

const (
	ResolutionParsed   Resolution = "parsed"
	ResolutionDegraded Resolution = "degraded"
	ResolutionError    Resolution = "error"
)

// ResolveAnalysis turns the model's raw reply into a Result. It is total:
// any input, including an empty string, yields a well-formed value. The
// staged strategy is strict JSON parse, then deterministic pattern matching
// over the source document, with elapsed seconds stamped on the result.
func ResolveAnalysis(rawText, sourceText string, elapsedSeconds float64) (Result, Resolution) {
	if body, ok := sliceJSONObject(rawText); ok {
		var result Result
		if err := json.Unmarshal([]byte(body), &result); err == nil {
			result.ProcessingTimeSeconds = elapsedSeconds
			result.Normalize()
			return result, ResolutionParsed
		}
	}
	return fallbackAnalysis(sourceText, elapsedSeconds), ResolutionDegraded
}

// ResolveAnswer turns the model's raw reply into a QuestionAnswer. Total:
// when no JSON can be recovered the raw text itself becomes the answer.
func ResolveAnswer(rawText string) QuestionAnswer {
	body, ok := sliceJSONObject(rawText)
	if !ok {
		return QuestionAnswer{
			Answer:            rawText,
			Confidence:        confidenceNoJSONAnswer,
			RelevantClauses:   []string{"Unable to extract specific clauses"},
			AdditionalContext: "Full AI response provided",
		}
	}
	var qa QuestionAnswer
	if err := json.Unmarshal([]byte(body), &qa); err != nil {
		return QuestionAnswer{
			Answer:            rawText,
			Confidence:        confidenceBadJSONAnswer,
			RelevantClauses:   []string{"JSON parsing failed"},
			AdditionalContext: "Raw AI response",
		}
	}
	qa.Normalize()
	return qa
}

// ErrorResult is the fixed value returned when the model call itself failed.
func ErrorResult(reason string) Result {
	result := Result{
		DocumentSummary: Summary{
			DocumentType:   "Analysis Error",
			KeyParties:     []string{},
			MainPurpose:    fmt.Sprintf("Error occurred: %s", reason),
			EffectiveDate:  "N/A",
			ExpirationDate: "N/A",
		},
		RiskAssessment: RiskAssessment{
			OverallRiskLevel: RiskUnknown,
		},
		AIConfidence:          0.0,
		ProcessingTimeSeconds: 0.0,
	}
	result.Normalize()
	return result
}

// sliceJSONObject returns the substring between the first '{' and the last
// '}' when both exist in order. Models wrap JSON in prose often enough that
// this heuristic pays for itself.
func sliceJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(raw, "}")
	if end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

func fallbackAnalysis(sourceText string, elapsedSeconds float64) Result {
	parties := scanParties(sourceText)
	dates := patternDates.FindAllString(sourceText, -1)
	monetary := patternMonetary.FindAllString(sourceText, -1)

	keyParties := parties
	if len(keyParties) == 0 {
		keyParties = []string{"Party 1", "Party 2"}
	}
	effectiveDate := "Not specified"
	if len(dates) > 0 {
		effectiveDate = dates[0]
	}
	if len(monetary) > 5 {
		monetary = monetary[:5]
	}

	yellowFlags := []string{"Document requires legal review"}
	if patternTermination.MatchString(sourceText) {
		yellowFlags = append(yellowFlags, "Termination or expiration language present - review notice periods")
	}

	result := Result{
		DocumentSummary: Summary{
			DocumentType:   "Legal Document",
			KeyParties:     keyParties,
			MainPurpose:    "Document analysis using pattern matching",
			EffectiveDate:  effectiveDate,
			ExpirationDate: "Not specified",
		},
		RiskAssessment: RiskAssessment{
			OverallRiskLevel: RiskMedium,
			RedFlags:         []string{"AI analysis unavailable - manual review recommended"},
			YellowFlags:      yellowFlags,
			GreenFlags:       []string{},
		},
		FinancialTerms: FinancialTerms{
			PaymentAmounts: monetary,
		},
		Obligations: Obligations{
			Party1: []string{"Pattern matching analysis - details limited"},
			Party2: []string{"Pattern matching analysis - details limited"},
		},
		KeyClauses: []KeyClause{
			{
				ClauseType:    "general",
				ClauseText:    "Pattern-based analysis performed",
				PlainLanguage: "AI analysis was unavailable, using basic pattern matching",
				Importance:    "Medium",
			},
		},
		AIConfidence:          confidencePatternFallback,
		ProcessingTimeSeconds: elapsedSeconds,
	}
	result.Normalize()
	return result
}

// scanParties collects party names from "between X and Y" phrasings, in
// document order, capped at two.
func scanParties(sourceText string) []string {
	matches := patternParties.FindAllStringSubmatch(sourceText, -1)
	var parties []string
	for _, match := range matches {
		for _, group := range match[1:] {
			if name := strings.TrimSpace(group); name != "" {
				parties = append(parties, name)
			}
			if len(parties) == 2 {
				return parties
			}
		}
	}
	return parties
}
