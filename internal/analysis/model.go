package analysis

// Risk levels reported in RiskAssessment.OverallRiskLevel.
const (
	RiskLow     = "Low"
	RiskMedium  = "Medium"
	RiskHigh    = "High"
	RiskUnknown = "Unknown"
)

// Summary describes the document at a glance.
type Summary struct {
	DocumentType   string   `json:"document_type"`
	KeyParties     []string `json:"key_parties"`
	MainPurpose    string   `json:"main_purpose"`
	EffectiveDate  string   `json:"effective_date"`
	ExpirationDate string   `json:"expiration_date"`
}

// RiskAssessment groups clauses by concern level.
type RiskAssessment struct {
	OverallRiskLevel string   `json:"overall_risk_level"`
	RedFlags         []string `json:"red_flags"`
	YellowFlags      []string `json:"yellow_flags"`
	GreenFlags       []string `json:"green_flags"`
}

// FinancialTerms collects monetary provisions.
type FinancialTerms struct {
	PaymentAmounts   []string `json:"payment_amounts"`
	PaymentSchedules []string `json:"payment_schedules"`
	Penalties        []string `json:"penalties"`
	Fees             []string `json:"fees"`
}

// Obligations lists what each party must do.
type Obligations struct {
	Party1 []string `json:"party_1_obligations"`
	Party2 []string `json:"party_2_obligations"`
	Mutual []string `json:"mutual_obligations"`
}

// KeyClause is a single notable clause with a plain-language explanation.
type KeyClause struct {
	ClauseType    string `json:"clause_type"`
	ClauseText    string `json:"clause_text"`
	PlainLanguage string `json:"plain_language"`
	Importance    string `json:"importance"`
}

// Result is the structured outcome of a document analysis. Every list field
// is always present, possibly empty; consumers never need nil checks.
type Result struct {
	DocumentSummary       Summary        `json:"document_summary"`
	RiskAssessment        RiskAssessment `json:"risk_assessment"`
	FinancialTerms        FinancialTerms `json:"financial_terms"`
	Obligations           Obligations    `json:"obligations"`
	KeyClauses            []KeyClause    `json:"key_clauses"`
	AIConfidence          float64        `json:"ai_confidence"`
	ProcessingTimeSeconds float64        `json:"processing_time"`
}

// QuestionAnswer is the structured outcome of a follow-up question.
type QuestionAnswer struct {
	Answer            string   `json:"answer"`
	Confidence        float64  `json:"confidence"`
	RelevantClauses   []string `json:"relevant_clauses"`
	AdditionalContext string   `json:"additional_context"`
}

// Normalize fills absent fields with their documented defaults so callers
// can rely on every list being non-nil and scalars being in range.
func (r *Result) Normalize() {
	if r.DocumentSummary.KeyParties == nil {
		r.DocumentSummary.KeyParties = []string{}
	}
	if r.RiskAssessment.OverallRiskLevel == "" {
		r.RiskAssessment.OverallRiskLevel = RiskUnknown
	}
	if r.RiskAssessment.RedFlags == nil {
		r.RiskAssessment.RedFlags = []string{}
	}
	if r.RiskAssessment.YellowFlags == nil {
		r.RiskAssessment.YellowFlags = []string{}
	}
	if r.RiskAssessment.GreenFlags == nil {
		r.RiskAssessment.GreenFlags = []string{}
	}
	if r.FinancialTerms.PaymentAmounts == nil {
		r.FinancialTerms.PaymentAmounts = []string{}
	}
	if r.FinancialTerms.PaymentSchedules == nil {
		r.FinancialTerms.PaymentSchedules = []string{}
	}
	if r.FinancialTerms.Penalties == nil {
		r.FinancialTerms.Penalties = []string{}
	}
	if r.FinancialTerms.Fees == nil {
		r.FinancialTerms.Fees = []string{}
	}
	if r.Obligations.Party1 == nil {
		r.Obligations.Party1 = []string{}
	}
	if r.Obligations.Party2 == nil {
		r.Obligations.Party2 = []string{}
	}
	if r.Obligations.Mutual == nil {
		r.Obligations.Mutual = []string{}
	}
	if r.KeyClauses == nil {
		r.KeyClauses = []KeyClause{}
	}
	r.AIConfidence = clamp01(r.AIConfidence)
	if r.ProcessingTimeSeconds < 0 {
		r.ProcessingTimeSeconds = 0
	}
}

// Normalize fills absent fields with their documented defaults.
func (qa *QuestionAnswer) Normalize() {
	if qa.RelevantClauses == nil {
		qa.RelevantClauses = []string{}
	}
	qa.Confidence = clamp01(qa.Confidence)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
