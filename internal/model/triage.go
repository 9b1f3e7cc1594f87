package model

// TriageRequest carries the free-text symptom description. Intensity and
// duration are collected by the screen but do not influence classification.
type TriageRequest struct {
	Symptoms  string `json:"symptoms"`
	Intensity string `json:"intensity,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// TriageResult is ephemeral; it is returned to the caller and never persisted.
type TriageResult struct {
	Specialty        string `json:"specialty"`
	UrgencyTier      string `json:"urgency_tier"`
	AnalyzedSymptoms string `json:"analyzed_symptoms"`
}
