package model

// ActionItem is a task extracted from the meeting with the person responsible.
type ActionItem struct {
	Task  string `json:"task"`
	Owner string `json:"owner"`
}

// MissingPoint is a checklist item the meeting never covered, with a
// recommendation on how to address it.
type MissingPoint struct {
	Point          string `json:"point"`
	Recommendation string `json:"recommendation"`
}

// AnalysisResult represents the structured AI analysis of a meeting.
// After validation Summary is non-empty and the two slices are never nil
// (empty is fine). A result is never mutated after construction.
type AnalysisResult struct {
	Summary       string         `json:"summary"`
	ActionItems   []ActionItem   `json:"actionItems"`
	MissingPoints []MissingPoint `json:"missingPoints"`
}
