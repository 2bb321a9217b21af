package ai

import (
	"encoding/json"
	"strings"

	"meetsense/internal/model"
)

// ParseAnalysisResult turns raw provider output into an AnalysisResult. It
// trims whitespace, strips markdown code fences some backends insist on
// adding, parses the JSON, and confirms the structure: summary must be a
// non-empty string, actionItems and missingPoints must be present arrays.
// Wrong-typed or missing fields are a hard failure, never repaired.
func ParseAnalysisResult(raw string) (*model.AnalysisResult, error) {
	cleaned := stripMarkdownFence(raw)

	var probe struct {
		Summary       *string               `json:"summary"`
		ActionItems   *[]model.ActionItem   `json:"actionItems"`
		MissingPoints *[]model.MissingPoint `json:"missingPoints"`
	}
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, &ParseError{Reason: "response is not valid JSON", Err: err}
	}

	switch {
	case probe.Summary == nil || strings.TrimSpace(*probe.Summary) == "":
		return nil, &ParseError{Reason: `missing or empty "summary" field`}
	case probe.ActionItems == nil:
		return nil, &ParseError{Reason: `missing "actionItems" field`}
	case probe.MissingPoints == nil:
		return nil, &ParseError{Reason: `missing "missingPoints" field`}
	}

	return &model.AnalysisResult{
		Summary:       *probe.Summary,
		ActionItems:   *probe.ActionItems,
		MissingPoints: *probe.MissingPoints,
	}, nil
}

// stripMarkdownFence removes a surrounding ```json / ``` fence when present.
func stripMarkdownFence(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSpace(content)
	content = strings.TrimSuffix(content, "```")

	return strings.TrimSpace(content)
}
