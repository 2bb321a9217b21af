package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetsense/internal/model"
)

const validResponse = `{"summary":"Discussed scalability","actionItems":[{"task":"Benchmark replica lag","owner":"Speaker 1"}],"missingPoints":[{"point":"Security","recommendation":"Schedule a review"}]}`

func TestParseAnalysisResult(t *testing.T) {
	result, err := ParseAnalysisResult(validResponse)
	require.NoError(t, err)

	assert.Equal(t, "Discussed scalability", result.Summary)
	require.Len(t, result.ActionItems, 1)
	assert.Equal(t, model.ActionItem{Task: "Benchmark replica lag", Owner: "Speaker 1"}, result.ActionItems[0])
	require.Len(t, result.MissingPoints, 1)
	assert.Equal(t, model.MissingPoint{Point: "Security", Recommendation: "Schedule a review"}, result.MissingPoints[0])
}

func TestParseAnalysisResultStripsFence(t *testing.T) {
	fenced := "```json\n" + validResponse + "\n```"
	bare, err := ParseAnalysisResult(validResponse)
	require.NoError(t, err)

	got, err := ParseAnalysisResult(fenced)
	require.NoError(t, err)
	assert.Equal(t, bare, got, "fenced and bare JSON parse to the same result")
}

func TestParseAnalysisResultStripsPlainFence(t *testing.T) {
	fenced := "```\n" + validResponse + "\n```"
	got, err := ParseAnalysisResult(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Discussed scalability", got.Summary)
}

func TestParseAnalysisResultEmptySequences(t *testing.T) {
	result, err := ParseAnalysisResult(`{"summary":"ok","actionItems":[],"missingPoints":[]}`)
	require.NoError(t, err)

	assert.NotNil(t, result.ActionItems)
	assert.NotNil(t, result.MissingPoints)
	assert.Empty(t, result.ActionItems)
	assert.Empty(t, result.MissingPoints)
}

func TestParseAnalysisResultInvalidJSON(t *testing.T) {
	_, err := ParseAnalysisResult("the meeting went well")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseAnalysisResultMissingFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing actionItems and missingPoints", `{"summary":"ok"}`},
		{"missing missingPoints", `{"summary":"ok","actionItems":[]}`},
		{"missing summary", `{"actionItems":[],"missingPoints":[]}`},
		{"empty summary", `{"summary":"  ","actionItems":[],"missingPoints":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnalysisResult(tt.raw)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseAnalysisResultWrongTypes(t *testing.T) {
	// Wrong-typed fields fail hard, never coerced.
	_, err := ParseAnalysisResult(`{"summary":"ok","actionItems":"none","missingPoints":[]}`)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestStripMarkdownFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripMarkdownFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripMarkdownFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripMarkdownFence("  {\"a\":1}  "))
	// Idempotent on already-stripped input
	assert.Equal(t, `{"a":1}`, stripMarkdownFence(stripMarkdownFence("```json\n{\"a\":1}\n```")))
}
