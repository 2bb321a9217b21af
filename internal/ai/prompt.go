package ai

import "fmt"

// BuildPrompt builds the provider-neutral system and user messages for a
// meeting analysis request. The transcript must already be formatted, one
// "[timestamp] speaker: text" line per utterance.
func BuildPrompt(transcript string, checklist string) (string, string) {
	systemPrompt := `You are an expert technical-review meeting assistant.
You analyze meeting transcripts against a review checklist.
Be accurate, neutral, and fact-based.
Do NOT invent information. ONLY use what is in the transcript.
Respond with exactly one JSON object.
Do not wrap the JSON in markdown code fences or add any text around it.`

	userPrompt := fmt.Sprintf(`Meeting transcript:
"""
%s
"""

Review checklist:
"""
%s
"""

Tasks:
1. Write a concise summary of the meeting (a few sentences).
2. Extract clear action items. Each needs a task and an owner; use "Unassigned" when nobody was named. Use an empty array [] if there are none.
3. List checklist points the meeting did not cover, each with a recommendation on how to address it. Use an empty array [] if everything was covered.

Return one JSON object with exactly these fields:

{
  "summary": "...",
  "actionItems": [{"task": "...", "owner": "..."}],
  "missingPoints": [{"point": "...", "recommendation": "..."}]
}

All three fields are required. Use empty arrays rather than omitting fields.`, transcript, checklist)

	return systemPrompt, userPrompt
}

// AppendSchema appends the serialized analysis schema to a prompt. Used for
// backends without native schema-constrained generation, so the model still
// sees an explicit contract to follow.
func AppendSchema(prompt string) string {
	return prompt + "\n\nThe JSON object must match this schema exactly:\n" + SchemaText
}
