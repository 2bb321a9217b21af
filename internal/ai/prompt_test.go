package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	transcript := "[00:02.150] Speaker 1: Let's discuss scalability."
	checklist := "- Scalability\n- Security"

	system, user := BuildPrompt(transcript, checklist)

	assert.Contains(t, system, "expert technical-review meeting assistant")
	assert.Contains(t, user, transcript, "transcript embedded verbatim")
	assert.Contains(t, user, checklist, "checklist embedded verbatim")
	assert.Contains(t, user, `"missingPoints"`)
}

func TestBuildPromptDeterministic(t *testing.T) {
	s1, u1 := BuildPrompt("t", "c")
	s2, u2 := BuildPrompt("t", "c")
	assert.Equal(t, s1, s2)
	assert.Equal(t, u1, u2)
}

func TestAppendSchema(t *testing.T) {
	got := AppendSchema("base prompt")

	assert.Contains(t, got, "base prompt")
	assert.Contains(t, got, SchemaText)
}
