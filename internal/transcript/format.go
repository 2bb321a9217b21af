package transcript

import (
	"fmt"
	"strings"

	"meetsense/internal/model"
)

// Format renders an ordered transcript as one line per entry, formatted as
// "[timestamp] speaker: text". Entries are never dropped, reordered, or
// merged; an empty transcript yields an empty string.
func Format(entries []model.TranscriptEntry) string {
	if len(entries) == 0 {
		return ""
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", e.Timestamp, e.Speaker, e.Text))
	}
	return strings.Join(lines, "\n")
}
