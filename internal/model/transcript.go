package model

// TranscriptEntry represents one finalized utterance from the transcription
// layer (or the demo script). Entries are immutable once appended and keep
// insertion order.
type TranscriptEntry struct {
	Timestamp string `json:"timestamp"` // mm:ss.mmm offset from session start
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
}
