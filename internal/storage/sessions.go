package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"meetsense/internal/model"
)

// Session is one meeting: an ordered transcript plus lifecycle status.
type Session struct {
	ID        string
	Status    string // recording, analyzing, analyzed, failed
	CreatedAt string
	Entries   []model.TranscriptEntry
}

var (
	sessions = make(map[string]*Session)
	mu       sync.Mutex
)

// CreateSession creates a new empty session and returns a copy of it.
func CreateSession() Session {
	s := &Session{
		ID:        uuid.NewString(),
		Status:    "recording",
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	mu.Lock()
	sessions[s.ID] = s
	mu.Unlock()

	return *s
}

// GetSession retrieves a session by ID
func GetSession(id string) (Session, bool) {
	mu.Lock()
	defer mu.Unlock()
	s, ok := sessions[id]
	if !ok {
		return Session{}, false
	}
	// Return a copy to avoid race conditions
	cp := *s
	cp.Entries = append([]model.TranscriptEntry(nil), s.Entries...)
	return cp, true
}

// AppendEntries appends finalized utterances to a session's transcript.
// Entries keep insertion order and are never rewritten.
func AppendEntries(id string, entries []model.TranscriptEntry) error {
	mu.Lock()
	defer mu.Unlock()
	s, ok := sessions[id]
	if !ok {
		return fmt.Errorf("session not found: %s", id)
	}
	s.Entries = append(s.Entries, entries...)
	return nil
}

// UpdateStatus updates the status of a session
func UpdateStatus(id, status string) {
	mu.Lock()
	defer mu.Unlock()
	if s, ok := sessions[id]; ok {
		s.Status = status
	}
}
