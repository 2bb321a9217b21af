package ai

import (
	"context"

	"meetsense/internal/model"
)

// Provider defines the interface for analysis backends. An adapter gets the
// formatted transcript and checklist, issues exactly one request (no internal
// retries), and returns a validated result or a classified error.
type Provider interface {
	// Analyze runs one analysis request against the backend.
	Analyze(ctx context.Context, transcript, checklist string, settings model.ProviderSettings) (*model.AnalysisResult, error)

	// Name returns the provider name (e.g., "gemini", "ollama")
	Name() string
}
