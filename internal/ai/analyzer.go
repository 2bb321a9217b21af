package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"meetsense/internal/model"
	"meetsense/internal/transcript"
)

// Returned before any adapter is consulted when the request itself is not
// analyzable.
var (
	ErrEmptyTranscript = errors.New("transcript is empty, nothing to analyze")
	ErrEmptyChecklist  = errors.New("checklist is empty")
)

// Analyzer dispatches analysis requests to the provider selected by settings.
// It holds no per-request state; concurrent calls with different settings are
// independent.
type Analyzer struct {
	providers map[string]Provider
}

// NewAnalyzer builds the adapter table. The Gemini key comes from process
// configuration rather than settings; httpClient is shared by the HTTP-based
// adapters (pass one with a timeout if a hung backend should not hang the
// caller — no adapter enforces its own).
func NewAnalyzer(geminiAPIKey string, httpClient *http.Client) *Analyzer {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Analyzer{
		providers: map[string]Provider{
			model.ProviderGemini:   NewGeminiProvider(geminiAPIKey),
			model.ProviderOpenAI:   NewOpenAIProvider(httpClient),
			model.ProviderOllama:   NewOllamaProvider(httpClient),
			model.ProviderLMStudio: NewLMStudioProvider(httpClient),
		},
	}
}

// AnalyzeTranscript runs one analysis request end to end: validates the
// inputs, formats the transcript, dispatches to the configured provider, and
// wraps any adapter failure so callers handle a single error shape regardless
// of backend. Exactly one network round trip per call; no retries, no caching.
func (a *Analyzer) AnalyzeTranscript(ctx context.Context, entries []model.TranscriptEntry, checklist string, settings model.ProviderSettings) (*model.AnalysisResult, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTranscript
	}
	if strings.TrimSpace(checklist) == "" {
		return nil, ErrEmptyChecklist
	}

	provider, ok := a.providers[settings.Provider]
	if !ok {
		return nil, &UnsupportedProviderError{Provider: settings.Provider}
	}

	formatted := transcript.Format(entries)
	log.Printf("[Analyzer] Dispatching to provider %s: %d entries, checklist length %d",
		provider.Name(), len(entries), len(checklist))

	result, err := provider.Analyze(ctx, formatted, checklist, settings)
	if err != nil {
		log.Printf("[Analyzer] Provider %s failed: %v", provider.Name(), err)
		return nil, fmt.Errorf("analysis failed for provider %s: %w", provider.Name(), err)
	}

	log.Printf("[Analyzer] Provider %s succeeded: %d action items, %d missing points",
		provider.Name(), len(result.ActionItems), len(result.MissingPoints))
	return result, nil
}
