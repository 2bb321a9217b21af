package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"meetsense/internal/model"
)

// OllamaProvider analyzes transcripts against a local Ollama server. Ollama
// has no native JSON-schema constraint, so the request sets format "json" and
// the schema text rides along in the prompt.
type OllamaProvider struct {
	client *http.Client
}

// NewOllamaProvider creates a new Ollama analysis provider.
func NewOllamaProvider(client *http.Client) *OllamaProvider {
	return &OllamaProvider{client: client}
}

// Name returns the provider name
func (p *OllamaProvider) Name() string {
	return model.ProviderOllama
}

// chatMessage is the role/content pair both local chat endpoints accept.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Format   string        `json:"format"`
	Stream   bool          `json:"stream"`
}

type ollamaChatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Analyze sends the analysis prompt to {ollama_url}/api/chat and parses the
// JSON the model returns.
func (p *OllamaProvider) Analyze(ctx context.Context, transcript, checklist string, settings model.ProviderSettings) (*model.AnalysisResult, error) {
	if strings.TrimSpace(settings.OllamaURL) == "" {
		return nil, &ConfigurationError{Reason: "ollama_url is required for the Ollama provider"}
	}
	if strings.TrimSpace(settings.OllamaModel) == "" {
		return nil, &ConfigurationError{Reason: "ollama_model is required for the Ollama provider"}
	}

	systemPrompt, userPrompt := BuildPrompt(transcript, checklist)
	// Ollama's chat endpoint gets a single user message; the schema is
	// attached as text since there is no formal output contract to pass.
	content := systemPrompt + "\n\n" + AppendSchema(userPrompt)

	reqBody, err := json.Marshal(ollamaChatRequest{
		Model:    settings.OllamaModel,
		Messages: []chatMessage{{Role: "user", Content: content}},
		Format:   "json",
		Stream:   false,
	})
	if err != nil {
		return nil, &TransportError{Reason: "failed to encode request: " + err.Error()}
	}

	url := strings.TrimRight(settings.OllamaURL, "/") + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, &TransportError{Reason: "failed to create request: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[Ollama] POST %s (model: %s)", url, settings.OllamaModel)
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &TransportError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Reason: "failed to read response body: " + err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		// Ollama error bodies are plain text
		return nil, &TransportError{Status: resp.StatusCode, Reason: strings.TrimSpace(string(body))}
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, &ParseError{Reason: "unexpected response envelope", Err: err}
	}

	return ParseAnalysisResult(chatResp.Message.Content)
}
