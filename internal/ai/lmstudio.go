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

// LMStudioProvider analyzes transcripts against LM Studio's OpenAI-compatible
// local server. There is no enforced JSON mode: the schema lives in the system
// message only, and non-compliant output surfaces as a hard parse failure.
type LMStudioProvider struct {
	client *http.Client
}

// NewLMStudioProvider creates a new LM Studio analysis provider.
func NewLMStudioProvider(client *http.Client) *LMStudioProvider {
	return &LMStudioProvider{client: client}
}

// Name returns the provider name
func (p *LMStudioProvider) Name() string {
	return model.ProviderLMStudio
}

type lmStudioChatRequest struct {
	Model       string              `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
}

type lmStudioChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type lmStudioErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Analyze sends the analysis prompt to {lmstudio_url}/v1/chat/completions.
// LM Studio serves whatever model is loaded, addressed as "local-model".
func (p *LMStudioProvider) Analyze(ctx context.Context, transcript, checklist string, settings model.ProviderSettings) (*model.AnalysisResult, error) {
	if strings.TrimSpace(settings.LMStudioURL) == "" {
		return nil, &ConfigurationError{Reason: "lmstudio_url is required for the LM Studio provider"}
	}

	systemPrompt, userPrompt := BuildPrompt(transcript, checklist)

	reqBody, err := json.Marshal(lmStudioChatRequest{
		Model: "local-model",
		Messages: []chatMessage{
			{Role: "system", Content: AppendSchema(systemPrompt)},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, &TransportError{Reason: "failed to encode request: " + err.Error()}
	}

	url := strings.TrimRight(settings.LMStudioURL, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, &TransportError{Reason: "failed to create request: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[LM Studio] POST %s", url)
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
		reason := strings.TrimSpace(string(body))
		var errResp lmStudioErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			reason = errResp.Error.Message
		}
		return nil, &TransportError{Status: resp.StatusCode, Reason: reason}
	}

	var chatResp lmStudioChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, &ParseError{Reason: "unexpected response envelope", Err: err}
	}
	if len(chatResp.Choices) == 0 {
		return nil, &ParseError{Reason: "response contained no choices"}
	}

	// Local models routinely fence their JSON; ParseAnalysisResult strips it.
	return ParseAnalysisResult(chatResp.Choices[0].Message.Content)
}
