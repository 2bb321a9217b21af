package ai

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"meetsense/internal/model"
)

// OpenAIProvider analyzes transcripts with the OpenAI chat-completions API.
// JSON-object response mode keeps the output parseable; the schema is
// described in the system message since json_object mode alone does not pin
// the shape.
type OpenAIProvider struct {
	client *http.Client // nil means the SDK default
	// baseURL overrides the API endpoint, used by tests to point the SDK
	// at a stub server.
	baseURL string
}

// NewOpenAIProvider creates a new OpenAI analysis provider.
func NewOpenAIProvider(client *http.Client) *OpenAIProvider {
	return &OpenAIProvider{client: client}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return model.ProviderOpenAI
}

// Analyze runs one chat completion against OpenAI. The API key comes from
// settings and is checked before any request goes out.
func (p *OpenAIProvider) Analyze(ctx context.Context, transcript, checklist string, settings model.ProviderSettings) (*model.AnalysisResult, error) {
	if strings.TrimSpace(settings.OpenAIAPIKey) == "" {
		return nil, &ConfigurationError{Reason: "openai_api_key is required for the OpenAI provider"}
	}

	cfg := openai.DefaultConfig(settings.OpenAIAPIKey)
	if p.client != nil {
		cfg.HTTPClient = p.client
	}
	if p.baseURL != "" {
		cfg.BaseURL = p.baseURL
	}
	client := openai.NewClientWithConfig(cfg)

	systemPrompt, userPrompt := BuildPrompt(transcript, checklist)

	log.Printf("[OpenAI] Calling chat completions with model %s", openai.GPT4oMini)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: AppendSchema(systemPrompt)},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, &TransportError{Status: apiErr.HTTPStatusCode, Reason: apiErr.Message}
		}
		return nil, &TransportError{Reason: err.Error()}
	}

	if len(resp.Choices) == 0 {
		return nil, &ParseError{Reason: "response contained no choices"}
	}

	return ParseAnalysisResult(resp.Choices[0].Message.Content)
}
