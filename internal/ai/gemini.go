package ai

import (
	"context"
	"log"
	"strings"

	"google.golang.org/genai"

	"meetsense/internal/model"
)

// GeminiProvider analyzes transcripts with the Gemini API through the official
// SDK. Gemini supports schema-constrained generation, so the analysis schema
// is passed as a formal output contract instead of prompt text.
type GeminiProvider struct {
	apiKey    string
	modelName string
}

// NewGeminiProvider creates a new Gemini analysis provider. The key comes from
// process configuration (validated at startup), not per-request settings.
func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{
		apiKey:    apiKey,
		modelName: "gemini-2.0-flash",
	}
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return model.ProviderGemini
}

// Analyze runs one structured-generation request against Gemini.
func (p *GeminiProvider) Analyze(ctx context.Context, transcript, checklist string, settings model.ProviderSettings) (*model.AnalysisResult, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return nil, &ConfigurationError{Reason: "GEMINI_API_KEY is not set"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &ConfigurationError{Reason: "failed to create Gemini client: " + err.Error()}
	}

	systemPrompt, userPrompt := BuildPrompt(transcript, checklist)

	log.Printf("[Gemini] Calling generate content with model %s", p.modelName)
	resp, err := client.Models.GenerateContent(ctx, p.modelName, genai.Text(userPrompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    analysisSchema(),
	})
	if err != nil {
		return nil, &TransportError{Reason: err.Error()}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Reason: "response contained no text"}
	}

	return ParseAnalysisResult(text)
}

// analysisSchema mirrors SchemaText in the SDK's schema representation.
func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString},
			"actionItems": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"task":  {Type: genai.TypeString},
						"owner": {Type: genai.TypeString},
					},
					Required: []string{"task", "owner"},
				},
			},
			"missingPoints": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"point":          {Type: genai.TypeString},
						"recommendation": {Type: genai.TypeString},
					},
					Required: []string{"point", "recommendation"},
				},
			},
		},
		Required: []string{"summary", "actionItems", "missingPoints"},
	}
}
