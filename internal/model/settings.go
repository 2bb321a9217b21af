package model

// Supported analysis providers.
const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderOllama   = "ollama"
	ProviderLMStudio = "lmstudio"
)

// ProviderSettings selects the analysis backend and carries its per-provider
// configuration. Saved to disk by the settings store; loaded values are merged
// over defaults so old files missing newer fields keep working.
type ProviderSettings struct {
	Provider     string `json:"provider" toml:"provider"`
	OpenAIAPIKey string `json:"openai_api_key" toml:"openai_api_key"`
	OllamaURL    string `json:"ollama_url" toml:"ollama_url"`
	OllamaModel  string `json:"ollama_model" toml:"ollama_model"`
	LMStudioURL  string `json:"lmstudio_url" toml:"lmstudio_url"`
}

// KnownProvider reports whether name matches a supported provider.
func KnownProvider(name string) bool {
	switch name {
	case ProviderGemini, ProviderOpenAI, ProviderOllama, ProviderLMStudio:
		return true
	}
	return false
}
