package ai

import "fmt"

// ConfigurationError means a credential, URL, or model name required by the
// selected provider is missing. It is always raised before any network call.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// TransportError means the network call failed or the backend returned a
// non-success status. Reason carries the backend's own error message when one
// could be extracted.
type TransportError struct {
	Status int // HTTP status, 0 if the request never completed
	Reason string
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provider returned status %d: %s", e.Status, e.Reason)
	}
	return "request failed: " + e.Reason
}

// ParseError means the provider responded, but the response body was not the
// JSON object the analysis contract requires.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid analysis response: %s: %v", e.Reason, e.Err)
	}
	return "invalid analysis response: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedProviderError means settings named a provider no adapter exists
// for.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider: %q. Supported: gemini, openai, ollama, lmstudio", e.Provider)
}
