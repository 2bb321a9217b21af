package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port         string
	GeminiAPIKey string
	SettingsPath string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		SettingsPath: getEnv("SETTINGS_PATH", "settings.toml"),
	}

	// The Gemini key is the one credential sourced from the environment
	// rather than user settings; missing it is a startup failure, not a
	// per-request one.
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required. Please set it as environment variable:\n  Linux/Mac: export GEMINI_API_KEY=\"your_key\"\n  Windows PowerShell: $env:GEMINI_API_KEY=\"your_key\"")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
