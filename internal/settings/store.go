package settings

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"meetsense/internal/model"
)

// Defaults returns the provider settings used before the user saves anything.
func Defaults() model.ProviderSettings {
	return model.ProviderSettings{
		Provider:    model.ProviderGemini,
		OllamaURL:   "http://localhost:11434",
		OllamaModel: "llama3.1",
		LMStudioURL: "http://localhost:1234",
	}
}

// Store persists ProviderSettings as a TOML file. Loading decodes over the
// defaults, so files written by older builds that lack newer fields still load
// cleanly. Settings change only through an explicit Save.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a settings store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the settings file, merged over defaults. A missing file is not
// an error; it yields the defaults.
func (s *Store) Load() (model.ProviderSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := Defaults()
	if _, err := toml.DecodeFile(s.path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[Settings] %s not found, using defaults", s.path)
			return cfg, nil
		}
		return Defaults(), fmt.Errorf("failed to read settings file: %w", err)
	}
	return cfg, nil
}

// Save writes the settings file, creating its directory if needed.
func (s *Store) Save(cfg model.ProviderSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
