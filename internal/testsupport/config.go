package testsupport

import (
	"path/filepath"
	"testing"

	"minutes/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.LLM.APIKey = "test"

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithAPIKey sets the generation backend API key on the test config.
func WithAPIKey(key string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.LLM.APIKey = key
	}
}

// WithTranscriptCharLimit overrides the prompt transcript budget.
func WithTranscriptCharLimit(limit int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Analysis.TranscriptCharLimit = limit
	}
}
