package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLLM(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

// validateLLM checks connection settings only. The API key is deliberately not
// required at load time so read-only commands work without one; the analyze
// workflow rejects a missing key when it constructs the client.
func (c *Config) validateLLM() error {
	if strings.TrimSpace(c.LLM.BaseURL) == "" {
		return errors.New("llm.base_url must be set")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model must be set")
	}
	if c.LLM.TimeoutSeconds < 0 {
		return errors.New("llm.timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.TranscriptCharLimit <= 0 {
		return errors.New("analysis.transcript_char_limit must be positive")
	}
	if c.Analysis.MaxDecisions <= 0 {
		return errors.New("analysis.max_decisions must be positive")
	}
	if c.Analysis.MaxActionItems <= 0 {
		return errors.New("analysis.max_action_items must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return errors.New("logging.format must be console or json")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be debug, info, warn, or error")
	}
	return nil
}
