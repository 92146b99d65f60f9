// Package config loads, normalizes, and validates the TOML configuration
// that drives the minutes CLI and analysis pipeline.
package config
