// Package logging wires log/slog handlers for console and JSON output and
// defines the standardized structured field keys used across the pipeline.
package logging
