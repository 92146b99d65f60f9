// Package llm provides a retrying client for OpenAI-compatible chat
// completion endpoints. It is the generation backend consumed by the
// analysis pipeline stages.
package llm
