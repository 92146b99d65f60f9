package analysis

import (
	"context"

	"minutes/internal/services"
)

// Generator is the external text-generation capability consumed by the
// LLM-backed stages. Implementations receive a fully-formed prompt pair and
// return the generated text.
type Generator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Stage is one unit of the fixed analysis pipeline. Run receives the state
// as merged after all prior stages and returns a partial update; it must not
// mutate the state it receives and must never panic or propagate a failure —
// all failure modes are converted into an update that sets ErrorMessage and
// the stage's owned fields to their empty defaults.
type Stage interface {
	Name() string
	Run(ctx context.Context, state State) Update
}

// failureMessage renders a stage error into the human-readable form stored in
// State.ErrorMessage. The sentinel marker classifies the failure for callers
// inspecting wrapped errors in logs; the persisted message omits it.
func failureMessage(marker error, stage, operation string, err error) string {
	return services.Message(services.Wrap(marker, stage, operation, "", err))
}

// truncateRunes caps text at limit runes. Prompt budgets are rune-based so a
// multi-byte character is never split.
func truncateRunes(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
