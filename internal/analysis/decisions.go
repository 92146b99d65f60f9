package analysis

import (
	"context"
	"log/slog"

	"minutes/internal/logging"
	"minutes/internal/services"
)

// DecideStage extracts decisions and agreements from the transcript via the
// generation backend.
type DecideStage struct {
	gen          Generator
	charLimit    int
	maxDecisions int
	logger       *slog.Logger
}

// NewDecideStage constructs the decision extraction stage.
func NewDecideStage(gen Generator, charLimit, maxDecisions int, logger *slog.Logger) *DecideStage {
	return &DecideStage{
		gen:          gen,
		charLimit:    charLimit,
		maxDecisions: maxDecisions,
		logger:       logging.NewComponentLogger(logger, "decide-stage"),
	}
}

func (s *DecideStage) Name() string { return "decide" }

func (s *DecideStage) Run(ctx context.Context, state State) Update {
	logger := logging.WithContext(ctx, s.logger)

	userPrompt := transcriptUserPrompt(state, s.charLimit,
		"Extract the decisions as a JSON array.")

	response, err := s.gen.Complete(ctx, decisionsSystemPrompt(s.maxDecisions), userPrompt)
	if err != nil {
		logger.Error("decision extraction failed",
			logging.Error(err),
			logging.String(logging.FieldEventType, "stage_failure"),
		)
		return Update{
			ErrorMessage: stringPtr(failureMessage(services.ErrExternalService, s.Name(), "extract decisions", err)),
			Decisions:    []Decision{},
		}
	}

	decisions, err := decodeDecisions(response, s.maxDecisions)
	if err != nil {
		// Unusable structured output degrades to zero decisions; the error is
		// recorded but never blocks the pipeline.
		logger.Warn("decision response had no usable JSON array", logging.Error(err))
		return Update{
			ErrorMessage: stringPtr(failureMessage(services.ErrValidation, s.Name(), "parse decisions", err)),
			Decisions:    decisions,
		}
	}

	logger.Info("decisions extracted", logging.Int("decisions", len(decisions)))
	return Update{Decisions: decisions}
}
