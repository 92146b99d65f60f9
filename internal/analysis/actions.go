package analysis

import (
	"context"
	"log/slog"

	"minutes/internal/logging"
	"minutes/internal/services"
)

// ExtractActionsStage extracts action items from the transcript via the
// generation backend.
type ExtractActionsStage struct {
	gen            Generator
	charLimit      int
	maxActionItems int
	logger         *slog.Logger
}

// NewExtractActionsStage constructs the action item extraction stage.
func NewExtractActionsStage(gen Generator, charLimit, maxActionItems int, logger *slog.Logger) *ExtractActionsStage {
	return &ExtractActionsStage{
		gen:            gen,
		charLimit:      charLimit,
		maxActionItems: maxActionItems,
		logger:         logging.NewComponentLogger(logger, "actions-stage"),
	}
}

func (s *ExtractActionsStage) Name() string { return "extract-actions" }

func (s *ExtractActionsStage) Run(ctx context.Context, state State) Update {
	logger := logging.WithContext(ctx, s.logger)

	userPrompt := transcriptUserPrompt(state, s.charLimit,
		"Extract the action items as a JSON array.")

	response, err := s.gen.Complete(ctx, actionItemsSystemPrompt(s.maxActionItems), userPrompt)
	if err != nil {
		logger.Error("action item extraction failed",
			logging.Error(err),
			logging.String(logging.FieldEventType, "stage_failure"),
		)
		return Update{
			ErrorMessage: stringPtr(failureMessage(services.ErrExternalService, s.Name(), "extract action items", err)),
			ActionItems:  []ActionItem{},
		}
	}

	items, err := decodeActionItems(response, s.maxActionItems)
	if err != nil {
		logger.Warn("action item response had no usable JSON array", logging.Error(err))
		return Update{
			ErrorMessage: stringPtr(failureMessage(services.ErrValidation, s.Name(), "parse action items", err)),
			ActionItems:  items,
		}
	}

	logger.Info("action items extracted", logging.Int("action_items", len(items)))
	return Update{ActionItems: items}
}
