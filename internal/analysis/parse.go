package analysis

import (
	"context"
	"log/slog"

	"minutes/internal/logging"
	"minutes/internal/transcript"
)

// ParseStage normalizes the raw transcript and extracts the participant list.
// It is the only stage that does not consult the generation backend.
type ParseStage struct {
	logger *slog.Logger
}

// NewParseStage constructs the transcript normalization stage.
func NewParseStage(logger *slog.Logger) *ParseStage {
	return &ParseStage{logger: logging.NewComponentLogger(logger, "parse-stage")}
}

func (s *ParseStage) Name() string { return "parse" }

func (s *ParseStage) Run(ctx context.Context, state State) Update {
	logger := logging.WithContext(ctx, s.logger)

	segments := transcript.Parse(state.RawTranscript)
	parsed := transcript.Format(segments)
	participants := transcript.Participants(segments)

	logger.Info("transcript parsed",
		logging.Int("segments", len(segments)),
		logging.Int("participants", len(participants)),
	)

	return Update{
		ParsedTranscript: stringPtr(parsed),
		Participants:     participants,
	}
}
