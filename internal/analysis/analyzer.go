package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"minutes/internal/config"
	"minutes/internal/logging"
	"minutes/internal/services"
)

// Analyzer drives the fixed stage sequence over one pipeline state:
// parse → summarize → decide → extract-actions.
//
// Every stage always runs. A stage failure is recorded in the state's
// ErrorMessage and never skips or aborts later stages: a failed summary must
// not prevent decision or action extraction from being attempted against the
// raw or partially-parsed transcript. The analyzer holds no per-run state,
// so concurrent Execute calls on independent states are safe, and retrying a
// failed run is simply calling Execute again with the same input.
type Analyzer struct {
	stages []Stage
	logger *slog.Logger
}

// NewAnalyzer constructs the analyzer with the standard four stages wired to
// the supplied generation backend.
func NewAnalyzer(cfg *config.Config, gen Generator, logger *slog.Logger) *Analyzer {
	charLimit := cfg.Analysis.TranscriptCharLimit
	return &Analyzer{
		stages: []Stage{
			NewParseStage(logger),
			NewSummarizeStage(gen, charLimit, logger),
			NewDecideStage(gen, charLimit, cfg.Analysis.MaxDecisions, logger),
			NewExtractActionsStage(gen, charLimit, cfg.Analysis.MaxActionItems, logger),
		},
		logger: logging.NewComponentLogger(logger, "analyzer"),
	}
}

// NewAnalyzerWithStages constructs an analyzer over an explicit stage list.
// Intended for tests substituting deterministic stages.
func NewAnalyzerWithStages(logger *slog.Logger, stages ...Stage) *Analyzer {
	return &Analyzer{
		stages: stages,
		logger: logging.NewComponentLogger(logger, "analyzer"),
	}
}

// Execute runs all stages in order over the supplied state and returns the
// final accumulated state.
func (a *Analyzer) Execute(ctx context.Context, state State) State {
	runCtx := services.WithMeetingID(ctx, state.MeetingID)
	runCtx = services.WithRequestID(runCtx, uuid.NewString())

	for _, stage := range a.stages {
		stageCtx := services.WithStage(runCtx, stage.Name())
		logger := logging.WithContext(stageCtx, a.logger)

		start := time.Now()
		logger.Debug("stage started", logging.String(logging.FieldEventType, "stage_start"))

		update := stage.Run(stageCtx, state)
		state = state.Apply(update)

		if update.ErrorMessage != nil && *update.ErrorMessage != "" {
			logger.Warn("stage completed with error",
				logging.String(logging.FieldEventType, "stage_failure"),
				logging.String("error_message", *update.ErrorMessage),
				logging.Duration("elapsed", time.Since(start)),
			)
			continue
		}
		logger.Debug("stage completed",
			logging.String(logging.FieldEventType, "stage_complete"),
			logging.Duration("elapsed", time.Since(start)),
		)
	}

	return state
}

// Analyze constructs the initial state for a meeting and executes the full
// pipeline. The returned state carries whichever error message (if any) was
// most recently set by a failing stage.
func (a *Analyzer) Analyze(ctx context.Context, meetingID, meetingTitle, rawTranscript string) State {
	logger := logging.WithContext(services.WithMeetingID(ctx, meetingID), a.logger)
	logger.Info("starting analysis")

	final := a.Execute(ctx, NewState(meetingID, meetingTitle, rawTranscript))

	logger.Info("analysis complete",
		logging.Int("decisions", len(final.Decisions)),
		logging.Int("action_items", len(final.ActionItems)),
		logging.Bool("partial", final.ErrorMessage != ""),
	)
	return final
}
