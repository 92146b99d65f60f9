package analysis

import (
	"context"
	"log/slog"
	"strings"

	"minutes/internal/logging"
	"minutes/internal/services"
)

// SummarizeStage produces the meeting summary and key topic list from the
// generation backend's response.
type SummarizeStage struct {
	gen       Generator
	charLimit int
	logger    *slog.Logger
}

// NewSummarizeStage constructs the summary stage.
func NewSummarizeStage(gen Generator, charLimit int, logger *slog.Logger) *SummarizeStage {
	return &SummarizeStage{
		gen:       gen,
		charLimit: charLimit,
		logger:    logging.NewComponentLogger(logger, "summarize-stage"),
	}
}

func (s *SummarizeStage) Name() string { return "summarize" }

func (s *SummarizeStage) Run(ctx context.Context, state State) Update {
	logger := logging.WithContext(ctx, s.logger)

	userPrompt := transcriptUserPrompt(state, s.charLimit,
		"Provide a high-level summary and extract the key topics discussed.")

	response, err := s.gen.Complete(ctx, summarySystemPrompt, userPrompt)
	if err != nil {
		logger.Error("summary generation failed",
			logging.Error(err),
			logging.String(logging.FieldEventType, "stage_failure"),
		)
		return Update{
			ErrorMessage: stringPtr(failureMessage(services.ErrExternalService, s.Name(), "generate summary", err)),
			Summary:      stringPtr(""),
			KeyTopics:    []string{},
		}
	}

	topics := extractKeyTopics(response)
	logger.Info("summary generated", logging.Int("key_topics", len(topics)))

	return Update{
		Summary:   stringPtr(response),
		KeyTopics: topics,
	}
}

// extractKeyTopics pulls the bullet list under a "Key Topics" heading out of
// the summary response. The result is never nil.
func extractKeyTopics(summary string) []string {
	topics := []string{}
	inTopicsSection := false

	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)

		lower := strings.ToLower(line)
		if strings.Contains(lower, "key topics") || strings.Contains(lower, "topics discussed") {
			inTopicsSection = true
			continue
		}
		if inTopicsSection && strings.HasPrefix(line, "#") {
			break
		}
		if inTopicsSection && (strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*")) {
			topic := strings.TrimSpace(strings.TrimLeft(line, "-•* "))
			if topic != "" {
				topics = append(topics, topic)
			}
		}
	}

	return topics
}
