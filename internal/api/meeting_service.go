package api

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"minutes/internal/analysis"
	"minutes/internal/logging"
	"minutes/internal/meetings"
	"minutes/internal/services"
)

// MeetingStore abstracts meeting persistence interactions needed by the
// workflow service.
type MeetingStore interface {
	Create(ctx context.Context, id, title, rawTranscript string) (*meetings.Meeting, error)
	Update(ctx context.Context, meeting *meetings.Meeting) error
	GetByID(ctx context.Context, id string) (*meetings.Meeting, error)
	List(ctx context.Context, statuses ...meetings.Status) ([]*meetings.Meeting, error)
	Remove(ctx context.Context, id string) (bool, error)
}

// TranscriptAnalyzer runs the full analysis pipeline for one meeting.
type TranscriptAnalyzer interface {
	Analyze(ctx context.Context, meetingID, meetingTitle, rawTranscript string) analysis.State
}

// MeetingService coordinates meeting creation, analysis, and persistence.
type MeetingService struct {
	store    MeetingStore
	analyzer TranscriptAnalyzer
	logger   *slog.Logger
}

// NewMeetingService constructs a MeetingService around the provided store
// and analyzer.
func NewMeetingService(store MeetingStore, analyzer TranscriptAnalyzer, logger *slog.Logger) *MeetingService {
	if store == nil || analyzer == nil {
		return nil
	}
	return &MeetingService{
		store:    store,
		analyzer: analyzer,
		logger:   logging.NewComponentLogger(logger, "meeting-service"),
	}
}

// Analyze creates a meeting record for the transcript, runs the full
// pipeline, and persists the result. The meeting ends in status "analyzed"
// when every stage succeeded and "failed" when any stage recorded an error;
// partial results are persisted either way.
func (s *MeetingService) Analyze(ctx context.Context, title, rawTranscript string) (*MeetingView, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	if strings.TrimSpace(rawTranscript) == "" {
		return nil, services.Wrap(services.ErrValidation, "meeting-service", "analyze", "transcript is empty", nil)
	}
	if strings.TrimSpace(title) == "" {
		title = "Untitled Meeting"
	}

	id := uuid.NewString()
	ctx = services.WithMeetingID(ctx, id)
	logger := logging.WithContext(ctx, s.logger)

	meeting, err := s.store.Create(ctx, id, title, rawTranscript)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "meeting-service", "create meeting", "", err)
	}

	meeting.Status = meetings.StatusAnalyzing
	if err := s.store.Update(ctx, meeting); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "meeting-service", "mark analyzing", "", err)
	}

	final := s.analyzer.Analyze(ctx, id, title, rawTranscript)

	if err := applyState(meeting, final); err != nil {
		return nil, services.Wrap(services.ErrValidation, "meeting-service", "encode results", "", err)
	}
	if err := s.store.Update(ctx, meeting); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "meeting-service", "persist results", "", err)
	}

	logger.Info("meeting analyzed",
		logging.String("status", string(meeting.Status)),
		logging.Int("decisions", len(final.Decisions)),
		logging.Int("action_items", len(final.ActionItems)),
	)

	view := FromMeeting(meeting)
	return &view, nil
}

// List returns stored meetings filtered by status.
func (s *MeetingService) List(ctx context.Context, statuses ...meetings.Status) ([]MeetingView, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	items, err := s.store.List(ctx, statuses...)
	if err != nil {
		return nil, err
	}
	return FromMeetings(items), nil
}

// Describe fetches a single meeting. A missing meeting returns nil without
// an error.
func (s *MeetingService) Describe(ctx context.Context, id string) (*MeetingView, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	meeting, err := s.store.GetByID(ctx, id)
	if err != nil || meeting == nil {
		return nil, err
	}
	view := FromMeeting(meeting)
	return &view, nil
}

// Remove deletes a meeting and reports whether a record was removed.
func (s *MeetingService) Remove(ctx context.Context, id string) (bool, error) {
	if s == nil || s.store == nil {
		return false, nil
	}
	return s.store.Remove(ctx, id)
}
