package api

import (
	"encoding/json"
	"fmt"

	"minutes/internal/analysis"
	"minutes/internal/meetings"
)

// FromMeeting converts a stored meeting to its API representation. JSON
// columns that fail to decode are surfaced as empty lists rather than errors;
// the raw columns stay untouched in the store.
func FromMeeting(meeting *meetings.Meeting) MeetingView {
	if meeting == nil {
		return MeetingView{}
	}

	view := MeetingView{
		ID:               meeting.ID,
		Title:            meeting.Title,
		Status:           string(meeting.Status),
		Participants:     decodeStringList(meeting.ParticipantsJSON),
		Summary:          meeting.Summary,
		KeyTopics:        decodeStringList(meeting.KeyTopicsJSON),
		Decisions:        decodeDecisionList(meeting.DecisionsJSON),
		ActionItems:      decodeActionItemList(meeting.ActionItemsJSON),
		ErrorMessage:     meeting.ErrorMessage,
		ParsedTranscript: meeting.ParsedTranscript,
	}

	if !meeting.CreatedAt.IsZero() {
		view.CreatedAt = meeting.CreatedAt.UTC().Format(dateTimeFormat)
	}
	if !meeting.UpdatedAt.IsZero() {
		view.UpdatedAt = meeting.UpdatedAt.UTC().Format(dateTimeFormat)
	}
	return view
}

// FromMeetings converts a slice of stored meetings.
func FromMeetings(items []*meetings.Meeting) []MeetingView {
	views := make([]MeetingView, 0, len(items))
	for _, meeting := range items {
		views = append(views, FromMeeting(meeting))
	}
	return views
}

// applyState copies a final pipeline state onto a stored meeting, encoding
// the list fields as JSON columns.
func applyState(meeting *meetings.Meeting, state analysis.State) error {
	participants, err := json.Marshal(state.Participants)
	if err != nil {
		return fmt.Errorf("marshal participants: %w", err)
	}
	keyTopics, err := json.Marshal(state.KeyTopics)
	if err != nil {
		return fmt.Errorf("marshal key topics: %w", err)
	}
	decisions, err := json.Marshal(state.Decisions)
	if err != nil {
		return fmt.Errorf("marshal decisions: %w", err)
	}
	actionItems, err := json.Marshal(state.ActionItems)
	if err != nil {
		return fmt.Errorf("marshal action items: %w", err)
	}

	meeting.ParsedTranscript = state.ParsedTranscript
	meeting.ParticipantsJSON = string(participants)
	meeting.Summary = state.Summary
	meeting.KeyTopicsJSON = string(keyTopics)
	meeting.DecisionsJSON = string(decisions)
	meeting.ActionItemsJSON = string(actionItems)
	meeting.ErrorMessage = state.ErrorMessage

	if state.ErrorMessage != "" {
		meeting.Status = meetings.StatusFailed
	} else {
		meeting.Status = meetings.StatusAnalyzed
	}
	return nil
}

func decodeStringList(raw string) []string {
	values := []string{}
	if raw == "" {
		return values
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{}
	}
	return values
}

func decodeDecisionList(raw string) []analysis.Decision {
	values := []analysis.Decision{}
	if raw == "" {
		return values
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []analysis.Decision{}
	}
	return values
}

func decodeActionItemList(raw string) []analysis.ActionItem {
	values := []analysis.ActionItem{}
	if raw == "" {
		return values
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []analysis.ActionItem{}
	}
	return values
}
