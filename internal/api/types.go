package api

import "minutes/internal/analysis"

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// MeetingView describes a stored meeting in a transport-friendly format.
type MeetingView struct {
	ID               string                `json:"id"`
	Title            string                `json:"title"`
	Status           string                `json:"status"`
	Participants     []string              `json:"participants"`
	Summary          string                `json:"summary,omitempty"`
	KeyTopics        []string              `json:"keyTopics"`
	Decisions        []analysis.Decision   `json:"decisions"`
	ActionItems      []analysis.ActionItem `json:"actionItems"`
	ErrorMessage     string                `json:"errorMessage,omitempty"`
	ParsedTranscript string                `json:"parsedTranscript,omitempty"`
	CreatedAt        string                `json:"createdAt,omitempty"`
	UpdatedAt        string                `json:"updatedAt,omitempty"`
}

// MeetingListResponse wraps a collection of meetings for API responses.
type MeetingListResponse struct {
	Meetings []MeetingView `json:"meetings"`
}

// MeetingResponse wraps a single meeting.
type MeetingResponse struct {
	Meeting MeetingView `json:"meeting"`
}
