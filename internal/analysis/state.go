package analysis

import "strings"

// Decision captures one decision or agreement extracted from a meeting.
// Decision is the only required field; the rest default to empty when the
// model does not supply them.
type Decision struct {
	Decision          string `json:"decision"`
	MadeBy            string `json:"made_by,omitempty"`
	Context           string `json:"context,omitempty"`
	RelatedDiscussion string `json:"related_discussion,omitempty"`
}

// ActionItem captures one task extracted from a meeting. Task is the only
// required field. Priority is "high", "medium", "low", or empty.
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner,omitempty"`
	Deadline string `json:"deadline,omitempty"`
	Priority string `json:"priority,omitempty"`
	Context  string `json:"context,omitempty"`
}

// State is the record that accumulates analysis results as the pipeline runs.
// MeetingID, MeetingTitle, and RawTranscript are set once at pipeline start;
// every other field starts at its zero value and is populated by stages.
// An empty string or empty slice means "not produced yet".
type State struct {
	MeetingID     string `json:"meeting_id"`
	MeetingTitle  string `json:"meeting_title"`
	RawTranscript string `json:"raw_transcript"`

	ParsedTranscript string       `json:"parsed_transcript"`
	Participants     []string     `json:"participants"`
	Summary          string       `json:"summary"`
	KeyTopics        []string     `json:"key_topics"`
	Decisions        []Decision   `json:"decisions"`
	ActionItems      []ActionItem `json:"action_items"`

	// ErrorMessage holds the most recent stage failure, if any. It is
	// overwritten, never accumulated.
	ErrorMessage string `json:"error,omitempty"`
}

// NewState constructs the initial pipeline state for one analysis run.
func NewState(meetingID, meetingTitle, rawTranscript string) State {
	return State{
		MeetingID:     meetingID,
		MeetingTitle:  meetingTitle,
		RawTranscript: rawTranscript,
		Participants:  []string{},
		KeyTopics:     []string{},
		Decisions:     []Decision{},
		ActionItems:   []ActionItem{},
	}
}

// Transcript returns the best transcript available for prompting: the parsed
// transcript when the parse stage produced one, otherwise the raw input. The
// pipeline stays fully functional when parsing failed.
func (s State) Transcript() string {
	if strings.TrimSpace(s.ParsedTranscript) != "" {
		return s.ParsedTranscript
	}
	return s.RawTranscript
}

// ParticipantsLabel renders the participant list for prompt interpolation.
func (s State) ParticipantsLabel() string {
	if len(s.Participants) == 0 {
		return "Not specified"
	}
	return strings.Join(s.Participants, ", ")
}

// Update is the sparse partial result a stage returns. A nil pointer or nil
// slice means "leave the field untouched"; a non-nil value fully replaces the
// prior value, lists included. There is no element-wise merging: a stage that
// recomputes a list always supersedes it, which keeps stage re-runs
// idempotent with respect to their own fields.
type Update struct {
	ParsedTranscript *string
	Participants     []string
	Summary          *string
	KeyTopics        []string
	Decisions        []Decision
	ActionItems      []ActionItem
	ErrorMessage     *string
}

// Apply merges a partial update into the state using whole-value replacement
// per field and returns the merged state.
func (s State) Apply(update Update) State {
	if update.ParsedTranscript != nil {
		s.ParsedTranscript = *update.ParsedTranscript
	}
	if update.Participants != nil {
		s.Participants = update.Participants
	}
	if update.Summary != nil {
		s.Summary = *update.Summary
	}
	if update.KeyTopics != nil {
		s.KeyTopics = update.KeyTopics
	}
	if update.Decisions != nil {
		s.Decisions = update.Decisions
	}
	if update.ActionItems != nil {
		s.ActionItems = update.ActionItems
	}
	if update.ErrorMessage != nil {
		s.ErrorMessage = *update.ErrorMessage
	}
	return s
}

func stringPtr(value string) *string {
	return &value
}
