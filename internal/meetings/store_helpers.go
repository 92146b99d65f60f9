package meetings

import (
	"database/sql"
	"strings"
	"time"
)

const meetingColumns = "id, title, status, raw_transcript, parsed_transcript, participants_json, summary, key_topics_json, decisions_json, action_items_json, error_message, created_at, updated_at"

func scanMeeting(scanner interface{ Scan(dest ...any) error }) (*Meeting, error) {
	var (
		id               string
		title            string
		statusStr        string
		rawTranscript    string
		parsedTranscript sql.NullString
		participants     sql.NullString
		summary          sql.NullString
		keyTopics        sql.NullString
		decisions        sql.NullString
		actionItems      sql.NullString
		errorMessage     sql.NullString
		createdRaw       string
		updatedRaw       string
	)

	if err := scanner.Scan(
		&id,
		&title,
		&statusStr,
		&rawTranscript,
		&parsedTranscript,
		&participants,
		&summary,
		&keyTopics,
		&decisions,
		&actionItems,
		&errorMessage,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	meeting := &Meeting{
		ID:               id,
		Title:            title,
		Status:           Status(statusStr),
		RawTranscript:    rawTranscript,
		ParsedTranscript: parsedTranscript.String,
		ParticipantsJSON: participants.String,
		Summary:          summary.String,
		KeyTopicsJSON:    keyTopics.String,
		DecisionsJSON:    decisions.String,
		ActionItemsJSON:  actionItems.String,
		ErrorMessage:     errorMessage.String,
	}

	if created, err := parseTimeString(createdRaw); err == nil {
		meeting.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		meeting.UpdatedAt = updated
	}
	return meeting, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", count), ", ")
}
