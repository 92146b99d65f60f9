package meetings

import "time"

// Status represents the lifecycle of a stored meeting.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAnalyzing Status = "analyzing"
	StatusAnalyzed  Status = "analyzed"
	StatusFailed    Status = "failed"
)

var allStatuses = []Status{
	StatusPending,
	StatusAnalyzing,
	StatusAnalyzed,
	StatusFailed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// ValidStatus reports whether the given status is a known lifecycle value.
func ValidStatus(status Status) bool {
	_, ok := statusSet[status]
	return ok
}

// Meeting is one analyzed (or pending) meeting record. The analysis result
// lists are stored as JSON columns; zero values mean the corresponding stage
// has not produced output yet.
type Meeting struct {
	ID               string
	Title            string
	Status           Status
	RawTranscript    string
	ParsedTranscript string
	ParticipantsJSON string
	Summary          string
	KeyTopicsJSON    string
	DecisionsJSON    string
	ActionItemsJSON  string
	ErrorMessage     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Done reports whether the meeting has reached a terminal status.
func (m *Meeting) Done() bool {
	return m.Status == StatusAnalyzed || m.Status == StatusFailed
}
