package transcript

import "strings"

// UnknownSpeaker is the reserved sentinel for utterances whose speaker could
// not be determined.
const UnknownSpeaker = "Unknown"

// DefaultTimestamp is the sentinel timestamp for lines carrying no time marker.
const DefaultTimestamp = "00:00"

// Segment represents one utterance: who said what, and when.
type Segment struct {
	Speaker   string
	Timestamp string
	Text      string
}

// Parse scans a raw transcript and produces an ordered sequence of segments.
//
// The scan is greedy and forward-only: each classified line opens a new
// segment, non-blank lines that fail classification are appended to the last
// open segment as continuations, and blank lines are skipped without closing
// anything. Transcripts are assumed well-ordered top to bottom, so there is
// no backtracking or reordering.
func Parse(raw string) []Segment {
	var segments []Segment
	currentSpeaker := UnknownSpeaker
	currentTimestamp := DefaultTimestamp

	for _, line := range strings.Split(raw, "\n") {
		if seg, ok := ClassifyLine(line); ok {
			segments = append(segments, seg)
			currentSpeaker = seg.Speaker
			currentTimestamp = seg.Timestamp
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if len(segments) > 0 {
			// Continuation of the previous speaker's text.
			segments[len(segments)-1].Text += " " + trimmed
			continue
		}
		// Transcript begins with unparseable text: open a segment with the
		// sentinel speaker and timestamp.
		segments = append(segments, Segment{
			Speaker:   currentSpeaker,
			Timestamp: currentTimestamp,
			Text:      trimmed,
		})
	}

	return segments
}
