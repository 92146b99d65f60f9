package transcript

import (
	"fmt"
	"sort"
	"strings"
)

// Format serializes segments into the canonical transcript form, one
// "[timestamp] speaker: text" line per segment in input order. The output is
// byte-stable for identical segment sequences; downstream prompts and tests
// depend on that determinism.
func Format(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", seg.Timestamp, seg.Speaker, seg.Text))
	}
	return strings.Join(lines, "\n")
}

// Participants returns the distinct speaker names in ascending order,
// excluding the Unknown sentinel. The result is never nil.
func Participants(segments []Segment) []string {
	seen := make(map[string]struct{})
	for _, seg := range segments {
		if seg.Speaker == "" || seg.Speaker == UnknownSpeaker {
			continue
		}
		seen[seg.Speaker] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
