package transcript

import (
	"regexp"
	"strings"
)

// timePattern matches 1-2 digit hours, 2-digit minutes, and optional 2-digit
// seconds: "0:00", "00:05:23".
const timePattern = `\d{1,2}:\d{2}(?::\d{2})?`

// linePattern pairs a compiled matcher with an extractor mapping its capture
// groups onto a Segment. Patterns are tried in declaration order and the
// first match wins; the order is load-bearing and deliberately tunable, so
// keep it as an explicit list rather than folding the patterns together.
type linePattern struct {
	name    string
	re      *regexp.Regexp
	extract func(groups []string) Segment
}

var linePatterns = []linePattern{
	{
		// [00:05:23] Speaker Name: Text
		name: "bracket_timestamp",
		re:   regexp.MustCompile(`^\[(` + timePattern + `)\]\s*([^:]+):\s*(.*)`),
		extract: func(groups []string) Segment {
			return Segment{Timestamp: groups[1], Speaker: groups[2], Text: groups[3]}
		},
	},
	{
		// 00:05:23 - Speaker Name: Text
		name: "dash_timestamp",
		re:   regexp.MustCompile(`^(` + timePattern + `)\s*[-–—]\s*([^:]+):\s*(.*)`),
		extract: func(groups []string) Segment {
			return Segment{Timestamp: groups[1], Speaker: groups[2], Text: groups[3]}
		},
	},
	{
		// Speaker Name (00:05:23): Text
		name: "paren_timestamp",
		re:   regexp.MustCompile(`^([^(:]+)\s*\((` + timePattern + `)\):\s*(.*)`),
		extract: func(groups []string) Segment {
			return Segment{Speaker: groups[1], Timestamp: groups[2], Text: groups[3]}
		},
	},
	{
		// Speaker Name: Text (no timestamp)
		name: "simple_speaker",
		re:   regexp.MustCompile(`^([A-Z][a-zA-Z\s]+):\s*(.*)`),
		extract: func(groups []string) Segment {
			return Segment{Speaker: groups[1], Timestamp: DefaultTimestamp, Text: groups[2]}
		},
	},
}

// ClassifyLine attempts to classify a single transcript line as a speaker
// utterance. Blank lines never match. The returned segment has speaker and
// text trimmed of surrounding whitespace; a line like "Name: " classifies
// with empty text.
func ClassifyLine(line string) (Segment, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Segment{}, false
	}
	for _, pattern := range linePatterns {
		groups := pattern.re.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		seg := pattern.extract(groups)
		seg.Speaker = strings.TrimSpace(seg.Speaker)
		seg.Text = strings.TrimSpace(seg.Text)
		return seg, true
	}
	return Segment{}, false
}
