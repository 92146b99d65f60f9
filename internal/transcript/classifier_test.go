package transcript

import "testing"

func TestClassifyLinePatterns(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Segment
	}{
		{
			name: "bracket timestamp",
			line: "[00:05:23] Alice Smith: We should ship on Friday",
			want: Segment{Speaker: "Alice Smith", Timestamp: "00:05:23", Text: "We should ship on Friday"},
		},
		{
			name: "bracket timestamp short form",
			line: "[0:05] Bob: agreed",
			want: Segment{Speaker: "Bob", Timestamp: "0:05", Text: "agreed"},
		},
		{
			name: "dash timestamp",
			line: "00:12:05 - Carol: budget looks fine",
			want: Segment{Speaker: "Carol", Timestamp: "00:12:05", Text: "budget looks fine"},
		},
		{
			name: "en dash timestamp",
			line: "00:12 – Carol: budget looks fine",
			want: Segment{Speaker: "Carol", Timestamp: "00:12", Text: "budget looks fine"},
		},
		{
			name: "em dash timestamp",
			line: "00:12 — Dave: noted",
			want: Segment{Speaker: "Dave", Timestamp: "00:12", Text: "noted"},
		},
		{
			name: "paren timestamp",
			line: "Erin (01:02:03): let's revisit next week",
			want: Segment{Speaker: "Erin", Timestamp: "01:02:03", Text: "let's revisit next week"},
		},
		{
			name: "bare speaker",
			line: "Frank: I'll take that one",
			want: Segment{Speaker: "Frank", Timestamp: "00:00", Text: "I'll take that one"},
		},
		{
			name: "bare speaker with empty text",
			line: "Frank: ",
			want: Segment{Speaker: "Frank", Timestamp: "00:00", Text: ""},
		},
		{
			name: "surrounding whitespace trimmed",
			line: "[00:01]   Grace  :   hello there  ",
			want: Segment{Speaker: "Grace", Timestamp: "00:01", Text: "hello there"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ClassifyLine(tc.line)
			if !ok {
				t.Fatalf("expected %q to classify", tc.line)
			}
			if got != tc.want {
				t.Fatalf("classified %q as %+v, want %+v", tc.line, got, tc.want)
			}
		})
	}
}

func TestClassifyLineNoMatch(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"just some free text",
		"lowercase: not a speaker label",
		"a sentence with a trailing colon:",
	}
	for _, line := range lines {
		if seg, ok := ClassifyLine(line); ok {
			t.Fatalf("expected %q not to classify, got %+v", line, seg)
		}
	}
}

func TestClassifyLineBracketBeatsBare(t *testing.T) {
	// Priority order: the bracketed timestamp pattern must win even though the
	// remainder would also satisfy the bare speaker pattern.
	seg, ok := ClassifyLine("[00:10] Alice: hello")
	if !ok {
		t.Fatal("expected line to classify")
	}
	if seg.Timestamp != "00:10" {
		t.Fatalf("expected bracket pattern to win, got timestamp %q", seg.Timestamp)
	}
}

func TestClassifyLineDashBeatsParen(t *testing.T) {
	// A dash-timestamp line whose speaker portion contains parentheses must be
	// read by the dash pattern first.
	seg, ok := ClassifyLine("00:10 - Alice: see item (00:20): done")
	if !ok {
		t.Fatal("expected line to classify")
	}
	if seg.Speaker != "Alice" || seg.Timestamp != "00:10" {
		t.Fatalf("expected dash pattern to win, got %+v", seg)
	}
}

func TestClassifyLineSpeakerNeverContainsColon(t *testing.T) {
	seg, ok := ClassifyLine("[00:00] Alice: note: follow up")
	if !ok {
		t.Fatal("expected line to classify")
	}
	if seg.Speaker != "Alice" {
		t.Fatalf("speaker capture crossed a colon: %+v", seg)
	}
	if seg.Text != "note: follow up" {
		t.Fatalf("unexpected text %q", seg.Text)
	}
}
