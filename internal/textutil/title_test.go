package textutil

import "testing"

func TestTitleFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/tmp/weekly_planning-sync.txt", "Weekly Planning Sync"},
		{"standup.2026.08.31.txt", "Standup 2026 08 31"},
		{"notes.txt", "Notes"},
		{"", "Untitled Meeting"},
		{"---.txt", "Untitled Meeting"},
	}
	for _, tc := range cases {
		if got := TitleFromPath(tc.path); got != tc.want {
			t.Errorf("TitleFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
