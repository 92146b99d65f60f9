package analysis

import (
	"reflect"
	"testing"
)

func TestApplyReplacesOnlyPresentFields(t *testing.T) {
	state := NewState("m-1", "Planning", "raw text")
	state.Summary = "original summary"
	state.Decisions = []Decision{{Decision: "keep the old stack"}}

	merged := state.Apply(Update{
		Decisions: []Decision{{Decision: "use Postgres"}, {Decision: "ship Friday"}},
	})

	if merged.Summary != "original summary" {
		t.Fatalf("absent field was touched: %q", merged.Summary)
	}
	if len(merged.Decisions) != 2 || merged.Decisions[0].Decision != "use Postgres" {
		t.Fatalf("expected decisions to be wholly replaced, got %+v", merged.Decisions)
	}
}

func TestApplyListReplacementNotConcatenation(t *testing.T) {
	state := NewState("m-1", "Planning", "raw")
	state.KeyTopics = []string{"budget", "hiring"}

	merged := state.Apply(Update{KeyTopics: []string{"roadmap"}})
	if !reflect.DeepEqual(merged.KeyTopics, []string{"roadmap"}) {
		t.Fatalf("expected whole-value replacement, got %v", merged.KeyTopics)
	}

	// Present-but-empty replaces with empty; nil leaves untouched.
	merged = merged.Apply(Update{KeyTopics: []string{}})
	if len(merged.KeyTopics) != 0 {
		t.Fatalf("expected empty replacement, got %v", merged.KeyTopics)
	}
	merged = merged.Apply(Update{})
	if merged.KeyTopics == nil || len(merged.KeyTopics) != 0 {
		t.Fatalf("expected untouched empty list, got %v", merged.KeyTopics)
	}
}

func TestApplyErrorOverwritesNotAccumulates(t *testing.T) {
	state := NewState("m-1", "Planning", "raw")
	state = state.Apply(Update{ErrorMessage: stringPtr("summarize: generate summary: boom")})
	state = state.Apply(Update{ErrorMessage: stringPtr("decide: parse decisions: bad json")})

	if state.ErrorMessage != "decide: parse decisions: bad json" {
		t.Fatalf("expected latest error only, got %q", state.ErrorMessage)
	}
}

func TestTranscriptFallsBackToRaw(t *testing.T) {
	state := NewState("m-1", "Planning", "raw transcript")
	if got := state.Transcript(); got != "raw transcript" {
		t.Fatalf("expected raw fallback, got %q", got)
	}
	state.ParsedTranscript = "[00:00] Alice: hi"
	if got := state.Transcript(); got != "[00:00] Alice: hi" {
		t.Fatalf("expected parsed transcript, got %q", got)
	}
}

func TestParticipantsLabel(t *testing.T) {
	state := NewState("m-1", "Planning", "raw")
	if got := state.ParticipantsLabel(); got != "Not specified" {
		t.Fatalf("expected Not specified, got %q", got)
	}
	state.Participants = []string{"Alice", "Bob"}
	if got := state.ParticipantsLabel(); got != "Alice, Bob" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("héllo", 3); got != "hél" {
		t.Fatalf("expected rune-safe truncation, got %q", got)
	}
	if got := truncateRunes("short", 100); got != "short" {
		t.Fatalf("expected text unchanged, got %q", got)
	}
	if got := truncateRunes("anything", 0); got != "anything" {
		t.Fatalf("expected zero limit to disable truncation, got %q", got)
	}
}
