package transcript

import (
	"reflect"
	"testing"
)

func TestParseMixedFormats(t *testing.T) {
	raw := "[00:00] Alice: Hello team\nBob: hi there\nmore text"
	segments := Parse(raw)

	want := []Segment{
		{Speaker: "Alice", Timestamp: "00:00", Text: "Hello team"},
		{Speaker: "Bob", Timestamp: "00:00", Text: "hi there more text"},
	}
	if !reflect.DeepEqual(segments, want) {
		t.Fatalf("got %+v, want %+v", segments, want)
	}
}

func TestParseLeadingUnparseableText(t *testing.T) {
	segments := Parse("Just some text with no speaker marker")
	want := []Segment{
		{Speaker: "Unknown", Timestamp: "00:00", Text: "Just some text with no speaker marker"},
	}
	if !reflect.DeepEqual(segments, want) {
		t.Fatalf("got %+v, want %+v", segments, want)
	}
}

func TestParseContinuationSpansBlankLines(t *testing.T) {
	raw := "[00:01] Alice: first point\n\nsecond point\n"
	segments := Parse(raw)

	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(segments), segments)
	}
	if segments[0].Text != "first point second point" {
		t.Fatalf("unexpected continuation text %q", segments[0].Text)
	}
}

func TestParseMultipleContinuations(t *testing.T) {
	raw := "Carol (10:15): we should\nprobably wait\nuntil Monday\n14:30 - Dave: agreed"
	segments := Parse(raw)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segments), segments)
	}
	if segments[0].Speaker != "Carol" || segments[0].Text != "we should probably wait until Monday" {
		t.Fatalf("unexpected first segment %+v", segments[0])
	}
	if segments[1].Speaker != "Dave" || segments[1].Timestamp != "14:30" {
		t.Fatalf("unexpected second segment %+v", segments[1])
	}
}

func TestParseEmptyInput(t *testing.T) {
	if segments := Parse(""); len(segments) != 0 {
		t.Fatalf("expected no segments, got %+v", segments)
	}
	if segments := Parse("\n\n  \n"); len(segments) != 0 {
		t.Fatalf("expected no segments for blank input, got %+v", segments)
	}
}

func TestParseLeadingProseBeforeFirstSpeaker(t *testing.T) {
	raw := "Meeting notes follow.\n[09:00] Alice: let's begin"
	segments := Parse(raw)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segments), segments)
	}
	if segments[0].Speaker != "Unknown" || segments[0].Text != "Meeting notes follow." {
		t.Fatalf("unexpected opening segment %+v", segments[0])
	}
	if segments[1].Speaker != "Alice" || segments[1].Timestamp != "09:00" {
		t.Fatalf("unexpected second segment %+v", segments[1])
	}
}
