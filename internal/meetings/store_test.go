package meetings_test

import (
	"context"
	"fmt"
	"testing"

	"minutes/internal/meetings"
	"minutes/internal/testsupport"
)

func TestOpenInitializesSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	meeting, err := store.Create(ctx, "m-1", "Planning", "[00:00] Alice: hello")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if meeting.Status != meetings.StatusPending {
		t.Fatalf("expected pending status, got %q", meeting.Status)
	}
	if meeting.CreatedAt.IsZero() || meeting.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set: %#v", meeting)
	}

	fetched, err := store.GetByID(ctx, "m-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched == nil || fetched.Title != "Planning" || fetched.RawTranscript != "[00:00] Alice: hello" {
		t.Fatalf("unexpected fetched meeting: %#v", fetched)
	}
}

func TestReopenPreservesData(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := meetings.Open(cfg)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	testsupport.NewMeeting(t, store, "m-1", "Planning", "raw")
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	fetched, err := reopened.GetByID(context.Background(), "m-1")
	if err != nil {
		t.Fatalf("GetByID after reopen failed: %v", err)
	}
	if fetched == nil || fetched.Title != "Planning" {
		t.Fatalf("expected record to survive reopen, got %#v", fetched)
	}
}

func TestGetByIDMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	fetched, err := store.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched != nil {
		t.Fatalf("expected nil for missing meeting, got %#v", fetched)
	}
}

func TestUpdatePersistsAnalysisResults(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	meeting := testsupport.NewMeeting(t, store, "m-1", "Planning", "raw")

	meeting.Status = meetings.StatusAnalyzed
	meeting.ParsedTranscript = "[00:00] Alice: hello"
	meeting.ParticipantsJSON = `["Alice"]`
	meeting.Summary = "A short summary."
	meeting.DecisionsJSON = `[{"decision":"Use Postgres"}]`
	if err := store.Update(ctx, meeting); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	fetched, err := store.GetByID(ctx, "m-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.Status != meetings.StatusAnalyzed {
		t.Fatalf("expected analyzed status, got %q", fetched.Status)
	}
	if fetched.Summary != "A short summary." || fetched.DecisionsJSON != `[{"decision":"Use Postgres"}]` {
		t.Fatalf("analysis fields not persisted: %#v", fetched)
	}
	if !fetched.UpdatedAt.After(fetched.CreatedAt) {
		t.Fatalf("expected updated_at to advance: created=%v updated=%v", fetched.CreatedAt, fetched.UpdatedAt)
	}
}

func TestUpdateNilMeeting(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if err := store.Update(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil meeting")
	}
}

func TestListFiltersByStatus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	for i, status := range []meetings.Status{
		meetings.StatusPending,
		meetings.StatusAnalyzed,
		meetings.StatusFailed,
	} {
		meeting := testsupport.NewMeeting(t, store, fmt.Sprintf("m-%d", i), fmt.Sprintf("Meeting %d", i), "raw")
		meeting.Status = status
		if err := store.Update(ctx, meeting); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 meetings, got %d", len(all))
	}

	done, err := store.List(ctx, meetings.StatusAnalyzed, meetings.StatusFailed)
	if err != nil {
		t.Fatalf("filtered List failed: %v", err)
	}
	if len(done) != 2 {
		t.Fatalf("expected 2 terminal meetings, got %d", len(done))
	}
	for _, meeting := range done {
		if !meeting.Done() {
			t.Fatalf("expected terminal status, got %q", meeting.Status)
		}
	}
}

func TestRemove(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.NewMeeting(t, store, "m-1", "Planning", "raw")

	removed, err := store.Remove(ctx, "m-1")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !removed {
		t.Fatal("expected removal to be reported")
	}

	removed, err = store.Remove(ctx, "m-1")
	if err != nil {
		t.Fatalf("second Remove failed: %v", err)
	}
	if removed {
		t.Fatal("expected no removal for missing meeting")
	}
}

func TestValidStatus(t *testing.T) {
	if !meetings.ValidStatus(meetings.StatusAnalyzing) {
		t.Fatal("expected analyzing to be valid")
	}
	if meetings.ValidStatus(meetings.Status("bogus")) {
		t.Fatal("expected bogus status to be invalid")
	}
}
