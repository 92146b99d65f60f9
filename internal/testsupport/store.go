package testsupport

import (
	"context"
	"testing"

	"minutes/internal/config"
	"minutes/internal/meetings"
)

// MustOpenStore opens a meetings.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *meetings.Store {
	t.Helper()

	store, err := meetings.Open(cfg)
	if err != nil {
		t.Fatalf("meetings.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewMeeting creates a pending meeting record for tests using the provided store.
func NewMeeting(t testing.TB, store *meetings.Store, id, title, transcript string) *meetings.Meeting {
	t.Helper()

	meeting, err := store.Create(context.Background(), id, title, transcript)
	if err != nil {
		t.Fatalf("store.Create: %v", err)
	}
	return meeting
}
