package meetings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"minutes/internal/config"
)

// Store manages meeting persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the meetings database and ensures the
// schema is in place. Schema initialization is serialized across processes
// with a file lock next to the database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "meetings.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}

	lock := flock.New(dbPath + ".lock")
	if err := lock.Lock(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("acquire schema lock: %w", err)
	}
	schemaErr := store.initSchema(context.Background())
	if unlockErr := lock.Unlock(); unlockErr != nil && schemaErr == nil {
		schemaErr = fmt.Errorf("release schema lock: %w", unlockErr)
	}
	if schemaErr != nil {
		_ = db.Close()
		return nil, schemaErr
	}

	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Create inserts a new pending meeting and returns the stored record.
func (s *Store) Create(ctx context.Context, id, title, rawTranscript string) (*Meeting, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO meetings (
            id, title, status, raw_transcript, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		title,
		StatusPending,
		rawTranscript,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert meeting: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID fetches a meeting by identifier. A missing record returns nil
// without an error.
func (s *Store) GetByID(ctx context.Context, id string) (*Meeting, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+meetingColumns+` FROM meetings WHERE id = ?`, id)
	meeting, err := scanMeeting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	return meeting, nil
}

// Update persists changes to an existing meeting.
func (s *Store) Update(ctx context.Context, meeting *Meeting) error {
	if meeting == nil {
		return errors.New("meeting is nil")
	}
	meeting.UpdatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE meetings
         SET title = ?, status = ?, raw_transcript = ?, parsed_transcript = ?,
             participants_json = ?, summary = ?, key_topics_json = ?,
             decisions_json = ?, action_items_json = ?, error_message = ?,
             updated_at = ?
         WHERE id = ?`,
		meeting.Title,
		meeting.Status,
		meeting.RawTranscript,
		nullableString(meeting.ParsedTranscript),
		nullableString(meeting.ParticipantsJSON),
		nullableString(meeting.Summary),
		nullableString(meeting.KeyTopicsJSON),
		nullableString(meeting.DecisionsJSON),
		nullableString(meeting.ActionItemsJSON),
		nullableString(meeting.ErrorMessage),
		meeting.UpdatedAt.Format(time.RFC3339Nano),
		meeting.ID,
	)
	if err != nil {
		return fmt.Errorf("update meeting: %w", err)
	}
	return nil
}

// List returns meetings filtered by status set (or all meetings when no
// status is provided), newest first.
func (s *Store) List(ctx context.Context, statuses ...Status) ([]*Meeting, error) {
	var (
		rows *sql.Rows
		err  error
	)

	baseQuery := `SELECT ` + meetingColumns + ` FROM meetings`
	orderClause := ` ORDER BY created_at DESC`

	if len(statuses) == 0 {
		rows, err = s.db.QueryContext(ctx, baseQuery+orderClause)
	} else {
		placeholders := makePlaceholders(len(statuses))
		args := make([]any, len(statuses))
		for i, status := range statuses {
			args[i] = status
		}
		query := baseQuery + ` WHERE status IN (` + placeholders + `)` + orderClause
		rows, err = s.db.QueryContext(ctx, query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer rows.Close()

	var items []*Meeting
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, meeting)
	}
	return items, rows.Err()
}

// Remove deletes a meeting and reports whether a record was removed.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM meetings WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete meeting: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}
