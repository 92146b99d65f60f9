package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minutes/internal/logging"
	"minutes/internal/services"
)

func TestNewConsoleWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minutes.log")
	logger, err := logging.New(logging.Options{
		Level:       "debug",
		Format:      "console",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("transcript parsed", logging.Int("segments", 3))
	logger.Debug("stage started")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "INFO") || !strings.Contains(content, "transcript parsed") {
		t.Fatalf("unexpected log content: %q", content)
	}
	if !strings.Contains(content, "segments=3") {
		t.Fatalf("expected key=value fields: %q", content)
	}
	if !strings.Contains(content, "stage started") {
		t.Fatalf("expected debug line at debug level: %q", content)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minutes.log")
	logger, err := logging.New(logging.Options{
		Level:       "warn",
		Format:      "console",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("should be dropped")
	logger.Warn("should be kept")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "should be dropped") {
		t.Fatalf("info line leaked past warn level: %q", content)
	}
	if !strings.Contains(content, "should be kept") {
		t.Fatalf("warn line missing: %q", content)
	}
}

func TestNewJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minutes.log")
	logger, err := logging.New(logging.Options{
		Format:      "json",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("summary generated", logging.Int("key_topics", 2))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `"msg":"summary generated"`) {
		t.Fatalf("unexpected json log: %q", content)
	}
	if !strings.Contains(content, `"key_topics":2`) {
		t.Fatalf("expected structured field: %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWithContextAddsFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minutes.log")
	logger, err := logging.New(logging.Options{
		Format:      "console",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := services.WithMeetingID(context.Background(), "m-1")
	ctx = services.WithStage(ctx, "summarize")

	logging.WithContext(ctx, logger).Info("stage completed")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "meeting_id=m-1") || !strings.Contains(content, "stage=summarize") {
		t.Fatalf("expected context fields: %q", content)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Info("discarded")
	if logger.Enabled(context.Background(), 0) {
		t.Fatal("expected nop logger to be disabled")
	}
}
