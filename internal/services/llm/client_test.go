package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func completionPayload(content string) map[string]any {
	return map[string]any{
		"choices": []any{
			map[string]any{
				"message": map[string]any{
					"content": content,
				},
			},
		},
	}
}

func TestClientComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		var payload chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(payload.Messages) != 2 || payload.Messages[0].Role != "system" {
			t.Fatalf("unexpected messages %+v", payload.Messages)
		}
		if err := json.NewEncoder(w).Encode(completionPayload("a concise summary")); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"})
	content, err := client.Complete(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if content != "a concise summary" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestClientCompleteDeltaFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"choices": []any{
				map[string]any{
					"delta": map[string]any{"content": "streamed content"},
				},
			},
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo"})
	content, err := client.Complete(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if content != "streamed content" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestClientCompleteMissingAPIKey(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:0", Model: "demo"})
	if _, err := client.Complete(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestClientCompleteRetriesServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if err := json.NewEncoder(w).Encode(completionPayload("after retry")); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(
		Config{APIKey: "test", BaseURL: server.URL, Model: "demo"},
		WithRetryBackoff(time.Millisecond, time.Millisecond),
		WithSleeper(func(time.Duration) {}),
	)
	content, err := client.Complete(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if content != "after retry" {
		t.Fatalf("unexpected content %q", content)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", calls.Load())
	}
}

func TestClientCompleteDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
	}))
	defer server.Close()

	client := NewClient(
		Config{APIKey: "bad", BaseURL: server.URL, Model: "demo"},
		WithSleeper(func(time.Duration) {}),
	)
	if _, err := client.Complete(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected error for unauthorized response")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single call, got %d", calls.Load())
	}
}

func TestClientCompleteEmptyChoicesRetriesThenFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(
		Config{APIKey: "test", BaseURL: server.URL, Model: "demo"},
		WithRetryMaxAttempts(2),
		WithSleeper(func(time.Duration) {}),
	)
	if _, err := client.Complete(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestParseRetryAfterSeconds(t *testing.T) {
	delay, ok := parseRetryAfter("7")
	if !ok || delay != 7*time.Second {
		t.Fatalf("expected 7s, got %v ok=%v", delay, ok)
	}
	if _, ok := parseRetryAfter("-1"); ok {
		t.Fatal("expected negative retry-after to be rejected")
	}
	if _, ok := parseRetryAfter(""); ok {
		t.Fatal("expected empty retry-after to be rejected")
	}
}
