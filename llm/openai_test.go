package llm

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Error(err)
			return
		}
		if req.Model != "gpt-4o" || len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected request %+v", req)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Player 2\n"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(srv.URL+"/", "secret")
	got, err := c.Complete(context.Background(), "gpt-4o", []Message{
		{Role: "system", Content: "rules"},
		{Role: "user", Content: "who wins?"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Player 2" {
		t.Fatalf("expected trimmed reply, got %q", got)
	}
}

func TestEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req embeddingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Error(err)
			return
		}
		if req.Dimensions != 3 || req.Model != "nomic-embed-text" {
			t.Errorf("unexpected request %+v", req)
		}
		w.Write([]byte(`{"data":[{"embedding":[0.5,0.25,1]}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(srv.URL, "")
	v, err := c.Embed(context.Background(), "red shirt", "nomic-embed-text", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != 3 || v[2] != 1 {
		t.Fatalf("unexpected vector %v", v)
	}
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewOpenAIClient(srv.URL, "")
	if _, err := c.Complete(context.Background(), "m", nil); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestCosineSimilarity(t *testing.T) {
	got, err := CosineSimilarity([]float64{1, 0}, []float64{1, 0})
	if err != nil || math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected 1, got %v (%v)", got, err)
	}
	got, err = CosineSimilarity([]float64{1, 0}, []float64{0, 2})
	if err != nil || math.Abs(got) > 1e-9 {
		t.Fatalf("expected 0, got %v (%v)", got, err)
	}
	if _, err := CosineSimilarity([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for different lengths")
	}
	if _, err := CosineSimilarity([]float64{0, 0}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for zero vector")
	}
}
