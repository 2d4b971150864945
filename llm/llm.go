// Package llm defines the chat and embeddings collaborators used around the
// game engine and an OpenAI-compatible HTTP client for them. The engine
// itself never depends on this package.
package llm

import (
	"context"
	"errors"
	"math"
)

// Message is a role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompleter returns the free-text reply to an ordered list of messages.
type ChatCompleter interface {
	Complete(ctx context.Context, model string, messages []Message) (string, error)
}

// Embedder returns a fixed-length vector for a piece of text.
type Embedder interface {
	Embed(ctx context.Context, text, model string, dimensions int) ([]float64, error)
}

// CosineSimilarity returns the cosine of the angle between a and b.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.New("vectors have different lengths")
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, errors.New("zero vector")
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}
