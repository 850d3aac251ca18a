package retrieval

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jonathan/evidence-vault/internal/llm"
	"github.com/jonathan/evidence-vault/internal/types"
)

// defaultEmbedTimeout bounds the external embedding call. The lexical
// fallback is always available synchronously, so a short deadline is safe.
const defaultEmbedTimeout = 3 * time.Second

// EmbeddingScorer scores candidates by cosine similarity of sentence
// embeddings. Any provider failure is returned to the caller, which falls
// back to the lexical scorer.
type EmbeddingScorer struct {
	embedder llm.Embedder
	timeout  time.Duration
}

// NewEmbeddingScorer creates a semantic scorer over the given embedder.
// A non-positive timeout uses the default deadline.
func NewEmbeddingScorer(embedder llm.Embedder, timeout time.Duration) *EmbeddingScorer {
	if timeout <= 0 {
		timeout = defaultEmbedTimeout
	}
	return &EmbeddingScorer{embedder: embedder, timeout: timeout}
}

// Score embeds the bullet and all candidates in one batch and returns cosine
// similarities against the bullet embedding.
func (s *EmbeddingScorer) Score(ctx context.Context, bulletText string, candidates []types.EvidenceItem) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	texts := make([]string, 0, len(candidates)+1)
	texts = append(texts, bulletText)
	for _, candidate := range candidates {
		texts = append(texts, searchableText(candidate))
	}

	embeddings, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to score candidates semantically: %w", err)
	}

	bulletEmbedding := embeddings[0]
	scores := make([]float64, len(candidates))
	for i := range candidates {
		scores[i] = cosineSimilarity(bulletEmbedding, embeddings[i+1])
	}

	return scores, nil
}

// searchableText builds the text an evidence item is matched on
func searchableText(item types.EvidenceItem) string {
	text := item.Title + " " + item.Description
	for _, skill := range item.Skills {
		text += " " + skill
	}
	return text
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// or 0 when either vector is empty or zero-length.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
