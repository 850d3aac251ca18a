package retrieval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/evidence-vault/internal/types"
)

// stubEmbedder returns canned vectors in call order.
type stubEmbedder struct {
	vectors [][]float32
}

func (s *stubEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	return s.vectors[:len(texts)], nil
}

func (s *stubEmbedder) Close() error { return nil }

func TestEmbeddingScorer_RanksByCosineSimilarity(t *testing.T) {
	embedder := &stubEmbedder{vectors: [][]float32{
		{1, 0, 0},       // bullet
		{1, 0, 0},       // identical direction
		{0.5, 0.5, 0.7}, // oblique
		{0, 1, 0},       // orthogonal
	}}
	scorer := NewEmbeddingScorer(embedder, 0)

	candidates := make([]types.EvidenceItem, 3)
	scores, err := scorer.Score(context.Background(), "bullet", candidates)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.InDelta(t, 1.0, scores[0], 1e-9)
	assert.Greater(t, scores[0], scores[1])
	assert.Greater(t, scores[1], scores[2])
	assert.InDelta(t, 0.0, scores[2], 1e-9)
}

func TestCosineSimilarity_DegenerateVectors(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 2}, []float32{1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}
