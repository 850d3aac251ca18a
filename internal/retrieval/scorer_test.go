package retrieval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/evidence-vault/internal/types"
)

func TestLexicalScorer_CountsSharedKeywords(t *testing.T) {
	scorer := NewLexicalScorer()

	candidates := []types.EvidenceItem{
		{
			Title:       "Database performance optimization",
			Description: "Optimized slow database queries in the reporting stack",
		},
	}

	scores, err := scorer.Score(context.Background(), "Optimized database query performance", candidates)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.GreaterOrEqual(t, scores[0], 2.0)
}

func TestLexicalScorer_ExcludesBelowMinimumOverlap(t *testing.T) {
	scorer := NewLexicalScorer()

	candidates := []types.EvidenceItem{
		{
			Title:       "Organized the holiday party",
			Description: "Booked a venue and catering",
		},
		{
			Title:       "Improved team velocity",
			Description: "Introduced database migration reviews",
		},
	}

	scores, err := scorer.Score(context.Background(), "Optimized database query performance", candidates)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, ScoreExcluded, scores[0])
	assert.Equal(t, ScoreExcluded, scores[1])
}

func TestLexicalScorer_StopWordsDoNotCount(t *testing.T) {
	scorer := NewLexicalScorer()

	candidates := []types.EvidenceItem{
		{
			Title:       "Shipped the new onboarding flow",
			Description: "For the mobile app with the design team",
		},
	}

	// Overlap is only stop words ("the", "with", "for")
	scores, err := scorer.Score(context.Background(), "Worked with the vendor for the audit", candidates)
	require.NoError(t, err)
	assert.Equal(t, ScoreExcluded, scores[0])
}
