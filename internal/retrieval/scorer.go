// Package retrieval finds the evidence items that can support a resume
// bullet, ranked by relevance under temporal and organizational constraints.
package retrieval

import (
	"context"

	"github.com/jonathan/evidence-vault/internal/taxonomy"
	"github.com/jonathan/evidence-vault/internal/types"
)

// ScoreExcluded marks a candidate that fails the scorer's own minimum and
// must not be returned regardless of rank.
const ScoreExcluded = -1.0

// minKeywordOverlap is the minimum number of shared keyword tokens for a
// candidate to be considered at all in lexical mode.
const minKeywordOverlap = 2

// SimilarityScorer scores evidence candidates against a bullet text. The two
// implementations (lexical and embedding) are interchangeable; which one runs
// is decided at construction time, never at call time.
type SimilarityScorer interface {
	// Score returns one relevance score per candidate, in candidate order.
	// ScoreExcluded marks candidates below the scorer's minimum.
	Score(ctx context.Context, bulletText string, candidates []types.EvidenceItem) ([]float64, error)
}

// LexicalScorer scores by shared-keyword count after stop-word removal.
// It has no external dependencies and is always available as the fallback.
type LexicalScorer struct{}

// NewLexicalScorer creates the dependency-free keyword-overlap scorer
func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{}
}

// Score counts keyword tokens shared between the bullet and each candidate's
// title plus description. Candidates sharing fewer than two tokens are excluded.
func (s *LexicalScorer) Score(_ context.Context, bulletText string, candidates []types.EvidenceItem) ([]float64, error) {
	bulletKeywords := taxonomy.Keywords(bulletText)

	scores := make([]float64, len(candidates))
	for i, candidate := range candidates {
		evidenceKeywords := taxonomy.Keywords(candidate.Title + " " + candidate.Description)

		overlap := 0
		for keyword := range bulletKeywords {
			if _, ok := evidenceKeywords[keyword]; ok {
				overlap++
			}
		}

		if overlap < minKeywordOverlap {
			scores[i] = ScoreExcluded
			continue
		}
		scores[i] = float64(overlap)
	}

	return scores, nil
}
