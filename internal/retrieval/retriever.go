package retrieval

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/evidence-vault/internal/types"
	"github.com/jonathan/evidence-vault/internal/vault"
)

// maxResults caps how many supporting evidence items one lookup returns
const maxResults = 5

// Retriever finds the evidence items applicable to a bullet, ranked by
// similarity. A semantic scorer is used when configured; the lexical scorer
// is the always-available fallback.
type Retriever struct {
	store    vault.Store
	semantic SimilarityScorer
	lexical  *LexicalScorer
	filter   Filter
	logger   *zap.Logger
}

// RetrieverOption configures a Retriever
type RetrieverOption func(*Retriever)

// WithSemanticScorer enables semantic similarity scoring. Lexical scoring
// remains the fallback when the semantic call fails.
func WithSemanticScorer(scorer SimilarityScorer) RetrieverOption {
	return func(r *Retriever) {
		r.semantic = scorer
	}
}

// WithFilter overrides the default applicability filter
func WithFilter(filter Filter) RetrieverOption {
	return func(r *Retriever) {
		r.filter = filter
	}
}

// NewRetriever creates a Retriever over the given store
func NewRetriever(store vault.Store, logger *zap.Logger, opts ...RetrieverOption) *Retriever {
	r := &Retriever{
		store:   store,
		lexical: NewLexicalScorer(),
		filter:  NewFilter(DefaultConfidenceThreshold),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Filter exposes the applicability filter so the analyzer can re-check
// temporal constraints with the same policy.
func (r *Retriever) Filter() Filter {
	return r.filter
}

// FindSupportingEvidence returns up to five evidence items applicable to the
// bullet under the given context, ordered by relevance score then by most
// recent end date.
func (r *Retriever) FindSupportingEvidence(ctx context.Context, userID, bulletText string, matchContext types.MatchContext) ([]types.EvidenceItem, error) {
	candidates, err := r.store.EvidenceForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch evidence for user: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	applicable := make([]types.EvidenceItem, 0, len(candidates))
	for _, candidate := range candidates {
		if r.filter.IsApplicable(candidate, matchContext) {
			applicable = append(applicable, candidate)
		}
	}
	if len(applicable) == 0 {
		return nil, nil
	}

	scores := r.score(ctx, bulletText, applicable)

	type scored struct {
		item  types.EvidenceItem
		score float64
	}
	ranked := make([]scored, 0, len(applicable))
	for i, item := range applicable {
		if scores[i] == ScoreExcluded {
			continue
		}
		ranked = append(ranked, scored{item: item, score: scores[i]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return endDateOf(ranked[i].item).After(endDateOf(ranked[j].item))
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	results := make([]types.EvidenceItem, len(ranked))
	for i, entry := range ranked {
		results[i] = entry.item
	}
	return results, nil
}

// score runs the semantic scorer when configured, degrading silently to the
// lexical scorer on failure.
func (r *Retriever) score(ctx context.Context, bulletText string, candidates []types.EvidenceItem) []float64 {
	if r.semantic != nil {
		scores, err := r.semantic.Score(ctx, bulletText, candidates)
		if err == nil {
			return scores
		}
		r.logger.Warn("semantic scoring failed, falling back to lexical overlap", zap.Error(err))
	}

	scores, _ := r.lexical.Score(ctx, bulletText, candidates)
	return scores
}

// endDateOf resolves an item's end date, treating ongoing work as current
func endDateOf(item types.EvidenceItem) time.Time {
	if item.EndDate == "" {
		return time.Now()
	}
	parsed, err := types.ParseDate(item.EndDate)
	if err != nil {
		return time.Now()
	}
	return parsed
}
