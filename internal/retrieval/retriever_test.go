package retrieval

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/evidence-vault/internal/types"
	"github.com/jonathan/evidence-vault/internal/vault"
)

// failingScorer always errors, forcing the lexical fallback.
type failingScorer struct{}

func (failingScorer) Score(context.Context, string, []types.EvidenceItem) ([]float64, error) {
	return nil, errors.New("provider unavailable")
}

func seedStore(t *testing.T, items []types.EvidenceInput) vault.Store {
	t.Helper()
	store := vault.NewMemoryStore()
	for i := range items {
		_, err := store.AddEvidence(context.Background(), "user-1", &items[i])
		require.NoError(t, err)
	}
	return store
}

func relevantInput(title string) types.EvidenceInput {
	return types.EvidenceInput{
		Title:       title,
		Description: "Optimized database query performance for the reporting stack",
		Company:     "Acme Corp",
		StartDate:   "2022-01-01",
		EndDate:     "2022-12-31",
	}
}

func TestFindSupportingEvidence_EmptyStore(t *testing.T) {
	retriever := NewRetriever(vault.NewMemoryStore(), zap.NewNop())

	results, err := retriever.FindSupportingEvidence(context.Background(), "user-1", "Optimized database queries", currentContext())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindSupportingEvidence_FiltersInapplicable(t *testing.T) {
	otherCompany := relevantInput("Query tuning at a previous job")
	otherCompany.Company = "Other Inc"

	lowConfidence := relevantInput("Query tuning, barely remembered")
	confidence := 0.4
	lowConfidence.Confidence = &confidence

	store := seedStore(t, []types.EvidenceInput{
		relevantInput("Reporting database overhaul"),
		otherCompany,
		lowConfidence,
	})
	retriever := NewRetriever(store, zap.NewNop())

	results, err := retriever.FindSupportingEvidence(context.Background(), "user-1", "Optimized database query performance", currentContext())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Reporting database overhaul", results[0].Title)
}

func TestFindSupportingEvidence_DropsLexicallyUnrelated(t *testing.T) {
	unrelated := types.EvidenceInput{
		Title:       "Organized quarterly offsite",
		Description: "Planned venue and travel logistics",
		Company:     "Acme Corp",
		StartDate:   "2022-01-01",
		EndDate:     "2022-12-31",
	}

	store := seedStore(t, []types.EvidenceInput{relevantInput("Reporting database overhaul"), unrelated})
	retriever := NewRetriever(store, zap.NewNop())

	results, err := retriever.FindSupportingEvidence(context.Background(), "user-1", "Optimized database query performance", currentContext())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Reporting database overhaul", results[0].Title)
}

func TestFindSupportingEvidence_CapsAtFive(t *testing.T) {
	inputs := make([]types.EvidenceInput, 8)
	for i := range inputs {
		inputs[i] = relevantInput(fmt.Sprintf("Database optimization round %d", i))
	}

	store := seedStore(t, inputs)
	retriever := NewRetriever(store, zap.NewNop())

	results, err := retriever.FindSupportingEvidence(context.Background(), "user-1", "Optimized database query performance", currentContext())
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestFindSupportingEvidence_SemanticFailureFallsBackToLexical(t *testing.T) {
	store := seedStore(t, []types.EvidenceInput{relevantInput("Reporting database overhaul")})
	retriever := NewRetriever(store, zap.NewNop(), WithSemanticScorer(failingScorer{}))

	results, err := retriever.FindSupportingEvidence(context.Background(), "user-1", "Optimized database query performance", currentContext())
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
