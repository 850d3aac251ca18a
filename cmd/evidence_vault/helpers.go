package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/evidence-vault/internal/bank"
	"github.com/jonathan/evidence-vault/internal/config"
	"github.com/jonathan/evidence-vault/internal/llm"
	"github.com/jonathan/evidence-vault/internal/retrieval"
	"github.com/jonathan/evidence-vault/internal/synthesis"
	"github.com/jonathan/evidence-vault/internal/vault"
)

// openStore resolves the evidence store for a command. A bank file path takes
// precedence and seeds an in-memory store; otherwise DATABASE_URL must point
// at PostgreSQL. The returned cleanup function releases any connections.
func openStore(ctx context.Context, cfg *config.Config, bankPath string) (vault.Store, func(), error) {
	if bankPath != "" {
		store := vault.NewMemoryStore(vault.WithMaxItemsPerUser(cfg.MaxEvidenceItems))
		b, err := bank.LoadEvidenceBank(bankPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load evidence bank: %w", err)
		}
		for i := range b.Evidence {
			if _, err := store.AddEvidence(ctx, b.UserID, &b.Evidence[i]); err != nil {
				return nil, nil, fmt.Errorf("failed to load evidence item %d: %w", i, err)
			}
		}
		return store, func() {}, nil
	}

	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("either --bank or the DATABASE_URL environment variable is required")
	}

	store, err := vault.ConnectPG(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return store, store.Close, nil
}

// newService assembles the synthesis service over the given store. Semantic
// retrieval is enabled only when a Gemini API key is configured.
func newService(ctx context.Context, cfg *config.Config, store vault.Store, log *zap.Logger) (*synthesis.Service, func(), error) {
	cleanup := func() {}

	opts := []retrieval.RetrieverOption{
		retrieval.WithFilter(retrieval.NewFilter(cfg.ConfidenceThreshold)),
	}
	if cfg.APIKey != "" {
		embedder, err := llm.NewGeminiEmbedder(ctx, cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		cleanup = func() { _ = embedder.Close() }
		opts = append(opts, retrieval.WithSemanticScorer(retrieval.NewEmbeddingScorer(embedder, 0)))
	}

	retriever := retrieval.NewRetriever(store, log, opts...)
	return synthesis.NewService(store, retriever, log), cleanup, nil
}
