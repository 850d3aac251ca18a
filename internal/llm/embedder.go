// Package llm wraps the external embedding provider behind a small interface
// so callers can swap it for the deterministic lexical path.
package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultEmbeddingModel is the Gemini model used for sentence embeddings
const defaultEmbeddingModel = "text-embedding-004"

// Embedder produces sentence embeddings for semantic similarity scoring
type Embedder interface {
	// Embed returns one embedding vector per input text, in input order
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the embedder
	Close() error
}

// GeminiEmbedder implements Embedder using the Google Gemini embedding API
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates a Gemini-backed embedder
func NewGeminiEmbedder(ctx context.Context, apiKey string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{
		client: client,
		model:  defaultEmbeddingModel,
	}, nil
}

// Embed generates embeddings for the given texts using a single batched call
func (e *GeminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	model := e.client.EmbeddingModel(e.model)
	batch := model.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	resp, err := model.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to embed contents: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Embeddings))
	}

	embeddings := make([][]float32, len(resp.Embeddings))
	for i, embedding := range resp.Embeddings {
		embeddings[i] = embedding.Values
	}

	return embeddings, nil
}

// Close releases resources held by the underlying client
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
