package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	embeddingModel = "text-embedding-004"
	embeddingDims  = 768

	// Embedding input cap, roughly the model's token budget.
	maxEmbeddingInput = 40000
)

// EmbeddingService is the embedding provider consumed by search and the
// indexer. Equal inputs must yield comparable vectors; byte-exact
// reproducibility is not required.
type EmbeddingService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateQueryEmbedding(ctx context.Context, skills, domains []string, context string) ([]float32, error)
	Model() string
	Dims() int
}

type embeddingService struct {
	client *genai.Client
	model  string
	dims   int32
}

func NewEmbeddingService(apiKey string) (EmbeddingService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &embeddingService{
		client: client,
		model:  embeddingModel,
		dims:   embeddingDims,
	}, nil
}

// GenerateEmbedding implements EmbeddingService.
func (g *embeddingService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if len(text) > maxEmbeddingInput {
		text = text[:maxEmbeddingInput]
	}

	config := &genai.EmbedContentConfig{
		OutputDimensionality: &g.dims,
	}

	result, err := g.client.Models.EmbedContent(ctx, g.model, genai.Text(text), config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	values := result.Embeddings[0].Values
	if len(values) != int(g.dims) {
		return nil, fmt.Errorf("unexpected embedding size %d, want %d", len(values), g.dims)
	}

	return values, nil
}

// GenerateQueryEmbedding implements EmbeddingService.
func (g *embeddingService) GenerateQueryEmbedding(ctx context.Context, skills, domains []string, context string) ([]float32, error) {
	return g.GenerateEmbedding(ctx, BuildQueryText(skills, domains, context))
}

// Model implements EmbeddingService.
func (g *embeddingService) Model() string {
	return g.model
}

// Dims implements EmbeddingService.
func (g *embeddingService) Dims() int {
	return int(g.dims)
}
