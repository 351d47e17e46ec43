// ABOUTME: OpenAI embedding backend with retry logic and dimension validation
// ABOUTME: Uses text-embedding-3-small and normalizes every returned vector
package embedding

import (
	"context"
	"fmt"
	"sort"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/aasim-shah/portfolio-assistant/internal/util"
)

const (
	// DefaultModel is the embedding model used unless configured otherwise
	DefaultModel = openai.SmallEmbedding3
	// DefaultDimension is the output width of text-embedding-3-small
	DefaultDimension = 1536

	requestTimeout = 30 * time.Second
)

// OpenAIConfig holds settings for the OpenAI embedder
type OpenAIConfig struct {
	APIKey     string
	Model      openai.EmbeddingModel
	Dimension  int
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultOpenAIConfig returns the standard embedder configuration
func DefaultOpenAIConfig(apiKey string) *OpenAIConfig {
	return &OpenAIConfig{
		APIKey:     apiKey,
		Model:      DefaultModel,
		Dimension:  DefaultDimension,
		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
	}
}

// OpenAIEmbedder generates embeddings via the OpenAI API with retry logic
type OpenAIEmbedder struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dimension  int
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIEmbedder creates an embedder with default configuration
func NewOpenAIEmbedder(apiKey string) (*OpenAIEmbedder, error) {
	return NewOpenAIEmbedderWithConfig(DefaultOpenAIConfig(apiKey))
}

// NewOpenAIEmbedderWithConfig creates an embedder with custom configuration
func NewOpenAIEmbedderWithConfig(config *OpenAIConfig) (*OpenAIEmbedder, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if config.Dimension <= 0 {
		return nil, fmt.Errorf("embedding dimension must be positive, got %d", config.Dimension)
	}

	return &OpenAIEmbedder{
		client:     openai.NewClient(config.APIKey),
		model:      config.Model,
		dimension:  config.Dimension,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
	}, nil
}

// Dimension returns the width of vectors this embedder produces
func (e *OpenAIEmbedder) Dimension() int {
	return e.dimension
}

// Embed generates a normalized embedding for a single text
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch generates normalized embeddings for texts, preserving order.
// Transient API failures are retried with exponential backoff.
func (e *OpenAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var lastErr error

	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			if err := util.SleepContext(ctx, util.Backoff(e.retryDelay, attempt)); err != nil {
				return nil, err
			}
		}

		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		resp, err := e.client.CreateEmbeddings(reqCtx, openai.EmbeddingRequestStrings{
			Input: texts,
			Model: e.model,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Data) != len(texts) {
			lastErr = fmt.Errorf("attempt %d: got %d embeddings for %d inputs", attempt+1, len(resp.Data), len(texts))
			continue
		}

		// The API documents Index ordering but we sort to be explicit
		sort.Slice(resp.Data, func(i, j int) bool {
			return resp.Data[i].Index < resp.Data[j].Index
		})

		vectors := make([][]float64, len(resp.Data))
		for i, item := range resp.Data {
			if len(item.Embedding) != e.dimension {
				return nil, fmt.Errorf("embedding dimension mismatch: got %d, want %d", len(item.Embedding), e.dimension)
			}
			vec := make([]float64, len(item.Embedding))
			for j, v := range item.Embedding {
				vec[j] = float64(v)
			}
			vectors[i] = Normalize(vec)
		}
		return vectors, nil
	}

	return nil, fmt.Errorf("failed to generate embeddings after %d attempts: %w", e.maxRetries+1, lastErr)
}
