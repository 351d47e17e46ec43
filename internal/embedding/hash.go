// ABOUTME: Deterministic hash-based embedder for offline use and tests
// ABOUTME: Maps token hashes into a fixed-width bag-of-words style unit vector
package embedding

import (
	"context"
	"hash/fnv"
	"strings"
)

// HashEmbedder produces deterministic embeddings without any network calls.
// Each token is hashed into a bucket of the output vector, so texts sharing
// words produce similar vectors. Useful for tests and API-key-less setups.
type HashEmbedder struct {
	dimension int
}

// NewHashEmbedder creates a hash embedder with the given output dimension
func NewHashEmbedder(dimension int) *HashEmbedder {
	if dimension <= 0 {
		dimension = 256
	}
	return &HashEmbedder{dimension: dimension}
}

// Dimension returns the width of vectors this embedder produces
func (e *HashEmbedder) Dimension() int {
	return e.dimension
}

// Embed generates a normalized bag-of-words vector for text
func (e *HashEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, e.dimension)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(token))
		bucket := int(h.Sum32()) % e.dimension
		if bucket < 0 {
			bucket += e.dimension
		}
		vec[bucket]++
	}
	return Normalize(vec), nil
}

// EmbedBatch generates normalized vectors for texts, preserving order
func (e *HashEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vec, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}
