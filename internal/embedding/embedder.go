// ABOUTME: Embedder interface and vector normalization shared by all backends
// ABOUTME: All embedders return unit-length vectors of a fixed dimension
package embedding

import (
	"context"
	"math"
)

// Embedder converts text into fixed-dimension unit vectors
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
	Dimension() int
}

// Normalize scales v to unit length in place and returns it. A zero vector
// is returned unchanged.
func Normalize(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
	return v
}
