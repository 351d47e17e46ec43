// ABOUTME: Searcher that prefers the remote index and falls back to local search
// ABOUTME: Only a missing index triggers fallback, other errors propagate
package store

import (
	"context"
	"errors"
	"log"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

// FallbackSearcher tries a primary searcher and falls back to a secondary
// one when the primary reports ErrIndexNotFound. Any other primary error
// is returned as-is so real outages surface instead of silently degrading.
type FallbackSearcher struct {
	primary  Searcher
	fallback Searcher
}

// NewFallbackSearcher composes a primary and fallback search path
func NewFallbackSearcher(primary, fallback Searcher) *FallbackSearcher {
	return &FallbackSearcher{primary: primary, fallback: fallback}
}

// Search runs the primary path, switching to the fallback only when the
// remote index does not exist.
func (fs *FallbackSearcher) Search(ctx context.Context, vector []float64, opts SearchOptions) ([]models.SearchResult, error) {
	results, err := fs.primary.Search(ctx, vector, opts)
	if err == nil {
		return results, nil
	}
	if !errors.Is(err, ErrIndexNotFound) {
		return nil, err
	}

	log.Printf("Vector index not found, using local search")
	return fs.fallback.Search(ctx, vector, opts)
}
