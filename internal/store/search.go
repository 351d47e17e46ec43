// ABOUTME: Searcher interface and options shared by all search paths
// ABOUTME: Defines the remote-index sentinel error used for fallback
package store

import (
	"context"
	"errors"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

// ErrIndexNotFound signals that the remote index does not exist yet.
// Only this error triggers fallback to the local search path.
var ErrIndexNotFound = errors.New("vector index not found")

// SearchOptions controls a similarity search
type SearchOptions struct {
	MaxResults int
	MinScore   float64
	Category   models.Category
}

// DefaultSearchOptions returns the standard retrieval settings
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxResults: 5,
		MinScore:   0.70,
	}
}

// Searcher finds the stored chunks most similar to a query vector
type Searcher interface {
	Search(ctx context.Context, vector []float64, opts SearchOptions) ([]models.SearchResult, error)
}
