// ABOUTME: Generator that falls back to a secondary when the primary fails to start
// ABOUTME: Keeps the chat endpoint answering even when the LLM is unreachable
package generate

import (
	"context"
	"log"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

// FailoverGenerator tries the primary generator and, if it cannot open a
// stream at all, switches to the fallback. Errors mid-stream are not
// retried, partial output has already been sent.
type FailoverGenerator struct {
	primary  Generator
	fallback Generator
}

// NewFailoverGenerator composes a primary and fallback generator
func NewFailoverGenerator(primary, fallback Generator) *FailoverGenerator {
	return &FailoverGenerator{primary: primary, fallback: fallback}
}

// Generate opens a stream from the primary, falling back on open failure
func (f *FailoverGenerator) Generate(ctx context.Context, results []models.SearchResult, query string, history []models.Turn) (<-chan Event, error) {
	events, err := f.primary.Generate(ctx, results, query, history)
	if err == nil {
		return events, nil
	}

	log.Printf("Primary generator unavailable, using template responses: %v", err)
	return f.fallback.Generate(ctx, results, query, history)
}
