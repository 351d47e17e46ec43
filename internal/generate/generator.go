// ABOUTME: Generator interface and streamed event type for chat responses
// ABOUTME: Every stream ends with exactly one Done or Err event
package generate

import (
	"context"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

// Event is one item in a response stream. Exactly one of the fields is
// meaningful: Chunk carries text, Done marks clean completion, Err marks
// failure. After Done or Err the channel is closed.
type Event struct {
	Chunk string
	Done  bool
	Err   error
}

// Generator produces a streamed grounded response from retrieval results
type Generator interface {
	Generate(ctx context.Context, results []models.SearchResult, query string, history []models.Turn) (<-chan Event, error)
}
