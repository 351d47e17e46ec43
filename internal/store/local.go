// ABOUTME: Brute-force cosine search over the sqlite-backed store
// ABOUTME: Loads candidate rows, scores in memory, returns the top matches
package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

// LocalSearcher performs exhaustive cosine search against the store.
// It always works when the store does, making it the fallback path.
type LocalSearcher struct {
	store *Store
}

// NewLocalSearcher creates a searcher over the given store
func NewLocalSearcher(s *Store) *LocalSearcher {
	return &LocalSearcher{store: s}
}

// Search scores every stored record against vector and returns up to
// opts.MaxResults matches at or above opts.MinScore, best first.
func (ls *LocalSearcher) Search(ctx context.Context, vector []float64, opts SearchOptions) ([]models.SearchResult, error) {
	if len(vector) != ls.store.dimension {
		return nil, fmt.Errorf("query vector dimension %d, want %d", len(vector), ls.store.dimension)
	}

	records, err := ls.store.Records(ctx, opts.Category)
	if err != nil {
		return nil, err
	}

	type scored struct {
		record Record
		score  float64
	}
	matches := make([]scored, 0, len(records))
	for _, record := range records {
		stored, err := bytesToVector(record.Vector)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", record.ChunkID, err)
		}
		score := cosineSimilarity(vector, stored)
		if score >= opts.MinScore {
			matches = append(matches, scored{record: record, score: score})
		}
	}

	// stable keeps tied scores in chunk id order
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	limit := opts.MaxResults
	if limit <= 0 || limit > len(matches) {
		limit = len(matches)
	}

	results := make([]models.SearchResult, 0, limit)
	for _, m := range matches[:limit] {
		result, err := m.record.toResult(m.score)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
