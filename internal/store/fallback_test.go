// ABOUTME: Tests for the remote-then-local fallback searcher
// ABOUTME: Uses fake searchers to control the primary path's behavior
package store

import (
	"context"
	"errors"
	"testing"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

type fakeSearcher struct {
	results []models.SearchResult
	err     error
	calls   int
}

func (f *fakeSearcher) Search(_ context.Context, _ []float64, _ SearchOptions) ([]models.SearchResult, error) {
	f.calls++
	return f.results, f.err
}

func TestFallbackPrefersPrimary(t *testing.T) {
	primary := &fakeSearcher{results: []models.SearchResult{{Text: "remote hit", Score: 0.9}}}
	fallback := &fakeSearcher{results: []models.SearchResult{{Text: "local hit", Score: 0.8}}}

	fs := NewFallbackSearcher(primary, fallback)
	results, err := fs.Search(context.Background(), []float64{1}, DefaultSearchOptions())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Text != "remote hit" {
		t.Errorf("got %v, want the primary result", results)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times, want 0", fallback.calls)
	}
}

func TestFallbackOnIndexNotFound(t *testing.T) {
	primary := &fakeSearcher{err: ErrIndexNotFound}
	fallback := &fakeSearcher{results: []models.SearchResult{{Text: "local hit", Score: 0.8}}}

	fs := NewFallbackSearcher(primary, fallback)
	results, err := fs.Search(context.Background(), []float64{1}, DefaultSearchOptions())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Text != "local hit" {
		t.Errorf("got %v, want the fallback result", results)
	}
}

func TestFallbackPropagatesOtherErrors(t *testing.T) {
	primary := &fakeSearcher{err: errors.New("connection refused")}
	fallback := &fakeSearcher{}

	fs := NewFallbackSearcher(primary, fallback)
	_, err := fs.Search(context.Background(), []float64{1}, DefaultSearchOptions())
	if err == nil {
		t.Fatal("Search returned nil error, want the primary error")
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times, want 0", fallback.calls)
	}
}
