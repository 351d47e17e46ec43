// ABOUTME: Tests for the Qdrant REST client against a fake HTTP server
// ABOUTME: Covers search decoding, the not-found sentinel, and point ids
package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

func TestQdrantSearchDecodesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/portfolio/points/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if body["score_threshold"].(float64) != 0.70 {
			t.Errorf("score_threshold = %v, want 0.70", body["score_threshold"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{
				{
					"score": 0.92,
					"payload": map[string]any{
						"text":     "MERN Stack Development at $30/hour",
						"category": "services",
						"title":    "Service Plan: MERN Stack Development",
						"source":   "service-plans",
					},
				},
			},
		})
	}))
	defer server.Close()

	q := NewQdrantIndex(server.URL, "", "portfolio", 4)
	results, err := q.Search(context.Background(), []float64{1, 0, 0, 0}, DefaultSearchOptions())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Score != 0.92 {
		t.Errorf("Score = %v, want 0.92", results[0].Score)
	}
	if results[0].Category != models.CategoryServices {
		t.Errorf("Category = %s, want services", results[0].Category)
	}
}

func TestQdrantSearchMissingCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":{"error":"Collection not found"}}`, http.StatusNotFound)
	}))
	defer server.Close()

	q := NewQdrantIndex(server.URL, "", "portfolio", 4)
	_, err := q.Search(context.Background(), []float64{1, 0, 0, 0}, DefaultSearchOptions())
	if err != ErrIndexNotFound {
		t.Errorf("err = %v, want ErrIndexNotFound", err)
	}
}

func TestQdrantSearchRejectsWrongDimension(t *testing.T) {
	q := NewQdrantIndex("http://localhost:6333", "", "portfolio", 4)
	_, err := q.Search(context.Background(), []float64{1, 0}, DefaultSearchOptions())
	if err == nil {
		t.Error("Search with wrong dimension returned nil, want error")
	}
}

func TestPointIDStable(t *testing.T) {
	a := PointID("about-main-chunk-0")
	b := PointID("about-main-chunk-0")
	c := PointID("about-main-chunk-1")

	if a != b {
		t.Errorf("PointID not deterministic: %s vs %s", a, b)
	}
	if a == c {
		t.Error("distinct chunk ids produced the same point id")
	}
}
