// ABOUTME: Qdrant REST client serving as the fast remote search path
// ABOUTME: The index mirrors the sqlite store and is rebuilt on every ingestion
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

const pointNamespace = "portfolio-assistant/"

// QdrantIndex talks to a Qdrant instance over its REST API
type QdrantIndex struct {
	baseURL    string
	apiKey     string
	collection string
	dimension  int
	client     *http.Client
}

// NewQdrantIndex creates a client for the given Qdrant endpoint and collection
func NewQdrantIndex(baseURL, apiKey, collection string, dimension int) *QdrantIndex {
	return &QdrantIndex{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		collection: collection,
		dimension:  dimension,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// PointID derives a stable UUID for a chunk so re-ingestion overwrites
// rather than duplicates points.
func PointID(chunkID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(pointNamespace+chunkID)).String()
}

func (q *QdrantIndex) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, q.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if q.apiKey != "" {
		req.Header.Set("api-key", q.apiKey)
	}

	resp, err := q.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode >= 400 {
		return resp.StatusCode, fmt.Errorf("qdrant %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// Recreate drops and recreates the collection with cosine distance
func (q *QdrantIndex) Recreate(ctx context.Context) error {
	// Delete is best-effort, the collection may not exist yet
	q.do(ctx, http.MethodDelete, "/collections/"+q.collection, nil, nil)

	body := map[string]any{
		"vectors": map[string]any{
			"size":     q.dimension,
			"distance": "Cosine",
		},
	}
	if _, err := q.do(ctx, http.MethodPut, "/collections/"+q.collection, body, nil); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", q.collection, err)
	}
	return nil
}

// Upsert writes the given chunks as points, waiting for indexing to finish
func (q *QdrantIndex) Upsert(ctx context.Context, chunks []models.EmbeddedChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	points := make([]map[string]any, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk.Vector) != q.dimension {
			return fmt.Errorf("chunk %s: vector dimension %d, want %d", chunk.ID, len(chunk.Vector), q.dimension)
		}
		points = append(points, map[string]any{
			"id":     PointID(chunk.ID),
			"vector": chunk.Vector,
			"payload": map[string]any{
				"chunk_id": chunk.ID,
				"text":     chunk.Text,
				"category": string(chunk.Category),
				"title":    chunk.Title,
				"source":   chunk.Metadata.Source,
				"entities": chunk.Metadata.Entities,
				"keywords": chunk.Metadata.Keywords,
			},
		})
	}

	body := map[string]any{"points": points}
	if _, err := q.do(ctx, http.MethodPut, "/collections/"+q.collection+"/points?wait=true", body, nil); err != nil {
		return fmt.Errorf("failed to upsert %d points: %w", len(points), err)
	}
	return nil
}

type qdrantSearchResponse struct {
	Result []struct {
		Score   float64        `json:"score"`
		Payload map[string]any `json:"payload"`
	} `json:"result"`
}

// Search queries the remote index. A missing collection returns
// ErrIndexNotFound so callers can fall back to local search.
func (q *QdrantIndex) Search(ctx context.Context, vector []float64, opts SearchOptions) ([]models.SearchResult, error) {
	if len(vector) != q.dimension {
		return nil, fmt.Errorf("query vector dimension %d, want %d", len(vector), q.dimension)
	}

	limit := opts.MaxResults
	if limit <= 0 {
		limit = DefaultSearchOptions().MaxResults
	}

	body := map[string]any{
		"vector":          vector,
		"limit":           limit,
		"score_threshold": opts.MinScore,
		"with_payload":    true,
	}
	if opts.Category != "" {
		body["filter"] = map[string]any{
			"must": []map[string]any{
				{"key": "category", "match": map[string]any{"value": string(opts.Category)}},
			},
		}
	}

	var resp qdrantSearchResponse
	status, err := q.do(ctx, http.MethodPost, "/collections/"+q.collection+"/points/search", body, &resp)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, ErrIndexNotFound
		}
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(resp.Result))
	for _, hit := range resp.Result {
		results = append(results, models.SearchResult{
			Text:     payloadString(hit.Payload, "text"),
			Score:    hit.Score,
			Category: models.Category(payloadString(hit.Payload, "category")),
			Title:    payloadString(hit.Payload, "title"),
			Metadata: models.Metadata{
				Source:   payloadString(hit.Payload, "source"),
				Entities: payloadStrings(hit.Payload, "entities"),
				Keywords: payloadStrings(hit.Payload, "keywords"),
			},
		})
	}
	return results, nil
}

func payloadString(payload map[string]any, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

func payloadStrings(payload map[string]any, key string) []string {
	raw, ok := payload[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
