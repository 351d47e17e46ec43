// ABOUTME: Ingestion pipeline, extract then chunk then embed then store
// ABOUTME: Replaces the whole knowledge base under one version per run
package ingest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aasim-shah/portfolio-assistant/internal/chunker"
	"github.com/aasim-shah/portfolio-assistant/internal/content"
	"github.com/aasim-shah/portfolio-assistant/internal/embedding"
	"github.com/aasim-shah/portfolio-assistant/internal/models"
	"github.com/aasim-shah/portfolio-assistant/internal/store"
)

// Report summarizes one ingestion run
type Report struct {
	Items      int
	Chunks     int
	Embeddings int
	Version    int64
	Duration   time.Duration
}

// Pipeline runs the full ingestion flow. Index is optional; when set the
// remote index is rebuilt as a mirror of the store.
type Pipeline struct {
	Extract  func() []models.Document
	Chunker  *chunker.Chunker
	Embedder embedding.Embedder
	Store    *store.Store
	Index    *store.QdrantIndex
}

// NewPipeline creates a pipeline over the built-in portfolio content
func NewPipeline(c *chunker.Chunker, e embedding.Embedder, s *store.Store, index *store.QdrantIndex) *Pipeline {
	return &Pipeline{
		Extract:  content.ExtractAll,
		Chunker:  c,
		Embedder: e,
		Store:    s,
		Index:    index,
	}
}

// Run executes one full ingestion, replacing all stored chunks. A remote
// index failure is logged and does not fail the run, local search still
// covers retrieval.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	version := start.UnixMilli()

	docs := p.Extract()

	chunks := p.Chunker.ChunkAll(docs)

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	vectors, err := p.Embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}

	embedded := make([]models.EmbeddedChunk, len(chunks))
	for i, chunk := range chunks {
		embedded[i] = models.EmbeddedChunk{Chunk: chunk, Vector: vectors[i]}
	}

	if err := p.Store.ReplaceAll(ctx, embedded, version); err != nil {
		return nil, fmt.Errorf("store update failed: %w", err)
	}

	if p.Index != nil {
		if err := p.mirror(ctx, embedded); err != nil {
			log.Printf("Warning: remote index update failed, local search remains available: %v", err)
		}
	}

	return &Report{
		Items:      len(docs),
		Chunks:     len(chunks),
		Embeddings: len(vectors),
		Version:    version,
		Duration:   time.Since(start),
	}, nil
}

func (p *Pipeline) mirror(ctx context.Context, embedded []models.EmbeddedChunk) error {
	if err := p.Index.Recreate(ctx); err != nil {
		return err
	}
	return p.Index.Upsert(ctx, embedded)
}
