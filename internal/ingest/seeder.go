// ABOUTME: Lazy one-time seeding of an empty knowledge base
// ABOUTME: At most one ingestion runs per process regardless of callers
package ingest

import (
	"context"
	"log"
	"sync"
)

// Seeder runs the pipeline once if the store is empty. Concurrent callers
// share a single attempt; its outcome, success or failure, is cached for
// the life of the process.
type Seeder struct {
	pipeline *Pipeline
	once     sync.Once
	err      error
}

// NewSeeder creates a seeder over the given pipeline
func NewSeeder(p *Pipeline) *Seeder {
	return &Seeder{pipeline: p}
}

// EnsureSeeded ingests the portfolio content if the store holds no records.
// Safe for concurrent use.
func (s *Seeder) EnsureSeeded(ctx context.Context) error {
	s.once.Do(func() {
		seeded, err := s.pipeline.Store.IsSeeded(ctx)
		if err != nil {
			s.err = err
			return
		}
		if seeded {
			return
		}

		log.Printf("Knowledge base is empty, running initial ingestion")
		report, err := s.pipeline.Run(ctx)
		if err != nil {
			s.err = err
			return
		}
		log.Printf("Seeded %d chunks from %d items in %s", report.Chunks, report.Items, report.Duration)
	})
	return s.err
}
