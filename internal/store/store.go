// ABOUTME: SQLite-backed vector store, the system of record for embedded chunks
// ABOUTME: Ingestion replaces all rows atomically under a shared version stamp
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

// Store persists embedded chunks in sqlite
type Store struct {
	db        *gorm.DB
	dimension int
}

// Open opens or creates the sqlite database at path and runs migrations.
// Use ":memory:" for an ephemeral store.
func Open(path string, dimension int) (*Store, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("vector dimension must be positive, got %d", dimension)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{db: db, dimension: dimension}, nil
}

// Close releases the underlying database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Dimension returns the vector width this store accepts
func (s *Store) Dimension() int {
	return s.dimension
}

// ReplaceAll atomically replaces every stored record with the given chunks,
// all stamped with the same ingestion version. Chunks with a vector of the
// wrong dimension abort the whole transaction.
func (s *Store) ReplaceAll(ctx context.Context, chunks []models.EmbeddedChunk, version int64) error {
	records := make([]Record, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk.Vector) != s.dimension {
			return fmt.Errorf("chunk %s: vector dimension %d, want %d", chunk.ID, len(chunk.Vector), s.dimension)
		}
		meta, err := json.Marshal(chunk.Metadata)
		if err != nil {
			return fmt.Errorf("chunk %s: failed to encode metadata: %w", chunk.ID, err)
		}
		records = append(records, Record{
			ChunkID:          chunk.ID,
			DocumentID:       chunk.DocumentID,
			Ordinal:          chunk.Ordinal,
			Text:             chunk.Text,
			TokenCount:       chunk.TokenCount,
			Category:         string(chunk.Category),
			Title:            chunk.Title,
			Metadata:         string(meta),
			IsPartial:        chunk.IsPartial,
			TotalSiblings:    chunk.TotalSiblings,
			Vector:           vectorToBytes(chunk.Vector),
			IngestionVersion: version,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Record{}).Error; err != nil {
			return fmt.Errorf("failed to clear records: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, 100).Error; err != nil {
			return fmt.Errorf("failed to insert records: %w", err)
		}
		return nil
	})
}

// Count returns the number of stored records
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Record{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// IsSeeded reports whether the store holds any records
func (s *Store) IsSeeded(ctx context.Context) (bool, error) {
	count, err := s.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Records returns all stored records, optionally filtered by category.
// Pass an empty category for no filter.
func (s *Store) Records(ctx context.Context, category models.Category) ([]Record, error) {
	query := s.db.WithContext(ctx).Order("chunk_id")
	if category != "" {
		query = query.Where("category = ?", string(category))
	}

	var records []Record
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return records, nil
}

// CategoryCounts returns the number of records per category
func (s *Store) CategoryCounts(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Category string
		Total    int64
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&Record{}).
		Select("category, count(*) as total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Category] = r.Total
	}
	return counts, nil
}

// Version returns the ingestion version of the stored records, or 0 when empty
func (s *Store) Version(ctx context.Context) (int64, error) {
	var record Record
	err := s.db.WithContext(ctx).Order("ingestion_version desc").First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read version: %w", err)
	}
	return record.IngestionVersion, nil
}

func (r *Record) toResult(score float64) (models.SearchResult, error) {
	var meta models.Metadata
	if r.Metadata != "" {
		if err := json.Unmarshal([]byte(r.Metadata), &meta); err != nil {
			return models.SearchResult{}, fmt.Errorf("record %s: bad metadata: %w", r.ChunkID, err)
		}
	}
	return models.SearchResult{
		Text:     r.Text,
		Score:    score,
		Category: models.Category(r.Category),
		Title:    r.Title,
		Metadata: meta,
	}, nil
}
