// ABOUTME: Persistent record schema and vector byte serialization
// ABOUTME: Vectors are stored as little-endian float32 blobs to halve storage
package store

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Record is one embedded chunk persisted in sqlite. The store is the system
// of record; any remote index is a rebuildable mirror of these rows.
type Record struct {
	ID               uint   `gorm:"primaryKey"`
	ChunkID          string `gorm:"uniqueIndex;size:128"`
	DocumentID       string `gorm:"size:128"`
	Ordinal          int
	Text             string
	TokenCount       int
	Category         string `gorm:"index;size:32"`
	Title            string
	Metadata         string
	IsPartial        bool
	TotalSiblings    int
	Vector           []byte
	IngestionVersion int64 `gorm:"index"`
}

func vectorToBytes(vec []float64) []byte {
	buf := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(v)))
	}
	return buf
}

func bytesToVector(buf []byte) ([]float64, error) {
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("vector blob length %d is not a multiple of 4", len(buf))
	}
	vec := make([]float64, len(buf)/4)
	for i := range vec {
		vec[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])))
	}
	return vec, nil
}
