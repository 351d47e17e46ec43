// ABOUTME: Tests for the deterministic hash embedder
// ABOUTME: Verifies determinism, normalization, and dimension handling
package embedding

import (
	"context"
	"math"
	"testing"
)

func TestHashEmbedderDeterministic(t *testing.T) {
	e := NewHashEmbedder(128)
	ctx := context.Background()

	a, err := e.Embed(ctx, "full stack web development")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	b, err := e.Embed(ctx, "full stack web development")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestHashEmbedderNormalized(t *testing.T) {
	e := NewHashEmbedder(128)
	vec, err := e.Embed(context.Background(), "MERN stack development at thirty dollars per hour")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if math.Abs(math.Sqrt(sum)-1.0) > 1e-9 {
		t.Errorf("vector norm = %v, want 1.0", math.Sqrt(sum))
	}
}

func TestHashEmbedderDimension(t *testing.T) {
	e := NewHashEmbedder(64)
	if got := e.Dimension(); got != 64 {
		t.Errorf("Dimension() = %d, want 64", got)
	}

	vec, err := e.Embed(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if len(vec) != 64 {
		t.Errorf("len(vec) = %d, want 64", len(vec))
	}
}

func TestHashEmbedderBatchOrder(t *testing.T) {
	e := NewHashEmbedder(64)
	ctx := context.Background()

	texts := []string{"alpha", "beta", "gamma"}
	batch, err := e.EmbedBatch(ctx, texts)
	if err != nil {
		t.Fatalf("EmbedBatch failed: %v", err)
	}
	if len(batch) != len(texts) {
		t.Fatalf("len(batch) = %d, want %d", len(batch), len(texts))
	}

	for i, text := range texts {
		single, err := e.Embed(ctx, text)
		if err != nil {
			t.Fatalf("Embed failed: %v", err)
		}
		for j := range single {
			if batch[i][j] != single[j] {
				t.Fatalf("batch[%d] differs from single embedding of %q", i, text)
			}
		}
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	vec := Normalize([]float64{0, 0, 0})
	for i, v := range vec {
		if v != 0 {
			t.Errorf("Normalize(zero)[%d] = %v, want 0", i, v)
		}
	}
}
