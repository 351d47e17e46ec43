// ABOUTME: Tests for token-window chunking with overlap
// ABOUTME: Verifies verbatim substrings, window coverage, and sibling counts
package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("word%d", i)
	}
	return strings.Join(parts, " ")
}

func testDoc(text string) models.Document {
	return models.Document{
		ID:       "doc-1",
		Category: models.CategoryAbout,
		Title:    "Test Document",
		Text:     text,
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cases := []Config{
		{MaxTokens: 0, OverlapTokens: 0, MinTokens: 0},
		{MaxTokens: 100, OverlapTokens: 100, MinTokens: 10},
		{MaxTokens: 100, OverlapTokens: 150, MinTokens: 10},
		{MaxTokens: 100, OverlapTokens: -1, MinTokens: 10},
	}
	for _, cfg := range cases {
		if _, err := New(cfg); err == nil {
			t.Errorf("New(%+v) = nil error, want rejection", cfg)
		}
	}
}

func TestShortDocumentSingleChunk(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	doc := testDoc(words(50))
	chunks := c.Chunk(doc)

	if len(chunks) != 1 {
		t.Fatalf("len(chunks) = %d, want 1", len(chunks))
	}
	chunk := chunks[0]
	if chunk.Text != doc.Text {
		t.Errorf("chunk text differs from document text")
	}
	if chunk.IsPartial {
		t.Error("single chunk marked partial")
	}
	if chunk.TokenCount != 50 {
		t.Errorf("TokenCount = %d, want 50", chunk.TokenCount)
	}
	if chunk.TotalSiblings != 1 {
		t.Errorf("TotalSiblings = %d, want 1", chunk.TotalSiblings)
	}
	if chunk.Title != doc.Title {
		t.Errorf("Title = %q, want %q", chunk.Title, doc.Title)
	}
	if chunk.ID != "doc-1-chunk-0" {
		t.Errorf("ID = %q, want doc-1-chunk-0", chunk.ID)
	}
}

func TestLongDocumentSplitsWithOverlap(t *testing.T) {
	c, err := New(Config{MaxTokens: 100, OverlapTokens: 20, MinTokens: 10})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	doc := testDoc(words(250))
	chunks := c.Chunk(doc)

	if len(chunks) < 3 {
		t.Fatalf("len(chunks) = %d, want at least 3", len(chunks))
	}

	for i, chunk := range chunks {
		if !strings.Contains(doc.Text, chunk.Text) {
			t.Errorf("chunk %d text is not a verbatim substring", i)
		}
		if !chunk.IsPartial {
			t.Errorf("chunk %d not marked partial", i)
		}
		if chunk.TotalSiblings != len(chunks) {
			t.Errorf("chunk %d TotalSiblings = %d, want %d", i, chunk.TotalSiblings, len(chunks))
		}
		if chunk.Ordinal != i {
			t.Errorf("chunk %d Ordinal = %d", i, chunk.Ordinal)
		}
		wantTitle := fmt.Sprintf("%s (Part %d)", doc.Title, i+1)
		if chunk.Title != wantTitle {
			t.Errorf("chunk %d Title = %q, want %q", i, chunk.Title, wantTitle)
		}
	}

	// Consecutive chunks share the overlap region
	first := strings.Fields(chunks[0].Text)
	second := strings.Fields(chunks[1].Text)
	if first[len(first)-20] != second[0] {
		t.Errorf("overlap mismatch: first chunk tail %q, second chunk head %q",
			first[len(first)-20], second[0])
	}

	// Every source token appears in some chunk
	all := strings.Join([]string{chunks[0].Text, chunks[1].Text, chunks[2].Text}, " ")
	for _, chunk := range chunks[3:] {
		all += " " + chunk.Text
	}
	if !strings.Contains(all, "word0") || !strings.Contains(all, "word249") {
		t.Error("chunks do not cover the full document")
	}
}

func TestFinalWindowAlwaysKept(t *testing.T) {
	c, err := New(Config{MaxTokens: 100, OverlapTokens: 10, MinTokens: 50})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// 105 tokens: second window would hold only 15 tokens, below min,
	// but it is the final window so it must survive
	doc := testDoc(words(105))
	chunks := c.Chunk(doc)

	last := chunks[len(chunks)-1]
	if !strings.Contains(last.Text, "word104") {
		t.Error("final tokens lost when trailing window fell below min size")
	}
}

func TestTokenCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"one", 1},
		{"one two three", 3},
		{"  spaced   out\ttokens \n here ", 4},
	}
	for _, tt := range tests {
		if got := TokenCount(tt.text); got != tt.want {
			t.Errorf("TokenCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestChunkAll(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	docs := []models.Document{
		{ID: "a", Category: models.CategoryAbout, Title: "A", Text: words(10)},
		{ID: "b", Category: models.CategoryFAQ, Title: "B", Text: words(20)},
	}
	chunks := c.ChunkAll(docs)
	if len(chunks) != 2 {
		t.Fatalf("len(chunks) = %d, want 2", len(chunks))
	}
	if chunks[0].DocumentID != "a" || chunks[1].DocumentID != "b" {
		t.Error("chunks out of document order")
	}
}
