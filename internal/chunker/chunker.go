// ABOUTME: Token-window chunker that splits documents into overlapping slices
// ABOUTME: Chunk text is always a verbatim substring of the source document
package chunker

import (
	"fmt"
	"unicode"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

// Config bounds the chunk windows. Overlap must be strictly smaller than
// MaxTokens or the window would never advance.
type Config struct {
	MaxTokens     int
	OverlapTokens int
	MinTokens     int
}

// DefaultConfig returns the production chunking parameters
func DefaultConfig() Config {
	return Config{
		MaxTokens:     500,
		OverlapTokens: 50,
		MinTokens:     100,
	}
}

// Chunker splits documents according to a fixed config
type Chunker struct {
	cfg Config
}

// New validates the config and returns a chunker
func New(cfg Config) (*Chunker, error) {
	if cfg.MaxTokens <= 0 {
		return nil, fmt.Errorf("max tokens must be positive, got %d", cfg.MaxTokens)
	}
	if cfg.OverlapTokens < 0 {
		return nil, fmt.Errorf("overlap tokens cannot be negative, got %d", cfg.OverlapTokens)
	}
	if cfg.OverlapTokens >= cfg.MaxTokens {
		return nil, fmt.Errorf("overlap tokens (%d) must be smaller than max tokens (%d)",
			cfg.OverlapTokens, cfg.MaxTokens)
	}
	if cfg.MinTokens < 0 || cfg.MinTokens > cfg.MaxTokens {
		return nil, fmt.Errorf("min tokens must be in [0, %d], got %d", cfg.MaxTokens, cfg.MinTokens)
	}
	return &Chunker{cfg: cfg}, nil
}

// span marks one token's byte range in the source text
type span struct {
	start int
	end   int
}

// tokenize returns the byte spans of whitespace-delimited tokens. Keeping
// offsets instead of the token strings lets a window slice the original
// text verbatim, whitespace included.
func tokenize(text string) []span {
	var spans []span
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, span{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, span{start, len(text)})
	}
	return spans
}

// TokenCount returns the number of tokens in text under the chunker's tokenizer
func TokenCount(text string) int {
	return len(tokenize(text))
}

// Chunk splits a document into token-bounded chunks. A document that fits
// in one window yields exactly one non-partial chunk. Larger documents are
// sliced into overlapping windows; a window below MinTokens is dropped
// unless it is the final one, which is always kept so no tail content is
// ever lost.
func (c *Chunker) Chunk(doc models.Document) []models.Chunk {
	tokens := tokenize(doc.Text)

	if len(tokens) <= c.cfg.MaxTokens {
		return []models.Chunk{{
			ID:            chunkID(doc.ID, 0),
			DocumentID:    doc.ID,
			Ordinal:       0,
			Text:          doc.Text,
			TokenCount:    len(tokens),
			Category:      doc.Category,
			Title:         doc.Title,
			Metadata:      doc.Metadata,
			IsPartial:     false,
			TotalSiblings: 1,
		}}
	}

	var chunks []models.Chunk
	ordinal := 0
	step := c.cfg.MaxTokens - c.cfg.OverlapTokens

	for start := 0; start < len(tokens); start += step {
		end := start + c.cfg.MaxTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		final := end == len(tokens)
		count := end - start

		if count >= c.cfg.MinTokens || final {
			text := doc.Text[tokens[start].start:tokens[end-1].end]
			chunks = append(chunks, models.Chunk{
				ID:         chunkID(doc.ID, ordinal),
				DocumentID: doc.ID,
				Ordinal:    ordinal,
				Text:       text,
				TokenCount: count,
				Category:   doc.Category,
				Title:      fmt.Sprintf("%s (Part %d)", doc.Title, ordinal+1),
				Metadata:   doc.Metadata,
				IsPartial:  true,
			})
			ordinal++
		}

		if final {
			break
		}
	}

	for i := range chunks {
		chunks[i].TotalSiblings = len(chunks)
	}
	return chunks
}

// ChunkAll chunks every document and returns the flattened list
func (c *Chunker) ChunkAll(docs []models.Document) []models.Chunk {
	var all []models.Chunk
	for _, doc := range docs {
		all = append(all, c.Chunk(doc)...)
	}
	return all
}

func chunkID(docID string, ordinal int) string {
	return fmt.Sprintf("%s-chunk-%d", docID, ordinal)
}
