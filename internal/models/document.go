// ABOUTME: Core document and chunk types for the retrieval pipeline
// ABOUTME: Documents are extracted from portfolio facts, chunks are the unit of embedding
package models

// Category identifies which portfolio section a document belongs to
type Category string

const (
	CategoryAbout        Category = "about"
	CategoryExperience   Category = "experience"
	CategoryServices     Category = "services"
	CategoryProjects     Category = "projects"
	CategorySkills       Category = "skills"
	CategoryTestimonials Category = "testimonials"
	CategoryContact      Category = "contact"
	CategoryFAQ          Category = "faq"
)

// Categories lists every valid category in presentation order
var Categories = []Category{
	CategoryAbout,
	CategoryExperience,
	CategoryServices,
	CategoryProjects,
	CategorySkills,
	CategoryTestimonials,
	CategoryContact,
	CategoryFAQ,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Metadata carries provenance and retrieval hints for a document
type Metadata struct {
	Source   string   `json:"source"`
	Entities []string `json:"entities"`
	Keywords []string `json:"keywords"`
}

// Document is one unit of source knowledge, produced by the extractor.
// Documents are immutable once created and regenerated wholesale on every
// ingestion run.
type Document struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// Chunk is a token-bounded slice of a document's text. The text is a
// verbatim substring of the parent document, never a paraphrase.
type Chunk struct {
	ID            string   `json:"id"`
	DocumentID    string   `json:"document_id"`
	Ordinal       int      `json:"ordinal"`
	Text          string   `json:"text"`
	TokenCount    int      `json:"token_count"`
	Category      Category `json:"category"`
	Title         string   `json:"title"`
	Metadata      Metadata `json:"metadata"`
	IsPartial     bool     `json:"is_partial"`
	TotalSiblings int      `json:"total_siblings"`
}

// EmbeddedChunk pairs a chunk with its embedding vector. Produced once per
// chunk during ingestion and never mutated.
type EmbeddedChunk struct {
	Chunk
	Vector []float64 `json:"vector"`
}

// SearchResult is a query-time match from the vector store. Never persisted.
type SearchResult struct {
	Text     string   `json:"text"`
	Score    float64  `json:"score"`
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Metadata Metadata `json:"metadata"`
}
