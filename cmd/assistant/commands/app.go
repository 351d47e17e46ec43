// ABOUTME: Shared application wiring used by every subcommand
// ABOUTME: Builds the store, embedder, search path, and generator from config
package commands

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/aasim-shah/portfolio-assistant/internal/chunker"
	"github.com/aasim-shah/portfolio-assistant/internal/config"
	"github.com/aasim-shah/portfolio-assistant/internal/embedding"
	"github.com/aasim-shah/portfolio-assistant/internal/generate"
	"github.com/aasim-shah/portfolio-assistant/internal/ingest"
	"github.com/aasim-shah/portfolio-assistant/internal/store"
)

// app bundles the wired components behind the CLI commands
type app struct {
	cfg       *config.Config
	store     *store.Store
	embedder  embedding.Embedder
	searcher  store.Searcher
	generator generate.Generator
	pipeline  *ingest.Pipeline
	seeder    *ingest.Seeder
}

// buildApp loads configuration and wires every component. The remote index
// and the OpenAI backends are only attached when configured.
func buildApp() (*app, error) {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." && cfg.DBPath != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}

	var embedder embedding.Embedder
	if cfg.OpenAIAPIKey != "" {
		oe, err := embedding.NewOpenAIEmbedderWithConfig(&embedding.OpenAIConfig{
			APIKey:     cfg.OpenAIAPIKey,
			Model:      embedding.DefaultModel,
			Dimension:  cfg.Dimension,
			MaxRetries: 3,
			RetryDelay: 2 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		embedder = oe
	} else {
		if !quiet {
			log.Println("Warning: OPENAI_API_KEY not set, using offline hash embeddings")
		}
		embedder = embedding.NewHashEmbedder(cfg.Dimension)
	}

	st, err := store.Open(cfg.DBPath, cfg.Dimension)
	if err != nil {
		return nil, err
	}

	local := store.NewLocalSearcher(st)
	var searcher store.Searcher = local
	var index *store.QdrantIndex
	if cfg.QdrantURL != "" {
		index = store.NewQdrantIndex(cfg.QdrantURL, cfg.QdrantAPIKey, cfg.QdrantCollection, cfg.Dimension)
		searcher = store.NewFallbackSearcher(index, local)
		if verbose {
			log.Printf("Remote index enabled at %s, collection %s", cfg.QdrantURL, cfg.QdrantCollection)
		}
	}

	var generator generate.Generator = generate.NewTemplateGenerator()
	if cfg.OpenAIAPIKey != "" {
		og, err := generate.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.ChatModels)
		if err != nil {
			return nil, err
		}
		generator = generate.NewFailoverGenerator(og, generate.NewTemplateGenerator())
	}

	c, err := chunker.New(chunker.Config{
		MaxTokens:     cfg.ChunkMaxTokens,
		OverlapTokens: cfg.ChunkOverlapTokens,
		MinTokens:     cfg.ChunkMinTokens,
	})
	if err != nil {
		return nil, err
	}

	pipeline := ingest.NewPipeline(c, embedder, st, index)

	return &app{
		cfg:       cfg,
		store:     st,
		embedder:  embedder,
		searcher:  searcher,
		generator: generator,
		pipeline:  pipeline,
		seeder:    ingest.NewSeeder(pipeline),
	}, nil
}

// Close releases the app's resources
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		log.Printf("Warning: error closing store: %v", err)
	}
}

func (a *app) searchOptions() store.SearchOptions {
	return store.SearchOptions{
		MaxResults: a.cfg.SearchMaxResults,
		MinScore:   a.cfg.SearchMinScore,
	}
}
