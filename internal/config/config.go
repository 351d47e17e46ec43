// ABOUTME: Configuration loading from defaults, an optional YAML file, and env vars
// ABOUTME: Env vars win over the file, the file wins over defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings for the assistant
type Config struct {
	// Server
	Port int `yaml:"port"`

	// Storage
	DBPath string `yaml:"db_path"`

	// OpenAI
	OpenAIAPIKey string   `yaml:"openai_api_key"`
	ChatModels   []string `yaml:"chat_models"`
	Dimension    int      `yaml:"dimension"`

	// Qdrant remote index, optional
	QdrantURL        string `yaml:"qdrant_url"`
	QdrantAPIKey     string `yaml:"qdrant_api_key"`
	QdrantCollection string `yaml:"qdrant_collection"`

	// Chunking
	ChunkMaxTokens     int `yaml:"chunk_max_tokens"`
	ChunkOverlapTokens int `yaml:"chunk_overlap_tokens"`
	ChunkMinTokens     int `yaml:"chunk_min_tokens"`

	// Retrieval
	SearchMaxResults int     `yaml:"search_max_results"`
	SearchMinScore   float64 `yaml:"search_min_score"`

	// Rate limiting
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	RateLimitPerHour   int `yaml:"rate_limit_per_hour"`
}

// Default returns the standard configuration
func Default() *Config {
	return &Config{
		Port:               8080,
		DBPath:             defaultDBPath(),
		ChatModels:         []string{"gpt-4o-mini", "gpt-3.5-turbo"},
		Dimension:          1536,
		QdrantCollection:   "portfolio",
		ChunkMaxTokens:     500,
		ChunkOverlapTokens: 50,
		ChunkMinTokens:     100,
		SearchMaxResults:   5,
		SearchMinScore:     0.70,
		RateLimitPerMinute: 20,
		RateLimitPerHour:   100,
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables, then validates it.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("ASSISTANT_CONFIG")
	if path == "" {
		if _, err := os.Stat("assistant.yaml"); err == nil {
			path = "assistant.yaml"
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Port = getEnvInt("ASSISTANT_PORT", c.Port)
	c.DBPath = getEnv("ASSISTANT_DB_PATH", c.DBPath)
	c.OpenAIAPIKey = getEnv("OPENAI_API_KEY", c.OpenAIAPIKey)
	c.Dimension = getEnvInt("ASSISTANT_EMBEDDING_DIMENSION", c.Dimension)
	c.QdrantURL = getEnv("QDRANT_URL", c.QdrantURL)
	c.QdrantAPIKey = getEnv("QDRANT_API_KEY", c.QdrantAPIKey)
	c.QdrantCollection = getEnv("QDRANT_COLLECTION", c.QdrantCollection)
	c.ChunkMaxTokens = getEnvInt("ASSISTANT_CHUNK_MAX_TOKENS", c.ChunkMaxTokens)
	c.ChunkOverlapTokens = getEnvInt("ASSISTANT_CHUNK_OVERLAP_TOKENS", c.ChunkOverlapTokens)
	c.ChunkMinTokens = getEnvInt("ASSISTANT_CHUNK_MIN_TOKENS", c.ChunkMinTokens)
	c.SearchMaxResults = getEnvInt("ASSISTANT_SEARCH_MAX_RESULTS", c.SearchMaxResults)
	c.SearchMinScore = getEnvFloat("ASSISTANT_SEARCH_MIN_SCORE", c.SearchMinScore)
	c.RateLimitPerMinute = getEnvInt("ASSISTANT_RATE_LIMIT_PER_MINUTE", c.RateLimitPerMinute)
	c.RateLimitPerHour = getEnvInt("ASSISTANT_RATE_LIMIT_PER_HOUR", c.RateLimitPerHour)
}

// Validate checks the configuration for inconsistent settings
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.Dimension <= 0 {
		return fmt.Errorf("embedding dimension must be positive, got %d", c.Dimension)
	}
	if c.ChunkMaxTokens <= 0 {
		return fmt.Errorf("chunk max tokens must be positive, got %d", c.ChunkMaxTokens)
	}
	if c.ChunkOverlapTokens < 0 || c.ChunkOverlapTokens >= c.ChunkMaxTokens {
		return fmt.Errorf("chunk overlap must be below max tokens, got %d/%d", c.ChunkOverlapTokens, c.ChunkMaxTokens)
	}
	if c.SearchMinScore < 0 || c.SearchMinScore > 1 {
		return fmt.Errorf("search min score must be within [0, 1], got %v", c.SearchMinScore)
	}
	if c.SearchMaxResults <= 0 {
		return fmt.Errorf("search max results must be positive, got %d", c.SearchMaxResults)
	}
	if c.RateLimitPerMinute <= 0 || c.RateLimitPerHour <= 0 {
		return fmt.Errorf("rate limits must be positive, got %d/minute %d/hour", c.RateLimitPerMinute, c.RateLimitPerHour)
	}
	return nil
}

func defaultDBPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "portfolio.db"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "portfolio-assistant", "portfolio.db")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
