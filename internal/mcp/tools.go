// ABOUTME: MCP tool definitions and registration for the portfolio assistant
// ABOUTME: Exposes semantic search and knowledge base stats over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/aasim-shah/portfolio-assistant/internal/embedding"
	"github.com/aasim-shah/portfolio-assistant/internal/ingest"
	"github.com/aasim-shah/portfolio-assistant/internal/store"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, st *store.Store, searcher store.Searcher, embedder embedding.Embedder, seeder *ingest.Seeder, opts store.SearchOptions) *Handlers {
	handlers := &Handlers{
		store:    st,
		searcher: searcher,
		embedder: embedder,
		seeder:   seeder,
		opts:     opts,
	}

	// 1. search_portfolio - semantic search over the portfolio knowledge base
	server.AddTool(mcp.Tool{
		Name:        "search_portfolio",
		Description: "Search Aasim Shah's portfolio knowledge base semantically. Returns the most relevant chunks with confidence scores.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural language search query",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Optional category filter: about, experience, services, projects, skills, testimonials, contact, faq",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchPortfolio)

	// 2. portfolio_stats - knowledge base size and composition
	server.AddTool(mcp.Tool{
		Name:        "portfolio_stats",
		Description: "Report how many chunks the knowledge base holds, broken down by category, with the current ingestion version.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.PortfolioStats)

	return handlers
}
