// ABOUTME: MCP tool handler implementations for the portfolio assistant
// ABOUTME: Handlers seed lazily so stdio clients never see an empty store
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aasim-shah/portfolio-assistant/internal/embedding"
	"github.com/aasim-shah/portfolio-assistant/internal/ingest"
	"github.com/aasim-shah/portfolio-assistant/internal/models"
	"github.com/aasim-shah/portfolio-assistant/internal/store"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	store    *store.Store
	searcher store.Searcher
	embedder embedding.Embedder
	seeder   *ingest.Seeder
	opts     store.SearchOptions
}

// SearchPortfolio handles the search_portfolio tool
func (h *Handlers) SearchPortfolio(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	opts := h.opts
	if category := request.GetString("category", ""); category != "" {
		cat := models.Category(category)
		if !cat.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", category)), nil
		}
		opts.Category = cat
	}
	if maxResults := request.GetInt("max_results", 0); maxResults > 0 {
		opts.MaxResults = maxResults
	}

	if err := h.seeder.EnsureSeeded(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("seeding failed: %v", err)), nil
	}

	vector, err := h.embedder.Embed(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("embedding failed: %v", err)), nil
	}

	results, err := h.searcher.Search(ctx, vector, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"query":   query,
		"count":   len(results),
		"results": results,
	}
	responseJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// PortfolioStats handles the portfolio_stats tool
func (h *Handlers) PortfolioStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.seeder.EnsureSeeded(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("seeding failed: %v", err)), nil
	}

	total, err := h.store.Count(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to count records: %v", err)), nil
	}
	byCategory, err := h.store.CategoryCounts(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to count categories: %v", err)), nil
	}
	version, err := h.store.Version(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read version: %v", err)), nil
	}

	response := map[string]interface{}{
		"total_chunks": total,
		"by_category":  byCategory,
		"version":      version,
	}
	responseJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
