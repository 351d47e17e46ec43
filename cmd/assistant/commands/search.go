// ABOUTME: Search command runs a semantic query against the knowledge base
// ABOUTME: Prints matches with confidence scores in a tabular layout
package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	var (
		category   string
		maxResults int
		minScore   float64
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the knowledge base",
		Long: `Run a semantic search against the portfolio knowledge base and print
the matching chunks with their confidence scores.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), category, maxResults, minScore)
		},
		Example: `  # Find service information
  assistant search "what do you charge per hour"

  # Restrict to one category
  assistant search --category projects "mobile apps"`,
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Restrict results to one category")
	cmd.Flags().IntVarP(&maxResults, "max-results", "n", 0, "Maximum results to return (overrides config)")
	cmd.Flags().Float64VarP(&minScore, "min-score", "s", -1, "Minimum similarity score (overrides config)")
	return cmd
}

func runSearch(cmd *cobra.Command, query, category string, maxResults int, minScore float64) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	opts := a.searchOptions()
	if category != "" {
		cat := models.Category(category)
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q", category)
		}
		opts.Category = cat
	}
	if maxResults > 0 {
		opts.MaxResults = maxResults
	}
	if minScore >= 0 {
		opts.MinScore = minScore
	}

	ctx := cmd.Context()
	if err := a.seeder.EnsureSeeded(ctx); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	vector, err := a.embedder.Embed(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to embed query: %w", err)
	}

	results, err := a.searcher.Search(ctx, vector, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No results found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tCATEGORY\tTITLE\tTEXT")
	for _, r := range results {
		fmt.Fprintf(w, "%.0f%%\t%s\t%s\t%s\n",
			r.Score*100, r.Category, truncate(r.Title, 32), truncate(r.Text, 64))
	}
	return w.Flush()
}
