// ABOUTME: Ingest command rebuilds the knowledge base from portfolio content
// ABOUTME: Runs the full extract, chunk, embed, store pipeline once
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Rebuild the knowledge base",
		Long: `Extract the portfolio content, chunk it, embed it, and replace the
stored knowledge base. Safe to run repeatedly, every run fully replaces
the previous contents.`,
		RunE: runIngest,
		Example: `  # Rebuild the knowledge base
  assistant ingest`,
	}

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := a.pipeline.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if !quiet {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Ingested %d items into %d chunks (%d embeddings)\n",
			report.Items, report.Chunks, report.Embeddings)
		fmt.Fprintf(out, "Version: %d\n", report.Version)
		fmt.Fprintf(out, "Took:    %s\n", report.Duration)
	}
	return nil
}
