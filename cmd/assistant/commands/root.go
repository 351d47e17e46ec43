// ABOUTME: Root command wiring subcommands and global flags
// ABOUTME: quiet and verbose flags are shared by every subcommand
package commands

import (
	"github.com/spf13/cobra"
)

var (
	quiet   bool
	verbose bool
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "RAG chat assistant for Aasim Shah's portfolio",
		Long: `Portfolio assistant answers questions about Aasim Shah's services,
projects, experience, and skills, grounded in the portfolio content.

Runs as an HTTP server with a streaming chat endpoint, an MCP server
for LLM agents, or as one-off ingest and search commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
