// ABOUTME: MCP command starts a Model Context Protocol server on stdio
// ABOUTME: Enables LLM agents to search the portfolio knowledge base
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/aasim-shah/portfolio-assistant/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the assistant as an MCP (Model Context Protocol) server over stdio,
exposing portfolio search and knowledge base stats as tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  assistant mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "portfolio": {
  #       "command": "assistant",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	server := mcpserver.NewMCPServer(
		"Portfolio Assistant",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, a.store, a.searcher, a.embedder, a.seeder, a.searchOptions())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Portfolio MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}
	return nil
}
