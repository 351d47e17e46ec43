// ABOUTME: Serve command runs the HTTP chat server
// ABOUTME: Seeds the knowledge base lazily and shuts down gracefully on signals
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aasim-shah/portfolio-assistant/internal/safety"
	"github.com/aasim-shah/portfolio-assistant/internal/server"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP chat server",
		Long: `Start the HTTP server exposing the streaming chat endpoint.

The knowledge base is seeded automatically on the first request if the
store is empty. Responses stream as server-sent events.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
		Example: `  # Start on the default port
  assistant serve

  # Start on a custom port
  assistant serve --port 3000`,
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides config)")
	return cmd
}

func runServe(port int) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if port == 0 {
		port = a.cfg.Port
	}

	srv := server.New(server.Deps{
		Embedder:  a.embedder,
		Searcher:  a.searcher,
		Store:     a.store,
		Gate:      safety.Gate{MinScore: a.cfg.SearchMinScore, MinResults: 1},
		Limiter:   safety.NewRateLimiter(a.cfg.RateLimitPerMinute, a.cfg.RateLimitPerHour),
		Generator: a.generator,
		Seeder:    a.seeder,
		Search:    a.searchOptions(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(fmt.Sprintf(":%d", port))
	}()

	if !quiet {
		log.Printf("Portfolio assistant listening on :%d", port)
	}

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, draining connections...")
		}
		if err := srv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		if !quiet {
			log.Println("Shutdown complete")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}
	return nil
}
