// ABOUTME: Echo HTTP server wiring routes to the chat and health handlers
// ABOUTME: Holds the retrieval, safety, and generation dependencies together
package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aasim-shah/portfolio-assistant/internal/embedding"
	"github.com/aasim-shah/portfolio-assistant/internal/generate"
	"github.com/aasim-shah/portfolio-assistant/internal/ingest"
	"github.com/aasim-shah/portfolio-assistant/internal/safety"
	"github.com/aasim-shah/portfolio-assistant/internal/store"
)

// Deps bundles everything the HTTP handlers need
type Deps struct {
	Embedder  embedding.Embedder
	Searcher  store.Searcher
	Store     *store.Store
	Gate      safety.Gate
	Limiter   *safety.RateLimiter
	Generator generate.Generator
	Seeder    *ingest.Seeder
	Search    store.SearchOptions
}

// Server is the public HTTP surface of the assistant
type Server struct {
	echo *echo.Echo
	deps Deps
}

// New creates a server with routes registered
func New(deps Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{echo: e, deps: deps}
	e.GET("/health", s.handleHealth)
	e.POST("/chat", s.handleChat)
	return s
}

// Handler exposes the underlying handler for tests
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

// Start listens on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests before stopping
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}
