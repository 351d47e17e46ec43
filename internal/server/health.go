// ABOUTME: Health endpoint reporting liveness and knowledge base state
// ABOUTME: Used by deploy probes and the serve command's smoke check
package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleHealth(c echo.Context) error {
	seeded := false
	if s.deps.Store != nil {
		if ok, err := s.deps.Store.IsSeeded(c.Request().Context()); err == nil {
			seeded = ok
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"seeded": seeded,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
