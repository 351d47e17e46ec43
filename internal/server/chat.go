// ABOUTME: Chat endpoint, validates and gates requests then streams the answer
// ABOUTME: Responses stream as SSE with a terminal done event
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aasim-shah/portfolio-assistant/internal/generate"
	"github.com/aasim-shah/portfolio-assistant/internal/models"
	"github.com/aasim-shah/portfolio-assistant/internal/safety"
)

type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type gatedResponse struct {
	Error      bool    `json:"error"`
	Message    string  `json:"message"`
	Confidence float64 `json:"confidence"`
}

func (s *Server) handleChat(c echo.Context) error {
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   true,
			Message: safety.ResponseInvalidInput,
		})
	}

	if err := safety.ValidateRequest(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   true,
			Message: err.Error(),
		})
	}

	limit := s.deps.Limiter.Check(c.RealIP())
	header := c.Response().Header()
	header.Set("X-RateLimit-Limit", strconv.Itoa(limit.Limit))
	header.Set("X-RateLimit-Remaining", strconv.Itoa(limit.Remaining))
	header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(limit.ResetIn).Unix(), 10))
	if !limit.Allowed {
		header.Set("Retry-After", strconv.Itoa(limit.RetryAfter))
		return c.JSON(http.StatusTooManyRequests, errorResponse{
			Error:   true,
			Message: safety.ResponseRateLimited,
		})
	}

	ctx := c.Request().Context()
	message := safety.Sanitize(req.Message)

	if err := s.deps.Seeder.EnsureSeeded(ctx); err != nil {
		log.Printf("Seeding failed: %v", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   true,
			Message: safety.ResponseError,
		})
	}

	vector, err := s.deps.Embedder.Embed(ctx, message)
	if err != nil {
		log.Printf("Query embedding failed: %v", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   true,
			Message: safety.ResponseError,
		})
	}

	results, err := s.deps.Searcher.Search(ctx, vector, s.deps.Search)
	if err != nil {
		log.Printf("Search failed: %v", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   true,
			Message: safety.ResponseError,
		})
	}

	gate := s.deps.Gate.Evaluate(results)
	if !gate.Passed {
		return c.JSON(http.StatusOK, gatedResponse{
			Error:      false,
			Message:    safety.ResponseForReason(gate.Reason),
			Confidence: gate.HighestScore,
		})
	}

	events, err := s.deps.Generator.Generate(ctx, gate.Valid, message, req.History)
	if err != nil {
		log.Printf("Generation failed to start: %v", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   true,
			Message: safety.ResponseError,
		})
	}

	return s.stream(c, events)
}

func (s *Server) stream(c echo.Context, events <-chan generate.Event) error {
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	for ev := range events {
		switch {
		case ev.Err != nil:
			log.Printf("Stream error: %v", ev.Err)
			writeEvent(resp, map[string]any{"chunk": safety.ResponseError})
			writeEvent(resp, map[string]any{"done": true})
			return nil
		case ev.Done:
			writeEvent(resp, map[string]any{"done": true})
			return nil
		default:
			writeEvent(resp, map[string]any{"chunk": ev.Chunk})
		}
	}
	return nil
}

func writeEvent(resp *echo.Response, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(resp, "data: %s\n\n", data)
	resp.Flush()
}
