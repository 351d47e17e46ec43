// ABOUTME: OpenAI streaming generator with ordered model failover
// ABOUTME: Tries each configured model until one accepts the stream
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

// DefaultModels is the failover order for chat completions
var DefaultModels = []string{"gpt-4o-mini", "gpt-3.5-turbo"}

// OpenAIGenerator streams grounded completions from the OpenAI API
type OpenAIGenerator struct {
	client      *openai.Client
	modelChain  []string
	temperature float32
	maxTokens   int
}

// NewOpenAIGenerator creates a generator using the given models in failover
// order. An empty models slice uses DefaultModels.
func NewOpenAIGenerator(apiKey string, modelChain []string) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if len(modelChain) == 0 {
		modelChain = DefaultModels
	}
	return &OpenAIGenerator{
		client:      openai.NewClient(apiKey),
		modelChain:  modelChain,
		temperature: 0.7,
		maxTokens:   1024,
	}, nil
}

// Generate opens a completion stream and forwards text deltas as events.
// If a model refuses to open a stream the next model in the chain is tried;
// when every model fails the combined error is returned.
func (g *OpenAIGenerator) Generate(ctx context.Context, results []models.SearchResult, query string, history []models.Turn) (<-chan Event, error) {
	messages := BuildMessages(results, query, history)

	var stream *openai.ChatCompletionStream
	var openErrs []error
	for _, model := range g.modelChain {
		s, err := g.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
			Model:       model,
			Messages:    messages,
			Temperature: g.temperature,
			MaxTokens:   g.maxTokens,
			Stream:      true,
		})
		if err == nil {
			stream = s
			break
		}
		log.Printf("Model %s unavailable: %v", model, err)
		openErrs = append(openErrs, fmt.Errorf("%s: %w", model, err))
	}
	if stream == nil {
		return nil, fmt.Errorf("all models failed: %w", errors.Join(openErrs...))
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				send(ctx, events, Event{Done: true})
				return
			}
			if err != nil {
				send(ctx, events, Event{Err: fmt.Errorf("stream error: %w", err)})
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			delta := resp.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			if !send(ctx, events, Event{Chunk: delta}) {
				return
			}
		}
	}()
	return events, nil
}

// send delivers an event unless ctx is done, reporting whether it was sent
func send(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
