// ABOUTME: Template generator producing answers without any LLM
// ABOUTME: Routes queries by keyword to canned framings around retrieved text
package generate

import (
	"context"
	"regexp"
	"strings"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

type route struct {
	category models.Category
	pattern  *regexp.Regexp
	header   string
}

// Routes are checked in order, first match wins. Patterns use word
// boundaries so "do" inside "development" does not trigger a route.
var routes = []route{
	{
		category: models.CategoryServices,
		pattern:  regexp.MustCompile(`(?i)\b(services?|offers?|offering|pricing|prices?|charges?|costs?|rates?|hire|plans?)\b`),
		header:   "Here's what Aasim offers:",
	},
	{
		category: models.CategorySkills,
		pattern:  regexp.MustCompile(`(?i)\b(skills?|technolog(y|ies)|stack|languages?|frameworks?|tools?)\b`),
		header:   "Aasim works with these technologies:",
	},
	{
		category: models.CategoryProjects,
		pattern:  regexp.MustCompile(`(?i)\b(projects?|portfolio|built|showcases?|work samples?|apps?)\b`),
		header:   "Here are some of Aasim's projects:",
	},
	{
		category: models.CategoryExperience,
		pattern:  regexp.MustCompile(`(?i)\b(experience|career|jobs?|worked|employers?|compan(y|ies)|background)\b`),
		header:   "About Aasim's work experience:",
	},
	{
		category: models.CategoryContact,
		pattern:  regexp.MustCompile(`(?i)\b(contact|email|phone|reach|whatsapp|upwork|fiverr|github)\b`),
		header:   "You can reach Aasim here:",
	},
	{
		category: models.CategoryAbout,
		pattern:  regexp.MustCompile(`(?i)\b(who|about|bio|introduce|yourself)\b`),
		header:   "About Aasim:",
	},
	{
		category: models.CategoryTestimonials,
		pattern:  regexp.MustCompile(`(?i)\b(testimonials?|reviews?|clients? say|feedback|recommendations?)\b`),
		header:   "What clients say about Aasim:",
	},
}

// TemplateGenerator builds answers directly from retrieved text. Used when
// no LLM is configured and as the last failover stage.
type TemplateGenerator struct{}

// NewTemplateGenerator creates a template generator
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Generate routes the query to a section template and streams the answer
// word by word.
func (g *TemplateGenerator) Generate(ctx context.Context, results []models.SearchResult, query string, _ []models.Turn) (<-chan Event, error) {
	response := g.compose(results, query)

	events := make(chan Event)
	go func() {
		defer close(events)
		for _, word := range strings.SplitAfter(response, " ") {
			if word == "" {
				continue
			}
			if !send(ctx, events, Event{Chunk: word}) {
				return
			}
		}
		send(ctx, events, Event{Done: true})
	}()
	return events, nil
}

func (g *TemplateGenerator) compose(results []models.SearchResult, query string) string {
	if len(results) == 0 {
		return "I couldn't find information about that in the portfolio."
	}

	for _, r := range routes {
		if !r.pattern.MatchString(query) {
			continue
		}
		matched := filterByCategory(results, r.category)
		if len(matched) == 0 {
			matched = results
		}
		return r.header + "\n\n" + joinTexts(matched)
	}

	// No route matched: lead with the best result, trimmed to a few sentences
	return firstSentences(results[0].Text, 3)
}

func filterByCategory(results []models.SearchResult, category models.Category) []models.SearchResult {
	var matched []models.SearchResult
	for _, r := range results {
		if r.Category == category {
			matched = append(matched, r)
		}
	}
	return matched
}

func joinTexts(results []models.SearchResult) string {
	texts := make([]string, 0, len(results))
	for _, r := range results {
		texts = append(texts, r.Text)
	}
	return strings.Join(texts, "\n\n")
}

func firstSentences(text string, n int) string {
	var count int
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
			if count == n {
				return strings.TrimSpace(text[:i+1])
			}
		}
	}
	return strings.TrimSpace(text)
}
