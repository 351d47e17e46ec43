// ABOUTME: Input validation and sanitization for chat requests
// ABOUTME: Blocks prompt-injection patterns and strips markup before processing
package safety

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

const (
	// MaxMessageLength caps a single chat message
	MaxMessageLength = 2000
	// MaxHistoryTurns caps the conversation history a request may carry
	MaxHistoryTurns = 20
)

var blockedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore.*previous.*instructions`),
	regexp.MustCompile(`(?i)ignore.*system.*prompt`),
	regexp.MustCompile(`(?i)pretend.*you.*are`),
	regexp.MustCompile(`(?i)act.*as.*if`),
	regexp.MustCompile(`(?i)roleplay`),
	regexp.MustCompile(`(?i)jailbreak`),
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// ValidateRequest checks a chat request against length, history, and
// injection rules. A nil return means the request may proceed.
func ValidateRequest(req *models.ChatRequest) error {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return fmt.Errorf("message is required")
	}
	if len(req.Message) > MaxMessageLength {
		return fmt.Errorf("message exceeds maximum length of %d characters", MaxMessageLength)
	}
	if len(req.History) > MaxHistoryTurns {
		return fmt.Errorf("history exceeds maximum of %d turns", MaxHistoryTurns)
	}

	for _, turn := range req.History {
		if turn.Role != models.RoleUser && turn.Role != models.RoleAssistant {
			return fmt.Errorf("invalid history role %q", turn.Role)
		}
		if len(turn.Content) > MaxMessageLength {
			return fmt.Errorf("history turn exceeds maximum length of %d characters", MaxMessageLength)
		}
	}

	for _, pattern := range blockedPatterns {
		if pattern.MatchString(req.Message) {
			return fmt.Errorf("message contains blocked content")
		}
	}
	return nil
}

// Sanitize strips markup tags and angle brackets from text
func Sanitize(text string) string {
	cleaned := tagPattern.ReplaceAllString(text, "")
	cleaned = strings.ReplaceAll(cleaned, "<", "")
	cleaned = strings.ReplaceAll(cleaned, ">", "")
	return strings.TrimSpace(cleaned)
}
