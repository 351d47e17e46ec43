// ABOUTME: Canned responses returned when the assistant declines to generate
// ABOUTME: Keeps refusals polite and on-topic instead of hallucinating
package safety

// Canned responses for gated or failed requests
const (
	ResponseNoResults = "I couldn't find information about that in the portfolio. " +
		"Feel free to ask about Aasim's services, projects, experience, skills, or how to get in touch."

	ResponseLowConfidence = "I'm not confident I have accurate information about that. " +
		"Could you rephrase your question, or ask about Aasim's services, projects, experience, or contact details?"

	ResponseOutOfScope = "I can only answer questions about Aasim Shah's portfolio, such as his services, " +
		"projects, work experience, skills, and contact information."

	ResponseRateLimited = "You're sending messages too quickly. Please wait a moment and try again."

	ResponseError = "Something went wrong while processing your message. Please try again."

	ResponseInvalidInput = "That message couldn't be processed. Please send a plain question about the portfolio."
)

// ResponseForReason maps a gate rejection reason to its canned reply
func ResponseForReason(reason string) string {
	switch reason {
	case ReasonNoResults:
		return ResponseNoResults
	case ReasonLowConfidence:
		return ResponseLowConfidence
	case ReasonBelowThreshold:
		return ResponseOutOfScope
	default:
		return ResponseError
	}
}
