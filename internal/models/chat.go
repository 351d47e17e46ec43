// ABOUTME: Chat request types shared by the HTTP server and safety layer
// ABOUTME: A request is one message plus bounded conversation history
package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one prior exchange in a conversation
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload accepted by the chat endpoint
type ChatRequest struct {
	Message string `json:"message"`
	History []Turn `json:"history,omitempty"`
}
