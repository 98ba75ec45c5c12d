package models

// ChatTurn is a single message in a chat-completion exchange.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
