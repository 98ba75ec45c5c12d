package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"riseup/models"
)

// Chat produces a completion for a conversation. Implementations never
// retry; a failed call is the caller's problem.
type Chat interface {
	Complete(ctx context.Context, turns []models.ChatTurn) (*models.ChatTurn, error)
}

const openAIChatURL = "https://api.openai.com/v1/chat/completions"

type OpenAIChat struct {
	token  string
	client *http.Client
}

func NewOpenAIChat(token string) *OpenAIChat {
	return &OpenAIChat{
		token:  token,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type openAIChatRequest struct {
	Model       string            `json:"model"`
	Messages    []models.ChatTurn `json:"messages"`
	Temperature float64           `json:"temperature"`
	MaxTokens   int               `json:"max_tokens"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message models.ChatTurn `json:"message"`
	} `json:"choices"`
}

func (c *OpenAIChat) Complete(ctx context.Context, turns []models.ChatTurn) (*models.ChatTurn, error) {
	body, err := json.Marshal(openAIChatRequest{
		Model:       "gpt-3.5-turbo",
		Messages:    turns,
		Temperature: 0.8,
		MaxTokens:   3024,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat completion returned %d", resp.StatusCode)
	}

	var completion openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return &completion.Choices[0].Message, nil
}
