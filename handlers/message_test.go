package handlers_test

import (
	"net/http"
	"testing"

	"riseup/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessagePrependsSystemPrompt(t *testing.T) {
	e := newEnv(t)

	rr := e.doJSON(http.MethodPost, "/message", "", map[string]interface{}{
		"message": []models.ChatTurn{
			{Role: "user", Content: "I keep slipping"},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	require.Len(t, e.chat.received, 2)
	assert.Equal(t, "system", e.chat.received[0].Role)
	assert.Equal(t, "user", e.chat.received[1].Role)

	var resp struct {
		Message models.ChatTurn `json:"message"`
	}
	decodeJSON(t, rr, &resp)
	assert.Equal(t, "stay the course", resp.Message.Content)
}
