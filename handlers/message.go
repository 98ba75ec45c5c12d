package handlers

import (
	"net/http"

	"riseup/models"

	"github.com/gin-gonic/gin"
)

// mentorPrompt is the fixed system turn the proxy prepends to every
// conversation before forwarding it upstream.
var mentorPrompt = models.ChatTurn{
	Role:    "system",
	Content: "Answer the next questions like a calm guru whose purpose is to help people resist unhealthy urges and redirect that energy into daily discipline and self-improvement.",
}

type MessageRequest struct {
	Message []models.ChatTurn `json:"message"`
}

func (h *Handlers) ChatMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	turns := append([]models.ChatTurn{mentorPrompt}, req.Message...)

	reply, err := h.Chat.Complete(c.Request.Context(), turns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": reply})
}
