package handlers

import (
	"log"
	"net/http"

	"riseup/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) GetUser(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	uid := c.Param("uid")
	user, err := h.Users.FindByID(ctx, uid)
	if err != nil {
		notFound(c, err)
		return
	}

	// Every fetch by somebody else bumps the owner's view counter by half a
	// point. RecordView skips self-views itself.
	visitor, err := h.Users.FindByEmail(ctx, c.GetString("authUID"))
	if err == nil {
		if err := h.Users.RecordView(ctx, visitor.ID, uid); err != nil {
			log.Printf("RecordView error: %v", err)
		}
	}

	c.JSON(http.StatusOK, user)
}

type StreakRequest struct {
	Mail string `json:"mail" binding:"required"`
}

func (h *Handlers) TouchStreak(c *gin.Context) {
	var req StreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !middleware.RequireActor(c, req.Mail) {
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	user, err := h.Users.TouchStreak(ctx, c.Param("id"))
	if err != nil {
		notFound(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handlers) Leaderboard(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	users, err := h.Users.Rank(ctx)
	if err != nil {
		notFound(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
