package handlers

import (
	"fmt"
	"net/http"

	"riseup/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) CreatePost(c *gin.Context) {
	userID := c.PostForm("userId")
	description := c.PostForm("description")
	picturePath := c.PostForm("picturePath")
	mail := c.PostForm("mail")

	if !middleware.RequireActor(c, mail) {
		return
	}

	file, header, err := c.Request.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No picture file provided"})
		return
	}
	defer file.Close()

	ctx, cancel := requestContext()
	defer cancel()

	key := fmt.Sprintf("postPic/%s-%s", mail, picturePath)
	postURL, err := h.Media.Upload(ctx, key, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		relayProviderFailure(c, err)
		return
	}

	if _, err := h.Posts.Publish(ctx, userID, description, postURL); err != nil {
		notFound(c, err)
		return
	}

	// The client renders from the response, so the whole refreshed feed goes
	// back rather than just the new entry.
	posts, err := h.Posts.ListAll(ctx)
	if err != nil {
		notFound(c, err)
		return
	}

	c.JSON(http.StatusCreated, posts)
}

func (h *Handlers) GetPosts(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := h.Posts.ListAll(ctx)
	if err != nil {
		notFound(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handlers) GetUserPosts(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := h.Posts.ListByAuthor(ctx, c.Param("uid"))
	if err != nil {
		notFound(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

type LikeRequest struct {
	UserID string `json:"userId" binding:"required"`
	Mail   string `json:"mail" binding:"required"`
}

func (h *Handlers) ToggleLike(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !middleware.RequireActor(c, req.Mail) {
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	post, err := h.Posts.ToggleLike(ctx, c.Param("id"), req.UserID)
	if err != nil {
		notFound(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
