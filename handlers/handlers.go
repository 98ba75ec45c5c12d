package handlers

import (
	"context"
	"net/http"
	"time"

	"riseup/providers"
	"riseup/store"

	"github.com/gin-gonic/gin"
)

// Handlers carries the stores and provider clients the endpoints operate on.
type Handlers struct {
	Tokens   store.TokenStore
	Users    store.UserStore
	Posts    store.PostStore
	Identity providers.Identity
	Media    providers.Media
	Chat     providers.Chat
}

func New(tokens store.TokenStore, users store.UserStore, posts store.PostStore,
	identity providers.Identity, media providers.Media, chat providers.Chat) *Handlers {
	return &Handlers{
		Tokens:   tokens,
		Users:    users,
		Posts:    posts,
		Identity: identity,
		Media:    media,
		Chat:     chat,
	}
}

// requestContext detaches from the client connection: a dropped client does
// not cancel writes mid-flight.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func notFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
}
