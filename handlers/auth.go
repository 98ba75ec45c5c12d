package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"riseup/models"
	"riseup/providers"
	"riseup/store"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Pass  string `json:"pass" binding:"required"`
}

// relayProviderFailure writes the upstream provider's message verbatim with a
// 400, the contract for any dependent-call failure during auth.
func relayProviderFailure(c *gin.Context, err error) {
	var provErr *providers.ProviderError
	if errors.As(err, &provErr) {
		log.Println(provErr.Message)
		c.String(http.StatusBadRequest, provErr.Message)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}

// Verify reports whether a token record exists: 200 "Found", or 205
// "No Record Found" when there is none.
func (h *Handlers) Verify(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	_, err := h.Tokens.Lookup(ctx, c.Param("token"))
	if err == store.ErrNotFound {
		c.String(http.StatusResetContent, "No Record Found")
		return
	}
	if err != nil {
		notFound(c, err)
		return
	}
	c.String(http.StatusOK, "Found")
}

func (h *Handlers) Logout(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	if err := h.Tokens.Revoke(ctx, c.Param("token")); err != nil {
		notFound(c, err)
		return
	}
	log.Println("Deleted!")
	c.Status(http.StatusOK)
}

func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	cred, err := h.Identity.SignIn(ctx, req.Email, req.Pass)
	if err != nil {
		relayProviderFailure(c, err)
		return
	}

	// Re-login hands back the token issued earlier, not a fresh one.
	issued, err := h.Tokens.Issue(ctx, cred.Email, cred.SessionToken)
	if err != nil {
		notFound(c, err)
		return
	}

	user, err := h.Users.FindByID(ctx, cred.SubjectID)
	if err != nil && err != store.ErrNotFound {
		notFound(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"idToken": issued.Token,
		"id":      cred.SubjectID,
	})
}

func (h *Handlers) Signup(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	pass := c.PostForm("pass")
	location := c.PostForm("location")

	file, header, err := c.Request.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No picture file provided"})
		return
	}
	defer file.Close()

	ctx, cancel := requestContext()
	defer cancel()

	// The profile picture goes up first; if anything after this fails the
	// stored asset is orphaned. No compensating cleanup.
	picURL, err := h.Media.Upload(ctx, "profilepic/"+email, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		relayProviderFailure(c, err)
		return
	}

	cred, err := h.Identity.SignUp(ctx, email, pass)
	if err != nil {
		relayProviderFailure(c, err)
		return
	}

	issued, err := h.Tokens.Issue(ctx, cred.Email, cred.SessionToken)
	if err != nil {
		notFound(c, err)
		return
	}

	user := &models.User{
		ID:            cred.SubjectID,
		Name:          name,
		Email:         email,
		PicPath:       picURL,
		Streak:        time.Now(),
		ViewedProfile: 0,
		Location:      location,
	}
	if err := h.Users.Create(ctx, user); err != nil {
		if err == store.ErrConflict {
			c.String(http.StatusBadRequest, "EMAIL_EXISTS")
			return
		}
		notFound(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"idToken": issued.Token,
		"id":      cred.SubjectID,
	})
}
