package middleware

import (
	"net/http"
	"strings"

	"riseup/store"

	"github.com/gin-gonic/gin"
)

// TokenAuth resolves the bearer token in the Authorization header against the
// token store. On success the owning uid (the account email) is stored in the
// context under "authUID"; otherwise the request is rejected with a plain
// 403 body.
func TokenAuth(tokens store.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.String(http.StatusForbidden, "Access Denied")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		uid, err := tokens.Lookup(c.Request.Context(), token)
		if err != nil {
			c.String(http.StatusForbidden, "Access Denied")
			c.Abort()
			return
		}

		c.Set("authUID", uid)
		c.Next()
	}
}

// RequireActor compares the claimed actor mail against the authenticated uid.
// Returns false after writing the rejection, so handlers can bail early.
func RequireActor(c *gin.Context, mail string) bool {
	if mail != c.GetString("authUID") {
		c.String(http.StatusForbidden, "Access Denied")
		c.Abort()
		return false
	}
	return true
}
