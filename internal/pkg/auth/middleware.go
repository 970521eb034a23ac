package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "authUserID"

// Middleware resolves the caller's identity from the Authorization header and
// stores the user id in the request context. Requests without a verifiable
// bearer token are rejected before any handler runs.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}
		userID, err := ParseToken(secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(identityKey, userID)
		c.Next()
	}
}

// UserID returns the verified user id for the request, or "" when the request
// did not pass through the middleware.
func UserID(c *gin.Context) string {
	id, _ := c.Get(identityKey)
	s, _ := id.(string)
	return s
}
