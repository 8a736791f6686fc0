package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// abortWithError returns a JSON error response and aborts the request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// APIKeyMiddleware guards the coaching endpoints with a static key, sent as
// "Authorization: Bearer <key>" or "X-API-Key: <key>". An empty configured
// key disables the check (local development).
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader("X-API-Key")
		if provided == "" {
			authHeader := c.GetHeader("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				provided = parts[1]
			}
		}

		if provided != apiKey {
			abortWithError(c, http.StatusUnauthorized, "Invalid or missing API key")
			return
		}
		c.Next()
	}
}
