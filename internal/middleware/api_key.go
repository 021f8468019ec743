package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKey gates a route group behind an X-API-Key header. An empty expected
// key rejects everything; the router only mounts gated routes when a key is
// configured.
func APIKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")

		if expected == "" || key == "" || key != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid API key",
			})
			return
		}

		c.Next()
	}
}
