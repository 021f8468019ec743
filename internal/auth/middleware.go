package auth

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// RequireUser validates Firebase ID tokens and stores the caller's identity
// in the request context. A nil client disables the gate, for deployments
// without an identity provider.
func RequireUser(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authClient == nil {
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "missing authorization token",
			})
			return
		}

		decodedToken, err := authClient.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid token",
			})
			return
		}

		c.Set("firebase_uid", decodedToken.UID)
		if email, ok := decodedToken.Claims["email"].(string); ok {
			c.Set("email", email)
		}

		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
