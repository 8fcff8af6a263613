package api

import (
	"net/http"
	"strings"

	"Boettcher_Wiki/internal/wiki/auth"
	"Boettcher_Wiki/pkg/ratelimiter"

	"github.com/gin-gonic/gin"
)

// contextKeyUsername is where the auth middleware stores the verified admin
// username in the gin context.
const contextKeyUsername = "username"

// AuthMiddleware creates a gin middleware that verifies the bearer token on
// admin routes. Requests without a valid token are rejected before any
// handler runs, so failed auth never has side effects.
func AuthMiddleware(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
			c.Abort()
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
			c.Abort()
			return
		}

		username, err := a.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
			c.Abort()
			return
		}

		c.Set(contextKeyUsername, username)
		c.Next()
	}
}

// RateLimitMiddleware rejects requests with 429 once the limiter runs dry.
func RateLimitMiddleware(limiter ratelimiter.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
