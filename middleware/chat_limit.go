package middleware

import (
	"net/http"

	"techmart-backend/services/ratelimit"

	"github.com/gin-gonic/gin"
)

// ChatRateLimit gates the AI chat endpoints with the fixed-window
// limiter, keyed by client IP. A denied request gets a 429 with a
// user-facing message; it is never reported as a backend failure.
func ChatRateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Muitas requisições. Aguarde um momento.",
			})
			return
		}
		c.Next()
	}
}
