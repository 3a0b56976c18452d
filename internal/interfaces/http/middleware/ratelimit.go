package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/utils"
)

// RateLimit enforces a per-client-IP request budget. When the limiter
// backend is unavailable the request passes; limiting is protection, not
// a dependency.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), cfg)
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
