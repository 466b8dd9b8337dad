package ratelimit

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elyebdri/maurifind/internal/pkg/response"
)

// Middleware limits requests per client IP using the given limiter.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			c.Header("X-RateLimit-Remaining", "0")
			response.TooManyRequests(c, "Too many requests, try again later", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Next()
	}
}
