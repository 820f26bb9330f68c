package ratelimit

import (
	"errors"
	"net/http"
	"strconv"

	"catering/internal/shared/utils/response"
	"catering/pkg/logger"

	"github.com/gin-gonic/gin"
)

var errLimitExceeded = errors.New("rate limit exceeded")

// Middleware rejects requests over the limit with 429. Redis failures fail
// open: the request proceeds and the error is logged.
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())
		clientIP := c.ClientIP()

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP)
		if err != nil {
			log.Error("Rate limit check failed", "ip", clientIP, "error", err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetTime, 10))

		if !result.Allowed {
			log.Warn("Rate Limit Exceeded", "ip", clientIP, "endpoint", c.FullPath())
			response.RespondError(c, http.StatusTooManyRequests, "Too many booking requests", errLimitExceeded)
			c.Abort()
			return
		}

		c.Next()
	}
}
