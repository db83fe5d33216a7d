package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasanthsingh/QuickPass/pkg/redis"
	"github.com/vasanthsingh/QuickPass/pkg/response"
)

// RateLimit throttles a route to limit requests per window per client IP,
// counted in Redis. Without Redis, or on a Redis error, requests pass
// through.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
