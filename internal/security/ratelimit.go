package security

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateLimiter is a fixed-window per-client limiter backed by Redis. It is
// applied to the auth routes so leaked credentials cannot be brute-forced
// through the login endpoint.
type RateLimiter struct {
	redis    *redis.Client
	limit    int
	interval time.Duration
}

type RateLimiterConfig struct {
	Redis    *redis.Client
	Limit    int
	Interval time.Duration
}

func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	return &RateLimiter{
		redis:    cfg.Redis,
		limit:    cfg.Limit,
		interval: cfg.Interval,
	}
}

func (rl *RateLimiter) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := rl.redis.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis being down must not take requests with it.
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if count == 1 {
			rl.redis.Expire(c.Request.Context(), key, rl.interval)
		}

		if count > int64(rl.limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, try again later",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
