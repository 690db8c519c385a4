package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window counter per client IP kept in Redis.
// A nil client disables limiting.
type RateLimiter struct {
	redisClient redis.Cmdable
	log         *slog.Logger
}

func NewRateLimiter(client redis.Cmdable, log *slog.Logger) *RateLimiter {
	if log == nil {
		log = slog.Default()
	}
	return &RateLimiter{redisClient: client, log: log}
}

func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.redisClient == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", keySuffix, c.ClientIP())

		// EXPIRE NX rides along with every INCR so a key whose first expire
		// was lost still gets a window on the next hit.
		var incr *redis.IntCmd
		_, err := rl.redisClient.TxPipelined(c, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(c, key)
			pipe.ExpireNX(c, key, window)
			return nil
		})
		if err != nil {
			// fail open
			rl.log.WarnContext(c, "rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}
		count := incr.Val()

		if count > int64(limit) {
			ttl, _ := rl.redisClient.TTL(c, key).Result()
			retryAfter := int(math.Ceil(ttl.Seconds()))
			if retryAfter < 1 {
				retryAfter = int(window.Seconds())
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
				"code":  "RATE_LIMITED",
			})
			return
		}
		c.Next()
	}
}
