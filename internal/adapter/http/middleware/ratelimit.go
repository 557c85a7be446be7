package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisStore "lottery-awards/internal/adapter/storage/redis"
	"lottery-awards/pkg/apperror"
	"lottery-awards/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitStore counts requests per key and window.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*redisStore.RateLimitResult, error)
}

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the limits per endpoint group. Payout reports
// evaluate the whole number range and get the tightest limit.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"read":    {Limit: 300, Window: time.Minute},
		"check":   {Limit: 120, Window: time.Minute},
		"publish": {Limit: 20, Window: time.Minute},
		"payout":  {Limit: 10, Window: time.Minute},
	}
}

// RateLimiter limits requests of one endpoint group. When the store fails the
// request is let through.
func RateLimiter(store RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys authenticated requests by operator and anonymous
// ones by client IP.
func extractIdentifier(c *gin.Context) string {
	if id, ok := OperatorID(c); ok {
		return "op:" + id
	}
	return "ip:" + c.ClientIP()
}
