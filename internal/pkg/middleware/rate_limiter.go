package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/piresc/admin-gateway/internal/pkg/constants"
	"github.com/piresc/admin-gateway/internal/pkg/logger"
	"github.com/piresc/admin-gateway/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Scope       string        // distinguishes limited routes in the key
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware is a fixed-window per-IP limiter backed by Redis.
// When Redis is unreachable requests are let through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf(constants.KeyRateLimit, config.Scope, c.RealIP())

			// SET NX opens the window and INCR keeps its TTL, all in one MULTI
			pipe := config.RedisClient.TxPipeline()
			pipe.SetNX(ctx, key, 0, config.Period)
			incr := pipe.Incr(ctx, key)
			ttl := pipe.TTL(ctx, key)
			if _, err := pipe.Exec(ctx); err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable",
					logger.String("scope", config.Scope),
					logger.ErrorField(err))
				return next(c)
			}

			window := ttl.Val()
			if window < 0 {
				// counter left without expiry by an older writer
				window = config.Period
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					logger.WarnCtx(ctx, "Failed to set rate limit window",
						logger.String("scope", config.Scope),
						logger.ErrorField(err))
				}
			}

			count := int(incr.Val())
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				header.Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter for one route scope
func IPRateLimiter(scope string, limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Scope:       scope,
		Limit:       limit,
		Period:      period,
	})
}
