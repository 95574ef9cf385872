package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/salesdash/internal/pkg/logger"
	"github.com/piresc/salesdash/internal/utils"
)

// Counter increments a key that expires after the given window.
// It returns the new count and the time left in the window.
type Counter interface {
	IncrWithExpire(ctx context.Context, key string, expiration time.Duration) (int64, time.Duration, error)
}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Counter Counter
	Key     string        // Key prefix for Redis
	Limit   int           // Maximum number of requests
	Period  time.Duration // Time period for the limit
}

// RateLimiterMiddleware limits requests per client IP and route using a fixed window.
// If the counter store fails the request is let through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), c.RealIP())

			count, ttl, err := config.Counter.IncrWithExpire(c.Request().Context(), key, config.Period)
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			if ttl < 0 {
				ttl = config.Period
			}

			remaining := int64(config.Limit) - count
			if remaining < 0 {
				remaining = 0
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			header.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

			if count > int64(config.Limit) {
				header.Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, counter Counter) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Counter: counter,
		Key:     "rate:ip",
		Limit:   limit,
		Period:  period,
	})
}
