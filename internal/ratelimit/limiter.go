package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	"github.com/BruksfildServices01/feedback-hub/internal/metrics"
)

var ErrTooManyRequests = httperr.New(httperr.KindRateLimited, "Too many reviews submitted, please try again later")

// Limiter is a fixed window counter per key kept in Redis.
type Limiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func New(client *redis.Client, prefix string, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// NewClient opens a Redis client for addr.
func NewClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password})
}

// Allow counts one hit for key and reports whether it is within the limit,
// along with the time left in the current window.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := fmt.Sprintf("%s:%s", l.prefix, key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, err
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, 0, err
		}
	}

	if n <= int64(l.limit) {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, k).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}
	return false, ttl, nil
}

// Middleware limits requests per client IP. A nil limiter lets every
// request through; Redis failures also let the request through.
func Middleware(l *Limiter, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}

		ok, retry, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		if !ok {
			metrics.ObserveRateLimited()
			c.Header("Retry-After", strconv.Itoa(int(retry.Round(time.Second).Seconds())))
			httperr.Abort(c, ErrTooManyRequests)
			return
		}

		c.Next()
	}
}
