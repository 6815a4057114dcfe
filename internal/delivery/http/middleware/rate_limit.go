package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Reject instead of falling back to memory when Redis errors
	FailClosed bool
}

// DefaultRateLimitConfig returns the global per-IP limit
func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
var rateLimitScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
	removed bool // set by Cleanup; holders must load a fresh entry
}

// RateLimiter is a fixed-window counter backed by Redis, with an in-memory fallback
type RateLimiter struct {
	config RateLimitConfig
	redis  goredis.Scripter // nil means in-memory only
	store  sync.Map
	now    func() time.Time
}

func NewRateLimiter(config RateLimitConfig, redisClient goredis.Scripter) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	return &RateLimiter{config: config, redis: redisClient, now: time.Now}
}

// Middleware enforces the limit, answering 429 with Retry-After once exceeded
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.config.KeyPrefix + rl.config.KeyFunc(c)

		count, resetAt, err := rl.hit(c.Request.Context(), key)
		if err != nil {
			logger.Log.Warnw("Rate limit backend unavailable",
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"error", err,
			)
			if rl.config.FailClosed {
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
				c.Abort()
				return
			}
			count, resetAt = rl.hitInMemory(key)
		}

		remaining := rl.config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > rl.config.Limit {
			retryAfter := int(resetAt.Sub(rl.now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Infow("Rate limit triggered",
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"client_ip", c.ClientIP(),
				"path", c.FullPath(),
			)
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) hit(ctx context.Context, key string) (int, time.Time, error) {
	if rl.redis == nil {
		count, resetAt := rl.hitInMemory(key)
		return count, resetAt, nil
	}

	ttlSeconds := int(rl.config.Window.Seconds())
	result, err := rateLimitScript.Run(ctx, rl.redis, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), rl.now().Add(time.Duration(ttl) * time.Second), nil
}

func (rl *RateLimiter) hitInMemory(key string) (int, time.Time) {
	for {
		now := rl.now()
		entryI, _ := rl.store.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(rl.config.Window)})
		entry := entryI.(*rateLimitEntry)

		entry.mu.Lock()
		if entry.removed {
			entry.mu.Unlock()
			continue
		}
		if now.After(entry.resetAt) {
			entry.count = 0
			entry.resetAt = now.Add(rl.config.Window)
		}
		entry.count++
		count, resetAt := entry.count, entry.resetAt
		entry.mu.Unlock()
		return count, resetAt
	}
}

// Cleanup drops expired in-memory windows until ctx is done
func (rl *RateLimiter) Cleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	now := rl.now()
	rl.store.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			entry.removed = true
			rl.store.CompareAndDelete(key, entry)
		}
		entry.mu.Unlock()
		return true
	})
}
