package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/mateusfonseca/dorsetToDo/internal/shared"
)

// RateLimitEndpointConfig is a fixed-window limit for one endpoint.
type RateLimitEndpointConfig struct {
	Requests int
	Window   time.Duration
	KeyFunc  func(*gin.Context) string
}

type RateLimiter struct {
	cache   *cache.Cache
	config  map[string]RateLimitEndpointConfig
	metrics *shared.AppMetrics
}

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

func clientIP(c *gin.Context) string {
	return "ip_" + c.ClientIP()
}

func sessionUser(c *gin.Context) string {
	if ident := CurrentIdentity(c); ident.IsAuthenticated() {
		return "user_" + ident.ID()
	}

	return clientIP(c)
}

// NewRateLimiter limits the credential endpoints by client IP and everything
// else by session user, falling back to IP for anonymous callers.
func NewRateLimiter(metrics *shared.AppMetrics) *RateLimiter {
	configs := map[string]RateLimitEndpointConfig{
		"POST /signup": {
			Requests: 5,
			Window:   time.Minute,
			KeyFunc:  clientIP,
		},
		"POST /login": {
			Requests: 10,
			Window:   time.Minute,
			KeyFunc:  clientIP,
		},
		"default": {
			Requests: 60,
			Window:   time.Minute,
			KeyFunc:  sessionUser,
		},
	}

	return &RateLimiter{
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		config:  configs,
		metrics: metrics,
	}
}

func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()

		if path == "" {
			path = c.Request.URL.Path
		}

		methodPath := c.Request.Method + " " + path

		config, exists := rl.config[methodPath]

		if !exists {
			config = rl.config["default"]
		}

		rawKey := config.KeyFunc(c)
		key := methodPath + ":" + rawKey
		keyType := "ip"

		if strings.HasPrefix(rawKey, "user_") {
			keyType = "user"
		}

		allowed, remaining, resetTime := rl.check(key, config)

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(path, keyType)
			}

			log.Warn().Str("path", path).Str("key", key).Msg("rate limit exceeded")

			c.Header("Retry-After", strconv.Itoa(int(time.Until(resetTime).Seconds())+1))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"errors": []string{fmt.Sprintf("Rate limit exceeded. Try again in %s.", time.Until(resetTime).Round(time.Second))},
			})
			c.Abort()
			return
		}

		if rl.metrics != nil {
			rl.metrics.RecordRateLimitAllowed(path, keyType)
		}

		c.Next()
	}
}

func (rl *RateLimiter) check(key string, config RateLimitEndpointConfig) (bool, int, time.Time) {
	now := time.Now()

	if val, ok := rl.cache.Get(key); ok {
		entry := val.(rateLimitEntry)

		if now.Before(entry.ResetTime) {
			if entry.Count >= config.Requests {
				return false, 0, entry.ResetTime
			}

			entry.Count++
			rl.cache.Set(key, entry, time.Until(entry.ResetTime))

			return true, config.Requests - entry.Count, entry.ResetTime
		}
	}

	entry := rateLimitEntry{Count: 1, ResetTime: now.Add(config.Window)}
	rl.cache.Set(key, entry, config.Window)

	return true, config.Requests - 1, entry.ResetTime
}
