package api

import (
	"math"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter caps requests per client IP over a sliding window.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	hits      map[string][]time.Time // oldest first
	lastSweep time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

// take records a hit for key if it fits the window. When it does not,
// retryAfter is the time until the oldest hit expires.
func (rl *RateLimiter) take(key string) (remaining int, retryAfter time.Duration, ok bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)
	// Idle clients are dropped at most once per window.
	if now.Sub(rl.lastSweep) >= rl.window {
		for k, h := range rl.hits {
			if len(unexpired(h, cutoff)) == 0 {
				delete(rl.hits, k)
			}
		}
		rl.lastSweep = now
	}

	h := unexpired(rl.hits[key], cutoff)
	if len(h) >= rl.limit {
		rl.hits[key] = h
		return 0, h[0].Sub(cutoff), false
	}
	h = append(h, now)
	rl.hits[key] = h
	return rl.limit - len(h), 0, true
}

func unexpired(h []time.Time, cutoff time.Time) []time.Time {
	i := sort.Search(len(h), func(i int) bool { return h[i].After(cutoff) })
	return h[i:]
}

// Middleware answers 429 with Retry-After once a client is over the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	limit := strconv.Itoa(rl.limit)
	return func(c *gin.Context) {
		remaining, retryAfter, ok := rl.take(c.ClientIP())
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !ok {
			secs := int(math.Ceil(retryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(secs, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}
