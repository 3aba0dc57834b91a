package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func fixedClock(rl *RateLimiter) *time.Time {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return &now
}

func TestRateLimiterTake(t *testing.T) {
	rl := NewRateLimiter(3, time.Second)

	for want := 2; want >= 0; want-- {
		remaining, _, ok := rl.take("test-ip")
		assert.True(t, ok)
		assert.Equal(t, want, remaining)
	}
	_, _, ok := rl.take("test-ip")
	assert.False(t, ok)
	_, _, ok = rl.take("other-ip")
	assert.True(t, ok)
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	now := fixedClock(rl)

	rl.take("test-ip")
	*now = now.Add(20 * time.Second)
	rl.take("test-ip")

	_, retryAfter, ok := rl.take("test-ip")
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, retryAfter)

	// Only the first hit has left the window.
	*now = now.Add(41 * time.Second)
	_, _, ok = rl.take("test-ip")
	assert.True(t, ok)
	_, _, ok = rl.take("test-ip")
	assert.False(t, ok)
}

func TestRateLimiterDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	now := fixedClock(rl)

	rl.take("a")
	*now = now.Add(2 * time.Minute)
	rl.take("b")

	assert.NotContains(t, rl.hits, "a")
	assert.Contains(t, rl.hits, "b")
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	h := NewAPIHandler(&fakePlanner{}, nil, nil, nil, 0)
	r := gin.New()
	RegisterRoutes(r, h, rl)

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		r.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/api/results/missing", nil))
		codes = append(codes, last.Code)
	}
	assert.Equal(t, []int{http.StatusNotFound, http.StatusNotFound, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, last.Header().Get("Retry-After"))

	// Health sits outside the limited group.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
