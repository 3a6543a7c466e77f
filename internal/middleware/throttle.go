package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Throttler is a fixed-window per-IP rate limiter guarding the unauthenticated
// auth endpoints. State is in-memory; the deployment is single-node.
type Throttler struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]*throttleBucket
	now     func() time.Time
}

type throttleBucket struct {
	windowStart time.Time
	count       int
}

// NewThrottler allows limit requests per window per client IP.
func NewThrottler(limit int, window time.Duration) *Throttler {
	return &Throttler{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*throttleBucket),
		now:     time.Now,
	}
}

// Allow records one attempt for the key and reports whether it is within
// the limit. Stale buckets are pruned as they are touched.
func (t *Throttler) Allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	b, ok := t.buckets[key]
	if !ok || now.Sub(b.windowStart) >= t.window {
		t.buckets[key] = &throttleBucket{windowStart: now, count: 1}
		t.pruneLocked(now)
		return true
	}

	b.count++
	return b.count <= t.limit
}

// pruneLocked drops expired buckets so the map does not grow with every IP
// ever seen. Called with the lock held.
func (t *Throttler) pruneLocked(now time.Time) {
	if len(t.buckets) < 1024 {
		return
	}
	for key, b := range t.buckets {
		if now.Sub(b.windowStart) >= t.window {
			delete(t.buckets, key)
		}
	}
}

// Middleware rejects over-limit clients with 429.
func (t *Throttler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":  "error",
				"message": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
