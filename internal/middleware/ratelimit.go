package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter admits or rejects a request under a fixed counting window. It is
// a coarse abuse deterrent, not a hard quota.
type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

// MemoryLimiter is the process-local variant: one bucket per client key,
// count reset when the window since its start has elapsed. It does not
// coordinate across instances.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rateBucket
	now     func() time.Time
}

type rateBucket struct {
	count     int
	windowEnd time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*rateBucket),
		now:     time.Now,
	}
}

// NewMemoryLimiterWithClock injects the time source, for tests.
func NewMemoryLimiterWithClock(now func() time.Time) *MemoryLimiter {
	l := NewMemoryLimiter()
	l.now = now
	return l
}

func (l *MemoryLimiter) Allow(key string, limit int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	bucket, ok := l.buckets[key]
	if !ok || now.After(bucket.windowEnd) {
		l.buckets[key] = &rateBucket{count: 1, windowEnd: now.Add(window)}
		return true
	}
	if bucket.count >= limit {
		return false
	}
	bucket.count++
	return true
}

// Sweep drops buckets whose window has expired and returns how many were
// removed. Without it the map grows with every distinct client address for
// the life of the process.
func (l *MemoryLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, bucket := range l.buckets {
		if now.After(bucket.windowEnd) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// ClientKey resolves the client address from the forwarding header. All
// requests without one share a single "unknown" bucket, which a client can
// trivially exploit by omitting the header; accepted as a known weakness.
func ClientKey(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded == "" {
		return "unknown"
	}
	if i := strings.IndexByte(forwarded, ','); i >= 0 {
		forwarded = forwarded[:i]
	}
	return strings.TrimSpace(forwarded)
}

// RateLimit guards a route with the given limiter.
func RateLimit(limiter Limiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		if !limiter.Allow(ClientKey(c), limit, window) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests",
			})
			return
		}
		c.Next()
	}
}
