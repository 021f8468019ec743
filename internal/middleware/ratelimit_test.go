package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	t.Run("sixth request in the window is rejected", func(t *testing.T) {
		l := NewMemoryLimiter()
		for i := 0; i < 5; i++ {
			assert.True(t, l.Allow("1.2.3.4", 5, time.Minute), "request %d should pass", i+1)
		}
		assert.False(t, l.Allow("1.2.3.4", 5, time.Minute))
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		now := time.Date(2025, time.May, 8, 12, 0, 0, 0, time.UTC)
		l := NewMemoryLimiterWithClock(func() time.Time { return now })

		for i := 0; i < 5; i++ {
			require.True(t, l.Allow("1.2.3.4", 5, time.Minute))
		}
		require.False(t, l.Allow("1.2.3.4", 5, time.Minute))

		now = now.Add(61 * time.Second)
		assert.True(t, l.Allow("1.2.3.4", 5, time.Minute))
	})

	t.Run("addresses count independently", func(t *testing.T) {
		l := NewMemoryLimiter()
		for i := 0; i < 5; i++ {
			require.True(t, l.Allow("1.2.3.4", 5, time.Minute))
		}
		assert.True(t, l.Allow("5.6.7.8", 5, time.Minute))
	})
}

func TestMemoryLimiterSweep(t *testing.T) {
	now := time.Date(2025, time.May, 8, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiterWithClock(func() time.Time { return now })

	l.Allow("1.2.3.4", 5, time.Minute)
	l.Allow("5.6.7.8", 5, time.Minute)

	assert.Equal(t, 0, l.Sweep(), "live buckets stay")

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 2, l.Sweep())
	assert.Equal(t, 0, l.Sweep())
}

func TestClientKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(forwarded string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/api/recruit", nil)
		if forwarded != "" {
			c.Request.Header.Set("X-Forwarded-For", forwarded)
		}
		return c
	}

	t.Run("takes the first forwarded address", func(t *testing.T) {
		assert.Equal(t, "1.2.3.4", ClientKey(newCtx("1.2.3.4, 10.0.0.1")))
	})

	t.Run("missing header shares the unknown bucket", func(t *testing.T) {
		assert.Equal(t, "unknown", ClientKey(newCtx("")))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/recruit", RateLimit(NewMemoryLimiter(), 5, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	do := func(forwarded string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/recruit", nil)
		req.Header.Set("X-Forwarded-For", forwarded)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do("1.2.3.4").Code, "request %d", i+1)
	}

	rr := do("1.2.3.4")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Too many requests", body["error"])

	// A different address is unaffected.
	assert.Equal(t, http.StatusOK, do("5.6.7.8").Code)
}

func TestGlobalThrottle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("disabled when rps is zero", func(t *testing.T) {
		router := gin.New()
		router.GET("/", GlobalThrottle(0), func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 100; i++ {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("rejects beyond the burst", func(t *testing.T) {
		router := gin.New()
		router.GET("/", GlobalThrottle(1), func(c *gin.Context) { c.Status(http.StatusOK) })

		first := httptest.NewRecorder()
		router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})
}
