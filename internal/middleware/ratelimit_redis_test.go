package middleware

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisLimiter(t *testing.T) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLimiter(client), mr
}

func TestRedisLimiter(t *testing.T) {
	t.Run("sixth request in the window is rejected", func(t *testing.T) {
		l, _ := setupRedisLimiter(t)

		for i := 0; i < 5; i++ {
			assert.True(t, l.Allow("1.2.3.4", 5, time.Minute), "request %d should pass", i+1)
		}
		assert.False(t, l.Allow("1.2.3.4", 5, time.Minute))
	})

	t.Run("key expiry resets the count", func(t *testing.T) {
		l, mr := setupRedisLimiter(t)

		for i := 0; i < 5; i++ {
			require.True(t, l.Allow("1.2.3.4", 5, time.Minute))
		}
		require.False(t, l.Allow("1.2.3.4", 5, time.Minute))

		mr.FastForward(61 * time.Second)
		assert.True(t, l.Allow("1.2.3.4", 5, time.Minute))
	})

	t.Run("addresses count independently", func(t *testing.T) {
		l, _ := setupRedisLimiter(t)

		for i := 0; i < 5; i++ {
			require.True(t, l.Allow("1.2.3.4", 5, time.Minute))
		}
		assert.True(t, l.Allow("5.6.7.8", 5, time.Minute))
	})

	t.Run("fails open when redis is gone", func(t *testing.T) {
		l, mr := setupRedisLimiter(t)
		mr.Close()

		assert.True(t, l.Allow("1.2.3.4", 5, time.Minute))
	})

	t.Run("nil client allows everything", func(t *testing.T) {
		assert.True(t, NewRedisLimiter(nil).Allow("1.2.3.4", 5, time.Minute))
	})
}
