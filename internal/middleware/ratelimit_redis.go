package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter lives in Redis so every instance sees the same window. INCR and
// PEXPIRE run as one script to keep the read-increment-compare atomic.
const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter is the multi-instance limiter variant. A Redis failure
// fails open: the submission flow must not go down with the limiter.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
	}
}

func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}

	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()

	allowed, err := l.script.Run(ctx, l.client, []string{"ratelimit:" + key}, ttl, limit).Int64()
	if err != nil {
		return true
	}
	return allowed == 1
}
