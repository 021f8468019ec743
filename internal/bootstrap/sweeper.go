package bootstrap

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/iitm-tech-society/recruit-backend/internal/middleware"
)

// StartLimiterSweep evicts expired rate-limit buckets every five minutes.
// Without it the in-memory limiter grows with every distinct client address
// seen over the life of the process.
func StartLimiterSweep(limiter *middleware.MemoryLimiter) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("*/5 * * * *", func() {
		if removed := limiter.Sweep(); removed > 0 {
			log.Printf("[ratelimit] swept %d expired buckets", removed)
		}
	})
	if err != nil {
		log.Printf("Failed to create limiter sweep job: %v", err)
		return c
	}

	c.Start()
	return c
}
