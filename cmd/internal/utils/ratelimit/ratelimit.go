package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// KeyedLimiter hands out one token bucket per key. Buckets live for the
// process lifetime; the key space here (login emails) is small enough that
// no eviction is needed.
type KeyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func NewKeyedLimiter(rps float64, burst int) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (k *KeyedLimiter) Allow(key string) bool {
	k.mu.Lock()
	limiter, ok := k.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(k.rps, k.burst)
		k.limiters[key] = limiter
	}
	k.mu.Unlock()

	return limiter.Allow()
}
