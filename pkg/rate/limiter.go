package rate

import (
	"sync"

	"golang.org/x/time/rate"
)

// Limiter limits operations based on a provided key, typically an RPC method.
type Limiter interface {
	Allow(key string) (bool, error)
}

// LimiterCtor allows the creation of a Limiter using a provided rate.
type LimiterCtor func(rate float64) Limiter

var _ LimiterCtor = FromRate

// FromRate returns a local limiter admitting rps operations per second per
// key, or a NoLimiter when rps is not positive.
func FromRate(rps float64) Limiter {
	if rps <= 0 {
		return &NoLimiter{}
	}
	return NewLocalRateLimiter(rate.Limit(rps))
}

type localRateLimiter struct {
	limit rate.Limit

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewLocalRateLimiter returns an in memory limiter keyed by operation.
func NewLocalRateLimiter(limit rate.Limit) Limiter {
	return &localRateLimiter{
		limit:    limit,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow implements Limiter.Allow.
func (l *localRateLimiter) Allow(key string) (bool, error) {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		// Fractional rates still need a burst of one to admit anything.
		limiter = rate.NewLimiter(l.limit, max(1, int(l.limit)))
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow(), nil
}

// NoLimiter never limits operations
type NoLimiter struct {
}

// Allow implements Limiter.Allow.
func (n *NoLimiter) Allow(key string) (bool, error) {
	return true, nil
}
