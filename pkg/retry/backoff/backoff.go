// Package backoff computes the delay between retry attempts.
package backoff

import (
	"math"
	"time"
)

// Strategy maps an attempt number, starting at 1, to the delay before the
// next attempt.
type Strategy func(attempt uint) time.Duration

// Constant waits the same interval after every attempt.
func Constant(interval time.Duration) Strategy {
	return func(uint) time.Duration {
		return interval
	}
}

// Exponential waits baseDelay * base^(attempt-1), saturating at the largest
// representable duration instead of overflowing.
func Exponential(baseDelay time.Duration, base float64) Strategy {
	return func(attempt uint) time.Duration {
		delay := float64(baseDelay) * math.Pow(base, float64(attempt-1))
		if delay >= math.MaxInt64 || math.IsInf(delay, 0) || math.IsNaN(delay) {
			return math.MaxInt64
		}
		return time.Duration(delay)
	}
}

// BinaryExponential doubles the delay after every attempt, starting at
// baseDelay.
func BinaryExponential(baseDelay time.Duration) Strategy {
	return Exponential(baseDelay, 2)
}
