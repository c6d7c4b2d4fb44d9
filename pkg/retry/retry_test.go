package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/retry/backoff"
)

func TestRetry_RealSleeper(t *testing.T) {
	sleeperImpl = &realSleeper{}

	start := time.Now()
	attempts, err := Retry(
		func() error { return errors.New("rpc unavailable") },
		Limit(2),
		Backoff(backoff.Constant(200*time.Millisecond), 200*time.Millisecond),
	)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.EqualValues(t, 2, attempts)
	assert.GreaterOrEqual(t, elapsed, 200*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	var calls int
	attempts, err := Retry(func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, attempts)
}

func TestRetrier(t *testing.T) {
	errRateLimited := errors.New("rate limited")
	r := NewRetrier(Limit(4), RetriableErrors(errRateLimited))

	attempts, err := r.Retry(func() error { return nil })
	require.NoError(t, err)
	assert.EqualValues(t, 1, attempts)

	attempts, err = r.Retry(func() error { return errors.New("invalid params") })
	assert.EqualError(t, err, "invalid params")
	assert.EqualValues(t, 1, attempts)

	attempts, err = r.Retry(func() error { return errRateLimited })
	assert.Equal(t, errRateLimited, err)
	assert.EqualValues(t, 4, attempts)
}
