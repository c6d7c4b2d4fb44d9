// Package wrapper turns raw config.Config sources into typed configs. Sources
// may yield the native type or its string form as []byte, which is how env
// based sources report values.
package wrapper

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/config"
)

// ErrUnsuportedConversion is returned when the source yields a type the
// wrapper can't convert.
var ErrUnsuportedConversion = errors.New("config: wrapper conversion from source type not implemented")

// typed caches the last good value, so Get keeps returning it while the
// source is failing. A source with no value resets it to the default.
type typed[T any] struct {
	source       config.Config
	defaultValue T
	convert      func(interface{}) (T, error)

	mu        sync.RWMutex
	lastValue T
}

func newTyped[T any](source config.Config, defaultValue T, convert func(interface{}) (T, error)) *typed[T] {
	return &typed[T]{
		source:       source,
		defaultValue: defaultValue,
		convert:      convert,
		lastValue:    defaultValue,
	}
}

func (c *typed[T]) GetSafe(ctx context.Context) (T, error) {
	raw, err := c.source.Get(ctx)
	if err == config.ErrNoValue {
		c.store(c.defaultValue)
		return c.defaultValue, nil
	}

	c.mu.RLock()
	last := c.lastValue
	c.mu.RUnlock()

	if err != nil {
		return last, err
	}

	v, err := c.convert(raw)
	if err != nil {
		return last, err
	}
	c.store(v)
	return v, nil
}

func (c *typed[T]) Get(ctx context.Context) T {
	v, _ := c.GetSafe(ctx)
	return v
}

func (c *typed[T]) Shutdown() {
	c.source.Shutdown()
}

func (c *typed[T]) store(v T) {
	c.mu.Lock()
	c.lastValue = v
	c.mu.Unlock()
}

func NewBoolConfig(source config.Config, defaultValue bool) config.Bool {
	return newTyped(source, defaultValue, func(raw interface{}) (bool, error) {
		switch v := raw.(type) {
		case []byte:
			return strconv.ParseBool(string(v))
		case bool:
			return v, nil
		default:
			return false, ErrUnsuportedConversion
		}
	})
}

func NewUint64Config(source config.Config, defaultValue uint64) config.Uint64 {
	return newTyped(source, defaultValue, func(raw interface{}) (uint64, error) {
		switch v := raw.(type) {
		case []byte:
			return strconv.ParseUint(string(v), 10, 64)
		case uint64:
			return v, nil
		case uint:
			return uint64(v), nil
		default:
			return 0, ErrUnsuportedConversion
		}
	})
}

func NewFloat64Config(source config.Config, defaultValue float64) config.Float64 {
	return newTyped(source, defaultValue, func(raw interface{}) (float64, error) {
		switch v := raw.(type) {
		case []byte:
			return strconv.ParseFloat(string(v), 64)
		case float64:
			return v, nil
		default:
			return 0, ErrUnsuportedConversion
		}
	})
}

// NewDurationConfig parses []byte values with time.ParseDuration, e.g. "250ms".
func NewDurationConfig(source config.Config, defaultValue time.Duration) config.Duration {
	return newTyped(source, defaultValue, func(raw interface{}) (time.Duration, error) {
		switch v := raw.(type) {
		case []byte:
			return time.ParseDuration(string(v))
		case time.Duration:
			return v, nil
		default:
			return 0, ErrUnsuportedConversion
		}
	})
}
