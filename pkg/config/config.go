// Package config defines dynamically sourced configuration values. Sources
// such as env and memory yield raw values, and the wrapper package turns them
// into typed configs with defaults.
package config

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrNoValue is returned by sources that have nothing set for a key.
	ErrNoValue = errors.New("config: no value set")

	// ErrShutdown is returned by sources used after Shutdown.
	ErrShutdown = errors.New("config: shutdown")
)

// Config is a raw config source.
type Config interface {
	Get(ctx context.Context) (interface{}, error)

	// Shutdown releases any resources held by the source.
	Shutdown()
}

// Typed configs fall back to their default when the source has no value. Get
// hides source errors behind the last good value, GetSafe returns them.

type Bool interface {
	Get(ctx context.Context) bool
	GetSafe(ctx context.Context) (bool, error)
	Shutdown()
}

type Duration interface {
	Get(ctx context.Context) time.Duration
	GetSafe(ctx context.Context) (time.Duration, error)
	Shutdown()
}

type Float64 interface {
	Get(ctx context.Context) float64
	GetSafe(ctx context.Context) (float64, error)
	Shutdown()
}

type Uint64 interface {
	Get(ctx context.Context) uint64
	GetSafe(ctx context.Context) (uint64, error)
	Shutdown()
}
