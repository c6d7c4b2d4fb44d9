// Package env provides configs backed by environment variables. Variables are
// looked up on every Get, so a process picks up changes made with os.Setenv.
package env

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/code-payments/solana-program-clients/pkg/config"
	"github.com/code-payments/solana-program-clients/pkg/config/wrapper"
)

type conf struct {
	key string
}

// NewConfig returns a config reading the upper cased key. Empty variables are
// treated as unset.
func NewConfig(key string) config.Config {
	return &conf{key: strings.ToUpper(key)}
}

func (c *conf) Get(_ context.Context) (interface{}, error) {
	val, ok := os.LookupEnv(c.key)
	if !ok || len(val) == 0 {
		return nil, config.ErrNoValue
	}
	return []byte(val), nil
}

func (c *conf) Shutdown() {}

func NewUint64Config(key string, defaultValue uint64) config.Uint64 {
	return wrapper.NewUint64Config(NewConfig(key), defaultValue)
}

func NewFloat64Config(key string, defaultValue float64) config.Float64 {
	return wrapper.NewFloat64Config(NewConfig(key), defaultValue)
}

func NewBoolConfig(key string, defaultValue bool) config.Bool {
	return wrapper.NewBoolConfig(NewConfig(key), defaultValue)
}

func NewDurationConfig(key string, defaultValue time.Duration) config.Duration {
	return wrapper.NewDurationConfig(NewConfig(key), defaultValue)
}
