package decoder

import (
	"time"

	"github.com/code-payments/solana-program-clients/pkg/config"
	"github.com/code-payments/solana-program-clients/pkg/config/env"
	"github.com/code-payments/solana-program-clients/pkg/config/memory"
	"github.com/code-payments/solana-program-clients/pkg/config/wrapper"
)

const (
	envConfigPrefix = "ACCOUNT_SCANNER_"

	BatchSizeConfigEnvName = envConfigPrefix + "BATCH_SIZE"
	defaultBatchSize       = 100

	ConcurrencyConfigEnvName = envConfigPrefix + "CONCURRENCY"
	defaultConcurrency       = 8

	// Requests per second against the RPC node. Zero disables throttling.
	RpcRateLimitConfigEnvName = envConfigPrefix + "RPC_RATE_LIMIT"
	defaultRpcRateLimit       = 0

	RateLimitBackoffConfigEnvName = envConfigPrefix + "RATE_LIMIT_BACKOFF"
	defaultRateLimitBackoff       = 250 * time.Millisecond

	// Drop accounts no decoder is registered for instead of reporting them
	// as failures.
	SkipUnknownConfigEnvName = envConfigPrefix + "SKIP_UNKNOWN"
	defaultSkipUnknown       = false
)

type conf struct {
	batchSize        config.Uint64
	concurrency      config.Uint64
	rpcRateLimit     config.Float64
	rateLimitBackoff config.Duration
	skipUnknown      config.Bool
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			batchSize:        env.NewUint64Config(BatchSizeConfigEnvName, defaultBatchSize),
			concurrency:      env.NewUint64Config(ConcurrencyConfigEnvName, defaultConcurrency),
			rpcRateLimit:     env.NewFloat64Config(RpcRateLimitConfigEnvName, defaultRpcRateLimit),
			rateLimitBackoff: env.NewDurationConfig(RateLimitBackoffConfigEnvName, defaultRateLimitBackoff),
			skipUnknown:      env.NewBoolConfig(SkipUnknownConfigEnvName, defaultSkipUnknown),
		}
	}
}

type testOverrides struct {
	batchSize        uint64
	concurrency      uint64
	rpcRateLimit     float64
	rateLimitBackoff time.Duration
	skipUnknown      bool
}

func withManualTestOverrides(overrides *testOverrides) ConfigProvider {
	return func() *conf {
		return &conf{
			batchSize:        wrapper.NewUint64Config(memory.NewConfig(overrides.batchSize), defaultBatchSize),
			concurrency:      wrapper.NewUint64Config(memory.NewConfig(overrides.concurrency), defaultConcurrency),
			rpcRateLimit:     wrapper.NewFloat64Config(memory.NewConfig(overrides.rpcRateLimit), defaultRpcRateLimit),
			rateLimitBackoff: wrapper.NewDurationConfig(memory.NewConfig(overrides.rateLimitBackoff), defaultRateLimitBackoff),
			skipUnknown:      wrapper.NewBoolConfig(memory.NewConfig(overrides.skipUnknown), defaultSkipUnknown),
		}
	}
}
