package main

import (
	"github.com/spf13/viper"
)

// Config is the command line configuration, read from flags, the environment
// and an optional config file, in that order of precedence.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	AppName string `mapstructure:"app_name"`

	// Cluster is a moniker (mainnet, devnet, testnet) or an RPC URL.
	Cluster    string `mapstructure:"solana_cluster"`
	Commitment string `mapstructure:"solana_commitment"`

	// Requests per second per RPC method. Zero disables throttling.
	RpcRateLimit float64 `mapstructure:"solana_rpc_rate_limit"`

	// Metrics configuration across many providers
	NewRelicLicenseKey string `mapstructure:"new_relic_license_key"`
}

var defaultConfig = Config{
	LogLevel: "info",

	AppName: "programctl",

	Cluster:    "mainnet",
	Commitment: "confirmed",
}

func init() {
	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	_ = viper.BindEnv("app_name", "APP_NAME")

	_ = viper.BindEnv("solana_cluster", "SOLANA_CLUSTER")
	_ = viper.BindEnv("solana_commitment", "SOLANA_COMMITMENT")
	_ = viper.BindEnv("solana_rpc_rate_limit", "SOLANA_RPC_RATE_LIMIT")

	_ = viper.BindEnv("new_relic_license_key", "NEW_RELIC_LICENSE_KEY")
}
