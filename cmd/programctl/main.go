package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/code-payments/solana-program-clients/pkg/metrics"
	"github.com/code-payments/solana-program-clients/pkg/rate"
	"github.com/code-payments/solana-program-clients/pkg/solana"
)

const defaultShutdownTimeout = 5 * time.Second

var (
	configPath string

	config          Config
	metricsProvider *newrelic.Application

	rootCmd = &cobra.Command{
		Use:   "programctl",
		Short: "Inspect marginfi, Marinade and Meteora DLMM accounts",
		Long: `programctl decodes program accounts, derives program addresses and resolves
program error codes for marginfi v2, Marinade and Meteora DLMM.

Examples:
  programctl decode 8szGkuLTAux9XMgZ2vtY39jVSowEcpBfFfD8hXSEqdGC
  programctl pda dlmm bin-array <lb_pair> -3
  programctl error marginfi 6009
  programctl scan marinade --kind ticket --owner <beneficiary> --store ./snapshots`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if metricsProvider != nil {
				metricsProvider.Shutdown(defaultShutdownTimeout)
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "configuration file path")
	flags.String("log-level", defaultConfig.LogLevel, "log level")
	flags.String("cluster", defaultConfig.Cluster, "cluster moniker (mainnet, devnet, testnet) or RPC endpoint URL")
	flags.String("commitment", defaultConfig.Commitment, "commitment level (processed, confirmed, finalized)")
	flags.Float64("rpc-rate-limit", defaultConfig.RpcRateLimit, "RPC requests per second per method, 0 for unlimited")

	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("solana_cluster", flags.Lookup("cluster"))
	_ = viper.BindPFlag("solana_commitment", flags.Lookup("commitment"))
	_ = viper.BindPFlag("solana_rpc_rate_limit", flags.Lookup("rpc-rate-limit"))

	rootCmd.AddCommand(
		decodeCmd,
		decodeFileCmd,
		pdaCmd,
		errorCmd,
		scanCmd,
		watchCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	if len(configPath) > 0 {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrap(err, "failed to load config")
		}
	}

	config = defaultConfig
	if err := viper.Unmarshal(&config); err != nil {
		return errors.Wrap(err, "failed to unmarshal config")
	}

	// todo: Better abstraction so we're not directly tied to NR
	if len(config.NewRelicLicenseKey) > 0 {
		nr, err := newrelic.NewApplication(
			newrelic.ConfigFromEnvironment(),
			newrelic.ConfigAppName(config.AppName),
			newrelic.ConfigLicense(config.NewRelicLicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			return errors.Wrap(err, "error connecting to new relic")
		}
		metricsProvider = nr
	}

	configureLogger(config, metricsProvider)

	cmd.SetContext(metrics.NewContext(commandContext(cmd), metricsProvider))
	return nil
}

func configureLogger(config Config, metricsProvider *newrelic.Application) {
	if metricsProvider != nil {
		logrus.SetFormatter(metrics.NewLogFormatter(metricsProvider, &logrus.JSONFormatter{}))
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		logrus.StandardLogger().WithField("log_level", config.LogLevel).Warn("unknown log level, ignoring")
	} else {
		logrus.SetLevel(level)
	}

	// Command output goes to stdout, logs stay out of its way.
	logrus.SetOutput(os.Stderr)
}

func newClient() (solana.Client, error) {
	endpoint, err := solana.EnvironmentFromName(config.Cluster)
	if err != nil {
		return nil, err
	}

	return solana.NewWithRPCOptions(string(endpoint), nil, rate.FromRate(config.RpcRateLimit)), nil
}

func commitment() (solana.Commitment, error) {
	return solana.CommitmentFromName(config.Commitment)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
