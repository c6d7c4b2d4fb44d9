package solana

import (
	"strings"

	"github.com/pkg/errors"
)

type Environment string

const (
	EnvironmentDev  Environment = "https://api.devnet.solana.com"
	EnvironmentTest Environment = "https://api.testnet.solana.com"
	EnvironmentProd Environment = "https://api.mainnet-beta.solana.com"
)

// EnvironmentFromName resolves a cluster moniker. Anything that looks like a
// URL is used as a custom endpoint.
func EnvironmentFromName(name string) (Environment, error) {
	switch strings.ToLower(name) {
	case "", "mainnet", "mainnet-beta", "prod":
		return EnvironmentProd, nil
	case "devnet", "dev":
		return EnvironmentDev, nil
	case "testnet", "test":
		return EnvironmentTest, nil
	}

	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return Environment(name), nil
	}
	return "", errors.Errorf("unknown cluster: %s", name)
}
