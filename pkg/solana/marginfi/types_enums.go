package marginfi

import (
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

type BankOperationalState uint8

const (
	BankOperationalStatePaused BankOperationalState = iota
	BankOperationalStateOperational
	BankOperationalStateReduceOnly
)

func (s BankOperationalState) String() string {
	switch s {
	case BankOperationalStatePaused:
		return "paused"
	case BankOperationalStateOperational:
		return "operational"
	case BankOperationalStateReduceOnly:
		return "reduce_only"
	}
	return "unknown"
}

func readBankOperationalState(d *binary.Decoder) (BankOperationalState, error) {
	v, err := d.ReadEnum(uint8(BankOperationalStateReduceOnly), "bank operational state")
	return BankOperationalState(v), err
}

func writeBankOperationalState(e *binary.Encoder, v BankOperationalState) error {
	return e.WriteUint8(uint8(v))
}

type RiskTier uint8

const (
	RiskTierCollateral RiskTier = iota
	RiskTierIsolated
)

func (t RiskTier) String() string {
	switch t {
	case RiskTierCollateral:
		return "collateral"
	case RiskTierIsolated:
		return "isolated"
	}
	return "unknown"
}

func readRiskTier(d *binary.Decoder) (RiskTier, error) {
	v, err := d.ReadEnum(uint8(RiskTierIsolated), "risk tier")
	return RiskTier(v), err
}

func writeRiskTier(e *binary.Encoder, v RiskTier) error {
	return e.WriteUint8(uint8(v))
}

// OracleSetup identifies the oracle backing a bank. New setups are added over
// time, so values outside the known set are carried through as is.
type OracleSetup uint8

const (
	OracleSetupNone OracleSetup = iota
	OracleSetupPythLegacy
	OracleSetupSwitchboardV2
	OracleSetupPythPushOracle
	OracleSetupSwitchboardPull
	OracleSetupStakedWithPythPush
)

const (
	AssetTagDefault uint8 = 0
	AssetTagSol     uint8 = 1
	AssetTagStaked  uint8 = 2
)
