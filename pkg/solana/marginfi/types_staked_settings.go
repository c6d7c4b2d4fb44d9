package marginfi

import (
	"crypto/ed25519"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

// StakedSettingsEditConfig is the argument to edit_staked_settings. Nil
// fields are left unchanged.
type StakedSettingsEditConfig struct {
	Oracle                   ed25519.PublicKey
	AssetWeightInit          *binary.I80F48
	AssetWeightMaint         *binary.I80F48
	DepositLimit             *uint64
	TotalAssetValueInitLimit *uint64
	OracleMaxAge             *uint16

	// Isolated makes the staked asset worthless as collateral.
	RiskTier *RiskTier
}

func (obj *StakedSettingsEditConfig) oracle() *ed25519.PublicKey {
	if len(obj.Oracle) == 0 {
		return nil
	}
	return &obj.Oracle
}

func (obj *StakedSettingsEditConfig) Size() int {
	return binary.OptionSize(obj.oracle(), 32) +
		binary.OptionSize(obj.AssetWeightInit, 16) +
		binary.OptionSize(obj.AssetWeightMaint, 16) +
		binary.OptionSize(obj.DepositLimit, 8) +
		binary.OptionSize(obj.TotalAssetValueInitLimit, 8) +
		binary.OptionSize(obj.OracleMaxAge, 2) +
		binary.OptionSize(obj.RiskTier, 1)
}

func (obj *StakedSettingsEditConfig) MarshalBinaryTo(e *binary.Encoder) error {
	if err := binary.WriteOption(e, obj.oracle(), (*binary.Encoder).WriteKey); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.AssetWeightInit, (*binary.Encoder).WriteI80F48); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.AssetWeightMaint, (*binary.Encoder).WriteI80F48); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.DepositLimit, (*binary.Encoder).WriteUint64); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.TotalAssetValueInitLimit, (*binary.Encoder).WriteUint64); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.OracleMaxAge, (*binary.Encoder).WriteUint16); err != nil {
		return err
	}
	return binary.WriteOption(e, obj.RiskTier, writeRiskTier)
}

func (obj *StakedSettingsEditConfig) UnmarshalBinaryFrom(d *binary.Decoder) error {
	oracle, err := binary.ReadOption(d, (*binary.Decoder).ReadKey)
	if err != nil {
		return err
	}
	obj.Oracle = nil
	if oracle != nil {
		obj.Oracle = *oracle
	}

	if obj.AssetWeightInit, err = binary.ReadOption(d, (*binary.Decoder).ReadI80F48); err != nil {
		return err
	}
	if obj.AssetWeightMaint, err = binary.ReadOption(d, (*binary.Decoder).ReadI80F48); err != nil {
		return err
	}
	if obj.DepositLimit, err = binary.ReadOption(d, (*binary.Decoder).ReadUint64); err != nil {
		return err
	}
	if obj.TotalAssetValueInitLimit, err = binary.ReadOption(d, (*binary.Decoder).ReadUint64); err != nil {
		return err
	}
	if obj.OracleMaxAge, err = binary.ReadOption(d, (*binary.Decoder).ReadUint16); err != nil {
		return err
	}
	obj.RiskTier, err = binary.ReadOption(d, readRiskTier)
	return err
}
