package marginfi

import (
	"crypto/ed25519"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const InterestRateConfigSize = (16 + // optimal_utilization_rate
	16 + // plateau_interest_rate
	16 + // max_interest_rate
	16 + // insurance_fee_fixed_apr
	16 + // insurance_ir_fee
	16 + // protocol_fixed_fee_apr
	16 + // protocol_ir_fee
	16 + // protocol_origination_fee
	112) // padding

type InterestRateConfig struct {
	OptimalUtilizationRate binary.I80F48
	PlateauInterestRate    binary.I80F48
	MaxInterestRate        binary.I80F48
	InsuranceFeeFixedApr   binary.I80F48
	InsuranceIrFee         binary.I80F48
	ProtocolFixedFeeApr    binary.I80F48
	ProtocolIrFee          binary.I80F48
	ProtocolOriginationFee binary.I80F48
	Padding                [112]byte
}

func (obj *InterestRateConfig) fields() []*binary.I80F48 {
	return []*binary.I80F48{
		&obj.OptimalUtilizationRate,
		&obj.PlateauInterestRate,
		&obj.MaxInterestRate,
		&obj.InsuranceFeeFixedApr,
		&obj.InsuranceIrFee,
		&obj.ProtocolFixedFeeApr,
		&obj.ProtocolIrFee,
		&obj.ProtocolOriginationFee,
	}
}

func (obj *InterestRateConfig) Size() int {
	return InterestRateConfigSize
}

func (obj *InterestRateConfig) MarshalBinaryTo(e *binary.Encoder) error {
	for _, v := range obj.fields() {
		if err := e.WriteI80F48(*v); err != nil {
			return err
		}
	}
	return e.WriteBytes(obj.Padding[:])
}

func (obj *InterestRateConfig) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	for _, v := range obj.fields() {
		if *v, err = d.ReadI80F48(); err != nil {
			return err
		}
	}
	return d.ReadFixed(obj.Padding[:])
}

const MaxOracleKeys = 5

const BankConfigSize = (16 + // asset_weight_init
	16 + // asset_weight_maint
	16 + // liability_weight_init
	16 + // liability_weight_maint
	8 + // deposit_limit
	InterestRateConfigSize + // interest_rate_config
	1 + // operational_state
	1 + // oracle_setup
	MaxOracleKeys*32 + // oracle_keys
	6 + // pad0
	8 + // borrow_limit
	1 + // risk_tier
	1 + // asset_tag
	1 + // config_flags
	5 + // pad1
	8 + // total_asset_value_init_limit
	2 + // oracle_max_age
	2 + // padding0
	4 + // oracle_max_confidence
	32) // padding1

// BankConfig is the risk and oracle configuration embedded in a Bank.
type BankConfig struct {
	AssetWeightInit      binary.I80F48
	AssetWeightMaint     binary.I80F48
	LiabilityWeightInit  binary.I80F48
	LiabilityWeightMaint binary.I80F48

	DepositLimit       uint64
	InterestRateConfig InterestRateConfig

	// Read as raw values since the program adds states over time.
	OperationalState BankOperationalState
	OracleSetup      OracleSetup

	OracleKeys  [MaxOracleKeys]ed25519.PublicKey
	Pad0        [6]byte
	BorrowLimit uint64
	RiskTier    RiskTier
	AssetTag    uint8
	ConfigFlags uint8
	Pad1        [5]byte

	TotalAssetValueInitLimit uint64
	OracleMaxAge             uint16
	Padding0                 [2]byte
	OracleMaxConfidence      uint32
	Padding1                 [32]byte
}

func (obj *BankConfig) Size() int {
	return BankConfigSize
}

func (obj *BankConfig) MarshalBinaryTo(e *binary.Encoder) error {
	for _, v := range []binary.I80F48{
		obj.AssetWeightInit,
		obj.AssetWeightMaint,
		obj.LiabilityWeightInit,
		obj.LiabilityWeightMaint,
	} {
		if err := e.WriteI80F48(v); err != nil {
			return err
		}
	}
	if err := e.WriteUint64(obj.DepositLimit); err != nil {
		return err
	}
	if err := obj.InterestRateConfig.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := e.WriteUint8(uint8(obj.OperationalState)); err != nil {
		return err
	}
	if err := e.WriteUint8(uint8(obj.OracleSetup)); err != nil {
		return err
	}
	if err := binary.WriteArray(e, obj.OracleKeys[:], MaxOracleKeys, (*binary.Encoder).WriteKey); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Pad0[:]); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.BorrowLimit); err != nil {
		return err
	}
	if err := e.WriteUint8(uint8(obj.RiskTier)); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.AssetTag); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.ConfigFlags); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Pad1[:]); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.TotalAssetValueInitLimit); err != nil {
		return err
	}
	if err := e.WriteUint16(obj.OracleMaxAge); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Padding0[:]); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.OracleMaxConfidence); err != nil {
		return err
	}
	return e.WriteBytes(obj.Padding1[:])
}

func (obj *BankConfig) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	for _, v := range []*binary.I80F48{
		&obj.AssetWeightInit,
		&obj.AssetWeightMaint,
		&obj.LiabilityWeightInit,
		&obj.LiabilityWeightMaint,
	} {
		if *v, err = d.ReadI80F48(); err != nil {
			return err
		}
	}
	if obj.DepositLimit, err = d.ReadUint64(); err != nil {
		return err
	}
	if err = obj.InterestRateConfig.UnmarshalBinaryFrom(d); err != nil {
		return err
	}

	var raw uint8
	if raw, err = d.ReadUint8(); err != nil {
		return err
	}
	obj.OperationalState = BankOperationalState(raw)
	if raw, err = d.ReadUint8(); err != nil {
		return err
	}
	obj.OracleSetup = OracleSetup(raw)

	if err = binary.ReadArrayInto(d, obj.OracleKeys[:], 32, (*binary.Decoder).ReadKey); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Pad0[:]); err != nil {
		return err
	}
	if obj.BorrowLimit, err = d.ReadUint64(); err != nil {
		return err
	}
	if raw, err = d.ReadUint8(); err != nil {
		return err
	}
	obj.RiskTier = RiskTier(raw)
	if obj.AssetTag, err = d.ReadUint8(); err != nil {
		return err
	}
	if obj.ConfigFlags, err = d.ReadUint8(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Pad1[:]); err != nil {
		return err
	}
	if obj.TotalAssetValueInitLimit, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.OracleMaxAge, err = d.ReadUint16(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Padding0[:]); err != nil {
		return err
	}
	if obj.OracleMaxConfidence, err = d.ReadUint32(); err != nil {
		return err
	}
	return d.ReadFixed(obj.Padding1[:])
}

// InterestRateConfigOpt updates a subset of a bank's interest rate config.
// Nil fields are left unchanged.
type InterestRateConfigOpt struct {
	OptimalUtilizationRate *binary.I80F48
	PlateauInterestRate    *binary.I80F48
	MaxInterestRate        *binary.I80F48
	InsuranceFeeFixedApr   *binary.I80F48
	InsuranceIrFee         *binary.I80F48
	ProtocolFixedFeeApr    *binary.I80F48
	ProtocolIrFee          *binary.I80F48
	ProtocolOriginationFee *binary.I80F48
}

func (obj *InterestRateConfigOpt) fields() []**binary.I80F48 {
	return []**binary.I80F48{
		&obj.OptimalUtilizationRate,
		&obj.PlateauInterestRate,
		&obj.MaxInterestRate,
		&obj.InsuranceFeeFixedApr,
		&obj.InsuranceIrFee,
		&obj.ProtocolFixedFeeApr,
		&obj.ProtocolIrFee,
		&obj.ProtocolOriginationFee,
	}
}

func (obj *InterestRateConfigOpt) Size() int {
	var size int
	for _, v := range obj.fields() {
		size += binary.OptionSize(*v, 16)
	}
	return size
}

func (obj *InterestRateConfigOpt) MarshalBinaryTo(e *binary.Encoder) error {
	for _, v := range obj.fields() {
		if err := binary.WriteOption(e, *v, (*binary.Encoder).WriteI80F48); err != nil {
			return err
		}
	}
	return nil
}

func (obj *InterestRateConfigOpt) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	for _, v := range obj.fields() {
		if *v, err = binary.ReadOption(d, (*binary.Decoder).ReadI80F48); err != nil {
			return err
		}
	}
	return nil
}

// BankConfigOpt is the argument to lending_pool_configure_bank. Nil fields
// are left unchanged.
type BankConfigOpt struct {
	AssetWeightInit      *binary.I80F48
	AssetWeightMaint     *binary.I80F48
	LiabilityWeightInit  *binary.I80F48
	LiabilityWeightMaint *binary.I80F48

	DepositLimit       *uint64
	BorrowLimit        *uint64
	OperationalState   *BankOperationalState
	InterestRateConfig *InterestRateConfigOpt
	RiskTier           *RiskTier
	AssetTag           *uint8

	TotalAssetValueInitLimit *uint64
	OracleMaxConfidence      *uint32
	OracleMaxAge             *uint16

	PermissionlessBadDebtSettlement *bool
	FreezeSettings                  *bool
}

func (obj *BankConfigOpt) weights() []**binary.I80F48 {
	return []**binary.I80F48{
		&obj.AssetWeightInit,
		&obj.AssetWeightMaint,
		&obj.LiabilityWeightInit,
		&obj.LiabilityWeightMaint,
	}
}

func (obj *BankConfigOpt) Size() int {
	var size int
	for _, v := range obj.weights() {
		size += binary.OptionSize(*v, 16)
	}
	size += binary.OptionSize(obj.DepositLimit, 8)
	size += binary.OptionSize(obj.BorrowLimit, 8)
	size += binary.OptionSize(obj.OperationalState, 1)
	if obj.InterestRateConfig != nil {
		size += 1 + obj.InterestRateConfig.Size()
	} else {
		size += 1
	}
	size += binary.OptionSize(obj.RiskTier, 1)
	size += binary.OptionSize(obj.AssetTag, 1)
	size += binary.OptionSize(obj.TotalAssetValueInitLimit, 8)
	size += binary.OptionSize(obj.OracleMaxConfidence, 4)
	size += binary.OptionSize(obj.OracleMaxAge, 2)
	size += binary.OptionSize(obj.PermissionlessBadDebtSettlement, 1)
	size += binary.OptionSize(obj.FreezeSettings, 1)
	return size
}

func (obj *BankConfigOpt) MarshalBinaryTo(e *binary.Encoder) error {
	for _, v := range obj.weights() {
		if err := binary.WriteOption(e, *v, (*binary.Encoder).WriteI80F48); err != nil {
			return err
		}
	}
	if err := binary.WriteOption(e, obj.DepositLimit, (*binary.Encoder).WriteUint64); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.BorrowLimit, (*binary.Encoder).WriteUint64); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.OperationalState, writeBankOperationalState); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.InterestRateConfig, binary.WriteRecord[InterestRateConfigOpt]); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.RiskTier, writeRiskTier); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.AssetTag, (*binary.Encoder).WriteUint8); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.TotalAssetValueInitLimit, (*binary.Encoder).WriteUint64); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.OracleMaxConfidence, (*binary.Encoder).WriteUint32); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.OracleMaxAge, (*binary.Encoder).WriteUint16); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.PermissionlessBadDebtSettlement, (*binary.Encoder).WriteBool); err != nil {
		return err
	}
	return binary.WriteOption(e, obj.FreezeSettings, (*binary.Encoder).WriteBool)
}

func (obj *BankConfigOpt) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	for _, v := range obj.weights() {
		if *v, err = binary.ReadOption(d, (*binary.Decoder).ReadI80F48); err != nil {
			return err
		}
	}
	if obj.DepositLimit, err = binary.ReadOption(d, (*binary.Decoder).ReadUint64); err != nil {
		return err
	}
	if obj.BorrowLimit, err = binary.ReadOption(d, (*binary.Decoder).ReadUint64); err != nil {
		return err
	}
	if obj.OperationalState, err = binary.ReadOption(d, readBankOperationalState); err != nil {
		return err
	}
	if obj.InterestRateConfig, err = binary.ReadOption(d, binary.ReadRecord[InterestRateConfigOpt]); err != nil {
		return err
	}
	if obj.RiskTier, err = binary.ReadOption(d, readRiskTier); err != nil {
		return err
	}
	if obj.AssetTag, err = binary.ReadOption(d, (*binary.Decoder).ReadUint8); err != nil {
		return err
	}
	if obj.TotalAssetValueInitLimit, err = binary.ReadOption(d, (*binary.Decoder).ReadUint64); err != nil {
		return err
	}
	if obj.OracleMaxConfidence, err = binary.ReadOption(d, (*binary.Decoder).ReadUint32); err != nil {
		return err
	}
	if obj.OracleMaxAge, err = binary.ReadOption(d, (*binary.Decoder).ReadUint16); err != nil {
		return err
	}
	if obj.PermissionlessBadDebtSettlement, err = binary.ReadOption(d, (*binary.Decoder).ReadBool); err != nil {
		return err
	}
	obj.FreezeSettings, err = binary.ReadOption(d, (*binary.Decoder).ReadBool)
	return err
}
