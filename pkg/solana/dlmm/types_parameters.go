package dlmm

import (
	"crypto/ed25519"

	"lukechampine.com/uint128"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const StaticParametersSize = (2 + // base_factor
	2 + // filter_period
	2 + // decay_period
	2 + // reduction_factor
	4 + // variable_fee_control
	4 + // max_volatility_accumulator
	4 + // min_bin_id
	4 + // max_bin_id
	2 + // protocol_share
	1 + // base_fee_power_factor
	5) // padding

// StaticParameters are the fee parameters fixed when the pair is created.
type StaticParameters struct {
	BaseFactor               uint16
	FilterPeriod             uint16
	DecayPeriod              uint16
	ReductionFactor          uint16
	VariableFeeControl       uint32
	MaxVolatilityAccumulator uint32
	MinBinId                 int32
	MaxBinId                 int32
	ProtocolShare            uint16
	BaseFeePowerFactor       uint8
	Padding                  [5]byte
}

func (obj *StaticParameters) Size() int {
	return StaticParametersSize
}

func (obj *StaticParameters) MarshalBinaryTo(e *binary.Encoder) error {
	for _, v := range []uint16{obj.BaseFactor, obj.FilterPeriod, obj.DecayPeriod, obj.ReductionFactor} {
		if err := e.WriteUint16(v); err != nil {
			return err
		}
	}
	if err := e.WriteUint32(obj.VariableFeeControl); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.MaxVolatilityAccumulator); err != nil {
		return err
	}
	if err := e.WriteInt32(obj.MinBinId); err != nil {
		return err
	}
	if err := e.WriteInt32(obj.MaxBinId); err != nil {
		return err
	}
	if err := e.WriteUint16(obj.ProtocolShare); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.BaseFeePowerFactor); err != nil {
		return err
	}
	return e.WriteBytes(obj.Padding[:])
}

func (obj *StaticParameters) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	for _, dst := range []*uint16{&obj.BaseFactor, &obj.FilterPeriod, &obj.DecayPeriod, &obj.ReductionFactor} {
		if *dst, err = d.ReadUint16(); err != nil {
			return err
		}
	}
	if obj.VariableFeeControl, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.MaxVolatilityAccumulator, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.MinBinId, err = d.ReadInt32(); err != nil {
		return err
	}
	if obj.MaxBinId, err = d.ReadInt32(); err != nil {
		return err
	}
	if obj.ProtocolShare, err = d.ReadUint16(); err != nil {
		return err
	}
	if obj.BaseFeePowerFactor, err = d.ReadUint8(); err != nil {
		return err
	}
	return d.ReadFixed(obj.Padding[:])
}

const VariableParametersSize = (4 + // volatility_accumulator
	4 + // volatility_reference
	4 + // index_reference
	4 + // padding
	8 + // last_update_timestamp
	8) // padding1

// VariableParameters track the volatility that drives the variable fee.
type VariableParameters struct {
	VolatilityAccumulator uint32
	VolatilityReference   uint32
	IndexReference        int32
	Padding               [4]byte
	LastUpdateTimestamp   int64
	Padding1              [8]byte
}

func (obj *VariableParameters) Size() int {
	return VariableParametersSize
}

func (obj *VariableParameters) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteUint32(obj.VolatilityAccumulator); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.VolatilityReference); err != nil {
		return err
	}
	if err := e.WriteInt32(obj.IndexReference); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Padding[:]); err != nil {
		return err
	}
	if err := e.WriteInt64(obj.LastUpdateTimestamp); err != nil {
		return err
	}
	return e.WriteBytes(obj.Padding1[:])
}

func (obj *VariableParameters) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.VolatilityAccumulator, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.VolatilityReference, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.IndexReference, err = d.ReadInt32(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Padding[:]); err != nil {
		return err
	}
	if obj.LastUpdateTimestamp, err = d.ReadInt64(); err != nil {
		return err
	}
	return d.ReadFixed(obj.Padding1[:])
}

const ProtocolFeeSize = 16

type ProtocolFee struct {
	AmountX uint64
	AmountY uint64
}

func (obj *ProtocolFee) Size() int {
	return ProtocolFeeSize
}

func (obj *ProtocolFee) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteUint64(obj.AmountX); err != nil {
		return err
	}
	return e.WriteUint64(obj.AmountY)
}

func (obj *ProtocolFee) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.AmountX, err = d.ReadUint64(); err != nil {
		return err
	}
	obj.AmountY, err = d.ReadUint64()
	return err
}

const RewardInfoSize = (32 + // mint
	32 + // vault
	32 + // funder
	8 + // reward_duration
	8 + // reward_duration_end
	16 + // reward_rate
	8 + // last_update_time
	8) // cumulative_seconds_with_empty_liquidity_reward

// RewardInfo describes one farming reward of a pair. An unused slot has a
// zero mint.
type RewardInfo struct {
	Mint                                      ed25519.PublicKey
	Vault                                     ed25519.PublicKey
	Funder                                    ed25519.PublicKey
	RewardDuration                            uint64
	RewardDurationEnd                         uint64
	RewardRate                                uint128.Uint128
	LastUpdateTime                            uint64
	CumulativeSecondsWithEmptyLiquidityReward uint64
}

func (obj *RewardInfo) Size() int {
	return RewardInfoSize
}

func (obj *RewardInfo) MarshalBinaryTo(e *binary.Encoder) error {
	for _, key := range []ed25519.PublicKey{obj.Mint, obj.Vault, obj.Funder} {
		if err := e.WriteKey(key); err != nil {
			return err
		}
	}
	if err := e.WriteUint64(obj.RewardDuration); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.RewardDurationEnd); err != nil {
		return err
	}
	if err := e.WriteUint128(obj.RewardRate); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.LastUpdateTime); err != nil {
		return err
	}
	return e.WriteUint64(obj.CumulativeSecondsWithEmptyLiquidityReward)
}

func (obj *RewardInfo) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	for _, dst := range []*ed25519.PublicKey{&obj.Mint, &obj.Vault, &obj.Funder} {
		if *dst, err = d.ReadKey(); err != nil {
			return err
		}
	}
	if obj.RewardDuration, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.RewardDurationEnd, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.RewardRate, err = d.ReadUint128(); err != nil {
		return err
	}
	if obj.LastUpdateTime, err = d.ReadUint64(); err != nil {
		return err
	}
	obj.CumulativeSecondsWithEmptyLiquidityReward, err = d.ReadUint64()
	return err
}

// IsInitialized reports whether the reward slot is in use.
func (obj *RewardInfo) IsInitialized() bool {
	for _, b := range obj.Mint {
		if b != 0 {
			return true
		}
	}
	return false
}
