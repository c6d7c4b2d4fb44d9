package dlmm

import (
	"fmt"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const PresetParameter2Size = (8 + // discriminator
	2 + // bin_step
	2 + // base_factor
	2 + // filter_period
	2 + // decay_period
	4 + // variable_fee_control
	4 + // max_volatility_accumulator
	2 + // reduction_factor
	2 + // protocol_share
	2 + // index
	1 + // base_fee_power_factor
	1 + // padding0
	20*8) // padding1

var PresetParameter2Discriminator = binary.Discriminator{171, 236, 148, 115, 162, 113, 222, 174}

// PresetParameter2 is an admin approved fee configuration that permissionless
// pairs are created from.
type PresetParameter2 struct {
	BinStep                  uint16
	BaseFactor               uint16
	FilterPeriod             uint16
	DecayPeriod              uint16
	VariableFeeControl       uint32
	MaxVolatilityAccumulator uint32
	ReductionFactor          uint16
	ProtocolShare            uint16
	Index                    uint16
	BaseFeePowerFactor       uint8
	Padding0                 uint8
	Padding1                 [20]uint64
}

func (obj *PresetParameter2) Size() int {
	return PresetParameter2Size
}

func (obj *PresetParameter2) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(PresetParameter2Discriminator); err != nil {
		return err
	}
	for _, v := range []uint16{obj.BinStep, obj.BaseFactor, obj.FilterPeriod, obj.DecayPeriod} {
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
	for _, v := range []uint16{obj.ReductionFactor, obj.ProtocolShare, obj.Index} {
		if err := e.WriteUint16(v); err != nil {
			return err
		}
	}
	if err := e.WriteUint8(obj.BaseFeePowerFactor); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.Padding0); err != nil {
		return err
	}
	return binary.WriteArray(e, obj.Padding1[:], len(obj.Padding1), (*binary.Encoder).WriteUint64)
}

func (obj *PresetParameter2) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(PresetParameter2Discriminator); err != nil {
		return err
	}
	for _, dst := range []*uint16{&obj.BinStep, &obj.BaseFactor, &obj.FilterPeriod, &obj.DecayPeriod} {
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
	for _, dst := range []*uint16{&obj.ReductionFactor, &obj.ProtocolShare, &obj.Index} {
		if *dst, err = d.ReadUint16(); err != nil {
			return err
		}
	}
	if obj.BaseFeePowerFactor, err = d.ReadUint8(); err != nil {
		return err
	}
	if obj.Padding0, err = d.ReadUint8(); err != nil {
		return err
	}
	return binary.ReadArrayInto(d, obj.Padding1[:], 8, (*binary.Decoder).ReadUint64)
}

func (obj *PresetParameter2) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

func (obj *PresetParameter2) String() string {
	return fmt.Sprintf(
		"PresetParameter2{index=%d,bin_step=%d,base_factor=%d,filter_period=%d,decay_period=%d,reduction_factor=%d,variable_fee_control=%d,max_volatility_accumulator=%d,protocol_share=%d,base_fee_power_factor=%d}",
		obj.Index,
		obj.BinStep,
		obj.BaseFactor,
		obj.FilterPeriod,
		obj.DecayPeriod,
		obj.ReductionFactor,
		obj.VariableFeeControl,
		obj.MaxVolatilityAccumulator,
		obj.ProtocolShare,
		obj.BaseFeePowerFactor,
	)
}
