package dlmm

import (
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

// CustomizableParams configure a customizable permissionless pair at
// creation. ActivationPoint is a slot or a timestamp depending on
// ActivationType, and nil activates the pair immediately.
type CustomizableParams struct {
	ActiveId                int32
	BinStep                 uint16
	BaseFactor              uint16
	ActivationType          ActivationType
	HasAlphaVault           bool
	ActivationPoint         *uint64
	CreatorPoolOnOffControl bool
	BaseFeePowerFactor      uint8
	Padding                 [62]byte
}

func (obj *CustomizableParams) Size() int {
	return 4 + // active_id
		2 + // bin_step
		2 + // base_factor
		1 + // activation_type
		1 + // has_alpha_vault
		binary.OptionSize(obj.ActivationPoint, 8) + // activation_point
		1 + // creator_pool_on_off_control
		1 + // base_fee_power_factor
		62 // padding
}

func (obj *CustomizableParams) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteInt32(obj.ActiveId); err != nil {
		return err
	}
	if err := e.WriteUint16(obj.BinStep); err != nil {
		return err
	}
	if err := e.WriteUint16(obj.BaseFactor); err != nil {
		return err
	}
	if err := e.WriteUint8(uint8(obj.ActivationType)); err != nil {
		return err
	}
	if err := e.WriteBool(obj.HasAlphaVault); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.ActivationPoint, (*binary.Encoder).WriteUint64); err != nil {
		return err
	}
	if err := e.WriteBool(obj.CreatorPoolOnOffControl); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.BaseFeePowerFactor); err != nil {
		return err
	}
	return e.WriteBytes(obj.Padding[:])
}

func (obj *CustomizableParams) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.ActiveId, err = d.ReadInt32(); err != nil {
		return err
	}
	if obj.BinStep, err = d.ReadUint16(); err != nil {
		return err
	}
	if obj.BaseFactor, err = d.ReadUint16(); err != nil {
		return err
	}
	var activationType uint8
	if activationType, err = d.ReadEnum(uint8(ActivationTypeTimestamp), "activation_type"); err != nil {
		return err
	}
	obj.ActivationType = ActivationType(activationType)
	if obj.HasAlphaVault, err = d.ReadBool(); err != nil {
		return err
	}
	if obj.ActivationPoint, err = binary.ReadOption(d, (*binary.Decoder).ReadUint64); err != nil {
		return err
	}
	if obj.CreatorPoolOnOffControl, err = d.ReadBool(); err != nil {
		return err
	}
	if obj.BaseFeePowerFactor, err = d.ReadUint8(); err != nil {
		return err
	}
	return d.ReadFixed(obj.Padding[:])
}

const InitPresetParametersIxSize = (2 + // index
	2 + // bin_step
	2 + // base_factor
	2 + // filter_period
	2 + // decay_period
	2 + // reduction_factor
	4 + // variable_fee_control
	4 + // max_volatility_accumulator
	2 + // protocol_share
	1 + // base_fee_power_factor
	1) // function_type

type InitPresetParametersIx struct {
	Index                    uint16
	BinStep                  uint16
	BaseFactor               uint16
	FilterPeriod             uint16
	DecayPeriod              uint16
	ReductionFactor          uint16
	VariableFeeControl       uint32
	MaxVolatilityAccumulator uint32
	ProtocolShare            uint16
	BaseFeePowerFactor       uint8
	FunctionType             uint8
}

func (obj *InitPresetParametersIx) Size() int {
	return InitPresetParametersIxSize
}

func (obj *InitPresetParametersIx) MarshalBinaryTo(e *binary.Encoder) error {
	for _, v := range []uint16{obj.Index, obj.BinStep, obj.BaseFactor, obj.FilterPeriod, obj.DecayPeriod, obj.ReductionFactor} {
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
	if err := e.WriteUint16(obj.ProtocolShare); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.BaseFeePowerFactor); err != nil {
		return err
	}
	return e.WriteUint8(obj.FunctionType)
}

func (obj *InitPresetParametersIx) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	for _, dst := range []*uint16{&obj.Index, &obj.BinStep, &obj.BaseFactor, &obj.FilterPeriod, &obj.DecayPeriod, &obj.ReductionFactor} {
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
	if obj.ProtocolShare, err = d.ReadUint16(); err != nil {
		return err
	}
	if obj.BaseFeePowerFactor, err = d.ReadUint8(); err != nil {
		return err
	}
	obj.FunctionType, err = d.ReadUint8()
	return err
}
