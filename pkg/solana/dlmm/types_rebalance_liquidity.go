package dlmm

import (
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

// RemoveLiquidityParams withdraws Bps of the liquidity in a bin range. A nil
// bound falls back to the edge of the position.
type RemoveLiquidityParams struct {
	MinBinId *int32
	MaxBinId *int32
	Bps      uint16
	Padding  [16]byte
}

func (obj *RemoveLiquidityParams) Size() int {
	return binary.OptionSize(obj.MinBinId, 4) + // min_bin_id
		binary.OptionSize(obj.MaxBinId, 4) + // max_bin_id
		2 + // bps
		16 // padding
}

func (obj *RemoveLiquidityParams) MarshalBinaryTo(e *binary.Encoder) error {
	if err := binary.WriteOption(e, obj.MinBinId, (*binary.Encoder).WriteInt32); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.MaxBinId, (*binary.Encoder).WriteInt32); err != nil {
		return err
	}
	if err := e.WriteUint16(obj.Bps); err != nil {
		return err
	}
	return e.WriteBytes(obj.Padding[:])
}

func (obj *RemoveLiquidityParams) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.MinBinId, err = binary.ReadOption(d, (*binary.Decoder).ReadInt32); err != nil {
		return err
	}
	if obj.MaxBinId, err = binary.ReadOption(d, (*binary.Decoder).ReadInt32); err != nil {
		return err
	}
	if obj.Bps, err = d.ReadUint16(); err != nil {
		return err
	}
	return d.ReadFixed(obj.Padding[:])
}

const AddLiquidityParamsSize = (4 + // min_delta_id
	4 + // max_delta_id
	8 + // x0
	8 + // y0
	8 + // delta_x
	8 + // delta_y
	1 + // bit_flag
	1 + // favor_x_in_active_id
	16) // padding

// AddLiquidityParams deposits into bins relative to the active id, with
// amounts following x0 + deltaX * i on each side.
type AddLiquidityParams struct {
	MinDeltaId       int32
	MaxDeltaId       int32
	X0               uint64
	Y0               uint64
	DeltaX           uint64
	DeltaY           uint64
	BitFlag          uint8
	FavorXInActiveId bool
	Padding          [16]byte
}

func (obj *AddLiquidityParams) Size() int {
	return AddLiquidityParamsSize
}

func (obj *AddLiquidityParams) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteInt32(obj.MinDeltaId); err != nil {
		return err
	}
	if err := e.WriteInt32(obj.MaxDeltaId); err != nil {
		return err
	}
	for _, v := range []uint64{obj.X0, obj.Y0, obj.DeltaX, obj.DeltaY} {
		if err := e.WriteUint64(v); err != nil {
			return err
		}
	}
	if err := e.WriteUint8(obj.BitFlag); err != nil {
		return err
	}
	if err := e.WriteBool(obj.FavorXInActiveId); err != nil {
		return err
	}
	return e.WriteBytes(obj.Padding[:])
}

func (obj *AddLiquidityParams) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.MinDeltaId, err = d.ReadInt32(); err != nil {
		return err
	}
	if obj.MaxDeltaId, err = d.ReadInt32(); err != nil {
		return err
	}
	for _, dst := range []*uint64{&obj.X0, &obj.Y0, &obj.DeltaX, &obj.DeltaY} {
		if *dst, err = d.ReadUint64(); err != nil {
			return err
		}
	}
	if obj.BitFlag, err = d.ReadUint8(); err != nil {
		return err
	}
	if obj.FavorXInActiveId, err = d.ReadBool(); err != nil {
		return err
	}
	return d.ReadFixed(obj.Padding[:])
}

// RebalanceLiquidityParams removes and then adds liquidity within a single
// position in one instruction.
type RebalanceLiquidityParams struct {
	ActiveId             int32
	MaxActiveBinSlippage uint16
	ShouldClaimFee       bool
	ShouldClaimReward    bool
	MinWithdrawXAmount   uint64
	MaxDepositXAmount    uint64
	MinWithdrawYAmount   uint64
	MaxDepositYAmount    uint64
	ShrinkMode           uint8
	Padding              [31]byte
	Removes              []RemoveLiquidityParams
	Adds                 []AddLiquidityParams
}

func (obj *RebalanceLiquidityParams) Size() int {
	size := 4 + // active_id
		2 + // max_active_bin_slippage
		1 + // should_claim_fee
		1 + // should_claim_reward
		8 + // min_withdraw_x_amount
		8 + // max_deposit_x_amount
		8 + // min_withdraw_y_amount
		8 + // max_deposit_y_amount
		1 + // shrink_mode
		31 + // padding
		4 // removes length
	for i := range obj.Removes {
		size += obj.Removes[i].Size()
	}
	return size + binary.VectorSize(len(obj.Adds), AddLiquidityParamsSize)
}

func (obj *RebalanceLiquidityParams) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteInt32(obj.ActiveId); err != nil {
		return err
	}
	if err := e.WriteUint16(obj.MaxActiveBinSlippage); err != nil {
		return err
	}
	if err := e.WriteBool(obj.ShouldClaimFee); err != nil {
		return err
	}
	if err := e.WriteBool(obj.ShouldClaimReward); err != nil {
		return err
	}
	for _, v := range []uint64{obj.MinWithdrawXAmount, obj.MaxDepositXAmount, obj.MinWithdrawYAmount, obj.MaxDepositYAmount} {
		if err := e.WriteUint64(v); err != nil {
			return err
		}
	}
	if err := e.WriteUint8(obj.ShrinkMode); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Padding[:]); err != nil {
		return err
	}
	if err := binary.WriteVector(e, obj.Removes, binary.WriteRecord[RemoveLiquidityParams]); err != nil {
		return err
	}
	return binary.WriteVector(e, obj.Adds, binary.WriteRecord[AddLiquidityParams])
}

func (obj *RebalanceLiquidityParams) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.ActiveId, err = d.ReadInt32(); err != nil {
		return err
	}
	if obj.MaxActiveBinSlippage, err = d.ReadUint16(); err != nil {
		return err
	}
	if obj.ShouldClaimFee, err = d.ReadBool(); err != nil {
		return err
	}
	if obj.ShouldClaimReward, err = d.ReadBool(); err != nil {
		return err
	}
	for _, dst := range []*uint64{&obj.MinWithdrawXAmount, &obj.MaxDepositXAmount, &obj.MinWithdrawYAmount, &obj.MaxDepositYAmount} {
		if *dst, err = d.ReadUint64(); err != nil {
			return err
		}
	}
	if obj.ShrinkMode, err = d.ReadUint8(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Padding[:]); err != nil {
		return err
	}
	// Removes are variable length because of their optional bounds.
	if obj.Removes, err = binary.ReadVector(d, 0, binary.ReadRecord[RemoveLiquidityParams]); err != nil {
		return err
	}
	obj.Adds, err = binary.ReadVector(d, AddLiquidityParamsSize, binary.ReadRecord[AddLiquidityParams])
	return err
}
