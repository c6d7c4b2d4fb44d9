package marinade

import (
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

// ConfigMarinadeParams carries the admin changes for config_marinade. Nil
// fields are left untouched by the program.
type ConfigMarinadeParams struct {
	RewardsFee                  *Fee
	SlotsForStakeDelta          *uint64
	MinStake                    *uint64
	MinDeposit                  *uint64
	MinWithdraw                 *uint64
	StakingSolCap               *uint64
	LiquiditySolCap             *uint64
	WithdrawStakeAccountEnabled *bool
	DelayedUnstakeFee           *FeeCents
	WithdrawStakeAccountFee     *FeeCents
	MaxStakeMovedPerEpoch       *Fee
}

func (obj *ConfigMarinadeParams) u64s() []*uint64 {
	return []*uint64{obj.SlotsForStakeDelta, obj.MinStake, obj.MinDeposit, obj.MinWithdraw, obj.StakingSolCap, obj.LiquiditySolCap}
}

func (obj *ConfigMarinadeParams) Size() int {
	size := binary.OptionSize(obj.RewardsFee, FeeSize)
	for _, v := range obj.u64s() {
		size += binary.OptionSize(v, 8)
	}
	return size +
		binary.OptionSize(obj.WithdrawStakeAccountEnabled, 1) +
		binary.OptionSize(obj.DelayedUnstakeFee, FeeCentsSize) +
		binary.OptionSize(obj.WithdrawStakeAccountFee, FeeCentsSize) +
		binary.OptionSize(obj.MaxStakeMovedPerEpoch, FeeSize)
}

func (obj *ConfigMarinadeParams) MarshalBinaryTo(e *binary.Encoder) error {
	if err := binary.WriteOption(e, obj.RewardsFee, binary.WriteRecord[Fee]); err != nil {
		return err
	}
	for _, v := range obj.u64s() {
		if err := binary.WriteOption(e, v, (*binary.Encoder).WriteUint64); err != nil {
			return err
		}
	}
	if err := binary.WriteOption(e, obj.WithdrawStakeAccountEnabled, (*binary.Encoder).WriteBool); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.DelayedUnstakeFee, binary.WriteRecord[FeeCents]); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.WithdrawStakeAccountFee, binary.WriteRecord[FeeCents]); err != nil {
		return err
	}
	return binary.WriteOption(e, obj.MaxStakeMovedPerEpoch, binary.WriteRecord[Fee])
}

func (obj *ConfigMarinadeParams) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.RewardsFee, err = binary.ReadOption(d, binary.ReadRecord[Fee]); err != nil {
		return err
	}
	for _, dst := range []**uint64{&obj.SlotsForStakeDelta, &obj.MinStake, &obj.MinDeposit, &obj.MinWithdraw, &obj.StakingSolCap, &obj.LiquiditySolCap} {
		if *dst, err = binary.ReadOption(d, (*binary.Decoder).ReadUint64); err != nil {
			return err
		}
	}
	if obj.WithdrawStakeAccountEnabled, err = binary.ReadOption(d, (*binary.Decoder).ReadBool); err != nil {
		return err
	}
	if obj.DelayedUnstakeFee, err = binary.ReadOption(d, binary.ReadRecord[FeeCents]); err != nil {
		return err
	}
	if obj.WithdrawStakeAccountFee, err = binary.ReadOption(d, binary.ReadRecord[FeeCents]); err != nil {
		return err
	}
	obj.MaxStakeMovedPerEpoch, err = binary.ReadOption(d, binary.ReadRecord[Fee])
	return err
}
