package dlmm

import (
	"lukechampine.com/uint128"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const UserRewardInfoSize = (NumRewards*16 + // reward_per_token_completes
	NumRewards*8) // reward_pendings

type UserRewardInfo struct {
	RewardPerTokenCompletes [NumRewards]uint128.Uint128
	RewardPendings          [NumRewards]uint64
}

func (obj *UserRewardInfo) Size() int {
	return UserRewardInfoSize
}

func (obj *UserRewardInfo) MarshalBinaryTo(e *binary.Encoder) error {
	if err := binary.WriteArray(e, obj.RewardPerTokenCompletes[:], NumRewards, (*binary.Encoder).WriteUint128); err != nil {
		return err
	}
	return binary.WriteArray(e, obj.RewardPendings[:], NumRewards, (*binary.Encoder).WriteUint64)
}

func (obj *UserRewardInfo) UnmarshalBinaryFrom(d *binary.Decoder) error {
	if err := binary.ReadArrayInto(d, obj.RewardPerTokenCompletes[:], 16, (*binary.Decoder).ReadUint128); err != nil {
		return err
	}
	return binary.ReadArrayInto(d, obj.RewardPendings[:], 8, (*binary.Decoder).ReadUint64)
}

const FeeInfoSize = (16 + // fee_x_per_token_complete
	16 + // fee_y_per_token_complete
	8 + // fee_x_pending
	8) // fee_y_pending

// FeeInfo is a position's fee checkpoint for a single bin.
type FeeInfo struct {
	FeeXPerTokenComplete uint128.Uint128
	FeeYPerTokenComplete uint128.Uint128
	FeeXPending          uint64
	FeeYPending          uint64
}

func (obj *FeeInfo) Size() int {
	return FeeInfoSize
}

func (obj *FeeInfo) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteUint128(obj.FeeXPerTokenComplete); err != nil {
		return err
	}
	if err := e.WriteUint128(obj.FeeYPerTokenComplete); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.FeeXPending); err != nil {
		return err
	}
	return e.WriteUint64(obj.FeeYPending)
}

func (obj *FeeInfo) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.FeeXPerTokenComplete, err = d.ReadUint128(); err != nil {
		return err
	}
	if obj.FeeYPerTokenComplete, err = d.ReadUint128(); err != nil {
		return err
	}
	if obj.FeeXPending, err = d.ReadUint64(); err != nil {
		return err
	}
	obj.FeeYPending, err = d.ReadUint64()
	return err
}
