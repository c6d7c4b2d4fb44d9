package dlmm

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
	"lukechampine.com/uint128"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const PositionV2Size = (8 + // discriminator
	32 + // lb_pair
	32 + // owner
	MaxBinPerPosition*16 + // liquidity_shares
	MaxBinPerPosition*UserRewardInfoSize + // reward_infos
	MaxBinPerPosition*FeeInfoSize + // fee_infos
	4 + // lower_bin_id
	4 + // upper_bin_id
	8 + // last_updated_at
	8 + // total_claimed_fee_x_amount
	8 + // total_claimed_fee_y_amount
	NumRewards*8 + // total_claimed_rewards
	32 + // operator
	8 + // lock_release_point
	1 + // padding0
	32 + // fee_owner
	87) // reserved

const (
	PositionV2LbPairOffset = 8
	PositionV2OwnerOffset  = 40
)

var PositionV2Discriminator = binary.Discriminator{117, 176, 212, 199, 245, 180, 133, 182}

// PositionV2 is a liquidity position spanning up to MaxBinPerPosition bins
// starting at LowerBinId. Per-bin arrays are indexed by binId - LowerBinId.
type PositionV2 struct {
	LbPair                 ed25519.PublicKey
	Owner                  ed25519.PublicKey
	LiquidityShares        [MaxBinPerPosition]uint128.Uint128
	RewardInfos            [MaxBinPerPosition]UserRewardInfo
	FeeInfos               [MaxBinPerPosition]FeeInfo
	LowerBinId             int32
	UpperBinId             int32
	LastUpdatedAt          int64
	TotalClaimedFeeXAmount uint64
	TotalClaimedFeeYAmount uint64
	TotalClaimedRewards    [NumRewards]uint64
	Operator               ed25519.PublicKey
	LockReleasePoint       uint64
	Padding0               uint8
	FeeOwner               ed25519.PublicKey
	Reserved               [87]byte
}

func (obj *PositionV2) Size() int {
	return PositionV2Size
}

func (obj *PositionV2) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(PositionV2Discriminator); err != nil {
		return err
	}
	if err := e.WriteKey(obj.LbPair); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Owner); err != nil {
		return err
	}
	if err := binary.WriteArray(e, obj.LiquidityShares[:], MaxBinPerPosition, (*binary.Encoder).WriteUint128); err != nil {
		return err
	}
	if err := binary.WriteArray(e, obj.RewardInfos[:], MaxBinPerPosition, binary.WriteRecord[UserRewardInfo]); err != nil {
		return err
	}
	if err := binary.WriteArray(e, obj.FeeInfos[:], MaxBinPerPosition, binary.WriteRecord[FeeInfo]); err != nil {
		return err
	}
	if err := e.WriteInt32(obj.LowerBinId); err != nil {
		return err
	}
	if err := e.WriteInt32(obj.UpperBinId); err != nil {
		return err
	}
	if err := e.WriteInt64(obj.LastUpdatedAt); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.TotalClaimedFeeXAmount); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.TotalClaimedFeeYAmount); err != nil {
		return err
	}
	if err := binary.WriteArray(e, obj.TotalClaimedRewards[:], NumRewards, (*binary.Encoder).WriteUint64); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Operator); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.LockReleasePoint); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.Padding0); err != nil {
		return err
	}
	if err := e.WriteKey(obj.FeeOwner); err != nil {
		return err
	}
	return e.WriteBytes(obj.Reserved[:])
}

func (obj *PositionV2) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(PositionV2Discriminator); err != nil {
		return err
	}
	if obj.LbPair, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.Owner, err = d.ReadKey(); err != nil {
		return err
	}
	if err = binary.ReadArrayInto(d, obj.LiquidityShares[:], 16, (*binary.Decoder).ReadUint128); err != nil {
		return err
	}
	if err = binary.ReadArrayInto(d, obj.RewardInfos[:], UserRewardInfoSize, binary.ReadRecord[UserRewardInfo]); err != nil {
		return err
	}
	if err = binary.ReadArrayInto(d, obj.FeeInfos[:], FeeInfoSize, binary.ReadRecord[FeeInfo]); err != nil {
		return err
	}
	if obj.LowerBinId, err = d.ReadInt32(); err != nil {
		return err
	}
	if obj.UpperBinId, err = d.ReadInt32(); err != nil {
		return err
	}
	if obj.LastUpdatedAt, err = d.ReadInt64(); err != nil {
		return err
	}
	if obj.TotalClaimedFeeXAmount, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.TotalClaimedFeeYAmount, err = d.ReadUint64(); err != nil {
		return err
	}
	if err = binary.ReadArrayInto(d, obj.TotalClaimedRewards[:], 8, (*binary.Decoder).ReadUint64); err != nil {
		return err
	}
	if obj.Operator, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.LockReleasePoint, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.Padding0, err = d.ReadUint8(); err != nil {
		return err
	}
	if obj.FeeOwner, err = d.ReadKey(); err != nil {
		return err
	}
	return d.ReadFixed(obj.Reserved[:])
}

func (obj *PositionV2) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

// Width is the number of bins the position covers.
func (obj *PositionV2) Width() int32 {
	return obj.UpperBinId - obj.LowerBinId + 1
}

// LiquidityShare returns the position's share of a bin, or false when the
// bin falls outside the position.
func (obj *PositionV2) LiquidityShare(binId int32) (uint128.Uint128, bool) {
	if binId < obj.LowerBinId || binId > obj.UpperBinId {
		return uint128.Zero, false
	}
	idx := binId - obj.LowerBinId
	if idx >= MaxBinPerPosition {
		return uint128.Zero, false
	}
	return obj.LiquidityShares[idx], true
}

func (obj *PositionV2) IsEmpty() bool {
	for _, share := range obj.LiquidityShares {
		if !share.IsZero() {
			return false
		}
	}
	return true
}

func (obj *PositionV2) String() string {
	return fmt.Sprintf(
		"PositionV2{lb_pair=%s,owner=%s,lower_bin_id=%d,upper_bin_id=%d,last_updated_at=%d,total_claimed_fee_x_amount=%d,total_claimed_fee_y_amount=%d,operator=%s,fee_owner=%s,lock_release_point=%d}",
		base58.Encode(obj.LbPair),
		base58.Encode(obj.Owner),
		obj.LowerBinId,
		obj.UpperBinId,
		obj.LastUpdatedAt,
		obj.TotalClaimedFeeXAmount,
		obj.TotalClaimedFeeYAmount,
		base58.Encode(obj.Operator),
		base58.Encode(obj.FeeOwner),
		obj.LockReleasePoint,
	)
}
