package dlmm

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var RebalancingEventDiscriminator = binary.Discriminator{0, 109, 117, 179, 61, 91, 199, 200}

const RebalancingEventSize = (8 + // discriminator
	32 + // lb_pair
	32 + // position
	32 + // owner
	4 + // active_bin_id
	8 + // x_withdrawn_amount
	8 + // x_added_amount
	8 + // y_withdrawn_amount
	8 + // y_added_amount
	8 + // x_fee_amount
	8 + // y_fee_amount
	4 + // old_min_id
	4 + // old_max_id
	4 + // new_min_id
	4 + // new_max_id
	NumRewards*8) // rewards

// RebalancingEvent is emitted by rebalance_liquidity with the net token
// movement and the position's bin range before and after.
type RebalancingEvent struct {
	LbPair           ed25519.PublicKey
	Position         ed25519.PublicKey
	Owner            ed25519.PublicKey
	ActiveBinId      int32
	XWithdrawnAmount uint64
	XAddedAmount     uint64
	YWithdrawnAmount uint64
	YAddedAmount     uint64
	XFeeAmount       uint64
	YFeeAmount       uint64
	OldMinId         int32
	OldMaxId         int32
	NewMinId         int32
	NewMaxId         int32
	Rewards          [NumRewards]uint64
}

func (obj *RebalancingEvent) Size() int {
	return RebalancingEventSize
}

func (obj *RebalancingEvent) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(RebalancingEventDiscriminator); err != nil {
		return err
	}
	for _, key := range []ed25519.PublicKey{obj.LbPair, obj.Position, obj.Owner} {
		if err := e.WriteKey(key); err != nil {
			return err
		}
	}
	if err := e.WriteInt32(obj.ActiveBinId); err != nil {
		return err
	}
	for _, v := range []uint64{
		obj.XWithdrawnAmount,
		obj.XAddedAmount,
		obj.YWithdrawnAmount,
		obj.YAddedAmount,
		obj.XFeeAmount,
		obj.YFeeAmount,
	} {
		if err := e.WriteUint64(v); err != nil {
			return err
		}
	}
	for _, v := range []int32{obj.OldMinId, obj.OldMaxId, obj.NewMinId, obj.NewMaxId} {
		if err := e.WriteInt32(v); err != nil {
			return err
		}
	}
	return binary.WriteArray(e, obj.Rewards[:], NumRewards, (*binary.Encoder).WriteUint64)
}

func (obj *RebalancingEvent) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(RebalancingEventDiscriminator); err != nil {
		return err
	}
	for _, dst := range []*ed25519.PublicKey{&obj.LbPair, &obj.Position, &obj.Owner} {
		if *dst, err = d.ReadKey(); err != nil {
			return err
		}
	}
	if obj.ActiveBinId, err = d.ReadInt32(); err != nil {
		return err
	}
	for _, dst := range []*uint64{
		&obj.XWithdrawnAmount,
		&obj.XAddedAmount,
		&obj.YWithdrawnAmount,
		&obj.YAddedAmount,
		&obj.XFeeAmount,
		&obj.YFeeAmount,
	} {
		if *dst, err = d.ReadUint64(); err != nil {
			return err
		}
	}
	for _, dst := range []*int32{&obj.OldMinId, &obj.OldMaxId, &obj.NewMinId, &obj.NewMaxId} {
		if *dst, err = d.ReadInt32(); err != nil {
			return err
		}
	}
	return binary.ReadArrayInto(d, obj.Rewards[:], 8, (*binary.Decoder).ReadUint64)
}

func (obj *RebalancingEvent) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

func (obj *RebalancingEvent) String() string {
	return fmt.Sprintf(
		"RebalancingEvent{lb_pair=%s,position=%s,owner=%s,active_bin_id=%d,x_withdrawn=%d,x_added=%d,y_withdrawn=%d,y_added=%d,x_fee=%d,y_fee=%d,old_range=[%d,%d],new_range=[%d,%d]}",
		base58.Encode(obj.LbPair),
		base58.Encode(obj.Position),
		base58.Encode(obj.Owner),
		obj.ActiveBinId,
		obj.XWithdrawnAmount,
		obj.XAddedAmount,
		obj.YWithdrawnAmount,
		obj.YAddedAmount,
		obj.XFeeAmount,
		obj.YFeeAmount,
		obj.OldMinId,
		obj.OldMaxId,
		obj.NewMinId,
		obj.NewMaxId,
	)
}
