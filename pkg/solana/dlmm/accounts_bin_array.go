package dlmm

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"
	"lukechampine.com/uint128"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const BinSize = (8 + // amount_x
	8 + // amount_y
	16 + // price
	16 + // liquidity_supply
	NumRewards*16 + // reward_per_token_stored
	16 + // fee_amount_x_per_token_stored
	16 + // fee_amount_y_per_token_stored
	16 + // amount_x_in
	16) // amount_y_in

type Bin struct {
	AmountX                  uint64
	AmountY                  uint64
	Price                    uint128.Uint128
	LiquiditySupply          uint128.Uint128
	RewardPerTokenStored     [NumRewards]uint128.Uint128
	FeeAmountXPerTokenStored uint128.Uint128
	FeeAmountYPerTokenStored uint128.Uint128
	AmountXIn                uint128.Uint128
	AmountYIn                uint128.Uint128
}

func (obj *Bin) Size() int {
	return BinSize
}

func (obj *Bin) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteUint64(obj.AmountX); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.AmountY); err != nil {
		return err
	}
	if err := e.WriteUint128(obj.Price); err != nil {
		return err
	}
	if err := e.WriteUint128(obj.LiquiditySupply); err != nil {
		return err
	}
	if err := binary.WriteArray(e, obj.RewardPerTokenStored[:], NumRewards, (*binary.Encoder).WriteUint128); err != nil {
		return err
	}
	for _, v := range []uint128.Uint128{obj.FeeAmountXPerTokenStored, obj.FeeAmountYPerTokenStored, obj.AmountXIn, obj.AmountYIn} {
		if err := e.WriteUint128(v); err != nil {
			return err
		}
	}
	return nil
}

func (obj *Bin) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.AmountX, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.AmountY, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.Price, err = d.ReadUint128(); err != nil {
		return err
	}
	if obj.LiquiditySupply, err = d.ReadUint128(); err != nil {
		return err
	}
	if err = binary.ReadArrayInto(d, obj.RewardPerTokenStored[:], 16, (*binary.Decoder).ReadUint128); err != nil {
		return err
	}
	for _, dst := range []*uint128.Uint128{&obj.FeeAmountXPerTokenStored, &obj.FeeAmountYPerTokenStored, &obj.AmountXIn, &obj.AmountYIn} {
		if *dst, err = d.ReadUint128(); err != nil {
			return err
		}
	}
	return nil
}

// PriceDecimal is the Q64.64 bin price as a raw Y per X ratio, without any
// decimals adjustment.
func (obj *Bin) PriceDecimal() decimal.Decimal {
	return binary.Q64x64ToDecimal(obj.Price)
}

const BinArraySize = (8 + // discriminator
	8 + // index
	1 + // version
	7 + // padding
	32 + // lb_pair
	MaxBinPerArray*BinSize) // bins

const BinArrayLbPairOffset = 24

var BinArrayDiscriminator = binary.Discriminator{92, 142, 92, 220, 5, 148, 70, 181}

// BinArray holds MaxBinPerArray consecutive bins of a pair, starting at bin
// id Index * MaxBinPerArray.
type BinArray struct {
	Index   int64
	Version uint8
	Padding [7]byte
	LbPair  ed25519.PublicKey
	Bins    [MaxBinPerArray]Bin
}

func (obj *BinArray) Size() int {
	return BinArraySize
}

func (obj *BinArray) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(BinArrayDiscriminator); err != nil {
		return err
	}
	if err := e.WriteInt64(obj.Index); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.Version); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Padding[:]); err != nil {
		return err
	}
	if err := e.WriteKey(obj.LbPair); err != nil {
		return err
	}
	return binary.WriteArray(e, obj.Bins[:], MaxBinPerArray, binary.WriteRecord[Bin])
}

func (obj *BinArray) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(BinArrayDiscriminator); err != nil {
		return err
	}
	if obj.Index, err = d.ReadInt64(); err != nil {
		return err
	}
	if obj.Version, err = d.ReadUint8(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Padding[:]); err != nil {
		return err
	}
	if obj.LbPair, err = d.ReadKey(); err != nil {
		return err
	}
	return binary.ReadArrayInto(d, obj.Bins[:], BinSize, binary.ReadRecord[Bin])
}

func (obj *BinArray) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

// Bin returns the bin with the given id, or false when the id belongs to a
// different bin array.
func (obj *BinArray) Bin(binId int32) (*Bin, bool) {
	lower, upper := BinArrayLowerUpper(obj.Index)
	if binId < lower || binId > upper {
		return nil, false
	}
	return &obj.Bins[binId-lower], true
}

func (obj *BinArray) String() string {
	lower, upper := BinArrayLowerUpper(obj.Index)
	return fmt.Sprintf(
		"BinArray{index=%d,version=%d,lb_pair=%s,bins=[%d,%d]}",
		obj.Index,
		obj.Version,
		base58.Encode(obj.LbPair),
		lower,
		upper,
	)
}
