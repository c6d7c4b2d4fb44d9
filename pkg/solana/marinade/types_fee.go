package marinade

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const (
	FeeSize      = 4
	FeeCentsSize = 4

	maxBasisPoints = 10_000
	maxBpCents     = 1_000_000
)

// Fee is a rate in basis points.
type Fee struct {
	BasisPoints uint32
}

func (obj *Fee) Size() int {
	return FeeSize
}

func (obj *Fee) MarshalBinaryTo(e *binary.Encoder) error {
	return e.WriteUint32(obj.BasisPoints)
}

func (obj *Fee) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	obj.BasisPoints, err = d.ReadUint32()
	return err
}

// Rate returns the fee as a fraction, 100 bps being 0.01.
func (obj Fee) Rate() decimal.Decimal {
	return decimal.New(int64(obj.BasisPoints), 0).Div(decimal.New(maxBasisPoints, 0))
}

func (obj Fee) String() string {
	return fmt.Sprintf("%dbps", obj.BasisPoints)
}

// FeeCents is a rate in hundredths of a basis point.
type FeeCents struct {
	BpCents uint32
}

func (obj *FeeCents) Size() int {
	return FeeCentsSize
}

func (obj *FeeCents) MarshalBinaryTo(e *binary.Encoder) error {
	return e.WriteUint32(obj.BpCents)
}

func (obj *FeeCents) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	obj.BpCents, err = d.ReadUint32()
	return err
}

func (obj FeeCents) Rate() decimal.Decimal {
	return decimal.New(int64(obj.BpCents), 0).Div(decimal.New(maxBpCents, 0))
}

func (obj FeeCents) String() string {
	return fmt.Sprintf("%dbp-cents", obj.BpCents)
}
