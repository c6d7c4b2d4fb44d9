package binary

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"lukechampine.com/uint128"
)

const i80f48FractionalBits = 48

var (
	// 1 / 2^48 == 5^48 / 10^48, so scaling by 5^48 keeps conversions exact.
	fivePow48 = new(big.Int).Exp(big.NewInt(5), big.NewInt(i80f48FractionalBits), nil)
	twoPow48  = decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), i80f48FractionalBits), 0)

	i80f48Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	i80f48Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// I80F48 is a signed 128 bit fixed point number with 48 fractional bits,
// stored as its raw little-endian two's complement bytes.
type I80F48 [16]byte

func NewI80F48FromInt64(v int64) I80F48 {
	raw := new(big.Int).Lsh(big.NewInt(v), i80f48FractionalBits)
	out, _ := i80f48FromRaw(raw)
	return out
}

// NewI80F48FromDecimal truncates any precision below 2^-48.
func NewI80F48FromDecimal(v decimal.Decimal) (I80F48, error) {
	return i80f48FromRaw(v.Mul(twoPow48).BigInt())
}

// Raw returns the underlying signed integer, scaled by 2^48.
func (v I80F48) Raw() *big.Int {
	var be [16]byte
	for i := range v {
		be[15-i] = v[i]
	}

	raw := new(big.Int).SetBytes(be[:])
	if v[15]&0x80 != 0 {
		raw.Sub(raw, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return raw
}

// Decimal is the exact decimal value.
func (v I80F48) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).Mul(v.Raw(), fivePow48), -i80f48FractionalBits)
}

func (v I80F48) IsZero() bool {
	return v == I80F48{}
}

func (v I80F48) String() string {
	return v.Decimal().String()
}

func i80f48FromRaw(raw *big.Int) (I80F48, error) {
	var out I80F48

	if raw.Cmp(i80f48Max) > 0 || raw.Cmp(i80f48Min) < 0 {
		return out, errors.Errorf("value out of i80f48 range: %s", raw.String())
	}

	twos := new(big.Int).Set(raw)
	if twos.Sign() < 0 {
		twos.Add(twos, new(big.Int).Lsh(big.NewInt(1), 128))
	}

	be := twos.FillBytes(make([]byte, 16))
	for i := range out {
		out[i] = be[15-i]
	}
	return out, nil
}

// Q64x64ToDecimal converts an unsigned Q64.64 fixed point value.
func Q64x64ToDecimal(v uint128.Uint128) decimal.Decimal {
	// 1 / 2^64 == 5^64 / 10^64
	scaled := new(big.Int).Mul(v.Big(), new(big.Int).Exp(big.NewInt(5), big.NewInt(64), nil))
	return decimal.NewFromBigInt(scaled, -64)
}
