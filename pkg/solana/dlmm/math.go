package dlmm

import (
	"bytes"
	"math"
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"lukechampine.com/uint128"
)

// ScaleOffset is the fractional bit count of the program's Q64.64 values.
const ScaleOffset = 64

// pricePrecision bounds the digits kept between multiplications in BinPrice.
const pricePrecision = 40

var ErrMissingBinArray = errors.New("missing bin array")

// BinIdToBinArrayIndex returns the index of the bin array containing binId.
// Negative ids round toward negative infinity, so bin -1 lives in array -1.
func BinIdToBinArrayIndex(binId int32) int64 {
	idx := int64(binId) / MaxBinPerArray
	if binId < 0 && int64(binId)%MaxBinPerArray != 0 {
		idx--
	}
	return idx
}

// BinArrayLowerUpper returns the first and last bin id stored in the bin
// array at index.
func BinArrayLowerUpper(index int64) (lower, upper int32) {
	lower = int32(index * MaxBinPerArray)
	return lower, lower + MaxBinPerArray - 1
}

// BinArrayIndexes lists the bin array indexes covering an inclusive bin range.
func BinArrayIndexes(lowerBinId, upperBinId int32) []int64 {
	if upperBinId < lowerBinId {
		return nil
	}

	first := BinIdToBinArrayIndex(lowerBinId)
	last := BinIdToBinArrayIndex(upperBinId)
	indexes := make([]int64, 0, last-first+1)
	for i := first; i <= last; i++ {
		indexes = append(indexes, i)
	}
	return indexes
}

// BinStepBase is 1 + binStep / BasisPointMax, the price ratio between two
// adjacent bins.
func BinStepBase(binStep uint16) decimal.Decimal {
	return decimal.NewFromInt(1).Add(decimal.New(int64(binStep), 0).Div(decimal.NewFromInt(BasisPointMax)))
}

// BinPrice is the UI price of a bin, in units of Y per unit of X:
//
//	(1 + binStep/10000)^binId * 10^(decimalsX - decimalsY)
func BinPrice(binStep uint16, binId int32, decimalsX, decimalsY int32) decimal.Decimal {
	price := powInt(BinStepBase(binStep), int64(binId))
	return price.Shift(decimalsX - decimalsY)
}

// BinIdFromPrice inverts BinPrice, rounding to the nearest bin. The price and
// bin step must be positive, and the bin must fit an int32.
func BinIdFromPrice(binStep uint16, price decimal.Decimal, decimalsX, decimalsY int32) (int32, error) {
	if price.Sign() <= 0 {
		return 0, errors.Errorf("price must be positive, got %s", price)
	}
	if binStep == 0 {
		return 0, errors.New("bin step must be positive")
	}

	raw := price.Shift(decimalsY - decimalsX).InexactFloat64()
	base := BinStepBase(binStep).InexactFloat64()

	binId := math.Round(math.Log(raw) / math.Log(base))
	if math.IsNaN(binId) || binId < math.MinInt32 || binId > math.MaxInt32 {
		return 0, errors.Errorf("price %s is outside the bin range", price)
	}
	return int32(binId), nil
}

func powInt(base decimal.Decimal, exp int64) decimal.Decimal {
	negative := exp < 0
	if negative {
		exp = -exp
	}

	result := decimal.NewFromInt(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Truncate(pricePrecision)
		}
		base = base.Mul(base).Truncate(pricePrecision)
		exp >>= 1
	}

	if negative {
		return decimal.NewFromInt(1).DivRound(result, pricePrecision)
	}
	return result
}

// PositionFee is the unclaimed swap fee owed to a position.
type PositionFee struct {
	FeeX uint64
	FeeY uint64
}

// PositionFees computes the fees a position could claim now, given the bin
// arrays covering its range. Each bin accrues
//
//	pending + (share >> 64) * (stored - complete) >> 64
//
// where stored is the bin's fee per token and complete the position's
// checkpoint.
func PositionFees(position *PositionV2, binArrays ...*BinArray) (PositionFee, error) {
	var totalX, totalY big.Int

	for binId := position.LowerBinId; binId <= position.UpperBinId; binId++ {
		idx := binId - position.LowerBinId
		if idx >= MaxBinPerPosition {
			break
		}

		bin, err := findBin(position.LbPair, binId, binArrays)
		if err != nil {
			return PositionFee{}, err
		}

		feeInfo := &position.FeeInfos[idx]
		share := position.LiquidityShares[idx].Rsh(ScaleOffset)

		x, err := accruedFee(share, bin.FeeAmountXPerTokenStored, feeInfo.FeeXPerTokenComplete)
		if err != nil {
			return PositionFee{}, errors.Wrapf(err, "bin %d fee x", binId)
		}
		y, err := accruedFee(share, bin.FeeAmountYPerTokenStored, feeInfo.FeeYPerTokenComplete)
		if err != nil {
			return PositionFee{}, errors.Wrapf(err, "bin %d fee y", binId)
		}

		totalX.Add(&totalX, x)
		totalX.Add(&totalX, new(big.Int).SetUint64(feeInfo.FeeXPending))
		totalY.Add(&totalY, y)
		totalY.Add(&totalY, new(big.Int).SetUint64(feeInfo.FeeYPending))
	}

	if !totalX.IsUint64() || !totalY.IsUint64() {
		return PositionFee{}, errors.Wrap(ErrInvalidAccountData, "position fee overflows u64")
	}
	return PositionFee{FeeX: totalX.Uint64(), FeeY: totalY.Uint64()}, nil
}

func accruedFee(share, stored, complete uint128.Uint128) (*big.Int, error) {
	if stored.Cmp(complete) < 0 {
		return nil, errors.Wrap(ErrInvalidAccountData, "fee checkpoint ahead of bin")
	}

	delta := stored.Sub(complete)
	fee := new(big.Int).Mul(share.Big(), delta.Big())
	return fee.Rsh(fee, ScaleOffset), nil
}

func findBin(lbPair []byte, binId int32, binArrays []*BinArray) (*Bin, error) {
	for _, binArray := range binArrays {
		if binArray == nil || !bytes.Equal(binArray.LbPair, lbPair) {
			continue
		}
		if bin, ok := binArray.Bin(binId); ok {
			return bin, nil
		}
	}
	return nil, errors.Wrapf(ErrMissingBinArray, "bin array %d for bin %d", BinIdToBinArrayIndex(binId), binId)
}
