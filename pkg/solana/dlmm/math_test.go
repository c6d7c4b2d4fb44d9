package dlmm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestBinIdToBinArrayIndex(t *testing.T) {
	for _, tc := range []struct {
		binId    int32
		expected int64
	}{
		{0, 0},
		{69, 0},
		{70, 1},
		{139, 1},
		{-1, -1},
		{-70, -1},
		{-71, -2},
		{17221, 246},
	} {
		assert.Equal(t, tc.expected, BinIdToBinArrayIndex(tc.binId), "bin %d", tc.binId)
	}
}

func TestBinArrayLowerUpper(t *testing.T) {
	lower, upper := BinArrayLowerUpper(-1)
	assert.EqualValues(t, -70, lower)
	assert.EqualValues(t, -1, upper)

	lower, upper = BinArrayLowerUpper(2)
	assert.EqualValues(t, 140, lower)
	assert.EqualValues(t, 209, upper)

	for _, binId := range []int32{-141, -70, -1, 0, 69, 70, 5000} {
		lower, upper = BinArrayLowerUpper(BinIdToBinArrayIndex(binId))
		assert.True(t, lower <= binId && binId <= upper, "bin %d", binId)
	}
}

func TestBinArrayIndexes(t *testing.T) {
	assert.Equal(t, []int64{34}, BinArrayIndexes(2425, 2436))
	assert.Equal(t, []int64{-2, -1, 0, 1}, BinArrayIndexes(-75, 75))
	assert.Empty(t, BinArrayIndexes(10, 9))
}

func TestBinIdFromPrice_Invalid(t *testing.T) {
	for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := BinIdFromPrice(25, price, 6, 6)
		assert.Error(t, err)
	}

	_, err := BinIdFromPrice(0, decimal.NewFromInt(2), 6, 6)
	assert.Error(t, err)

	// underflows float64, which would otherwise give -Inf
	_, err = BinIdFromPrice(1, decimal.New(1, -300000), 6, 6)
	assert.Error(t, err)
}

func TestBinPrice(t *testing.T) {
	price := BinPrice(4, 17221, 8, 6)
	assert.Equal(t, "97948.08508511", price.Round(8).String())
	binId, err := BinIdFromPrice(4, price, 8, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 17221, binId)

	assert.Equal(t, "1.2836248887", BinPrice(25, 100, 6, 6).Round(10).String())
	assert.Equal(t, "0.7790437914", BinPrice(25, -100, 6, 6).Round(10).String())
	binId, err = BinIdFromPrice(25, BinPrice(25, -100, 9, 6), 9, 6)
	require.NoError(t, err)
	assert.EqualValues(t, -100, binId)

	assert.True(t, BinPrice(80, 0, 6, 6).Equal(decimal.NewFromInt(1)))
	assert.True(t, BinPrice(80, 0, 9, 6).Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "1.008", BinStepBase(80).String())
}

func newFeeTestState() (*PositionV2, *BinArray) {
	position := &PositionV2{
		LbPair:     testKey(1),
		LowerBinId: 0,
		UpperBinId: 1,
	}
	position.LiquidityShares[0] = uint128.New(0, 100)
	position.LiquidityShares[1] = uint128.New(0, 50)
	position.FeeInfos[0] = FeeInfo{
		FeeXPerTokenComplete: uint128.New(0, 4),
		FeeXPending:          5,
	}
	position.FeeInfos[1] = FeeInfo{FeeYPending: 7}

	binArray := &BinArray{Index: 0, LbPair: testKey(1)}
	binArray.Bins[0].FeeAmountXPerTokenStored = uint128.New(0, 10)
	binArray.Bins[1].FeeAmountXPerTokenStored = uint128.New(0, 2)
	binArray.Bins[1].FeeAmountYPerTokenStored = uint128.New(0, 1)

	return position, binArray
}

func TestPositionFees(t *testing.T) {
	position, binArray := newFeeTestState()

	fees, err := PositionFees(position, binArray)
	require.NoError(t, err)
	// bin 0: 5 + 100*6, bin 1: 50*2 for X and 7 + 50*1 for Y
	assert.Equal(t, PositionFee{FeeX: 705, FeeY: 57}, fees)
}

func TestPositionFees_MissingBinArray(t *testing.T) {
	position, binArray := newFeeTestState()

	other := &BinArray{Index: 0, LbPair: testKey(2)}
	_, err := PositionFees(position, other)
	assert.ErrorIs(t, err, ErrMissingBinArray)

	position.LowerBinId = 69
	position.UpperBinId = 70
	position.FeeInfos[0] = FeeInfo{}
	_, err = PositionFees(position, binArray)
	assert.ErrorIs(t, err, ErrMissingBinArray)
}

func TestPositionFees_CheckpointAhead(t *testing.T) {
	position, binArray := newFeeTestState()
	position.FeeInfos[1].FeeYPerTokenComplete = uint128.New(0, 2)

	_, err := PositionFees(position, binArray)
	assert.ErrorIs(t, err, ErrInvalidAccountData)
}
