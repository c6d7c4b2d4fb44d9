package dlmm

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	codec "github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestAccountLayouts(t *testing.T) {
	assert.Equal(t, 32, StaticParametersSize)
	assert.Equal(t, 32, VariableParametersSize)
	assert.Equal(t, 144, RewardInfoSize)
	assert.Equal(t, 904, LbPairSize)
	assert.Equal(t, 48, UserRewardInfoSize)
	assert.Equal(t, 48, FeeInfoSize)
	assert.Equal(t, 8120, PositionV2Size)
	assert.Equal(t, 144, BinSize)
	assert.Equal(t, 10136, BinArraySize)
	assert.Equal(t, 192, PresetParameter2Size)
	assert.Equal(t, 24, InitPresetParametersIxSize)
	assert.Equal(t, 58, AddLiquidityParamsSize)
	assert.Equal(t, 180, RebalancingEventSize-8)
}

func TestAccountDiscriminators(t *testing.T) {
	assert.Equal(t, codec.AccountDiscriminator("LbPair"), LbPairDiscriminator)
	assert.Equal(t, codec.AccountDiscriminator("PositionV2"), PositionV2Discriminator)
	assert.Equal(t, codec.AccountDiscriminator("BinArray"), BinArrayDiscriminator)
	assert.Equal(t, codec.AccountDiscriminator("PresetParameter2"), PresetParameter2Discriminator)
	assert.Equal(t, codec.EventDiscriminator("Rebalancing"), RebalancingEventDiscriminator)
}

func newTestLbPair() *LbPair {
	pair := &LbPair{
		Parameters: StaticParameters{
			BaseFactor:               10_000,
			FilterPeriod:             30,
			DecayPeriod:              600,
			ReductionFactor:          5_000,
			VariableFeeControl:       40_000,
			MaxVolatilityAccumulator: 350_000,
			MinBinId:                 -21_835,
			MaxBinId:                 21_835,
			ProtocolShare:            500,
			BaseFeePowerFactor:       1,
		},
		VParameters: VariableParameters{
			VolatilityAccumulator: 12_000,
			VolatilityReference:   6_000,
			IndexReference:        -512,
			LastUpdateTimestamp:   1_735_000_000,
		},
		BumpSeed:                 [1]byte{253},
		BinStepSeed:              [2]byte{25, 0},
		PairType:                 PairTypePermissionless,
		ActiveId:                 -515,
		BinStep:                  25,
		Status:                   PairStatusEnabled,
		BaseFactorSeed:           [2]byte{0x10, 0x27},
		ActivationType:           ActivationTypeTimestamp,
		TokenXMint:               testKey(1),
		TokenYMint:               testKey(2),
		ReserveX:                 testKey(3),
		ReserveY:                 testKey(4),
		ProtocolFee:              ProtocolFee{AmountX: 11, AmountY: 12},
		Oracle:                   testKey(5),
		LastUpdatedAt:            1_735_000_100,
		PreActivationSwapAddress: testKey(0),
		BaseKey:                  testKey(6),
		ActivationPoint:          1_735_000_000,
		Creator:                  testKey(7),
		TokenMintYProgramFlag:    1,
	}
	pair.RewardInfos[0] = RewardInfo{
		Mint:              testKey(8),
		Vault:             testKey(9),
		Funder:            testKey(10),
		RewardDuration:    86_400,
		RewardDurationEnd: 1_735_086_400,
		RewardRate:        uint128.New(0, 3),
		LastUpdateTime:    1_735_000_050,
	}
	pair.RewardInfos[1] = RewardInfo{Mint: testKey(0), Vault: testKey(0), Funder: testKey(0)}
	pair.BinArrayBitmap[7] = 1 << 63
	pair.BinArrayBitmap[8] = 1
	return pair
}

func TestLbPair_RoundTrip(t *testing.T) {
	expected := newTestLbPair()

	data, err := codec.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, LbPairSize)

	assert.Equal(t, testKey(1), data[LbPairTokenXMintOffset:LbPairTokenXMintOffset+32])
	assert.Equal(t, testKey(2), data[LbPairTokenYMintOffset:LbPairTokenYMintOffset+32])
	assert.Equal(t, testKey(5), data[LbPairOracleOffset:LbPairOracleOffset+32])
	assert.EqualValues(t, -515, int32(binary.LittleEndian.Uint32(data[LbPairActiveIdOffset:])))
	assert.Equal(t, testKey(7), data[848:880])

	var actual LbPair
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)

	assert.True(t, actual.IsEnabled())
	assert.True(t, actual.RewardInfos[0].IsInitialized())
	assert.False(t, actual.RewardInfos[1].IsInitialized())
	assert.EqualValues(t, -8, actual.ActiveBinArrayIndex())
	assert.Equal(t, SPL_TOKEN_PROGRAM_ID, actual.TokenXProgram())
	assert.Equal(t, TOKEN_2022_PROGRAM_ID, actual.TokenYProgram())
	assert.Contains(t, actual.String(), "active_id=-515")
}

func TestLbPair_UnknownEnumValues(t *testing.T) {
	pair := newTestLbPair()
	data, err := codec.Encode(pair)
	require.NoError(t, err)

	// pair_type and status keep values this client has no name for
	data[75] = 9
	data[82] = 7

	var actual LbPair
	require.NoError(t, actual.Unmarshal(data))
	assert.EqualValues(t, 9, actual.PairType)
	assert.EqualValues(t, 7, actual.Status)
	assert.False(t, actual.IsEnabled())
}

func TestLbPair_InvalidData(t *testing.T) {
	data, err := codec.Encode(newTestLbPair())
	require.NoError(t, err)

	var actual LbPair
	assert.ErrorIs(t, actual.Unmarshal(data[:LbPairSize-1]), codec.ErrOutOfBounds)

	var position PositionV2
	assert.ErrorIs(t, position.Unmarshal(data), codec.ErrSchemaMismatch)
}

func newTestPosition() *PositionV2 {
	position := &PositionV2{
		LbPair:                 testKey(1),
		Owner:                  testKey(2),
		LowerBinId:             -10,
		UpperBinId:             59,
		LastUpdatedAt:          1_735_000_000,
		TotalClaimedFeeXAmount: 100,
		TotalClaimedFeeYAmount: 200,
		TotalClaimedRewards:    [NumRewards]uint64{3, 4},
		Operator:               testKey(3),
		LockReleasePoint:       99,
		FeeOwner:               testKey(4),
	}
	position.LiquidityShares[0] = uint128.New(0, 1_000)
	position.LiquidityShares[69] = uint128.From64(1)
	position.RewardInfos[1] = UserRewardInfo{
		RewardPerTokenCompletes: [NumRewards]uint128.Uint128{uint128.From64(5), uint128.New(1, 1)},
		RewardPendings:          [NumRewards]uint64{6, 7},
	}
	position.FeeInfos[2] = FeeInfo{
		FeeXPerTokenComplete: uint128.From64(8),
		FeeYPerTokenComplete: uint128.New(0, 9),
		FeeXPending:          10,
		FeeYPending:          11,
	}
	return position
}

func TestPositionV2_RoundTrip(t *testing.T) {
	expected := newTestPosition()

	data, err := codec.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, PositionV2Size)

	assert.Equal(t, testKey(1), data[PositionV2LbPairOffset:PositionV2LbPairOffset+32])
	assert.Equal(t, testKey(2), data[PositionV2OwnerOffset:PositionV2OwnerOffset+32])
	assert.EqualValues(t, -10, int32(binary.LittleEndian.Uint32(data[7912:])))
	assert.Equal(t, testKey(3), data[7960:7992])
	assert.Equal(t, testKey(4), data[8001:8033])

	var actual PositionV2
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)

	assert.EqualValues(t, 70, actual.Width())
	assert.False(t, actual.IsEmpty())

	share, ok := actual.LiquidityShare(-10)
	require.True(t, ok)
	assert.Equal(t, uint128.New(0, 1_000), share)
	_, ok = actual.LiquidityShare(60)
	assert.False(t, ok)
	assert.Contains(t, actual.String(), "lower_bin_id=-10")
}

func TestBinArray_RoundTrip(t *testing.T) {
	expected := &BinArray{
		Index:   -1,
		Version: 1,
		LbPair:  testKey(1),
	}
	expected.Bins[0] = Bin{
		AmountX:                  1,
		AmountY:                  2,
		Price:                    uint128.New(0, 1),
		LiquiditySupply:          uint128.From64(3),
		RewardPerTokenStored:     [NumRewards]uint128.Uint128{uint128.From64(4), uint128.From64(5)},
		FeeAmountXPerTokenStored: uint128.New(6, 7),
		FeeAmountYPerTokenStored: uint128.From64(8),
		AmountXIn:                uint128.From64(9),
		AmountYIn:                uint128.From64(10),
	}
	expected.Bins[69].AmountY = 42

	data, err := codec.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, BinArraySize)
	assert.Equal(t, testKey(1), data[BinArrayLbPairOffset:BinArrayLbPairOffset+32])

	var actual BinArray
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)

	bin, ok := actual.Bin(-70)
	require.True(t, ok)
	assert.EqualValues(t, 1, bin.AmountX)
	assert.Equal(t, "1", bin.PriceDecimal().String())

	bin, ok = actual.Bin(-1)
	require.True(t, ok)
	assert.EqualValues(t, 42, bin.AmountY)

	_, ok = actual.Bin(0)
	assert.False(t, ok)
	_, ok = actual.Bin(-71)
	assert.False(t, ok)
}

func TestPresetParameter2_RoundTrip(t *testing.T) {
	expected := &PresetParameter2{
		BinStep:                  100,
		BaseFactor:               8_000,
		FilterPeriod:             300,
		DecayPeriod:              1_200,
		VariableFeeControl:       7_500,
		MaxVolatilityAccumulator: 150_000,
		ReductionFactor:          5_000,
		ProtocolShare:            2_000,
		Index:                    7,
		BaseFeePowerFactor:       2,
	}
	expected.Padding1[19] = 1

	data, err := codec.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, PresetParameter2Size)
	assert.Equal(t, []byte{7, 0}, data[28:30])

	var actual PresetParameter2
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)
	assert.Contains(t, actual.String(), "index=7")
}

func TestCustomizableParams_Option(t *testing.T) {
	params := &CustomizableParams{
		ActiveId:                100,
		BinStep:                 20,
		BaseFactor:              10_000,
		ActivationType:          ActivationTypeSlot,
		HasAlphaVault:           true,
		CreatorPoolOnOffControl: true,
	}

	data, err := codec.Encode(params)
	require.NoError(t, err)
	require.Len(t, data, 4+2+2+1+1+1+1+1+62)

	var actual CustomizableParams
	_, err = codec.Decode(data, 0, &actual)
	require.NoError(t, err)
	assert.Equal(t, *params, actual)

	activationPoint := uint64(300_000_000)
	params.ActivationPoint = &activationPoint
	data, err = codec.Encode(params)
	require.NoError(t, err)
	require.Len(t, data, 4+2+2+1+1+9+1+1+62)

	_, err = codec.Decode(data, 0, &actual)
	require.NoError(t, err)
	assert.Equal(t, *params, actual)

	// activation_type past the last variant
	data[8] = 2
	_, err = codec.Decode(data, 0, &actual)
	assert.ErrorIs(t, err, codec.ErrSchemaMismatch)
}

func TestRebalanceLiquidityParams_RoundTrip(t *testing.T) {
	minBinId := int32(-5)
	expected := &RebalanceLiquidityParams{
		ActiveId:             12,
		MaxActiveBinSlippage: 3,
		ShouldClaimFee:       true,
		MinWithdrawXAmount:   1,
		MaxDepositXAmount:    2,
		MinWithdrawYAmount:   3,
		MaxDepositYAmount:    4,
		ShrinkMode:           1,
		Removes: []RemoveLiquidityParams{
			{MinBinId: &minBinId, Bps: BasisPointMax},
			{Bps: 5_000},
		},
		Adds: []AddLiquidityParams{
			{MinDeltaId: -3, MaxDeltaId: 3, X0: 10, Y0: 20, DeltaX: 1, DeltaY: 2, BitFlag: 1, FavorXInActiveId: true},
		},
	}

	data, err := codec.Encode(expected)
	require.NoError(t, err)
	// fixed fields 72, removes 4 + (5+1+2+16) + (1+1+2+16), adds 4 + 58
	require.Len(t, data, 72+4+24+20+4+58)

	var actual RebalanceLiquidityParams
	n, err := codec.Decode(data, 0, &actual)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, *expected, actual)

	// a removes count larger than the remaining bytes fails before allocating
	binary.LittleEndian.PutUint32(data[72:], 1_000_000)
	_, err = codec.Decode(data, 0, &actual)
	assert.ErrorIs(t, err, codec.ErrTruncatedBuffer)
}
