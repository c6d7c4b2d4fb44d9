package marginfi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestAccountLayouts(t *testing.T) {
	assert.Equal(t, 104, BalanceSize)
	assert.Equal(t, 1728, LendingAccountSize)
	assert.Equal(t, 304, HealthCacheSize)
	assert.Equal(t, 2312, MarginfiAccountSize)
	assert.Equal(t, 1064, MarginfiGroupSize)
	assert.Equal(t, 264, FeeStateSize)
	assert.Equal(t, 264, StakedSettingsSize)
	assert.Equal(t, 544, BankConfigSize)
	assert.Equal(t, 1864, BankSize)
}

func TestAccountDiscriminators(t *testing.T) {
	for name, disc := range map[string]binary.Discriminator{
		"MarginfiAccount": MarginfiAccountDiscriminator,
		"MarginfiGroup":   MarginfiGroupDiscriminator,
		"FeeState":        FeeStateDiscriminator,
		"StakedSettings":  StakedSettingsDiscriminator,
		"Bank":            BankDiscriminator,
	} {
		assert.Equal(t, binary.AccountDiscriminator(name), disc, name)
	}
}

func newTestMarginfiAccount() *MarginfiAccount {
	account := &MarginfiAccount{
		Group:                       testKey(1),
		Authority:                   testKey(2),
		AccountFlags:                AccountFlagDisabled | AccountFlagTransferAuthorityAllowed,
		EmissionsDestinationAccount: testKey(3),
		MigratedFrom:                testKey(4),
		MigratedTo:                  testKey(5),
	}

	for i := range account.LendingAccount.Balances {
		account.LendingAccount.Balances[i].BankPk = make([]byte, 32)
	}
	account.LendingAccount.Balances[0] = Balance{
		Active:          1,
		BankPk:          testKey(6),
		AssetShares:     binary.NewI80F48FromInt64(1_000),
		LiabilityShares: binary.NewI80F48FromInt64(0),
		LastUpdate:      1700000000,
		Pad0:            [6]byte{9, 9, 9, 9, 9, 9},
	}
	account.LendingAccount.Balances[3] = Balance{
		Active:          1,
		BankPk:          testKey(7),
		LiabilityShares: binary.NewI80F48FromInt64(-250),
	}

	account.HealthCache.Flags = HealthCacheFlagHealthy | HealthCacheFlagEngineOk
	account.HealthCache.AssetValue = binary.NewI80F48FromInt64(42)
	account.HealthCache.Prices[0] = [8]byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f} // 1.0
	account.HealthCache.ProgramVersion = 3
	account.Padding0[103] = 0xaa

	return account
}

func TestMarginfiAccount_RoundTrip(t *testing.T) {
	expected := newTestMarginfiAccount()

	data, err := binary.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, MarginfiAccountSize)

	assert.Equal(t, MarginfiAccountDiscriminator[:], data[:8])
	assert.Equal(t, testKey(1), data[MarginfiAccountGroupOffset:MarginfiAccountGroupOffset+32])
	assert.Equal(t, testKey(2), data[MarginfiAccountAuthorityOffset:MarginfiAccountAuthorityOffset+32])
	assert.Equal(t, []byte{9, 0, 0, 0, 0, 0, 0, 0}, data[1800:1808])
	assert.Equal(t, testKey(3), data[1808:1840])
	assert.Equal(t, testKey(4), data[2144:2176])
	assert.Equal(t, testKey(5), data[2176:2208])
	assert.EqualValues(t, 0xaa, data[MarginfiAccountSize-1])

	var actual MarginfiAccount
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)

	assert.True(t, actual.IsDisabled())
	assert.False(t, actual.HasFlag(AccountFlagInFlashloan))
	assert.True(t, actual.HealthCache.IsHealthy())
	assert.Equal(t, 1.0, actual.HealthCache.Price(0))

	active := actual.ActiveBalances()
	require.Len(t, active, 2)
	assert.Equal(t, testKey(6), []byte(active[0].BankPk))
	assert.Equal(t, "1000", active[0].AssetShares.String())
	assert.Equal(t, "-250", active[1].LiabilityShares.String())
}

func TestMarginfiAccount_InvalidData(t *testing.T) {
	data, err := binary.Encode(newTestMarginfiAccount())
	require.NoError(t, err)

	var actual MarginfiAccount
	assert.ErrorIs(t, actual.Unmarshal(data[:MarginfiAccountSize-1]), binary.ErrOutOfBounds)

	var mismatched MarginfiAccount
	copy(data, MarginfiGroupDiscriminator[:])
	assert.ErrorIs(t, mismatched.Unmarshal(data), binary.ErrSchemaMismatch)
	assert.Nil(t, mismatched.Group)
}

func TestMarginfiGroup_RoundTrip(t *testing.T) {
	expected := &MarginfiGroup{
		Admin:      testKey(1),
		GroupFlags: 1,
		FeeStateCache: FeeStateCache{
			GlobalFeeWallet: testKey(2),
			ProgramFeeFixed: binary.NewI80F48FromInt64(1),
			ProgramFeeRate:  binary.NewI80F48FromInt64(2),
			LastUpdate:      -5,
		},
		Banks:                  12,
		EmodeAdmin:             testKey(3),
		DelegateCurveAdmin:     testKey(4),
		DelegateLimitAdmin:     testKey(5),
		DelegateEmissionsAdmin: testKey(6),
	}
	expected.Padding1[0] = 1

	data, err := binary.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, MarginfiGroupSize)
	assert.Equal(t, testKey(1), data[MarginfiGroupAdminOffset:MarginfiGroupAdminOffset+32])

	var actual MarginfiGroup
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)
}

func TestFeeState_RoundTrip(t *testing.T) {
	expected := &FeeState{
		Key:                testKey(1),
		GlobalFeeAdmin:     testKey(2),
		GlobalFeeWallet:    testKey(3),
		BankInitFlatSolFee: 150_000_000,
		Bump:               254,
		ProgramFeeFixed:    binary.NewI80F48FromInt64(3),
	}
	expected.Reserved1[63] = 7

	data, err := binary.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, FeeStateSize)

	var actual FeeState
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)
}

func TestStakedSettings_RoundTrip(t *testing.T) {
	expected := &StakedSettings{
		Key:                      testKey(1),
		MarginfiGroup:            testKey(2),
		Oracle:                   testKey(3),
		AssetWeightInit:          binary.NewI80F48FromInt64(1),
		DepositLimit:             1_000_000,
		TotalAssetValueInitLimit: 50_000,
		OracleMaxAge:             60,
		RiskTier:                 RiskTierIsolated,
	}

	data, err := binary.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, StakedSettingsSize)
	assert.Equal(t, testKey(2), data[StakedSettingsGroupOffset:StakedSettingsGroupOffset+32])

	var actual StakedSettings
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)

	// risk_tier sits after the three keys, two weights, two limits and the max
	// age. Tiers this client doesn't know still decode and re-encode as is.
	data[8+96+32+16+2] = 9
	require.NoError(t, actual.Unmarshal(data))
	assert.EqualValues(t, 9, actual.RiskTier)

	reencoded, err := binary.Encode(&actual)
	require.NoError(t, err)
	assert.Equal(t, data, reencoded)
}

func TestBank_RoundTrip(t *testing.T) {
	expected := &Bank{
		Mint:                   testKey(1),
		MintDecimals:           9,
		Group:                  testKey(2),
		AssetShareValue:        binary.NewI80F48FromInt64(1),
		LiabilityShareValue:    binary.NewI80F48FromInt64(1),
		LiquidityVault:         testKey(3),
		LiquidityVaultBump:     255,
		InsuranceVault:         testKey(4),
		FeeVault:               testKey(5),
		FeeVaultAuthorityBump:  250,
		LastUpdate:             1700000000,
		Flags:                  BankFlagEmissionsLendingActive,
		EmissionsMint:          testKey(6),
		FeesDestinationAccount: testKey(7),
		LendingPositionCount:   -3,
		BorrowingPositionCount: 4,
	}
	expected.Config.OperationalState = BankOperationalStateOperational
	expected.Config.OracleSetup = OracleSetupPythPushOracle
	expected.Config.RiskTier = RiskTierCollateral
	expected.Config.DepositLimit = 1 << 40
	expected.Config.AssetWeightInit = binary.NewI80F48FromInt64(1)
	expected.Config.InterestRateConfig.MaxInterestRate = binary.NewI80F48FromInt64(3)
	for i := range expected.Config.OracleKeys {
		expected.Config.OracleKeys[i] = make([]byte, 32)
	}
	expected.Config.OracleKeys[0] = testKey(8)
	expected.Emode[0] = 1
	expected.Cache[159] = 2

	data, err := binary.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, BankSize)
	assert.Equal(t, testKey(1), data[BankMintOffset:BankMintOffset+32])
	assert.EqualValues(t, 9, data[40])
	assert.Equal(t, testKey(2), data[BankGroupOffset:BankGroupOffset+32])
	assert.Equal(t, testKey(7), data[1344:1376])

	var actual Bank
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)
	assert.True(t, actual.HasFlag(BankFlagEmissionsLendingActive))
	assert.True(t, solana.MatchesAll(data, BankFilters(testKey(2))...))
	assert.False(t, solana.MatchesAll(data, BankFilters(testKey(3))...))
}

func TestMarginfiAccountFilters(t *testing.T) {
	data, err := binary.Encode(newTestMarginfiAccount())
	require.NoError(t, err)

	assert.True(t, solana.MatchesAll(data, MarginfiAccountFilters(testKey(1), nil)...))
	assert.True(t, solana.MatchesAll(data, MarginfiAccountFilters(testKey(1), testKey(2))...))
	assert.False(t, solana.MatchesAll(data, MarginfiAccountFilters(nil, testKey(1))...))
	assert.Len(t, MarginfiAccountFilters(nil, nil), 2)
}
