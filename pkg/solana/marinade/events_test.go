package marinade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

func TestDepositStakeAccountEvent_RoundTrip(t *testing.T) {
	expected := &DepositStakeAccountEvent{
		State:                      STATE_ADDRESS,
		Stake:                      testKey(1),
		Delegated:                  2_000_000_000,
		Withdrawer:                 testKey(2),
		StakeIndex:                 17,
		Validator:                  testKey(3),
		ValidatorIndex:             4,
		ValidatorActiveBalance:     10,
		TotalActiveBalance:         20,
		UserMsolBalance:            30,
		MsolMinted:                 1_600_000_000,
		TotalVirtualStakedLamports: 40,
		MsolSupply:                 50,
	}

	data, err := binary.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, DepositStakeAccountEventSize)
	assert.Equal(t, DepositStakeAccountEventDiscriminator[:], data[:8])

	var actual DepositStakeAccountEvent
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)
	assert.Contains(t, actual.String(), "msol_minted=1600000000")
}

func TestConfigMarinadeEvent_RoundTrip(t *testing.T) {
	expected := &ConfigMarinadeEvent{
		State:                             STATE_ADDRESS,
		RewardsFeeChange:                  &FeeValueChange{Old: Fee{BasisPoints: 600}, New: Fee{BasisPoints: 500}},
		MinStakeChange:                    &U64ValueChange{Old: 1, New: 2},
		WithdrawStakeAccountEnabledChange: &BoolValueChange{Old: false, New: true},
		WithdrawStakeAccountFeeChange:     &FeeCentsValueChange{Old: FeeCents{BpCents: 1}, New: FeeCents{BpCents: 2}},
	}

	data, err := binary.Encode(expected)
	require.NoError(t, err)
	assert.Len(t, data, 8+32+(1+8)+(1+16)+5+(1+2)+1+(1+8)+1)
	assert.Equal(t, expected.Size(), len(data))

	var actual ConfigMarinadeEvent
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)
	assert.Nil(t, actual.SlotsForStakeDeltaChange)
	assert.Nil(t, actual.MaxStakeMovedPerEpochChange)

	var wrongEvent DepositStakeAccountEvent
	assert.ErrorIs(t, wrongEvent.Unmarshal(data), binary.ErrSchemaMismatch)
}
