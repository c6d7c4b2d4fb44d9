package dlmm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

func TestRebalancingEvent_RoundTrip(t *testing.T) {
	expected := &RebalancingEvent{
		LbPair:           testKey(1),
		Position:         testKey(2),
		Owner:            testKey(3),
		ActiveBinId:      -12,
		XWithdrawnAmount: 1,
		XAddedAmount:     2,
		YWithdrawnAmount: 3,
		YAddedAmount:     4,
		XFeeAmount:       5,
		YFeeAmount:       6,
		OldMinId:         -40,
		OldMaxId:         29,
		NewMinId:         -46,
		NewMaxId:         23,
		Rewards:          [NumRewards]uint64{7, 8},
	}

	data, err := binary.Encode(expected)
	require.NoError(t, err)
	require.Len(t, data, RebalancingEventSize)
	assert.True(t, binary.HasDiscriminator(data, RebalancingEventDiscriminator))

	var actual RebalancingEvent
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, *expected, actual)
	assert.Contains(t, actual.String(), "new_range=[-46,23]")

	assert.ErrorIs(t, actual.Unmarshal(data[:RebalancingEventSize-4]), binary.ErrTruncatedBuffer)
}
