package marinade

import (
	"crypto/ed25519"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSameAddress(t *testing.T, seeds [][]byte, actual []byte, bump uint8) {
	expected, expectedBump, err := solanago.FindProgramAddress(seeds, solanago.PublicKeyFromBytes(PROGRAM_ID))
	require.NoError(t, err)
	assert.Equal(t, expected.Bytes(), actual)
	assert.Equal(t, expectedBump, bump)
}

func TestStateAddresses(t *testing.T) {
	for _, tc := range []struct {
		seed   string
		derive func(ed25519.PublicKey) (ed25519.PublicKey, uint8, error)
	}{
		{"reserve", GetReserveAddress},
		{"st_mint", GetMsolMintAuthorityAddress},
		{"liq_sol", GetLiqPoolSolLegAddress},
		{"liq_st_sol_authority", GetLiqPoolMsolLegAuthorityAddress},
		{"liq_mint", GetLpMintAuthorityAddress},
		{"deposit", GetStakeDepositAuthorityAddress},
		{"withdraw", GetStakeWithdrawAuthorityAddress},
	} {
		address, bump, err := tc.derive(nil)
		require.NoError(t, err, tc.seed)
		requireSameAddress(t, [][]byte{STATE_ADDRESS, []byte(tc.seed)}, address, bump)

		other, _, err := tc.derive(testKey(1))
		require.NoError(t, err, tc.seed)
		assert.NotEqual(t, address, other, tc.seed)
	}
}

func TestGetDuplicationFlagAddress(t *testing.T) {
	args := &GetDuplicationFlagAddressArgs{
		State:         STATE_ADDRESS,
		ValidatorVote: testKey(2),
	}

	address, bump, err := GetDuplicationFlagAddress(args)
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{STATE_ADDRESS, []byte("unique_validator"), testKey(2)}, address, bump)
}
