package marginfi

import (
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

func requireSameAddress(t *testing.T, seeds [][]byte, actual []byte, bump uint8) {
	expected, expectedBump, err := solanago.FindProgramAddress(seeds, solanago.PublicKeyFromBytes(PROGRAM_ID))
	require.NoError(t, err)
	assert.Equal(t, expected.Bytes(), actual)
	assert.Equal(t, expectedBump, bump)
}

func TestGetBankAddress(t *testing.T) {
	args := &GetBankAddressArgs{
		Group: testKey(1),
		Mint:  SPL_TOKEN_PROGRAM_ID,
		Seed:  7,
	}

	address, bump, err := GetBankAddress(args)
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{args.Group, args.Mint, {7, 0, 0, 0, 0, 0, 0, 0}}, address, bump)
}

func TestGetBankVaultAddresses(t *testing.T) {
	bank := testKey(2)

	for _, tc := range []struct {
		vaultType BankVaultType
		vault     string
		authority string
	}{
		{BankVaultTypeLiquidity, "liquidity_vault", "liquidity_vault_auth"},
		{BankVaultTypeInsurance, "insurance_vault", "insurance_vault_auth"},
		{BankVaultTypeFee, "fee_vault", "fee_vault_auth"},
	} {
		args := &GetBankVaultAddressArgs{Bank: bank, VaultType: tc.vaultType}

		vault, bump, err := GetBankVaultAddress(args)
		require.NoError(t, err)
		requireSameAddress(t, [][]byte{[]byte(tc.vault), bank}, vault, bump)

		authority, bump, err := GetBankVaultAuthorityAddress(args)
		require.NoError(t, err)
		requireSameAddress(t, [][]byte{[]byte(tc.authority), bank}, authority, bump)

		assert.NotEqual(t, vault, authority)
	}
}

func TestGetEmissionsAddresses(t *testing.T) {
	args := &GetEmissionsAddressArgs{Bank: testKey(3), EmissionsMint: testKey(4)}

	auth, bump, err := GetEmissionsAuthAddress(args)
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{[]byte("emissions_auth_seed"), args.Bank, args.EmissionsMint}, auth, bump)

	vault, bump, err := GetEmissionsTokenAccountAddress(args)
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{[]byte("emissions_token_account_seed"), args.Bank, args.EmissionsMint}, vault, bump)
}

func TestGetFeeStateAndStakedSettingsAddress(t *testing.T) {
	feeState, bump, err := GetFeeStateAddress()
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{[]byte("feestate")}, feeState, bump)

	group := testKey(5)
	settings, bump, err := GetStakedSettingsAddress(&GetStakedSettingsAddressArgs{Group: group})
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{[]byte("staked_settings"), group}, settings, bump)

	_, err = solana.CreateProgramAddress(PROGRAM_ID, []byte("staked_settings"), group, []byte{bump})
	require.NoError(t, err)
}
