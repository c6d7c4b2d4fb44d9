package marginfi

import (
	"crypto/ed25519"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

var (
	LiquidityVaultPrefix          = []byte("liquidity_vault")
	LiquidityVaultAuthorityPrefix = []byte("liquidity_vault_auth")
	InsuranceVaultPrefix          = []byte("insurance_vault")
	InsuranceVaultAuthorityPrefix = []byte("insurance_vault_auth")
	FeeVaultPrefix                = []byte("fee_vault")
	FeeVaultAuthorityPrefix       = []byte("fee_vault_auth")
	EmissionsAuthPrefix           = []byte("emissions_auth_seed")
	EmissionsTokenAccountPrefix   = []byte("emissions_token_account_seed")
	FeeStatePrefix                = []byte("feestate")
	StakedSettingsPrefix          = []byte("staked_settings")
)

type GetBankAddressArgs struct {
	Group ed25519.PublicKey
	Mint  ed25519.PublicKey
	Seed  uint64
}

// GetBankAddress derives the address of a bank created with a seed. Banks
// created without one live at an arbitrary keypair address instead.
func GetBankAddress(args *GetBankAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		args.Group,
		args.Mint,
		solana.Uint64Seed(args.Seed),
	)
}

// BankVaultType selects one of the three token vaults owned by every bank.
type BankVaultType uint8

const (
	BankVaultTypeLiquidity BankVaultType = iota
	BankVaultTypeInsurance
	BankVaultTypeFee
)

func (t BankVaultType) prefixes() ([]byte, []byte) {
	switch t {
	case BankVaultTypeInsurance:
		return InsuranceVaultPrefix, InsuranceVaultAuthorityPrefix
	case BankVaultTypeFee:
		return FeeVaultPrefix, FeeVaultAuthorityPrefix
	default:
		return LiquidityVaultPrefix, LiquidityVaultAuthorityPrefix
	}
}

type GetBankVaultAddressArgs struct {
	Bank      ed25519.PublicKey
	VaultType BankVaultType
}

func GetBankVaultAddress(args *GetBankVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	vault, _ := args.VaultType.prefixes()
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		vault,
		args.Bank,
	)
}

func GetBankVaultAuthorityAddress(args *GetBankVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	_, authority := args.VaultType.prefixes()
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		authority,
		args.Bank,
	)
}

type GetEmissionsAddressArgs struct {
	Bank          ed25519.PublicKey
	EmissionsMint ed25519.PublicKey
}

func GetEmissionsAuthAddress(args *GetEmissionsAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		EmissionsAuthPrefix,
		args.Bank,
		args.EmissionsMint,
	)
}

func GetEmissionsTokenAccountAddress(args *GetEmissionsAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		EmissionsTokenAccountPrefix,
		args.Bank,
		args.EmissionsMint,
	)
}

func GetFeeStateAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		FeeStatePrefix,
	)
}

type GetStakedSettingsAddressArgs struct {
	Group ed25519.PublicKey
}

func GetStakedSettingsAddress(args *GetStakedSettingsAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		StakedSettingsPrefix,
		args.Group,
	)
}
