package marinade

import (
	"crypto/ed25519"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

var (
	ReservePrefix                 = []byte("reserve")
	MsolMintAuthorityPrefix       = []byte("st_mint")
	LiqPoolSolLegPrefix           = []byte("liq_sol")
	LiqPoolMsolLegAuthorityPrefix = []byte("liq_st_sol_authority")
	LpMintAuthorityPrefix         = []byte("liq_mint")
	StakeDepositAuthorityPrefix   = []byte("deposit")
	StakeWithdrawAuthorityPrefix  = []byte("withdraw")
	DuplicationFlagPrefix         = []byte("unique_validator")
)

// Every Marinade PDA is seeded by the state account first, so a nil state
// resolves against the mainnet STATE_ADDRESS.
func stateAddress(state ed25519.PublicKey) ed25519.PublicKey {
	return orDefault(state, STATE_ADDRESS)
}

func GetReserveAddress(state ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, stateAddress(state), ReservePrefix)
}

func GetMsolMintAuthorityAddress(state ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, stateAddress(state), MsolMintAuthorityPrefix)
}

// GetLiqPoolSolLegAddress derives the system account holding the SOL side of
// the liquidity pool.
func GetLiqPoolSolLegAddress(state ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, stateAddress(state), LiqPoolSolLegPrefix)
}

// GetLiqPoolMsolLegAuthorityAddress derives the owner of the mSOL leg token
// account. The leg itself is an ordinary token account recorded in
// State.LiqPool.MsolLeg.
func GetLiqPoolMsolLegAuthorityAddress(state ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, stateAddress(state), LiqPoolMsolLegAuthorityPrefix)
}

func GetLpMintAuthorityAddress(state ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, stateAddress(state), LpMintAuthorityPrefix)
}

func GetStakeDepositAuthorityAddress(state ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, stateAddress(state), StakeDepositAuthorityPrefix)
}

func GetStakeWithdrawAuthorityAddress(state ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, stateAddress(state), StakeWithdrawAuthorityPrefix)
}

type GetDuplicationFlagAddressArgs struct {
	State         ed25519.PublicKey
	ValidatorVote ed25519.PublicKey
}

// GetDuplicationFlagAddress derives the marker account that keeps a validator
// from being added to the validator list twice.
func GetDuplicationFlagAddress(args *GetDuplicationFlagAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		stateAddress(args.State),
		DuplicationFlagPrefix,
		args.ValidatorVote,
	)
}
