package marinade

import (
	"github.com/code-payments/solana-program-clients/pkg/solana"
)

type MarinadeError uint32

const (
	// Wrong reserve owner. Must be a system account
	ErrWrongReserveOwner MarinadeError = iota + 0x1770

	// Reserve must have no data, but has data
	ErrNonEmptyReserveData

	// Invalid initial reserve lamports
	ErrInvalidInitialReserveLamports

	// Zero validator chunk size
	ErrZeroValidatorChunkSize

	// Too big validator chunk size
	ErrTooBigValidatorChunkSize

	// Zero credit chunk size
	ErrZeroCreditChunkSize

	// Too big credit chunk size
	ErrTooBigCreditChunkSize

	// Too low credit fee
	ErrTooLowCreditFee

	// Invalid mint authority
	ErrInvalidMintAuthority

	// Non empty initial mint supply
	ErrMintHasInitialSupply

	// Invalid owner fee state
	ErrInvalidOwnerFeeState

	// Invalid program id. For using program from another account please update id in the code
	ErrInvalidProgramId

	// Unexpected account
	ErrUnexpectedAccount

	// Calculation failure
	ErrCalculationFailure

	// You can't deposit a stake-account with lockup
	ErrStakeAccountWithLockup

	// Min stake is too low
	ErrMinStakeIsTooLow

	// Lp max fee is too high
	ErrLpMaxFeeIsTooHigh

	// Basis points overflow
	ErrBasisPointsOverflow

	// LP min fee > LP max fee
	ErrLpFeesAreWrongWayRound

	// Liquidity target too low
	ErrLiquidityTargetTooLow

	// Ticket not due. Wait more epochs
	ErrTicketNotDue

	// Ticket not ready. Wait a few hours and try again
	ErrTicketNotReady

	// Wrong Ticket Beneficiary
	ErrWrongBeneficiary

	// Stake Account not updated yet
	ErrStakeAccountNotUpdatedYet

	// Stake Account not delegated
	ErrStakeNotDelegated

	// Stake Account is emergency unstaking
	ErrStakeAccountIsEmergencyUnstaking

	// Insufficient Liquidity in the Liquidity Pool
	ErrInsufficientLiquidity
)

// Errors covers the codes every deployed program version agrees on. Newer
// codes resolve to an unknown error.
var Errors = solana.NewErrorRegistry(PROGRAM_ID, solana.AnchorErrorCodeOffset, []solana.ErrorDescriptor{
	{Name: "WrongReserveOwner", Message: "Wrong reserve owner. Must be a system account"},
	{Name: "NonEmptyReserveData", Message: "Reserve must have no data, but has data"},
	{Name: "InvalidInitialReserveLamports", Message: "Invalid initial reserve lamports"},
	{Name: "ZeroValidatorChunkSize", Message: "Zero validator chunk size"},
	{Name: "TooBigValidatorChunkSize", Message: "Too big validator chunk size"},
	{Name: "ZeroCreditChunkSize", Message: "Zero credit chunk size"},
	{Name: "TooBigCreditChunkSize", Message: "Too big credit chunk size"},
	{Name: "TooLowCreditFee", Message: "Too low credit fee"},
	{Name: "InvalidMintAuthority", Message: "Invalid mint authority"},
	{Name: "MintHasInitialSupply", Message: "Non empty initial mint supply"},
	{Name: "InvalidOwnerFeeState", Message: "Invalid owner fee state"},
	{Name: "InvalidProgramId", Message: "Invalid program id. For using program from another account please update id in the code"},
	{Name: "UnexpectedAccount", Message: "Unexpected account"},
	{Name: "CalculationFailure", Message: "Calculation failure"},
	{Name: "StakeAccountWithLockup", Message: "You can't deposit a stake-account with lockup"},
	{Name: "MinStakeIsTooLow", Message: "Min stake is too low"},
	{Name: "LpMaxFeeIsTooHigh", Message: "Lp max fee is too high"},
	{Name: "BasisPointsOverflow", Message: "Basis points overflow"},
	{Name: "LpFeesAreWrongWayRound", Message: "LP min fee > LP max fee"},
	{Name: "LiquidityTargetTooLow", Message: "Liquidity target too low"},
	{Name: "TicketNotDue", Message: "Ticket not due. Wait more epochs"},
	{Name: "TicketNotReady", Message: "Ticket not ready. Wait a few hours and try again"},
	{Name: "WrongBeneficiary", Message: "Wrong Ticket Beneficiary"},
	{Name: "StakeAccountNotUpdatedYet", Message: "Stake Account not updated yet"},
	{Name: "StakeNotDelegated", Message: "Stake Account not delegated"},
	{Name: "StakeAccountIsEmergencyUnstaking", Message: "Stake Account is emergency unstaking"},
	{Name: "InsufficientLiquidity", Message: "Insufficient Liquidity in the Liquidity Pool"},
})

func (e MarinadeError) Error() string {
	return Errors.Lookup(uint32(e)).Error()
}
