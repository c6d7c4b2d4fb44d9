package dlmm

import (
	"github.com/code-payments/solana-program-clients/pkg/solana"
)

type LbClmmError uint32

const (
	// Invalid start bin index
	ErrInvalidStartBinIndex LbClmmError = iota + 0x1770

	// Invalid bin id
	ErrInvalidBinId

	// Invalid input data
	ErrInvalidInput

	// Exceeded amount slippage tolerance
	ErrExceededAmountSlippageTolerance

	// Exceeded bin slippage tolerance
	ErrExceededBinSlippageTolerance

	// Composition factor flawed
	ErrCompositionFactorFlawed

	// Non preset bin step
	ErrNonPresetBinStep

	// Zero liquidity
	ErrZeroLiquidity

	// Invalid position
	ErrInvalidPosition

	// Bin array not found
	ErrBinArrayNotFound

	// Invalid token mint
	ErrInvalidTokenMint

	// Invalid account for single deposit
	ErrInvalidAccountForSingleDeposit

	// Pair insufficient liquidity
	ErrPairInsufficientLiquidity

	// Invalid fee owner
	ErrInvalidFeeOwner

	// Invalid fee withdraw amount
	ErrInvalidFeeWithdrawAmount

	// Invalid admin
	ErrInvalidAdmin

	// Identical fee owner
	ErrIdenticalFeeOwner

	// Invalid basis point
	ErrInvalidBps

	// Math operation overflow
	ErrMathOverflow

	// Type cast error
	ErrTypeCastFailed

	// Invalid reward index
	ErrInvalidRewardIndex

	// Invalid reward duration
	ErrInvalidRewardDuration

	// Reward already initialized
	ErrRewardInitialized

	// Reward not initialized
	ErrRewardUninitialized

	// Identical funder
	ErrIdenticalFunder

	// Reward campaign in progress
	ErrRewardCampaignInProgress

	// Reward duration is the same
	ErrIdenticalRewardDuration

	// Invalid bin array
	ErrInvalidBinArray

	// Bin arrays must be continuous
	ErrNonContinuousBinArrays

	// Invalid reward vault
	ErrInvalidRewardVault

	// Position is not empty
	ErrNonEmptyPosition

	// Unauthorized access
	ErrUnauthorizedAccess

	// Invalid fee parameter
	ErrInvalidFeeParameter

	// Missing oracle account
	ErrMissingOracle

	// Insufficient observation sample
	ErrInsufficientSample

	// Invalid lookup timestamp
	ErrInvalidLookupTimestamp

	// Bitmap extension account is not provided
	ErrBitmapExtensionAccountIsNotProvided

	// Cannot find non-zero liquidity binArrayId
	ErrCannotFindNonZeroLiquidityBinArrayId

	// Bin id out of bound
	ErrBinIdOutOfBound

	// Insufficient amount in for minimum out
	ErrInsufficientOutAmount

	// Invalid position width
	ErrInvalidPositionWidth

	// Excessive fee update
	ErrExcessiveFeeUpdate

	// Pool disabled
	ErrPoolDisabled

	// Invalid pool type
	ErrInvalidPoolType

	// Whitelist for wallet is full
	ErrExceedMaxWhitelist

	// Invalid index
	ErrInvalidIndex

	// Reward not ended
	ErrRewardNotEnded

	// Must withdraw ineligible reward
	ErrMustWithdrawnIneligibleReward

	// Unauthorized address
	ErrUnauthorizedAddress

	// Cannot update because operators are the same
	ErrOperatorsAreTheSame

	// Withdraw to wrong token account
	ErrWithdrawToWrongTokenAccount

	// Wrong rent receiver
	ErrWrongRentReceiver

	// Already activated
	ErrAlreadyPassActivationPoint

	// Swapped amount is exceeded max swapped amount
	ErrExceedMaxSwappedAmount

	// Invalid strategy parameters
	ErrInvalidStrategyParameters

	// Liquidity locked
	ErrLiquidityLocked

	// Bin range is not empty
	ErrBinRangeIsNotEmpty

	// Amount out is not matched with exact amount out
	ErrNotExactAmountOut

	// Invalid activation type
	ErrInvalidActivationType
)

// Errors resolves custom error codes returned by the program.
var Errors = solana.NewErrorRegistry(PROGRAM_ID, solana.AnchorErrorCodeOffset, []solana.ErrorDescriptor{
	{Name: "InvalidStartBinIndex", Message: "Invalid start bin index"},
	{Name: "InvalidBinId", Message: "Invalid bin id"},
	{Name: "InvalidInput", Message: "Invalid input data"},
	{Name: "ExceededAmountSlippageTolerance", Message: "Exceeded amount slippage tolerance"},
	{Name: "ExceededBinSlippageTolerance", Message: "Exceeded bin slippage tolerance"},
	{Name: "CompositionFactorFlawed", Message: "Composition factor flawed"},
	{Name: "NonPresetBinStep", Message: "Non preset bin step"},
	{Name: "ZeroLiquidity", Message: "Zero liquidity"},
	{Name: "InvalidPosition", Message: "Invalid position"},
	{Name: "BinArrayNotFound", Message: "Bin array not found"},
	{Name: "InvalidTokenMint", Message: "Invalid token mint"},
	{Name: "InvalidAccountForSingleDeposit", Message: "Invalid account for single deposit"},
	{Name: "PairInsufficientLiquidity", Message: "Pair insufficient liquidity"},
	{Name: "InvalidFeeOwner", Message: "Invalid fee owner"},
	{Name: "InvalidFeeWithdrawAmount", Message: "Invalid fee withdraw amount"},
	{Name: "InvalidAdmin", Message: "Invalid admin"},
	{Name: "IdenticalFeeOwner", Message: "Identical fee owner"},
	{Name: "InvalidBps", Message: "Invalid basis point"},
	{Name: "MathOverflow", Message: "Math operation overflow"},
	{Name: "TypeCastFailed", Message: "Type cast error"},
	{Name: "InvalidRewardIndex", Message: "Invalid reward index"},
	{Name: "InvalidRewardDuration", Message: "Invalid reward duration"},
	{Name: "RewardInitialized", Message: "Reward already initialized"},
	{Name: "RewardUninitialized", Message: "Reward not initialized"},
	{Name: "IdenticalFunder", Message: "Identical funder"},
	{Name: "RewardCampaignInProgress", Message: "Reward campaign in progress"},
	{Name: "IdenticalRewardDuration", Message: "Reward duration is the same"},
	{Name: "InvalidBinArray", Message: "Invalid bin array"},
	{Name: "NonContinuousBinArrays", Message: "Bin arrays must be continuous"},
	{Name: "InvalidRewardVault", Message: "Invalid reward vault"},
	{Name: "NonEmptyPosition", Message: "Position is not empty"},
	{Name: "UnauthorizedAccess", Message: "Unauthorized access"},
	{Name: "InvalidFeeParameter", Message: "Invalid fee parameter"},
	{Name: "MissingOracle", Message: "Missing oracle account"},
	{Name: "InsufficientSample", Message: "Insufficient observation sample"},
	{Name: "InvalidLookupTimestamp", Message: "Invalid lookup timestamp"},
	{Name: "BitmapExtensionAccountIsNotProvided", Message: "Bitmap extension account is not provided"},
	{Name: "CannotFindNonZeroLiquidityBinArrayId", Message: "Cannot find non-zero liquidity binArrayId"},
	{Name: "BinIdOutOfBound", Message: "Bin id out of bound"},
	{Name: "InsufficientOutAmount", Message: "Insufficient amount in for minimum out"},
	{Name: "InvalidPositionWidth", Message: "Invalid position width"},
	{Name: "ExcessiveFeeUpdate", Message: "Excessive fee update"},
	{Name: "PoolDisabled", Message: "Pool disabled"},
	{Name: "InvalidPoolType", Message: "Invalid pool type"},
	{Name: "ExceedMaxWhitelist", Message: "Whitelist for wallet is full"},
	{Name: "InvalidIndex", Message: "Invalid index"},
	{Name: "RewardNotEnded", Message: "Reward not ended"},
	{Name: "MustWithdrawnIneligibleReward", Message: "Must withdraw ineligible reward"},
	{Name: "UnauthorizedAddress", Message: "Unauthorized address"},
	{Name: "OperatorsAreTheSame", Message: "Cannot update because operators are the same"},
	{Name: "WithdrawToWrongTokenAccount", Message: "Withdraw to wrong token account"},
	{Name: "WrongRentReceiver", Message: "Wrong rent receiver"},
	{Name: "AlreadyPassActivationPoint", Message: "Already activated"},
	{Name: "ExceedMaxSwappedAmount", Message: "Swapped amount is exceeded max swapped amount"},
	{Name: "InvalidStrategyParameters", Message: "Invalid strategy parameters"},
	{Name: "LiquidityLocked", Message: "Liquidity locked"},
	{Name: "BinRangeIsNotEmpty", Message: "Bin range is not empty"},
	{Name: "NotExactAmountOut", Message: "Amount out is not matched with exact amount out"},
	{Name: "InvalidActivationType", Message: "Invalid activation type"},
})

func (e LbClmmError) Error() string {
	return Errors.Lookup(uint32(e)).Error()
}
