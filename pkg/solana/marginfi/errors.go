package marginfi

import (
	"github.com/code-payments/solana-program-clients/pkg/solana"
)

type MarginfiError uint32

const (
	// Internal Marginfi logic error
	ErrInternalLogicError MarginfiError = iota + 0x1770

	// Invalid bank index
	ErrBankNotFound

	// Lending account balance not found
	ErrLendingAccountBalanceNotFound

	// Bank deposit capacity exceeded
	ErrBankAssetCapacityExceeded

	// Invalid transfer
	ErrInvalidTransfer

	// Missing Oracle, Bank, LST mint, or Sol Pool
	ErrMissingPythOrBankAccount

	// Missing Pyth account
	ErrMissingPythAccount

	// Missing Bank account
	ErrMissingBankAccount

	// Invalid Bank account
	ErrInvalidBankAccount

	// RiskEngine rejected due to either bad health or stale oracles
	ErrRiskEngineInitRejected

	// Lending account balance slots are full
	ErrLendingAccountBalanceSlotsFull

	// Bank already exists
	ErrBankAlreadyExists

	// Amount to liquidate must be positive
	ErrZeroLiquidationAmount

	// Account is not bankrupt
	ErrAccountNotBankrupt

	// Account balance is not bad debt
	ErrBalanceNotBadDebt

	// Invalid group config
	ErrInvalidConfig

	// Bank paused
	ErrBankPaused

	// Bank is ReduceOnly mode
	ErrBankReduceOnly

	// Bank is missing
	ErrBankAccountNotFound

	// Operation is deposit-only
	ErrOperationDepositOnly

	// Operation is withdraw-only
	ErrOperationWithdrawOnly

	// Operation is borrow-only
	ErrOperationBorrowOnly

	// Operation is repay-only
	ErrOperationRepayOnly

	// No asset found
	ErrNoAssetFound

	// No liability found
	ErrNoLiabilityFound

	// Invalid oracle setup
	ErrInvalidOracleSetup

	// Invalid bank utilization ratio
	ErrIllegalUtilizationRatio

	// Bank borrow cap exceeded
	ErrBankLiabilityCapacityExceeded

	// Invalid Price
	ErrInvalidPrice

	// Account can have only one liability when account is under isolated risk
	ErrIsolatedAccountIllegalState

	// Emissions already setup
	ErrEmissionsAlreadySetup

	// Oracle is not set
	ErrOracleNotSetup

	// Invalid switchboard decimal conversion
	ErrInvalidSwitchboardDecimalConversion

	// Cannot close balance because of outstanding emissions
	ErrCannotCloseOutstandingEmissions

	// Update emissions error
	ErrEmissionsUpdateError

	// Account disabled
	ErrAccountDisabled

	// Account can't temporarily open 3 balances, please close a balance first
	ErrAccountTempActiveBalanceLimitExceeded

	// Illegal action during flashloan
	ErrAccountInFlashloan

	// Illegal flashloan
	ErrIllegalFlashloan

	// Illegal flag
	ErrIllegalFlag

	// Illegal balance state
	ErrIllegalBalanceState

	// Illegal account authority transfer
	ErrIllegalAccountAuthorityTransfer

	// Unauthorized
	ErrUnauthorized

	// Invalid account authority
	ErrIllegalAction

	// Token22 Banks require mint account as first remaining account
	ErrT22MintRequired

	// Invalid ATA for global fee account
	ErrInvalidFeeAta

	// Use add pool permissionless instead
	ErrAddedStakedPoolManually

	// Staked SOL accounts can only deposit staked assets and borrow SOL
	ErrAssetTagMismatch

	// Stake pool validation failed: check the stake pool, mint, or sol pool
	ErrStakePoolValidationFailed

	// Switchboard oracle: stale price
	ErrSwitchboardStalePrice

	// Pyth Push oracle: stale price
	ErrPythPushStalePrice

	// Oracle error: wrong number of accounts
	ErrWrongNumberOfOracleAccounts

	// Oracle error: wrong account keys
	ErrWrongOracleAccountKeys

	// Pyth Push oracle: wrong account owner
	ErrPythPushWrongAccountOwner

	// Staked Pyth Push oracle: wrong account owner
	ErrStakedPythPushWrongAccountOwner

	// Pyth Push oracle: mismatched feed id
	ErrPythPushMismatchedFeedId

	// Pyth Push oracle: insufficient verification level
	ErrPythPushInsufficientVerificationLevel

	// Pyth Push oracle: feed id must be 32 Bytes
	ErrPythPushFeedIdMustBe32Bytes

	// Pyth Push oracle: feed id contains non-hex characters
	ErrPythPushFeedIdNonHexCharacter

	// Switchboard oracle: wrong account owner
	ErrSwitchboardWrongAccountOwner

	// Pyth Push oracle: invalid account
	ErrPythPushInvalidAccount

	// Switchboard oracle: invalid account
	ErrSwitchboardInvalidAccount

	// Math error
	ErrMathError

	// Invalid emissions destination account
	ErrInvalidEmissionsDestinationAccount

	// Asset and liability bank cannot be the same
	ErrSameAssetAndLiabilityBanks

	// Trying to withdraw more assets than available
	ErrOverliquidationAttempt

	// Liability bank has no liabilities
	ErrNoLiabilitiesInLiabilityBank

	// Liability bank has assets
	ErrAssetsInLiabilityBank

	// Account is healthy and cannot be liquidated
	ErrHealthyAccount

	// Liability payoff too severe, exhausted liability
	ErrExhaustedLiability

	// Liability payoff too severe, liability balance has assets
	ErrTooSeverePayoff

	// Liquidation too severe, account above maintenance requirement
	ErrTooSevereLiquidation

	// Liquidation would worsen account health
	ErrWorseHealthPostLiquidation

	// Arena groups can only support two banks
	ErrArenaBankLimit

	// Arena groups cannot return to non-arena status
	ErrArenaSettingCannotChange

	// The Emode config was invalid
	ErrBadEmodeConfig

	// TWAP window size does not match expected duration
	ErrPythPushInvalidWindowSize

	// Invalid fees destination account
	ErrInvalidFeesDestinationAccount

	// Zero asset price
	ErrZeroAssetPrice

	// Zero liability price
	ErrZeroLiabilityPrice

	// Oracle max confidence exceeded: try again later
	ErrOracleMaxConfidenceExceeded

	// Banks cannot close when they have open positions or emissions outstanding
	ErrBankCannotClose

	// Account already migrated
	ErrAccountAlreadyMigrated
)

// Errors resolves custom error codes returned by the program.
var Errors = solana.NewErrorRegistry(PROGRAM_ID, solana.AnchorErrorCodeOffset, []solana.ErrorDescriptor{
	{Name: "InternalLogicError", Message: "Internal Marginfi logic error"},
	{Name: "BankNotFound", Message: "Invalid bank index"},
	{Name: "LendingAccountBalanceNotFound", Message: "Lending account balance not found"},
	{Name: "BankAssetCapacityExceeded", Message: "Bank deposit capacity exceeded"},
	{Name: "InvalidTransfer", Message: "Invalid transfer"},
	{Name: "MissingPythOrBankAccount", Message: "Missing Oracle, Bank, LST mint, or Sol Pool"},
	{Name: "MissingPythAccount", Message: "Missing Pyth account"},
	{Name: "MissingBankAccount", Message: "Missing Bank account"},
	{Name: "InvalidBankAccount", Message: "Invalid Bank account"},
	{Name: "RiskEngineInitRejected", Message: "RiskEngine rejected due to either bad health or stale oracles"},
	{Name: "LendingAccountBalanceSlotsFull", Message: "Lending account balance slots are full"},
	{Name: "BankAlreadyExists", Message: "Bank already exists"},
	{Name: "ZeroLiquidationAmount", Message: "Amount to liquidate must be positive"},
	{Name: "AccountNotBankrupt", Message: "Account is not bankrupt"},
	{Name: "BalanceNotBadDebt", Message: "Account balance is not bad debt"},
	{Name: "InvalidConfig", Message: "Invalid group config"},
	{Name: "BankPaused", Message: "Bank paused"},
	{Name: "BankReduceOnly", Message: "Bank is ReduceOnly mode"},
	{Name: "BankAccountNotFound", Message: "Bank is missing"},
	{Name: "OperationDepositOnly", Message: "Operation is deposit-only"},
	{Name: "OperationWithdrawOnly", Message: "Operation is withdraw-only"},
	{Name: "OperationBorrowOnly", Message: "Operation is borrow-only"},
	{Name: "OperationRepayOnly", Message: "Operation is repay-only"},
	{Name: "NoAssetFound", Message: "No asset found"},
	{Name: "NoLiabilityFound", Message: "No liability found"},
	{Name: "InvalidOracleSetup", Message: "Invalid oracle setup"},
	{Name: "IllegalUtilizationRatio", Message: "Invalid bank utilization ratio"},
	{Name: "BankLiabilityCapacityExceeded", Message: "Bank borrow cap exceeded"},
	{Name: "InvalidPrice", Message: "Invalid Price"},
	{Name: "IsolatedAccountIllegalState", Message: "Account can have only one liability when account is under isolated risk"},
	{Name: "EmissionsAlreadySetup", Message: "Emissions already setup"},
	{Name: "OracleNotSetup", Message: "Oracle is not set"},
	{Name: "InvalidSwitchboardDecimalConversion", Message: "Invalid switchboard decimal conversion"},
	{Name: "CannotCloseOutstandingEmissions", Message: "Cannot close balance because of outstanding emissions"},
	{Name: "EmissionsUpdateError", Message: "Update emissions error"},
	{Name: "AccountDisabled", Message: "Account disabled"},
	{Name: "AccountTempActiveBalanceLimitExceeded", Message: "Account can't temporarily open 3 balances, please close a balance first"},
	{Name: "AccountInFlashloan", Message: "Illegal action during flashloan"},
	{Name: "IllegalFlashloan", Message: "Illegal flashloan"},
	{Name: "IllegalFlag", Message: "Illegal flag"},
	{Name: "IllegalBalanceState", Message: "Illegal balance state"},
	{Name: "IllegalAccountAuthorityTransfer", Message: "Illegal account authority transfer"},
	{Name: "Unauthorized", Message: "Unauthorized"},
	{Name: "IllegalAction", Message: "Invalid account authority"},
	{Name: "T22MintRequired", Message: "Token22 Banks require mint account as first remaining account"},
	{Name: "InvalidFeeAta", Message: "Invalid ATA for global fee account"},
	{Name: "AddedStakedPoolManually", Message: "Use add pool permissionless instead"},
	{Name: "AssetTagMismatch", Message: "Staked SOL accounts can only deposit staked assets and borrow SOL"},
	{Name: "StakePoolValidationFailed", Message: "Stake pool validation failed: check the stake pool, mint, or sol pool"},
	{Name: "SwitchboardStalePrice", Message: "Switchboard oracle: stale price"},
	{Name: "PythPushStalePrice", Message: "Pyth Push oracle: stale price"},
	{Name: "WrongNumberOfOracleAccounts", Message: "Oracle error: wrong number of accounts"},
	{Name: "WrongOracleAccountKeys", Message: "Oracle error: wrong account keys"},
	{Name: "PythPushWrongAccountOwner", Message: "Pyth Push oracle: wrong account owner"},
	{Name: "StakedPythPushWrongAccountOwner", Message: "Staked Pyth Push oracle: wrong account owner"},
	{Name: "PythPushMismatchedFeedId", Message: "Pyth Push oracle: mismatched feed id"},
	{Name: "PythPushInsufficientVerificationLevel", Message: "Pyth Push oracle: insufficient verification level"},
	{Name: "PythPushFeedIdMustBe32Bytes", Message: "Pyth Push oracle: feed id must be 32 Bytes"},
	{Name: "PythPushFeedIdNonHexCharacter", Message: "Pyth Push oracle: feed id contains non-hex characters"},
	{Name: "SwitchboardWrongAccountOwner", Message: "Switchboard oracle: wrong account owner"},
	{Name: "PythPushInvalidAccount", Message: "Pyth Push oracle: invalid account"},
	{Name: "SwitchboardInvalidAccount", Message: "Switchboard oracle: invalid account"},
	{Name: "MathError", Message: "Math error"},
	{Name: "InvalidEmissionsDestinationAccount", Message: "Invalid emissions destination account"},
	{Name: "SameAssetAndLiabilityBanks", Message: "Asset and liability bank cannot be the same"},
	{Name: "OverliquidationAttempt", Message: "Trying to withdraw more assets than available"},
	{Name: "NoLiabilitiesInLiabilityBank", Message: "Liability bank has no liabilities"},
	{Name: "AssetsInLiabilityBank", Message: "Liability bank has assets"},
	{Name: "HealthyAccount", Message: "Account is healthy and cannot be liquidated"},
	{Name: "ExhaustedLiability", Message: "Liability payoff too severe, exhausted liability"},
	{Name: "TooSeverePayoff", Message: "Liability payoff too severe, liability balance has assets"},
	{Name: "TooSevereLiquidation", Message: "Liquidation too severe, account above maintenance requirement"},
	{Name: "WorseHealthPostLiquidation", Message: "Liquidation would worsen account health"},
	{Name: "ArenaBankLimit", Message: "Arena groups can only support two banks"},
	{Name: "ArenaSettingCannotChange", Message: "Arena groups cannot return to non-arena status"},
	{Name: "BadEmodeConfig", Message: "The Emode config was invalid"},
	{Name: "PythPushInvalidWindowSize", Message: "TWAP window size does not match expected duration"},
	{Name: "InvalidFeesDestinationAccount", Message: "Invalid fees destination account"},
	{Name: "ZeroAssetPrice", Message: "Zero asset price"},
	{Name: "ZeroLiabilityPrice", Message: "Zero liability price"},
	{Name: "OracleMaxConfidenceExceeded", Message: "Oracle max confidence exceeded: try again later"},
	{Name: "BankCannotClose", Message: "Banks cannot close when they have open positions or emissions outstanding"},
	{Name: "AccountAlreadyMigrated", Message: "Account already migrated"},
})

func (e MarginfiError) Error() string {
	return Errors.Lookup(uint32(e)).Error()
}
