package marginfi

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var LendingAccountLiquidateInstructionDiscriminator = binary.Discriminator{214, 169, 151, 213, 251, 167, 86, 219}

const LendingAccountLiquidateInstructionArgsSize = (8) // asset_amount

type LendingAccountLiquidateInstructionArgs struct {
	AssetAmount uint64
}

func (obj *LendingAccountLiquidateInstructionArgs) Size() int {
	return LendingAccountLiquidateInstructionArgsSize
}

func (obj *LendingAccountLiquidateInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return e.WriteUint64(obj.AssetAmount)
}

func (obj *LendingAccountLiquidateInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	obj.AssetAmount, err = d.ReadUint64()
	return err
}

type LendingAccountLiquidateInstructionAccounts struct {
	Group                       ed25519.PublicKey
	AssetBank                   ed25519.PublicKey
	LiabBank                    ed25519.PublicKey
	LiquidatorMarginfiAccount   ed25519.PublicKey
	Authority                   ed25519.PublicKey
	LiquidateeMarginfiAccount   ed25519.PublicKey
	BankLiquidityVaultAuthority ed25519.PublicKey
	BankLiquidityVault          ed25519.PublicKey
	BankInsuranceVault          ed25519.PublicKey
	TokenProgram                ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID

	// Oracles for the asset and liability banks, followed by the bank and
	// oracle accounts of both the liquidator and the liquidatee.
	RemainingAccounts []solana.AccountMeta
}

// NewLendingAccountLiquidateInstruction seizes AssetAmount of the asset bank
// position of an unhealthy account in exchange for repaying its liability.
func NewLendingAccountLiquidateInstruction(
	accounts *LendingAccountLiquidateInstructionAccounts,
	args *LendingAccountLiquidateInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(LendingAccountLiquidateInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode lending_account_liquidate args")
	}

	metas := []solana.AccountMeta{
		solana.NewReadonlyAccountMeta(accounts.Group),
		solana.NewWritableAccountMeta(accounts.AssetBank),
		solana.NewWritableAccountMeta(accounts.LiabBank),
		solana.NewWritableAccountMeta(accounts.LiquidatorMarginfiAccount),
		solana.NewReadonlySignerAccountMeta(accounts.Authority),
		solana.NewWritableAccountMeta(accounts.LiquidateeMarginfiAccount),
		solana.NewWritableAccountMeta(accounts.BankLiquidityVaultAuthority),
		solana.NewWritableAccountMeta(accounts.BankLiquidityVault),
		solana.NewWritableAccountMeta(accounts.BankInsuranceVault),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenProgram, SPL_TOKEN_PROGRAM_ID)),
	}
	metas = append(metas, accounts.RemainingAccounts...)

	return solana.NewInstruction(PROGRAM_ID, data, metas...), nil
}

func LendingAccountLiquidateInstructionArgsFromBinary(data []byte) (*LendingAccountLiquidateInstructionArgs, error) {
	var args LendingAccountLiquidateInstructionArgs
	if err := binary.DecodeInstruction(data, LendingAccountLiquidateInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid lending_account_liquidate data")
	}
	return &args, nil
}

func DecompileLendingAccountLiquidateInstruction(ix solana.Instruction) (*LendingAccountLiquidateInstructionAccounts, *LendingAccountLiquidateInstructionArgs, error) {
	if err := checkInstructionWithRemaining(ix, 10); err != nil {
		return nil, nil, err
	}

	args, err := LendingAccountLiquidateInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &LendingAccountLiquidateInstructionAccounts{
		Group:                       accountKey(ix, 0),
		AssetBank:                   accountKey(ix, 1),
		LiabBank:                    accountKey(ix, 2),
		LiquidatorMarginfiAccount:   accountKey(ix, 3),
		Authority:                   accountKey(ix, 4),
		LiquidateeMarginfiAccount:   accountKey(ix, 5),
		BankLiquidityVaultAuthority: accountKey(ix, 6),
		BankLiquidityVault:          accountKey(ix, 7),
		BankInsuranceVault:          accountKey(ix, 8),
		TokenProgram:                accountKey(ix, 9),
		RemainingAccounts:           ix.Accounts[10:],
	}
	return accounts, args, nil
}
