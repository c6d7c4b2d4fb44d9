package marginfi

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var LendingAccountBorrowInstructionDiscriminator = binary.Discriminator{4, 126, 116, 53, 48, 5, 212, 31}

const LendingAccountBorrowInstructionArgsSize = (8) // amount

type LendingAccountBorrowInstructionArgs struct {
	Amount uint64
}

func (obj *LendingAccountBorrowInstructionArgs) Size() int {
	return LendingAccountBorrowInstructionArgsSize
}

func (obj *LendingAccountBorrowInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return e.WriteUint64(obj.Amount)
}

func (obj *LendingAccountBorrowInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	obj.Amount, err = d.ReadUint64()
	return err
}

type LendingAccountBorrowInstructionAccounts struct {
	Group                       ed25519.PublicKey
	MarginfiAccount             ed25519.PublicKey
	Authority                   ed25519.PublicKey
	Bank                        ed25519.PublicKey
	DestinationTokenAccount     ed25519.PublicKey
	BankLiquidityVaultAuthority ed25519.PublicKey
	LiquidityVault              ed25519.PublicKey
	TokenProgram                ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID

	// Bank and oracle accounts for every active balance, used by the risk engine.
	RemainingAccounts []solana.AccountMeta
}

func NewLendingAccountBorrowInstruction(
	accounts *LendingAccountBorrowInstructionAccounts,
	args *LendingAccountBorrowInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(LendingAccountBorrowInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode lending_account_borrow args")
	}

	metas := []solana.AccountMeta{
		solana.NewReadonlyAccountMeta(accounts.Group),
		solana.NewWritableAccountMeta(accounts.MarginfiAccount),
		solana.NewReadonlySignerAccountMeta(accounts.Authority),
		solana.NewWritableAccountMeta(accounts.Bank),
		solana.NewWritableAccountMeta(accounts.DestinationTokenAccount),
		solana.NewWritableAccountMeta(accounts.BankLiquidityVaultAuthority),
		solana.NewWritableAccountMeta(accounts.LiquidityVault),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenProgram, SPL_TOKEN_PROGRAM_ID)),
	}
	metas = append(metas, accounts.RemainingAccounts...)

	return solana.NewInstruction(PROGRAM_ID, data, metas...), nil
}

func LendingAccountBorrowInstructionArgsFromBinary(data []byte) (*LendingAccountBorrowInstructionArgs, error) {
	var args LendingAccountBorrowInstructionArgs
	if err := binary.DecodeInstruction(data, LendingAccountBorrowInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid lending_account_borrow data")
	}
	return &args, nil
}

func DecompileLendingAccountBorrowInstruction(ix solana.Instruction) (*LendingAccountBorrowInstructionAccounts, *LendingAccountBorrowInstructionArgs, error) {
	if err := checkInstructionWithRemaining(ix, 8); err != nil {
		return nil, nil, err
	}

	args, err := LendingAccountBorrowInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &LendingAccountBorrowInstructionAccounts{
		Group:                       accountKey(ix, 0),
		MarginfiAccount:             accountKey(ix, 1),
		Authority:                   accountKey(ix, 2),
		Bank:                        accountKey(ix, 3),
		DestinationTokenAccount:     accountKey(ix, 4),
		BankLiquidityVaultAuthority: accountKey(ix, 5),
		LiquidityVault:              accountKey(ix, 6),
		TokenProgram:                accountKey(ix, 7),
		RemainingAccounts:           ix.Accounts[8:],
	}
	return accounts, args, nil
}
