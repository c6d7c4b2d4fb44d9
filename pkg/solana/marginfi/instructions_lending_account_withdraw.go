package marginfi

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var LendingAccountWithdrawInstructionDiscriminator = binary.Discriminator{36, 72, 74, 19, 210, 210, 192, 192}

type LendingAccountWithdrawInstructionArgs struct {
	Amount      uint64
	WithdrawAll *bool
}

func (obj *LendingAccountWithdrawInstructionArgs) Size() int {
	return 8 +
		binary.OptionSize(obj.WithdrawAll, 1)
}

func (obj *LendingAccountWithdrawInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteUint64(obj.Amount); err != nil {
		return err
	}
	return binary.WriteOption(e, obj.WithdrawAll, (*binary.Encoder).WriteBool)
}

func (obj *LendingAccountWithdrawInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.Amount, err = d.ReadUint64(); err != nil {
		return err
	}
	obj.WithdrawAll, err = binary.ReadOption(d, (*binary.Decoder).ReadBool)
	return err
}

type LendingAccountWithdrawInstructionAccounts struct {
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

func NewLendingAccountWithdrawInstruction(
	accounts *LendingAccountWithdrawInstructionAccounts,
	args *LendingAccountWithdrawInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(LendingAccountWithdrawInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode lending_account_withdraw args")
	}

	metas := []solana.AccountMeta{
		solana.NewReadonlyAccountMeta(accounts.Group),
		solana.NewWritableAccountMeta(accounts.MarginfiAccount),
		solana.NewReadonlySignerAccountMeta(accounts.Authority),
		solana.NewWritableAccountMeta(accounts.Bank),
		solana.NewWritableAccountMeta(accounts.DestinationTokenAccount),
		solana.NewReadonlyAccountMeta(accounts.BankLiquidityVaultAuthority),
		solana.NewWritableAccountMeta(accounts.LiquidityVault),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenProgram, SPL_TOKEN_PROGRAM_ID)),
	}
	metas = append(metas, accounts.RemainingAccounts...)

	return solana.NewInstruction(PROGRAM_ID, data, metas...), nil
}

func LendingAccountWithdrawInstructionArgsFromBinary(data []byte) (*LendingAccountWithdrawInstructionArgs, error) {
	var args LendingAccountWithdrawInstructionArgs
	if err := binary.DecodeInstruction(data, LendingAccountWithdrawInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid lending_account_withdraw data")
	}
	return &args, nil
}

func DecompileLendingAccountWithdrawInstruction(ix solana.Instruction) (*LendingAccountWithdrawInstructionAccounts, *LendingAccountWithdrawInstructionArgs, error) {
	if err := checkInstructionWithRemaining(ix, 8); err != nil {
		return nil, nil, err
	}

	args, err := LendingAccountWithdrawInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &LendingAccountWithdrawInstructionAccounts{
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
