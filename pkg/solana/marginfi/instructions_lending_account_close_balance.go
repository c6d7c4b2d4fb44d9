package marginfi

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var LendingAccountCloseBalanceInstructionDiscriminator = binary.Discriminator{245, 54, 41, 4, 243, 202, 31, 17}

type LendingAccountCloseBalanceInstructionAccounts struct {
	Group           ed25519.PublicKey
	MarginfiAccount ed25519.PublicKey
	Authority       ed25519.PublicKey
	Bank            ed25519.PublicKey
}

func NewLendingAccountCloseBalanceInstruction(
	accounts *LendingAccountCloseBalanceInstructionAccounts,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(LendingAccountCloseBalanceInstructionDiscriminator, nil)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode lending_account_close_balance args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewReadonlyAccountMeta(accounts.Group),
		solana.NewWritableAccountMeta(accounts.MarginfiAccount),
		solana.NewReadonlySignerAccountMeta(accounts.Authority),
		solana.NewWritableAccountMeta(accounts.Bank),
	), nil
}

func DecompileLendingAccountCloseBalanceInstruction(ix solana.Instruction) (*LendingAccountCloseBalanceInstructionAccounts, error) {
	if err := checkInstruction(ix, 4); err != nil {
		return nil, err
	}

	if err := binary.DecodeInstruction(ix.Data, LendingAccountCloseBalanceInstructionDiscriminator, nil); err != nil {
		return nil, errors.Wrap(err, "invalid lending_account_close_balance data")
	}

	accounts := &LendingAccountCloseBalanceInstructionAccounts{
		Group:           accountKey(ix, 0),
		MarginfiAccount: accountKey(ix, 1),
		Authority:       accountKey(ix, 2),
		Bank:            accountKey(ix, 3),
	}
	return accounts, nil
}
