package marginfi

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var LendingPoolConfigureBankInstructionDiscriminator = binary.Discriminator{121, 173, 156, 40, 93, 148, 56, 237}

type LendingPoolConfigureBankInstructionArgs struct {
	BankConfigOpt BankConfigOpt
}

func (obj *LendingPoolConfigureBankInstructionArgs) Size() int {
	return obj.BankConfigOpt.Size()
}

func (obj *LendingPoolConfigureBankInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return obj.BankConfigOpt.MarshalBinaryTo(e)
}

func (obj *LendingPoolConfigureBankInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) error {
	return obj.BankConfigOpt.UnmarshalBinaryFrom(d)
}

type LendingPoolConfigureBankInstructionAccounts struct {
	Group ed25519.PublicKey
	Admin ed25519.PublicKey
	Bank  ed25519.PublicKey
}

func NewLendingPoolConfigureBankInstruction(
	accounts *LendingPoolConfigureBankInstructionAccounts,
	args *LendingPoolConfigureBankInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(LendingPoolConfigureBankInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode lending_pool_configure_bank args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.Group),
		solana.NewReadonlySignerAccountMeta(accounts.Admin),
		solana.NewWritableAccountMeta(accounts.Bank),
	), nil
}

func LendingPoolConfigureBankInstructionArgsFromBinary(data []byte) (*LendingPoolConfigureBankInstructionArgs, error) {
	var args LendingPoolConfigureBankInstructionArgs
	if err := binary.DecodeInstruction(data, LendingPoolConfigureBankInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid lending_pool_configure_bank data")
	}
	return &args, nil
}

func DecompileLendingPoolConfigureBankInstruction(ix solana.Instruction) (*LendingPoolConfigureBankInstructionAccounts, *LendingPoolConfigureBankInstructionArgs, error) {
	if err := checkInstruction(ix, 3); err != nil {
		return nil, nil, err
	}

	args, err := LendingPoolConfigureBankInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &LendingPoolConfigureBankInstructionAccounts{
		Group: accountKey(ix, 0),
		Admin: accountKey(ix, 1),
		Bank:  accountKey(ix, 2),
	}
	return accounts, args, nil
}
