package marginfi

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var LendingAccountRepayInstructionDiscriminator = binary.Discriminator{79, 209, 172, 177, 222, 51, 173, 151}

type LendingAccountRepayInstructionArgs struct {
	Amount   uint64
	RepayAll *bool
}

func (obj *LendingAccountRepayInstructionArgs) Size() int {
	return 8 +
		binary.OptionSize(obj.RepayAll, 1)
}

func (obj *LendingAccountRepayInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteUint64(obj.Amount); err != nil {
		return err
	}
	return binary.WriteOption(e, obj.RepayAll, (*binary.Encoder).WriteBool)
}

func (obj *LendingAccountRepayInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.Amount, err = d.ReadUint64(); err != nil {
		return err
	}
	obj.RepayAll, err = binary.ReadOption(d, (*binary.Decoder).ReadBool)
	return err
}

type LendingAccountRepayInstructionAccounts struct {
	Group              ed25519.PublicKey
	MarginfiAccount    ed25519.PublicKey
	Authority          ed25519.PublicKey
	Bank               ed25519.PublicKey
	SignerTokenAccount ed25519.PublicKey
	LiquidityVault     ed25519.PublicKey
	TokenProgram       ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
}

func NewLendingAccountRepayInstruction(
	accounts *LendingAccountRepayInstructionAccounts,
	args *LendingAccountRepayInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(LendingAccountRepayInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode lending_account_repay args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewReadonlyAccountMeta(accounts.Group),
		solana.NewWritableAccountMeta(accounts.MarginfiAccount),
		solana.NewReadonlySignerAccountMeta(accounts.Authority),
		solana.NewWritableAccountMeta(accounts.Bank),
		solana.NewWritableAccountMeta(accounts.SignerTokenAccount),
		solana.NewWritableAccountMeta(accounts.LiquidityVault),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenProgram, SPL_TOKEN_PROGRAM_ID)),
	), nil
}

func LendingAccountRepayInstructionArgsFromBinary(data []byte) (*LendingAccountRepayInstructionArgs, error) {
	var args LendingAccountRepayInstructionArgs
	if err := binary.DecodeInstruction(data, LendingAccountRepayInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid lending_account_repay data")
	}
	return &args, nil
}

func DecompileLendingAccountRepayInstruction(ix solana.Instruction) (*LendingAccountRepayInstructionAccounts, *LendingAccountRepayInstructionArgs, error) {
	if err := checkInstruction(ix, 7); err != nil {
		return nil, nil, err
	}

	args, err := LendingAccountRepayInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &LendingAccountRepayInstructionAccounts{
		Group:              accountKey(ix, 0),
		MarginfiAccount:    accountKey(ix, 1),
		Authority:          accountKey(ix, 2),
		Bank:               accountKey(ix, 3),
		SignerTokenAccount: accountKey(ix, 4),
		LiquidityVault:     accountKey(ix, 5),
		TokenProgram:       accountKey(ix, 6),
	}
	return accounts, args, nil
}
