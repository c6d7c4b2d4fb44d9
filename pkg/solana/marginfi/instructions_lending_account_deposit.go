package marginfi

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var LendingAccountDepositInstructionDiscriminator = binary.Discriminator{171, 94, 235, 103, 82, 64, 212, 140}

type LendingAccountDepositInstructionArgs struct {
	Amount           uint64
	DepositUpToLimit *bool
}

func (obj *LendingAccountDepositInstructionArgs) Size() int {
	return 8 +
		binary.OptionSize(obj.DepositUpToLimit, 1)
}

func (obj *LendingAccountDepositInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteUint64(obj.Amount); err != nil {
		return err
	}
	return binary.WriteOption(e, obj.DepositUpToLimit, (*binary.Encoder).WriteBool)
}

func (obj *LendingAccountDepositInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.Amount, err = d.ReadUint64(); err != nil {
		return err
	}
	obj.DepositUpToLimit, err = binary.ReadOption(d, (*binary.Decoder).ReadBool)
	return err
}

type LendingAccountDepositInstructionAccounts struct {
	Group              ed25519.PublicKey
	MarginfiAccount    ed25519.PublicKey
	Authority          ed25519.PublicKey
	Bank               ed25519.PublicKey
	SignerTokenAccount ed25519.PublicKey
	LiquidityVault     ed25519.PublicKey
	TokenProgram       ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
}

func NewLendingAccountDepositInstruction(
	accounts *LendingAccountDepositInstructionAccounts,
	args *LendingAccountDepositInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(LendingAccountDepositInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode lending_account_deposit args")
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

func LendingAccountDepositInstructionArgsFromBinary(data []byte) (*LendingAccountDepositInstructionArgs, error) {
	var args LendingAccountDepositInstructionArgs
	if err := binary.DecodeInstruction(data, LendingAccountDepositInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid lending_account_deposit data")
	}
	return &args, nil
}

func DecompileLendingAccountDepositInstruction(ix solana.Instruction) (*LendingAccountDepositInstructionAccounts, *LendingAccountDepositInstructionArgs, error) {
	if err := checkInstruction(ix, 7); err != nil {
		return nil, nil, err
	}

	args, err := LendingAccountDepositInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &LendingAccountDepositInstructionAccounts{
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
