package marinade

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var RemoveLiquidityInstructionDiscriminator = binary.Discriminator{80, 85, 209, 72, 24, 206, 177, 108}

const RemoveLiquidityInstructionArgsSize = (8) // tokens

type RemoveLiquidityInstructionArgs struct {
	Tokens uint64
}

func (obj *RemoveLiquidityInstructionArgs) Size() int {
	return RemoveLiquidityInstructionArgsSize
}

func (obj *RemoveLiquidityInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return e.WriteUint64(obj.Tokens)
}

func (obj *RemoveLiquidityInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	obj.Tokens, err = d.ReadUint64()
	return err
}

type RemoveLiquidityInstructionAccounts struct {
	State                   ed25519.PublicKey
	LpMint                  ed25519.PublicKey
	BurnFrom                ed25519.PublicKey
	BurnFromAuthority       ed25519.PublicKey
	TransferSolTo           ed25519.PublicKey
	TransferMsolTo          ed25519.PublicKey
	LiqPoolSolLegPda        ed25519.PublicKey
	LiqPoolMsolLeg          ed25519.PublicKey
	LiqPoolMsolLegAuthority ed25519.PublicKey
	TokenProgram            ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
}

func NewRemoveLiquidityInstruction(
	accounts *RemoveLiquidityInstructionAccounts,
	args *RemoveLiquidityInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(RemoveLiquidityInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode remove_liquidity args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.State),
		solana.NewWritableAccountMeta(accounts.LpMint),
		solana.NewWritableAccountMeta(accounts.BurnFrom),
		solana.NewReadonlySignerAccountMeta(accounts.BurnFromAuthority),
		solana.NewWritableAccountMeta(accounts.TransferSolTo),
		solana.NewWritableAccountMeta(accounts.TransferMsolTo),
		solana.NewWritableAccountMeta(accounts.LiqPoolSolLegPda),
		solana.NewWritableAccountMeta(accounts.LiqPoolMsolLeg),
		solana.NewReadonlyAccountMeta(accounts.LiqPoolMsolLegAuthority),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenProgram, SPL_TOKEN_PROGRAM_ID)),
	), nil
}

func RemoveLiquidityInstructionArgsFromBinary(data []byte) (*RemoveLiquidityInstructionArgs, error) {
	var args RemoveLiquidityInstructionArgs
	if err := binary.DecodeInstruction(data, RemoveLiquidityInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid remove_liquidity data")
	}
	return &args, nil
}

func DecompileRemoveLiquidityInstruction(ix solana.Instruction) (*RemoveLiquidityInstructionAccounts, *RemoveLiquidityInstructionArgs, error) {
	if err := checkInstruction(ix, 11); err != nil {
		return nil, nil, err
	}

	args, err := RemoveLiquidityInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &RemoveLiquidityInstructionAccounts{
		State:                   accountKey(ix, 0),
		LpMint:                  accountKey(ix, 1),
		BurnFrom:                accountKey(ix, 2),
		BurnFromAuthority:       accountKey(ix, 3),
		TransferSolTo:           accountKey(ix, 4),
		TransferMsolTo:          accountKey(ix, 5),
		LiqPoolSolLegPda:        accountKey(ix, 6),
		LiqPoolMsolLeg:          accountKey(ix, 7),
		LiqPoolMsolLegAuthority: accountKey(ix, 8),
		TokenProgram:            accountKey(ix, 10),
	}
	return accounts, args, nil
}
