package marinade

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var AddLiquidityInstructionDiscriminator = binary.Discriminator{181, 157, 89, 67, 143, 182, 52, 72}

const AddLiquidityInstructionArgsSize = (8) // lamports

type AddLiquidityInstructionArgs struct {
	Lamports uint64
}

func (obj *AddLiquidityInstructionArgs) Size() int {
	return AddLiquidityInstructionArgsSize
}

func (obj *AddLiquidityInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return e.WriteUint64(obj.Lamports)
}

func (obj *AddLiquidityInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	obj.Lamports, err = d.ReadUint64()
	return err
}

type AddLiquidityInstructionAccounts struct {
	State            ed25519.PublicKey
	LpMint           ed25519.PublicKey
	LpMintAuthority  ed25519.PublicKey
	LiqPoolMsolLeg   ed25519.PublicKey
	LiqPoolSolLegPda ed25519.PublicKey
	TransferFrom     ed25519.PublicKey
	MintTo           ed25519.PublicKey
	TokenProgram     ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
}

func NewAddLiquidityInstruction(
	accounts *AddLiquidityInstructionAccounts,
	args *AddLiquidityInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(AddLiquidityInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode add_liquidity args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.State),
		solana.NewWritableAccountMeta(accounts.LpMint),
		solana.NewReadonlyAccountMeta(accounts.LpMintAuthority),
		solana.NewReadonlyAccountMeta(accounts.LiqPoolMsolLeg),
		solana.NewWritableAccountMeta(accounts.LiqPoolSolLegPda),
		solana.NewWritableSignerAccountMeta(accounts.TransferFrom),
		solana.NewWritableAccountMeta(accounts.MintTo),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenProgram, SPL_TOKEN_PROGRAM_ID)),
	), nil
}

func AddLiquidityInstructionArgsFromBinary(data []byte) (*AddLiquidityInstructionArgs, error) {
	var args AddLiquidityInstructionArgs
	if err := binary.DecodeInstruction(data, AddLiquidityInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid add_liquidity data")
	}
	return &args, nil
}

func DecompileAddLiquidityInstruction(ix solana.Instruction) (*AddLiquidityInstructionAccounts, *AddLiquidityInstructionArgs, error) {
	if err := checkInstruction(ix, 9); err != nil {
		return nil, nil, err
	}

	args, err := AddLiquidityInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &AddLiquidityInstructionAccounts{
		State:            accountKey(ix, 0),
		LpMint:           accountKey(ix, 1),
		LpMintAuthority:  accountKey(ix, 2),
		LiqPoolMsolLeg:   accountKey(ix, 3),
		LiqPoolSolLegPda: accountKey(ix, 4),
		TransferFrom:     accountKey(ix, 5),
		MintTo:           accountKey(ix, 6),
		TokenProgram:     accountKey(ix, 8),
	}
	return accounts, args, nil
}
