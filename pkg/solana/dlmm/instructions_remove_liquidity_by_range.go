package dlmm

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var RemoveLiquidityByRangeInstructionDiscriminator = binary.Discriminator{26, 82, 102, 152, 240, 74, 105, 26}

const RemoveLiquidityByRangeInstructionArgsSize = (4 + // from_bin_id
	4 + // to_bin_id
	2) // bps_to_remove

type RemoveLiquidityByRangeInstructionArgs struct {
	FromBinId   int32
	ToBinId     int32
	BpsToRemove uint16
}

func (obj *RemoveLiquidityByRangeInstructionArgs) Size() int {
	return RemoveLiquidityByRangeInstructionArgsSize
}

func (obj *RemoveLiquidityByRangeInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteInt32(obj.FromBinId); err != nil {
		return err
	}
	if err := e.WriteInt32(obj.ToBinId); err != nil {
		return err
	}
	return e.WriteUint16(obj.BpsToRemove)
}

func (obj *RemoveLiquidityByRangeInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.FromBinId, err = d.ReadInt32(); err != nil {
		return err
	}
	if obj.ToBinId, err = d.ReadInt32(); err != nil {
		return err
	}
	obj.BpsToRemove, err = d.ReadUint16()
	return err
}

type RemoveLiquidityByRangeInstructionAccounts struct {
	Position                ed25519.PublicKey
	LbPair                  ed25519.PublicKey
	BinArrayBitmapExtension ed25519.PublicKey // defaults to PROGRAM_ID
	UserTokenX              ed25519.PublicKey
	UserTokenY              ed25519.PublicKey
	ReserveX                ed25519.PublicKey
	ReserveY                ed25519.PublicKey
	TokenXMint              ed25519.PublicKey
	TokenYMint              ed25519.PublicKey
	BinArrayLower           ed25519.PublicKey
	BinArrayUpper           ed25519.PublicKey
	Sender                  ed25519.PublicKey
	TokenXProgram           ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
	TokenYProgram           ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
}

// NewRemoveLiquidityByRangeInstruction withdraws BpsToRemove basis points
// of the liquidity in every bin from FromBinId to ToBinId inclusive.
func NewRemoveLiquidityByRangeInstruction(
	accounts *RemoveLiquidityByRangeInstructionAccounts,
	args *RemoveLiquidityByRangeInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(RemoveLiquidityByRangeInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode remove_liquidity_by_range args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.Position),
		solana.NewWritableAccountMeta(accounts.LbPair),
		solana.NewWritableAccountMeta(orDefault(accounts.BinArrayBitmapExtension, PROGRAM_ID)),
		solana.NewWritableAccountMeta(accounts.UserTokenX),
		solana.NewWritableAccountMeta(accounts.UserTokenY),
		solana.NewWritableAccountMeta(accounts.ReserveX),
		solana.NewWritableAccountMeta(accounts.ReserveY),
		solana.NewReadonlyAccountMeta(accounts.TokenXMint),
		solana.NewReadonlyAccountMeta(accounts.TokenYMint),
		solana.NewWritableAccountMeta(accounts.BinArrayLower),
		solana.NewWritableAccountMeta(accounts.BinArrayUpper),
		solana.NewReadonlySignerAccountMeta(accounts.Sender),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenXProgram, SPL_TOKEN_PROGRAM_ID)),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenYProgram, SPL_TOKEN_PROGRAM_ID)),
		solana.NewReadonlyAccountMeta(EVENT_AUTHORITY),
		solana.NewReadonlyAccountMeta(PROGRAM_ID),
	), nil
}

func RemoveLiquidityByRangeInstructionArgsFromBinary(data []byte) (*RemoveLiquidityByRangeInstructionArgs, error) {
	var args RemoveLiquidityByRangeInstructionArgs
	if err := binary.DecodeInstruction(data, RemoveLiquidityByRangeInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid remove_liquidity_by_range data")
	}
	return &args, nil
}

func DecompileRemoveLiquidityByRangeInstruction(ix solana.Instruction) (*RemoveLiquidityByRangeInstructionAccounts, *RemoveLiquidityByRangeInstructionArgs, error) {
	if err := checkInstruction(ix, 16); err != nil {
		return nil, nil, err
	}

	args, err := RemoveLiquidityByRangeInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &RemoveLiquidityByRangeInstructionAccounts{
		Position:                accountKey(ix, 0),
		LbPair:                  accountKey(ix, 1),
		BinArrayBitmapExtension: accountKey(ix, 2),
		UserTokenX:              accountKey(ix, 3),
		UserTokenY:              accountKey(ix, 4),
		ReserveX:                accountKey(ix, 5),
		ReserveY:                accountKey(ix, 6),
		TokenXMint:              accountKey(ix, 7),
		TokenYMint:              accountKey(ix, 8),
		BinArrayLower:           accountKey(ix, 9),
		BinArrayUpper:           accountKey(ix, 10),
		Sender:                  accountKey(ix, 11),
		TokenXProgram:           accountKey(ix, 12),
		TokenYProgram:           accountKey(ix, 13),
	}
	return accounts, args, nil
}
