package marinade

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var LiquidUnstakeInstructionDiscriminator = binary.Discriminator{30, 30, 119, 240, 191, 227, 12, 16}

const LiquidUnstakeInstructionArgsSize = (8) // msol_amount

type LiquidUnstakeInstructionArgs struct {
	MsolAmount uint64
}

func (obj *LiquidUnstakeInstructionArgs) Size() int {
	return LiquidUnstakeInstructionArgsSize
}

func (obj *LiquidUnstakeInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return e.WriteUint64(obj.MsolAmount)
}

func (obj *LiquidUnstakeInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	obj.MsolAmount, err = d.ReadUint64()
	return err
}

type LiquidUnstakeInstructionAccounts struct {
	State                ed25519.PublicKey
	MsolMint             ed25519.PublicKey
	LiqPoolSolLegPda     ed25519.PublicKey
	LiqPoolMsolLeg       ed25519.PublicKey
	TreasuryMsolAccount  ed25519.PublicKey
	GetMsolFrom          ed25519.PublicKey
	GetMsolFromAuthority ed25519.PublicKey
	TransferSolTo        ed25519.PublicKey
	TokenProgram         ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
}

// NewLiquidUnstakeInstruction swaps mSOL for SOL through the liquidity pool,
// paying the pool fee instead of waiting for a delayed unstake.
func NewLiquidUnstakeInstruction(
	accounts *LiquidUnstakeInstructionAccounts,
	args *LiquidUnstakeInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(LiquidUnstakeInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode liquid_unstake args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.State),
		solana.NewWritableAccountMeta(accounts.MsolMint),
		solana.NewWritableAccountMeta(accounts.LiqPoolSolLegPda),
		solana.NewWritableAccountMeta(accounts.LiqPoolMsolLeg),
		solana.NewWritableAccountMeta(accounts.TreasuryMsolAccount),
		solana.NewWritableAccountMeta(accounts.GetMsolFrom),
		solana.NewReadonlySignerAccountMeta(accounts.GetMsolFromAuthority),
		solana.NewWritableAccountMeta(accounts.TransferSolTo),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenProgram, SPL_TOKEN_PROGRAM_ID)),
	), nil
}

func LiquidUnstakeInstructionArgsFromBinary(data []byte) (*LiquidUnstakeInstructionArgs, error) {
	var args LiquidUnstakeInstructionArgs
	if err := binary.DecodeInstruction(data, LiquidUnstakeInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid liquid_unstake data")
	}
	return &args, nil
}

func DecompileLiquidUnstakeInstruction(ix solana.Instruction) (*LiquidUnstakeInstructionAccounts, *LiquidUnstakeInstructionArgs, error) {
	if err := checkInstruction(ix, 10); err != nil {
		return nil, nil, err
	}

	args, err := LiquidUnstakeInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &LiquidUnstakeInstructionAccounts{
		State:                accountKey(ix, 0),
		MsolMint:             accountKey(ix, 1),
		LiqPoolSolLegPda:     accountKey(ix, 2),
		LiqPoolMsolLeg:       accountKey(ix, 3),
		TreasuryMsolAccount:  accountKey(ix, 4),
		GetMsolFrom:          accountKey(ix, 5),
		GetMsolFromAuthority: accountKey(ix, 6),
		TransferSolTo:        accountKey(ix, 7),
		TokenProgram:         accountKey(ix, 9),
	}
	return accounts, args, nil
}
