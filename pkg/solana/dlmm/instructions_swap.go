package dlmm

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var SwapInstructionDiscriminator = binary.Discriminator{248, 198, 158, 145, 225, 117, 135, 200}

const SwapInstructionArgsSize = (8 + // amount_in
	8) // min_amount_out

type SwapInstructionArgs struct {
	AmountIn     uint64
	MinAmountOut uint64
}

func (obj *SwapInstructionArgs) Size() int {
	return SwapInstructionArgsSize
}

func (obj *SwapInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteUint64(obj.AmountIn); err != nil {
		return err
	}
	return e.WriteUint64(obj.MinAmountOut)
}

func (obj *SwapInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.AmountIn, err = d.ReadUint64(); err != nil {
		return err
	}
	obj.MinAmountOut, err = d.ReadUint64()
	return err
}

type SwapInstructionAccounts struct {
	LbPair                  ed25519.PublicKey
	BinArrayBitmapExtension ed25519.PublicKey // defaults to PROGRAM_ID
	ReserveX                ed25519.PublicKey
	ReserveY                ed25519.PublicKey
	UserTokenIn             ed25519.PublicKey
	UserTokenOut            ed25519.PublicKey
	TokenXMint              ed25519.PublicKey
	TokenYMint              ed25519.PublicKey
	Oracle                  ed25519.PublicKey
	HostFeeIn               ed25519.PublicKey // defaults to PROGRAM_ID
	User                    ed25519.PublicKey
	TokenXProgram           ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
	TokenYProgram           ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID

	// Writable bin arrays the swap traverses, starting from the active bin
	// array in the swap direction.
	RemainingAccounts []solana.AccountMeta
}

// NewSwapInstruction swaps exactly AmountIn, failing when the output falls
// below MinAmountOut. Optional accounts left nil are filled with PROGRAM_ID.
func NewSwapInstruction(
	accounts *SwapInstructionAccounts,
	args *SwapInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(SwapInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode swap args")
	}

	metas := []solana.AccountMeta{
		solana.NewWritableAccountMeta(accounts.LbPair),
		solana.NewReadonlyAccountMeta(orDefault(accounts.BinArrayBitmapExtension, PROGRAM_ID)),
		solana.NewWritableAccountMeta(accounts.ReserveX),
		solana.NewWritableAccountMeta(accounts.ReserveY),
		solana.NewWritableAccountMeta(accounts.UserTokenIn),
		solana.NewWritableAccountMeta(accounts.UserTokenOut),
		solana.NewReadonlyAccountMeta(accounts.TokenXMint),
		solana.NewReadonlyAccountMeta(accounts.TokenYMint),
		solana.NewWritableAccountMeta(accounts.Oracle),
		solana.NewWritableAccountMeta(orDefault(accounts.HostFeeIn, PROGRAM_ID)),
		solana.NewReadonlySignerAccountMeta(accounts.User),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenXProgram, SPL_TOKEN_PROGRAM_ID)),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenYProgram, SPL_TOKEN_PROGRAM_ID)),
		solana.NewReadonlyAccountMeta(EVENT_AUTHORITY),
		solana.NewReadonlyAccountMeta(PROGRAM_ID),
	}
	metas = append(metas, accounts.RemainingAccounts...)

	return solana.NewInstruction(PROGRAM_ID, data, metas...), nil
}

func SwapInstructionArgsFromBinary(data []byte) (*SwapInstructionArgs, error) {
	var args SwapInstructionArgs
	if err := binary.DecodeInstruction(data, SwapInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid swap data")
	}
	return &args, nil
}

func DecompileSwapInstruction(ix solana.Instruction) (*SwapInstructionAccounts, *SwapInstructionArgs, error) {
	if err := checkInstructionWithRemaining(ix, 15); err != nil {
		return nil, nil, err
	}

	args, err := SwapInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &SwapInstructionAccounts{
		LbPair:                  accountKey(ix, 0),
		BinArrayBitmapExtension: accountKey(ix, 1),
		ReserveX:                accountKey(ix, 2),
		ReserveY:                accountKey(ix, 3),
		UserTokenIn:             accountKey(ix, 4),
		UserTokenOut:            accountKey(ix, 5),
		TokenXMint:              accountKey(ix, 6),
		TokenYMint:              accountKey(ix, 7),
		Oracle:                  accountKey(ix, 8),
		HostFeeIn:               accountKey(ix, 9),
		User:                    accountKey(ix, 10),
		TokenXProgram:           accountKey(ix, 11),
		TokenYProgram:           accountKey(ix, 12),
		RemainingAccounts:       ix.Accounts[15:],
	}
	return accounts, args, nil
}
