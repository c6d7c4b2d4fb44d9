package marinade

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var DepositInstructionDiscriminator = binary.Discriminator{242, 35, 198, 137, 82, 225, 242, 182}

const DepositInstructionArgsSize = (8) // lamports

type DepositInstructionArgs struct {
	Lamports uint64
}

func (obj *DepositInstructionArgs) Size() int {
	return DepositInstructionArgsSize
}

func (obj *DepositInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return e.WriteUint64(obj.Lamports)
}

func (obj *DepositInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	obj.Lamports, err = d.ReadUint64()
	return err
}

type DepositInstructionAccounts struct {
	State                   ed25519.PublicKey
	MsolMint                ed25519.PublicKey
	LiqPoolSolLegPda        ed25519.PublicKey
	LiqPoolMsolLeg          ed25519.PublicKey
	LiqPoolMsolLegAuthority ed25519.PublicKey
	ReservePda              ed25519.PublicKey
	TransferFrom            ed25519.PublicKey
	MintTo                  ed25519.PublicKey
	MsolMintAuthority       ed25519.PublicKey
	TokenProgram            ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
}

// NewDepositInstruction stakes Lamports from TransferFrom and mints the
// equivalent mSOL into the MintTo token account. mSOL held by the liquidity
// pool is swapped out first when available.
func NewDepositInstruction(
	accounts *DepositInstructionAccounts,
	args *DepositInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(DepositInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode deposit args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.State),
		solana.NewWritableAccountMeta(accounts.MsolMint),
		solana.NewWritableAccountMeta(accounts.LiqPoolSolLegPda),
		solana.NewWritableAccountMeta(accounts.LiqPoolMsolLeg),
		solana.NewReadonlyAccountMeta(accounts.LiqPoolMsolLegAuthority),
		solana.NewWritableAccountMeta(accounts.ReservePda),
		solana.NewWritableSignerAccountMeta(accounts.TransferFrom),
		solana.NewWritableAccountMeta(accounts.MintTo),
		solana.NewReadonlyAccountMeta(accounts.MsolMintAuthority),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenProgram, SPL_TOKEN_PROGRAM_ID)),
	), nil
}

func DepositInstructionArgsFromBinary(data []byte) (*DepositInstructionArgs, error) {
	var args DepositInstructionArgs
	if err := binary.DecodeInstruction(data, DepositInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid deposit data")
	}
	return &args, nil
}

func DecompileDepositInstruction(ix solana.Instruction) (*DepositInstructionAccounts, *DepositInstructionArgs, error) {
	if err := checkInstruction(ix, 11); err != nil {
		return nil, nil, err
	}

	args, err := DepositInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &DepositInstructionAccounts{
		State:                   accountKey(ix, 0),
		MsolMint:                accountKey(ix, 1),
		LiqPoolSolLegPda:        accountKey(ix, 2),
		LiqPoolMsolLeg:          accountKey(ix, 3),
		LiqPoolMsolLegAuthority: accountKey(ix, 4),
		ReservePda:              accountKey(ix, 5),
		TransferFrom:            accountKey(ix, 6),
		MintTo:                  accountKey(ix, 7),
		MsolMintAuthority:       accountKey(ix, 8),
		TokenProgram:            accountKey(ix, 10),
	}
	return accounts, args, nil
}
