package marinade

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var OrderUnstakeInstructionDiscriminator = binary.Discriminator{97, 167, 144, 107, 117, 190, 128, 36}

const OrderUnstakeInstructionArgsSize = (8) // msol_amount

type OrderUnstakeInstructionArgs struct {
	MsolAmount uint64
}

func (obj *OrderUnstakeInstructionArgs) Size() int {
	return OrderUnstakeInstructionArgsSize
}

func (obj *OrderUnstakeInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return e.WriteUint64(obj.MsolAmount)
}

func (obj *OrderUnstakeInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	obj.MsolAmount, err = d.ReadUint64()
	return err
}

type OrderUnstakeInstructionAccounts struct {
	State             ed25519.PublicKey
	MsolMint          ed25519.PublicKey
	BurnMsolFrom      ed25519.PublicKey
	BurnMsolAuthority ed25519.PublicKey
	NewTicketAccount  ed25519.PublicKey
	TokenProgram      ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
}

// NewOrderUnstakeInstruction burns mSOL and records a delayed unstake in
// NewTicketAccount, which must already be allocated with
// TicketAccountDataSize bytes and owned by the program.
func NewOrderUnstakeInstruction(
	accounts *OrderUnstakeInstructionAccounts,
	args *OrderUnstakeInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(OrderUnstakeInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode order_unstake args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.State),
		solana.NewWritableAccountMeta(accounts.MsolMint),
		solana.NewWritableAccountMeta(accounts.BurnMsolFrom),
		solana.NewReadonlySignerAccountMeta(accounts.BurnMsolAuthority),
		solana.NewWritableAccountMeta(accounts.NewTicketAccount),
		solana.NewReadonlyAccountMeta(SYSVAR_CLOCK_PUBKEY),
		solana.NewReadonlyAccountMeta(SYSVAR_RENT_PUBKEY),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenProgram, SPL_TOKEN_PROGRAM_ID)),
	), nil
}

func OrderUnstakeInstructionArgsFromBinary(data []byte) (*OrderUnstakeInstructionArgs, error) {
	var args OrderUnstakeInstructionArgs
	if err := binary.DecodeInstruction(data, OrderUnstakeInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid order_unstake data")
	}
	return &args, nil
}

func DecompileOrderUnstakeInstruction(ix solana.Instruction) (*OrderUnstakeInstructionAccounts, *OrderUnstakeInstructionArgs, error) {
	if err := checkInstruction(ix, 8); err != nil {
		return nil, nil, err
	}

	args, err := OrderUnstakeInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &OrderUnstakeInstructionAccounts{
		State:             accountKey(ix, 0),
		MsolMint:          accountKey(ix, 1),
		BurnMsolFrom:      accountKey(ix, 2),
		BurnMsolAuthority: accountKey(ix, 3),
		NewTicketAccount:  accountKey(ix, 4),
		TokenProgram:      accountKey(ix, 7),
	}
	return accounts, args, nil
}
