package dlmm

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var InitializePositionInstructionDiscriminator = binary.Discriminator{219, 192, 234, 71, 190, 191, 102, 80}

const InitializePositionInstructionArgsSize = (4 + // lower_bin_id
	4) // width

type InitializePositionInstructionArgs struct {
	LowerBinId int32
	Width      int32
}

func (obj *InitializePositionInstructionArgs) Size() int {
	return InitializePositionInstructionArgsSize
}

func (obj *InitializePositionInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteInt32(obj.LowerBinId); err != nil {
		return err
	}
	return e.WriteInt32(obj.Width)
}

func (obj *InitializePositionInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.LowerBinId, err = d.ReadInt32(); err != nil {
		return err
	}
	obj.Width, err = d.ReadInt32()
	return err
}

type InitializePositionInstructionAccounts struct {
	Payer    ed25519.PublicKey
	Position ed25519.PublicKey
	LbPair   ed25519.PublicKey
	Owner    ed25519.PublicKey
}

// NewInitializePositionInstruction creates a keypair position covering
// Width bins from LowerBinId. Width may not exceed MaxBinPerPosition.
func NewInitializePositionInstruction(
	accounts *InitializePositionInstructionAccounts,
	args *InitializePositionInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(InitializePositionInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode initialize_position args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableSignerAccountMeta(accounts.Payer),
		solana.NewWritableSignerAccountMeta(accounts.Position),
		solana.NewReadonlyAccountMeta(accounts.LbPair),
		solana.NewReadonlySignerAccountMeta(accounts.Owner),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID),
		solana.NewReadonlyAccountMeta(SYSVAR_RENT_PUBKEY),
		solana.NewReadonlyAccountMeta(EVENT_AUTHORITY),
		solana.NewReadonlyAccountMeta(PROGRAM_ID),
	), nil
}

func InitializePositionInstructionArgsFromBinary(data []byte) (*InitializePositionInstructionArgs, error) {
	var args InitializePositionInstructionArgs
	if err := binary.DecodeInstruction(data, InitializePositionInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid initialize_position data")
	}
	return &args, nil
}

func DecompileInitializePositionInstruction(ix solana.Instruction) (*InitializePositionInstructionAccounts, *InitializePositionInstructionArgs, error) {
	if err := checkInstruction(ix, 8); err != nil {
		return nil, nil, err
	}

	args, err := InitializePositionInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &InitializePositionInstructionAccounts{
		Payer:    accountKey(ix, 0),
		Position: accountKey(ix, 1),
		LbPair:   accountKey(ix, 2),
		Owner:    accountKey(ix, 3),
	}
	return accounts, args, nil
}
