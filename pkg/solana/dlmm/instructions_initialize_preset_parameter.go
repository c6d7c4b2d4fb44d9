package dlmm

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var InitializePresetParameterInstructionDiscriminator = binary.Discriminator{66, 188, 71, 211, 98, 109, 14, 186}

type InitializePresetParameterInstructionArgs struct {
	Ix InitPresetParametersIx
}

func (obj *InitializePresetParameterInstructionArgs) Size() int {
	return obj.Ix.Size()
}

func (obj *InitializePresetParameterInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return obj.Ix.MarshalBinaryTo(e)
}

func (obj *InitializePresetParameterInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) error {
	return obj.Ix.UnmarshalBinaryFrom(d)
}

type InitializePresetParameterInstructionAccounts struct {
	PresetParameter ed25519.PublicKey
	Admin           ed25519.PublicKey
}

// NewInitializePresetParameterInstruction creates the PresetParameter2
// account at GetPresetParameter2Address(Ix.Index).
func NewInitializePresetParameterInstruction(
	accounts *InitializePresetParameterInstructionAccounts,
	args *InitializePresetParameterInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(InitializePresetParameterInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode initialize_preset_parameter args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.PresetParameter),
		solana.NewWritableSignerAccountMeta(accounts.Admin),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID),
	), nil
}

func InitializePresetParameterInstructionArgsFromBinary(data []byte) (*InitializePresetParameterInstructionArgs, error) {
	var args InitializePresetParameterInstructionArgs
	if err := binary.DecodeInstruction(data, InitializePresetParameterInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid initialize_preset_parameter data")
	}
	return &args, nil
}

func DecompileInitializePresetParameterInstruction(ix solana.Instruction) (*InitializePresetParameterInstructionAccounts, *InitializePresetParameterInstructionArgs, error) {
	if err := checkInstruction(ix, 3); err != nil {
		return nil, nil, err
	}

	args, err := InitializePresetParameterInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &InitializePresetParameterInstructionAccounts{
		PresetParameter: accountKey(ix, 0),
		Admin:           accountKey(ix, 1),
	}
	return accounts, args, nil
}
