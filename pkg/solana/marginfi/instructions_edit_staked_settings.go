package marginfi

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var EditStakedSettingsInstructionDiscriminator = binary.Discriminator{11, 108, 215, 87, 240, 9, 66, 241}

type EditStakedSettingsInstructionArgs struct {
	Settings StakedSettingsEditConfig
}

func (obj *EditStakedSettingsInstructionArgs) Size() int {
	return obj.Settings.Size()
}

func (obj *EditStakedSettingsInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return obj.Settings.MarshalBinaryTo(e)
}

func (obj *EditStakedSettingsInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) error {
	return obj.Settings.UnmarshalBinaryFrom(d)
}

type EditStakedSettingsInstructionAccounts struct {
	Group          ed25519.PublicKey
	Admin          ed25519.PublicKey
	StakedSettings ed25519.PublicKey
}

func NewEditStakedSettingsInstruction(
	accounts *EditStakedSettingsInstructionAccounts,
	args *EditStakedSettingsInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(EditStakedSettingsInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode edit_staked_settings args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewReadonlyAccountMeta(accounts.Group),
		solana.NewReadonlySignerAccountMeta(accounts.Admin),
		solana.NewWritableAccountMeta(accounts.StakedSettings),
	), nil
}

func EditStakedSettingsInstructionArgsFromBinary(data []byte) (*EditStakedSettingsInstructionArgs, error) {
	var args EditStakedSettingsInstructionArgs
	if err := binary.DecodeInstruction(data, EditStakedSettingsInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid edit_staked_settings data")
	}
	return &args, nil
}

func DecompileEditStakedSettingsInstruction(ix solana.Instruction) (*EditStakedSettingsInstructionAccounts, *EditStakedSettingsInstructionArgs, error) {
	if err := checkInstruction(ix, 3); err != nil {
		return nil, nil, err
	}

	args, err := EditStakedSettingsInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &EditStakedSettingsInstructionAccounts{
		Group:          accountKey(ix, 0),
		Admin:          accountKey(ix, 1),
		StakedSettings: accountKey(ix, 2),
	}
	return accounts, args, nil
}
