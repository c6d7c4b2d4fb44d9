package marinade

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var ConfigMarinadeInstructionDiscriminator = binary.Discriminator{67, 3, 34, 114, 190, 185, 17, 62}

type ConfigMarinadeInstructionArgs struct {
	Params ConfigMarinadeParams
}

func (obj *ConfigMarinadeInstructionArgs) Size() int {
	return obj.Params.Size()
}

func (obj *ConfigMarinadeInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return obj.Params.MarshalBinaryTo(e)
}

func (obj *ConfigMarinadeInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) error {
	return obj.Params.UnmarshalBinaryFrom(d)
}

type ConfigMarinadeInstructionAccounts struct {
	State          ed25519.PublicKey
	AdminAuthority ed25519.PublicKey
}

func NewConfigMarinadeInstruction(
	accounts *ConfigMarinadeInstructionAccounts,
	args *ConfigMarinadeInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(ConfigMarinadeInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode config_marinade args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.State),
		solana.NewReadonlySignerAccountMeta(accounts.AdminAuthority),
	), nil
}

func ConfigMarinadeInstructionArgsFromBinary(data []byte) (*ConfigMarinadeInstructionArgs, error) {
	var args ConfigMarinadeInstructionArgs
	if err := binary.DecodeInstruction(data, ConfigMarinadeInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid config_marinade data")
	}
	return &args, nil
}

func DecompileConfigMarinadeInstruction(ix solana.Instruction) (*ConfigMarinadeInstructionAccounts, *ConfigMarinadeInstructionArgs, error) {
	if err := checkInstruction(ix, 2); err != nil {
		return nil, nil, err
	}

	args, err := ConfigMarinadeInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &ConfigMarinadeInstructionAccounts{
		State:          accountKey(ix, 0),
		AdminAuthority: accountKey(ix, 1),
	}
	return accounts, args, nil
}
