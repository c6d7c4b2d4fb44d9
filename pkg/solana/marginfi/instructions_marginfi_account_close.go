package marginfi

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var MarginfiAccountCloseInstructionDiscriminator = binary.Discriminator{186, 221, 93, 34, 50, 97, 194, 241}

type MarginfiAccountCloseInstructionAccounts struct {
	MarginfiAccount ed25519.PublicKey
	Authority       ed25519.PublicKey
	FeePayer        ed25519.PublicKey
}

func NewMarginfiAccountCloseInstruction(
	accounts *MarginfiAccountCloseInstructionAccounts,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(MarginfiAccountCloseInstructionDiscriminator, nil)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode marginfi_account_close args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.MarginfiAccount),
		solana.NewReadonlySignerAccountMeta(accounts.Authority),
		solana.NewWritableSignerAccountMeta(accounts.FeePayer),
	), nil
}

func DecompileMarginfiAccountCloseInstruction(ix solana.Instruction) (*MarginfiAccountCloseInstructionAccounts, error) {
	if err := checkInstruction(ix, 3); err != nil {
		return nil, err
	}

	if err := binary.DecodeInstruction(ix.Data, MarginfiAccountCloseInstructionDiscriminator, nil); err != nil {
		return nil, errors.Wrap(err, "invalid marginfi_account_close data")
	}

	accounts := &MarginfiAccountCloseInstructionAccounts{
		MarginfiAccount: accountKey(ix, 0),
		Authority:       accountKey(ix, 1),
		FeePayer:        accountKey(ix, 2),
	}
	return accounts, nil
}
