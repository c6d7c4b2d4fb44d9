package marginfi

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var MarginfiAccountInitializeInstructionDiscriminator = binary.Discriminator{43, 78, 61, 255, 148, 52, 249, 154}

type MarginfiAccountInitializeInstructionAccounts struct {
	Group           ed25519.PublicKey
	MarginfiAccount ed25519.PublicKey
	Authority       ed25519.PublicKey
	FeePayer        ed25519.PublicKey
}

// NewMarginfiAccountInitializeInstruction creates a marginfi account for the
// authority. The new account key must also sign.
func NewMarginfiAccountInitializeInstruction(
	accounts *MarginfiAccountInitializeInstructionAccounts,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(MarginfiAccountInitializeInstructionDiscriminator, nil)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode marginfi_account_initialize args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewReadonlyAccountMeta(accounts.Group),
		solana.NewWritableSignerAccountMeta(accounts.MarginfiAccount),
		solana.NewReadonlySignerAccountMeta(accounts.Authority),
		solana.NewWritableSignerAccountMeta(accounts.FeePayer),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID),
	), nil
}

func DecompileMarginfiAccountInitializeInstruction(ix solana.Instruction) (*MarginfiAccountInitializeInstructionAccounts, error) {
	if err := checkInstruction(ix, 5); err != nil {
		return nil, err
	}

	if err := binary.DecodeInstruction(ix.Data, MarginfiAccountInitializeInstructionDiscriminator, nil); err != nil {
		return nil, errors.Wrap(err, "invalid marginfi_account_initialize data")
	}

	accounts := &MarginfiAccountInitializeInstructionAccounts{
		Group:           accountKey(ix, 0),
		MarginfiAccount: accountKey(ix, 1),
		Authority:       accountKey(ix, 2),
		FeePayer:        accountKey(ix, 3),
	}
	return accounts, nil
}
