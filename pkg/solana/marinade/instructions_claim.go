package marinade

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var ClaimInstructionDiscriminator = binary.Discriminator{62, 198, 214, 193, 213, 159, 108, 210}

type ClaimInstructionAccounts struct {
	State         ed25519.PublicKey
	ReservePda    ed25519.PublicKey
	TicketAccount ed25519.PublicKey
	TransferSolTo ed25519.PublicKey
}

func NewClaimInstruction(
	accounts *ClaimInstructionAccounts,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(ClaimInstructionDiscriminator, nil)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode claim args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.State),
		solana.NewWritableAccountMeta(accounts.ReservePda),
		solana.NewWritableAccountMeta(accounts.TicketAccount),
		solana.NewWritableAccountMeta(accounts.TransferSolTo),
		solana.NewReadonlyAccountMeta(SYSVAR_CLOCK_PUBKEY),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID),
	), nil
}

func DecompileClaimInstruction(ix solana.Instruction) (*ClaimInstructionAccounts, error) {
	if err := checkInstruction(ix, 6); err != nil {
		return nil, err
	}

	if err := binary.DecodeInstruction(ix.Data, ClaimInstructionDiscriminator, nil); err != nil {
		return nil, errors.Wrap(err, "invalid claim data")
	}

	accounts := &ClaimInstructionAccounts{
		State:         accountKey(ix, 0),
		ReservePda:    accountKey(ix, 1),
		TicketAccount: accountKey(ix, 2),
		TransferSolTo: accountKey(ix, 3),
	}
	return accounts, nil
}
