package dlmm

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var ClosePositionInstructionDiscriminator = binary.Discriminator{123, 134, 81, 0, 49, 68, 98, 98}

type ClosePositionInstructionAccounts struct {
	Position      ed25519.PublicKey
	LbPair        ed25519.PublicKey
	BinArrayLower ed25519.PublicKey
	BinArrayUpper ed25519.PublicKey
	Sender        ed25519.PublicKey
	RentReceiver  ed25519.PublicKey
}

// NewClosePositionInstruction closes an empty position and returns its rent
// to RentReceiver.
func NewClosePositionInstruction(
	accounts *ClosePositionInstructionAccounts,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(ClosePositionInstructionDiscriminator, nil)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode close_position args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.Position),
		solana.NewWritableAccountMeta(accounts.LbPair),
		solana.NewWritableAccountMeta(accounts.BinArrayLower),
		solana.NewWritableAccountMeta(accounts.BinArrayUpper),
		solana.NewReadonlySignerAccountMeta(accounts.Sender),
		solana.NewWritableAccountMeta(accounts.RentReceiver),
		solana.NewReadonlyAccountMeta(EVENT_AUTHORITY),
		solana.NewReadonlyAccountMeta(PROGRAM_ID),
	), nil
}

func DecompileClosePositionInstruction(ix solana.Instruction) (*ClosePositionInstructionAccounts, error) {
	if err := checkInstruction(ix, 8); err != nil {
		return nil, err
	}

	if err := binary.DecodeInstruction(ix.Data, ClosePositionInstructionDiscriminator, nil); err != nil {
		return nil, errors.Wrap(err, "invalid close_position data")
	}

	accounts := &ClosePositionInstructionAccounts{
		Position:      accountKey(ix, 0),
		LbPair:        accountKey(ix, 1),
		BinArrayLower: accountKey(ix, 2),
		BinArrayUpper: accountKey(ix, 3),
		Sender:        accountKey(ix, 4),
		RentReceiver:  accountKey(ix, 5),
	}
	return accounts, nil
}
