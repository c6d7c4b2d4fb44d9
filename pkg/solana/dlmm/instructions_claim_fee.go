package dlmm

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var ClaimFeeInstructionDiscriminator = binary.Discriminator{169, 32, 79, 137, 136, 232, 70, 137}

type ClaimFeeInstructionAccounts struct {
	LbPair        ed25519.PublicKey
	Position      ed25519.PublicKey
	BinArrayLower ed25519.PublicKey
	BinArrayUpper ed25519.PublicKey
	Sender        ed25519.PublicKey
	ReserveX      ed25519.PublicKey
	ReserveY      ed25519.PublicKey
	UserTokenX    ed25519.PublicKey
	UserTokenY    ed25519.PublicKey
	TokenXMint    ed25519.PublicKey
	TokenYMint    ed25519.PublicKey
	TokenProgram  ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
}

func NewClaimFeeInstruction(
	accounts *ClaimFeeInstructionAccounts,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(ClaimFeeInstructionDiscriminator, nil)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode claim_fee args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.LbPair),
		solana.NewWritableAccountMeta(accounts.Position),
		solana.NewWritableAccountMeta(accounts.BinArrayLower),
		solana.NewWritableAccountMeta(accounts.BinArrayUpper),
		solana.NewReadonlySignerAccountMeta(accounts.Sender),
		solana.NewWritableAccountMeta(accounts.ReserveX),
		solana.NewWritableAccountMeta(accounts.ReserveY),
		solana.NewWritableAccountMeta(accounts.UserTokenX),
		solana.NewWritableAccountMeta(accounts.UserTokenY),
		solana.NewReadonlyAccountMeta(accounts.TokenXMint),
		solana.NewReadonlyAccountMeta(accounts.TokenYMint),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenProgram, SPL_TOKEN_PROGRAM_ID)),
		solana.NewReadonlyAccountMeta(EVENT_AUTHORITY),
		solana.NewReadonlyAccountMeta(PROGRAM_ID),
	), nil
}

func DecompileClaimFeeInstruction(ix solana.Instruction) (*ClaimFeeInstructionAccounts, error) {
	if err := checkInstruction(ix, 14); err != nil {
		return nil, err
	}

	if err := binary.DecodeInstruction(ix.Data, ClaimFeeInstructionDiscriminator, nil); err != nil {
		return nil, errors.Wrap(err, "invalid claim_fee data")
	}

	accounts := &ClaimFeeInstructionAccounts{
		LbPair:        accountKey(ix, 0),
		Position:      accountKey(ix, 1),
		BinArrayLower: accountKey(ix, 2),
		BinArrayUpper: accountKey(ix, 3),
		Sender:        accountKey(ix, 4),
		ReserveX:      accountKey(ix, 5),
		ReserveY:      accountKey(ix, 6),
		UserTokenX:    accountKey(ix, 7),
		UserTokenY:    accountKey(ix, 8),
		TokenXMint:    accountKey(ix, 9),
		TokenYMint:    accountKey(ix, 10),
		TokenProgram:  accountKey(ix, 11),
	}
	return accounts, nil
}
