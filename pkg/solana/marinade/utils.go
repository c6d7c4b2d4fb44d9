package marinade

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

func checkInstruction(ix solana.Instruction, accounts int) error {
	if !bytes.Equal(ix.Program, PROGRAM_ID) {
		return ErrInvalidProgram
	}
	if len(ix.Accounts) != accounts {
		return errors.Wrapf(ErrInvalidInstructionData, "expected %d accounts, got %d", accounts, len(ix.Accounts))
	}
	return nil
}

func checkInstructionWithRemaining(ix solana.Instruction, accounts int) error {
	if !bytes.Equal(ix.Program, PROGRAM_ID) {
		return ErrInvalidProgram
	}
	if len(ix.Accounts) < accounts {
		return errors.Wrapf(ErrInvalidInstructionData, "expected at least %d accounts, got %d", accounts, len(ix.Accounts))
	}
	return nil
}

func orDefault(key, fallback ed25519.PublicKey) ed25519.PublicKey {
	if len(key) == 0 {
		return fallback
	}
	return key
}

func accountKey(ix solana.Instruction, index int) ed25519.PublicKey {
	return ix.Accounts[index].PublicKey
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
