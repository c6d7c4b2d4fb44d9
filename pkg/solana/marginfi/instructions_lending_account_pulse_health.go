package marginfi

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var LendingAccountPulseHealthInstructionDiscriminator = binary.Discriminator{186, 52, 117, 97, 34, 74, 39, 253}

type LendingAccountPulseHealthInstructionAccounts struct {
	MarginfiAccount ed25519.PublicKey

	// Bank and oracle accounts for every active balance, used by the risk engine.
	RemainingAccounts []solana.AccountMeta
}

// NewLendingAccountPulseHealthInstruction refreshes the account's HealthCache.
func NewLendingAccountPulseHealthInstruction(
	accounts *LendingAccountPulseHealthInstructionAccounts,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(LendingAccountPulseHealthInstructionDiscriminator, nil)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode lending_account_pulse_health args")
	}

	metas := []solana.AccountMeta{
		solana.NewWritableAccountMeta(accounts.MarginfiAccount),
	}
	metas = append(metas, accounts.RemainingAccounts...)

	return solana.NewInstruction(PROGRAM_ID, data, metas...), nil
}

func DecompileLendingAccountPulseHealthInstruction(ix solana.Instruction) (*LendingAccountPulseHealthInstructionAccounts, error) {
	if err := checkInstructionWithRemaining(ix, 1); err != nil {
		return nil, err
	}

	if err := binary.DecodeInstruction(ix.Data, LendingAccountPulseHealthInstructionDiscriminator, nil); err != nil {
		return nil, errors.Wrap(err, "invalid lending_account_pulse_health data")
	}

	accounts := &LendingAccountPulseHealthInstructionAccounts{
		MarginfiAccount:   accountKey(ix, 0),
		RemainingAccounts: ix.Accounts[1:],
	}
	return accounts, nil
}
