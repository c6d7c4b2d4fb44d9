package marinade

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var DepositStakeAccountInstructionDiscriminator = binary.Discriminator{110, 130, 115, 41, 164, 102, 2, 59}

const DepositStakeAccountInstructionArgsSize = (4) // validator_index

type DepositStakeAccountInstructionArgs struct {
	ValidatorIndex uint32
}

func (obj *DepositStakeAccountInstructionArgs) Size() int {
	return DepositStakeAccountInstructionArgsSize
}

func (obj *DepositStakeAccountInstructionArgs) MarshalBinaryTo(e *binary.Encoder) error {
	return e.WriteUint32(obj.ValidatorIndex)
}

func (obj *DepositStakeAccountInstructionArgs) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	obj.ValidatorIndex, err = d.ReadUint32()
	return err
}

type DepositStakeAccountInstructionAccounts struct {
	State             ed25519.PublicKey
	ValidatorList     ed25519.PublicKey
	StakeList         ed25519.PublicKey
	StakeAccount      ed25519.PublicKey
	StakeAuthority    ed25519.PublicKey
	DuplicationFlag   ed25519.PublicKey
	RentPayer         ed25519.PublicKey
	MsolMint          ed25519.PublicKey
	MintTo            ed25519.PublicKey
	MsolMintAuthority ed25519.PublicKey
	TokenProgram      ed25519.PublicKey // defaults to SPL_TOKEN_PROGRAM_ID
}

func NewDepositStakeAccountInstruction(
	accounts *DepositStakeAccountInstructionAccounts,
	args *DepositStakeAccountInstructionArgs,
) (solana.Instruction, error) {
	data, err := binary.EncodeInstruction(DepositStakeAccountInstructionDiscriminator, args)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode deposit_stake_account args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewWritableAccountMeta(accounts.State),
		solana.NewWritableAccountMeta(accounts.ValidatorList),
		solana.NewWritableAccountMeta(accounts.StakeList),
		solana.NewWritableAccountMeta(accounts.StakeAccount),
		solana.NewReadonlySignerAccountMeta(accounts.StakeAuthority),
		solana.NewWritableAccountMeta(accounts.DuplicationFlag),
		solana.NewWritableSignerAccountMeta(accounts.RentPayer),
		solana.NewWritableAccountMeta(accounts.MsolMint),
		solana.NewWritableAccountMeta(accounts.MintTo),
		solana.NewReadonlyAccountMeta(accounts.MsolMintAuthority),
		solana.NewReadonlyAccountMeta(SYSVAR_CLOCK_PUBKEY),
		solana.NewReadonlyAccountMeta(SYSVAR_RENT_PUBKEY),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID),
		solana.NewReadonlyAccountMeta(orDefault(accounts.TokenProgram, SPL_TOKEN_PROGRAM_ID)),
		solana.NewReadonlyAccountMeta(STAKE_PROGRAM_ID),
	), nil
}

func DepositStakeAccountInstructionArgsFromBinary(data []byte) (*DepositStakeAccountInstructionArgs, error) {
	var args DepositStakeAccountInstructionArgs
	if err := binary.DecodeInstruction(data, DepositStakeAccountInstructionDiscriminator, &args); err != nil {
		return nil, errors.Wrap(err, "invalid deposit_stake_account data")
	}
	return &args, nil
}

func DecompileDepositStakeAccountInstruction(ix solana.Instruction) (*DepositStakeAccountInstructionAccounts, *DepositStakeAccountInstructionArgs, error) {
	if err := checkInstruction(ix, 15); err != nil {
		return nil, nil, err
	}

	args, err := DepositStakeAccountInstructionArgsFromBinary(ix.Data)
	if err != nil {
		return nil, nil, err
	}

	accounts := &DepositStakeAccountInstructionAccounts{
		State:             accountKey(ix, 0),
		ValidatorList:     accountKey(ix, 1),
		StakeList:         accountKey(ix, 2),
		StakeAccount:      accountKey(ix, 3),
		StakeAuthority:    accountKey(ix, 4),
		DuplicationFlag:   accountKey(ix, 5),
		RentPayer:         accountKey(ix, 6),
		MsolMint:          accountKey(ix, 7),
		MintTo:            accountKey(ix, 8),
		MsolMintAuthority: accountKey(ix, 9),
		TokenProgram:      accountKey(ix, 13),
	}
	return accounts, args, nil
}
