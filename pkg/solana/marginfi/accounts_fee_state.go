package marginfi

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const FeeStateSize = (8 + // discriminator
	32 + // key
	32 + // global_fee_admin
	32 + // global_fee_wallet
	8 + // placeholder0
	4 + // bank_init_flat_sol_fee
	1 + // bump
	4 + // padding0
	15 + // padding1
	16 + // program_fee_fixed
	16 + // program_fee_rate
	32 + // reserved0
	64) // reserved1

var FeeStateDiscriminator = binary.Discriminator{63, 224, 16, 85, 193, 36, 235, 220}

// FeeState holds the program wide fee configuration. There is one per
// program deployment, at GetFeeStateAddress.
type FeeState struct {
	Key                ed25519.PublicKey
	GlobalFeeAdmin     ed25519.PublicKey
	GlobalFeeWallet    ed25519.PublicKey
	Placeholder0       uint64
	BankInitFlatSolFee uint32
	Bump               uint8
	Padding0           [4]byte
	Padding1           [15]byte
	ProgramFeeFixed    binary.I80F48
	ProgramFeeRate     binary.I80F48
	Reserved0          [32]byte
	Reserved1          [64]byte
}

func (obj *FeeState) Size() int {
	return FeeStateSize
}

func (obj *FeeState) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(FeeStateDiscriminator); err != nil {
		return err
	}
	for _, key := range []ed25519.PublicKey{obj.Key, obj.GlobalFeeAdmin, obj.GlobalFeeWallet} {
		if err := e.WriteKey(key); err != nil {
			return err
		}
	}
	if err := e.WriteUint64(obj.Placeholder0); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.BankInitFlatSolFee); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.Bump); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Padding0[:]); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Padding1[:]); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.ProgramFeeFixed); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.ProgramFeeRate); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Reserved0[:]); err != nil {
		return err
	}
	return e.WriteBytes(obj.Reserved1[:])
}

func (obj *FeeState) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(FeeStateDiscriminator); err != nil {
		return err
	}
	for _, key := range []*ed25519.PublicKey{&obj.Key, &obj.GlobalFeeAdmin, &obj.GlobalFeeWallet} {
		if *key, err = d.ReadKey(); err != nil {
			return err
		}
	}
	if obj.Placeholder0, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.BankInitFlatSolFee, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.Bump, err = d.ReadUint8(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Padding0[:]); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Padding1[:]); err != nil {
		return err
	}
	if obj.ProgramFeeFixed, err = d.ReadI80F48(); err != nil {
		return err
	}
	if obj.ProgramFeeRate, err = d.ReadI80F48(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Reserved0[:]); err != nil {
		return err
	}
	return d.ReadFixed(obj.Reserved1[:])
}

func (obj *FeeState) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

func (obj *FeeState) String() string {
	return fmt.Sprintf(
		"FeeState{key=%s,global_fee_admin=%s,global_fee_wallet=%s,bank_init_flat_sol_fee=%d,program_fee_fixed=%s,program_fee_rate=%s,bump=%d}",
		base58.Encode(obj.Key),
		base58.Encode(obj.GlobalFeeAdmin),
		base58.Encode(obj.GlobalFeeWallet),
		obj.BankInitFlatSolFee,
		obj.ProgramFeeFixed,
		obj.ProgramFeeRate,
		obj.Bump,
	)
}
