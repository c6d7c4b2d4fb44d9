package marginfi

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const FeeStateCacheSize = (32 + // global_fee_wallet
	16 + // program_fee_fixed
	16 + // program_fee_rate
	8) // last_update

// FeeStateCache is the group's copy of the program wide FeeState.
type FeeStateCache struct {
	GlobalFeeWallet ed25519.PublicKey
	ProgramFeeFixed binary.I80F48
	ProgramFeeRate  binary.I80F48
	LastUpdate      int64
}

func (obj *FeeStateCache) Size() int {
	return FeeStateCacheSize
}

func (obj *FeeStateCache) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteKey(obj.GlobalFeeWallet); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.ProgramFeeFixed); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.ProgramFeeRate); err != nil {
		return err
	}
	return e.WriteInt64(obj.LastUpdate)
}

func (obj *FeeStateCache) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.GlobalFeeWallet, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.ProgramFeeFixed, err = d.ReadI80F48(); err != nil {
		return err
	}
	if obj.ProgramFeeRate, err = d.ReadI80F48(); err != nil {
		return err
	}
	obj.LastUpdate, err = d.ReadInt64()
	return err
}

const MarginfiGroupSize = (8 + // discriminator
	32 + // admin
	8 + // group_flags
	FeeStateCacheSize + // fee_state_cache
	2 + // banks
	6 + // pad0
	32 + // emode_admin
	32 + // delegate_curve_admin
	32 + // delegate_limit_admin
	32 + // delegate_emissions_admin
	288 + // padding0
	512 + // padding1
	8) // padding4

const MarginfiGroupAdminOffset = 8

var MarginfiGroupDiscriminator = binary.Discriminator{182, 23, 173, 240, 151, 206, 182, 67}

type MarginfiGroup struct {
	Admin                  ed25519.PublicKey
	GroupFlags             uint64
	FeeStateCache          FeeStateCache
	Banks                  uint16
	Pad0                   [6]byte
	EmodeAdmin             ed25519.PublicKey
	DelegateCurveAdmin     ed25519.PublicKey
	DelegateLimitAdmin     ed25519.PublicKey
	DelegateEmissionsAdmin ed25519.PublicKey
	Padding0               [288]byte
	Padding1               [512]byte
	Padding4               [8]byte
}

func (obj *MarginfiGroup) admins() []*ed25519.PublicKey {
	return []*ed25519.PublicKey{
		&obj.EmodeAdmin,
		&obj.DelegateCurveAdmin,
		&obj.DelegateLimitAdmin,
		&obj.DelegateEmissionsAdmin,
	}
}

func (obj *MarginfiGroup) Size() int {
	return MarginfiGroupSize
}

func (obj *MarginfiGroup) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(MarginfiGroupDiscriminator); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Admin); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.GroupFlags); err != nil {
		return err
	}
	if err := obj.FeeStateCache.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := e.WriteUint16(obj.Banks); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Pad0[:]); err != nil {
		return err
	}
	for _, key := range obj.admins() {
		if err := e.WriteKey(*key); err != nil {
			return err
		}
	}
	if err := e.WriteBytes(obj.Padding0[:]); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Padding1[:]); err != nil {
		return err
	}
	return e.WriteBytes(obj.Padding4[:])
}

func (obj *MarginfiGroup) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(MarginfiGroupDiscriminator); err != nil {
		return err
	}
	if obj.Admin, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.GroupFlags, err = d.ReadUint64(); err != nil {
		return err
	}
	if err = obj.FeeStateCache.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if obj.Banks, err = d.ReadUint16(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Pad0[:]); err != nil {
		return err
	}
	for _, key := range obj.admins() {
		if *key, err = d.ReadKey(); err != nil {
			return err
		}
	}
	if err = d.ReadFixed(obj.Padding0[:]); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Padding1[:]); err != nil {
		return err
	}
	return d.ReadFixed(obj.Padding4[:])
}

func (obj *MarginfiGroup) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

func (obj *MarginfiGroup) String() string {
	return fmt.Sprintf(
		"MarginfiGroup{admin=%s,group_flags=%d,banks=%d,global_fee_wallet=%s,program_fee_fixed=%s,program_fee_rate=%s}",
		base58.Encode(obj.Admin),
		obj.GroupFlags,
		obj.Banks,
		base58.Encode(obj.FeeStateCache.GlobalFeeWallet),
		obj.FeeStateCache.ProgramFeeFixed,
		obj.FeeStateCache.ProgramFeeRate,
	)
}
