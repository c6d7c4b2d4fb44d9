package snapshot

import (
	"crypto/ed25519"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const entryHeaderSize = (8 + // slot
	8 + // lamports
	1 + // executable
	4) // data length

// Entry is a raw account as it was observed at Slot.
type Entry struct {
	Program ed25519.PublicKey
	Address ed25519.PublicKey
	Slot    uint64
	Account solana.AccountInfo
}

// KeyedAccount converts the entry for use with decoders that operate on RPC
// results.
func (e *Entry) KeyedAccount() solana.KeyedAccount {
	return solana.KeyedAccount{
		PublicKey: e.Address,
		Account:   e.Account,
	}
}

// value is the stored form of an entry. The program and address live in the
// key.
type value struct {
	slot       uint64
	lamports   uint64
	executable bool
	data       []byte
}

func (v *value) Size() int {
	return entryHeaderSize + len(v.data)
}

func (v *value) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteUint64(v.slot); err != nil {
		return err
	}
	if err := e.WriteUint64(v.lamports); err != nil {
		return err
	}
	if err := e.WriteBool(v.executable); err != nil {
		return err
	}
	if err := e.WriteUint32(uint32(len(v.data))); err != nil {
		return err
	}
	return e.WriteBytes(v.data)
}

func (v *value) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if v.slot, err = d.ReadUint64(); err != nil {
		return err
	}
	if v.lamports, err = d.ReadUint64(); err != nil {
		return err
	}
	if v.executable, err = d.ReadBool(); err != nil {
		return err
	}

	var n uint32
	if n, err = d.ReadUint32(); err != nil {
		return err
	}
	// ReadBytes copies, so the value outlives the buffer it was read from.
	v.data, err = d.ReadBytes(int(n))
	return err
}
