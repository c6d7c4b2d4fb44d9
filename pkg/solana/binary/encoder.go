package binary

import (
	"crypto/ed25519"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"lukechampine.com/uint128"
)

// Encoder writes little-endian values into a caller owned buffer. A write
// that doesn't fit fails without touching the buffer.
type Encoder struct {
	buf []byte
	off int
}

func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf}
}

func NewEncoderAt(buf []byte, offset int) *Encoder {
	return &Encoder{buf: buf, off: offset}
}

func (e *Encoder) Offset() int {
	return e.off
}

func (e *Encoder) Remaining() int {
	if e.off < 0 || e.off > len(e.buf) {
		return 0
	}
	return len(e.buf) - e.off
}

// Bytes returns the buffer up to the current offset.
func (e *Encoder) Bytes() []byte {
	return e.buf[:e.off]
}

func (e *Encoder) reserve(n int, what string) ([]byte, error) {
	if n < 0 || e.off < 0 || e.Remaining() < n {
		return nil, errors.Wrapf(ErrOutOfBounds, "write %s at offset %d: need %d bytes, have %d", what, e.off, n, e.Remaining())
	}

	b := e.buf[e.off : e.off+n]
	e.off += n
	return b, nil
}

func (e *Encoder) WriteUint8(v uint8) error {
	b, err := e.reserve(1, "u8")
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

func (e *Encoder) WriteInt8(v int8) error {
	return e.WriteUint8(uint8(v))
}

func (e *Encoder) WriteBool(v bool) error {
	if v {
		return e.WriteUint8(1)
	}
	return e.WriteUint8(0)
}

func (e *Encoder) WriteUint16(v uint16) error {
	b, err := e.reserve(2, "u16")
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, v)
	return nil
}

func (e *Encoder) WriteInt16(v int16) error {
	return e.WriteUint16(uint16(v))
}

func (e *Encoder) WriteUint32(v uint32) error {
	b, err := e.reserve(4, "u32")
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}

func (e *Encoder) WriteInt32(v int32) error {
	return e.WriteUint32(uint32(v))
}

func (e *Encoder) WriteUint64(v uint64) error {
	b, err := e.reserve(8, "u64")
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, v)
	return nil
}

func (e *Encoder) WriteInt64(v int64) error {
	return e.WriteUint64(uint64(v))
}

func (e *Encoder) WriteFloat64(v float64) error {
	return e.WriteUint64(math.Float64bits(v))
}

func (e *Encoder) WriteUint128(v uint128.Uint128) error {
	b, err := e.reserve(16, "u128")
	if err != nil {
		return err
	}
	v.PutBytes(b)
	return nil
}

func (e *Encoder) WriteI80F48(v I80F48) error {
	b, err := e.reserve(len(v), "i80f48")
	if err != nil {
		return err
	}
	copy(b, v[:])
	return nil
}

// WriteKey writes a 32 byte public key. A nil key is written as the zero
// address.
func (e *Encoder) WriteKey(key ed25519.PublicKey) error {
	if len(key) != 0 && len(key) != ed25519.PublicKeySize {
		return errors.Wrapf(ErrSchemaMismatch, "invalid public key length %d", len(key))
	}

	b, err := e.reserve(ed25519.PublicKeySize, "pubkey")
	if err != nil {
		return err
	}

	if len(key) == 0 {
		clear(b)
		return nil
	}
	copy(b, key)
	return nil
}

// WriteBytes writes src verbatim.
func (e *Encoder) WriteBytes(src []byte) error {
	b, err := e.reserve(len(src), "bytes")
	if err != nil {
		return err
	}
	copy(b, src)
	return nil
}

func (e *Encoder) WriteDiscriminator(v Discriminator) error {
	return e.WriteBytes(v[:])
}
