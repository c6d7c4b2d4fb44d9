package binary

import (
	"crypto/ed25519"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"lukechampine.com/uint128"
)

// Decoder reads little-endian values from a caller owned buffer, advancing a
// cursor as it goes. A read that fails leaves the cursor where it was.
type Decoder struct {
	buf []byte
	off int
}

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

func NewDecoderAt(buf []byte, offset int) *Decoder {
	return &Decoder{buf: buf, off: offset}
}

// Offset is the position of the next byte to be read.
func (d *Decoder) Offset() int {
	return d.off
}

// Remaining is the number of unread bytes.
func (d *Decoder) Remaining() int {
	if d.off < 0 || d.off > len(d.buf) {
		return 0
	}
	return len(d.buf) - d.off
}

func (d *Decoder) take(n int, what string) ([]byte, error) {
	if n < 0 || d.off < 0 || d.Remaining() < n {
		return nil, errors.Wrapf(ErrOutOfBounds, "read %s at offset %d: need %d bytes, have %d", what, d.off, n, d.Remaining())
	}

	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *Decoder) ReadUint8() (uint8, error) {
	b, err := d.take(1, "u8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) ReadInt8() (int8, error) {
	v, err := d.ReadUint8()
	return int8(v), err
}

// ReadBool only accepts 0 and 1.
func (d *Decoder) ReadBool() (bool, error) {
	start := d.off

	v, err := d.ReadUint8()
	if err != nil {
		return false, err
	}

	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		d.off = start
		return false, errors.Wrapf(ErrSchemaMismatch, "invalid bool value %d at offset %d", v, start)
	}
}

func (d *Decoder) ReadUint16() (uint16, error) {
	b, err := d.take(2, "u16")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (d *Decoder) ReadInt16() (int16, error) {
	v, err := d.ReadUint16()
	return int16(v), err
}

func (d *Decoder) ReadUint32() (uint32, error) {
	b, err := d.take(4, "u32")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadUint32()
	return int32(v), err
}

func (d *Decoder) ReadUint64() (uint64, error) {
	b, err := d.take(8, "u64")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (d *Decoder) ReadInt64() (int64, error) {
	v, err := d.ReadUint64()
	return int64(v), err
}

func (d *Decoder) ReadFloat64() (float64, error) {
	v, err := d.ReadUint64()
	return math.Float64frombits(v), err
}

func (d *Decoder) ReadUint128() (uint128.Uint128, error) {
	b, err := d.take(16, "u128")
	if err != nil {
		return uint128.Zero, err
	}
	return uint128.FromBytes(b), nil
}

func (d *Decoder) ReadI80F48() (I80F48, error) {
	var v I80F48
	b, err := d.take(len(v), "i80f48")
	if err != nil {
		return v, err
	}
	copy(v[:], b)
	return v, nil
}

// ReadKey reads a 32 byte public key into a newly allocated slice.
func (d *Decoder) ReadKey() (ed25519.PublicKey, error) {
	b, err := d.take(ed25519.PublicKeySize, "pubkey")
	if err != nil {
		return nil, err
	}

	key := make([]byte, ed25519.PublicKeySize)
	copy(key, b)
	return key, nil
}

// ReadBytes reads n opaque bytes into a newly allocated slice.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	b, err := d.take(n, "bytes")
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadFixed fills dst, which is typically a reserved or padding array on a
// record, with the next len(dst) bytes verbatim.
func (d *Decoder) ReadFixed(dst []byte) error {
	b, err := d.take(len(dst), "fixed bytes")
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// ReadDiscriminator checks the next 8 bytes against want without advancing on
// a mismatch.
func (d *Decoder) ReadDiscriminator(want Discriminator) error {
	start := d.off

	b, err := d.take(DiscriminatorSize, "discriminator")
	if err != nil {
		return err
	}

	var got Discriminator
	copy(got[:], b)
	if got != want {
		d.off = start
		return errors.Wrapf(ErrSchemaMismatch, "discriminator %x does not match %x", got[:], want[:])
	}
	return nil
}

// ReadEnum reads a one byte enum tag, rejecting variants above max.
func (d *Decoder) ReadEnum(max uint8, what string) (uint8, error) {
	start := d.off

	v, err := d.ReadUint8()
	if err != nil {
		return 0, err
	}
	if v > max {
		d.off = start
		return 0, errors.Wrapf(ErrSchemaMismatch, "invalid %s variant %d at offset %d", what, v, start)
	}
	return v, nil
}
