package binary

import (
	"github.com/pkg/errors"
)

// Record is a fixed field list encoded in declaration order.
type Record interface {
	// Size is the encoded size in bytes, including any discriminator.
	Size() int

	MarshalBinaryTo(e *Encoder) error
	UnmarshalBinaryFrom(d *Decoder) error
}

// Encode allocates rec.Size() bytes and encodes rec into them.
func Encode(rec Record) ([]byte, error) {
	buf := make([]byte, rec.Size())

	e := NewEncoder(buf)
	if err := rec.MarshalBinaryTo(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// EncodeAt encodes rec into buf at offset and returns the bytes written.
func EncodeAt(buf []byte, offset int, rec Record) (int, error) {
	e := NewEncoderAt(buf, offset)
	if err := rec.MarshalBinaryTo(e); err != nil {
		return 0, err
	}
	return e.Offset() - offset, nil
}

// Decode decodes rec from buf at offset and returns the bytes consumed.
func Decode(buf []byte, offset int, rec Record) (int, error) {
	d := NewDecoderAt(buf, offset)
	if err := rec.UnmarshalBinaryFrom(d); err != nil {
		return 0, err
	}
	return d.Offset() - offset, nil
}

// ReadRecord adapts a Record type for use with the array, vector and option
// readers.
func ReadRecord[T any, PT interface {
	*T
	Record
}](d *Decoder) (T, error) {
	var v T
	err := PT(&v).UnmarshalBinaryFrom(d)
	return v, err
}

// WriteRecord adapts a Record type for use with the array, vector and option
// writers.
func WriteRecord[T any, PT interface {
	*T
	Record
}](e *Encoder, v T) error {
	return PT(&v).MarshalBinaryTo(e)
}

// EncodeInstruction returns the discriminator followed by the encoded args.
// A nil args encodes the discriminator alone.
func EncodeInstruction(discriminator Discriminator, args Record) ([]byte, error) {
	size := DiscriminatorSize
	if args != nil {
		size += args.Size()
	}

	e := NewEncoder(make([]byte, size))
	if err := e.WriteDiscriminator(discriminator); err != nil {
		return nil, err
	}
	if args != nil {
		if err := args.MarshalBinaryTo(e); err != nil {
			return nil, err
		}
	}
	return e.Bytes(), nil
}

// DecodeInstruction checks the discriminator and then decodes args, which may
// be nil for instructions without arguments. Trailing bytes are rejected.
func DecodeInstruction(data []byte, discriminator Discriminator, args Record) error {
	d := NewDecoder(data)
	if err := d.ReadDiscriminator(discriminator); err != nil {
		return err
	}
	if args != nil {
		if err := args.UnmarshalBinaryFrom(d); err != nil {
			return err
		}
	}
	if d.Remaining() != 0 {
		return errors.Wrapf(ErrSchemaMismatch, "%d trailing bytes after instruction args", d.Remaining())
	}
	return nil
}
