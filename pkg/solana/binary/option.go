package binary

import (
	"github.com/pkg/errors"
)

const (
	optionNone uint8 = 0
	optionSome uint8 = 1
)

// ReadOption reads a one byte presence tag followed by the payload when the
// tag is 1. Tags other than 0 and 1 are rejected.
func ReadOption[T any](d *Decoder, read func(*Decoder) (T, error)) (*T, error) {
	start := d.off

	tag, err := d.ReadUint8()
	if err != nil {
		return nil, err
	}

	switch tag {
	case optionNone:
		return nil, nil
	case optionSome:
		v, err := read(d)
		if err != nil {
			d.off = start
			return nil, err
		}
		return &v, nil
	default:
		d.off = start
		return nil, errors.Wrapf(ErrSchemaMismatch, "invalid option tag %d at offset %d", tag, start)
	}
}

// WriteOption writes a 0 tag for nil, otherwise a 1 tag and the payload.
func WriteOption[T any](e *Encoder, v *T, write func(*Encoder, T) error) error {
	if v == nil {
		return e.WriteUint8(optionNone)
	}

	start := e.off
	if err := e.WriteUint8(optionSome); err != nil {
		return err
	}
	if err := write(e, *v); err != nil {
		e.off = start
		return err
	}
	return nil
}

// OptionSize is the encoded size of an option whose payload is size bytes.
func OptionSize[T any](v *T, size int) int {
	if v == nil {
		return 1
	}
	return 1 + size
}
