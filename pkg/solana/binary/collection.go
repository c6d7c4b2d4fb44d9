package binary

import (
	"github.com/pkg/errors"
)

// ReadArray reads exactly n elements with no length prefix. When elemSize is
// known, the whole array is bounds checked before any element is read.
func ReadArray[T any](d *Decoder, n, elemSize int, read func(*Decoder) (T, error)) ([]T, error) {
	out := make([]T, n)
	if err := ReadArrayInto(d, out, elemSize, read); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadArrayInto fills every element of dst, which is usually a Go array
// sliced in place.
func ReadArrayInto[T any](d *Decoder, dst []T, elemSize int, read func(*Decoder) (T, error)) error {
	start := d.off

	if elemSize > 0 && uint64(d.Remaining()) < uint64(len(dst))*uint64(elemSize) {
		return errors.Wrapf(ErrTruncatedBuffer, "array of %d x %d bytes at offset %d, have %d", len(dst), elemSize, start, d.Remaining())
	}

	for i := range dst {
		v, err := read(d)
		if err != nil {
			d.off = start
			if errors.Is(err, ErrOutOfBounds) {
				return errors.Wrapf(ErrTruncatedBuffer, "array element %d: %v", i, err)
			}
			return errors.Wrapf(err, "array element %d", i)
		}
		dst[i] = v
	}
	return nil
}

// WriteArray writes exactly n elements with no length prefix.
func WriteArray[T any](e *Encoder, src []T, n int, write func(*Encoder, T) error) error {
	if len(src) != n {
		return errors.Wrapf(ErrArrayLength, "expected %d elements, got %d", n, len(src))
	}

	start := e.off
	for i, v := range src {
		if err := write(e, v); err != nil {
			e.off = start
			return errors.Wrapf(err, "array element %d", i)
		}
	}
	return nil
}

// ReadVector reads a u32 element count followed by that many elements. Counts
// the remaining bytes can't hold fail before anything is allocated. A zero
// elemSize means elements are variable length, and each is assumed to take at
// least one byte.
func ReadVector[T any](d *Decoder, elemSize int, read func(*Decoder) (T, error)) ([]T, error) {
	start := d.off

	count, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	minSize := uint64(elemSize)
	if minSize == 0 {
		minSize = 1
	}
	if uint64(d.Remaining()) < uint64(count)*minSize {
		d.off = start
		return nil, errors.Wrapf(ErrTruncatedBuffer, "vector of %d elements at offset %d, have %d bytes", count, start, d.Remaining())
	}

	out := make([]T, count)
	for i := range out {
		v, err := read(d)
		if err != nil {
			d.off = start
			if errors.Is(err, ErrOutOfBounds) {
				return nil, errors.Wrapf(ErrTruncatedBuffer, "vector element %d: %v", i, err)
			}
			return nil, errors.Wrapf(err, "vector element %d", i)
		}
		out[i] = v
	}
	return out, nil
}

func WriteVector[T any](e *Encoder, src []T, write func(*Encoder, T) error) error {
	start := e.off

	if err := e.WriteUint32(uint32(len(src))); err != nil {
		return err
	}
	for i, v := range src {
		if err := write(e, v); err != nil {
			e.off = start
			return errors.Wrapf(err, "vector element %d", i)
		}
	}
	return nil
}

// VectorSize is the encoded size of a vector of fixed size elements.
func VectorSize(count, elemSize int) int {
	return 4 + count*elemSize
}
